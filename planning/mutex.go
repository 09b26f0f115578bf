// This file implements the mutex engine: four pairwise action rules and two
// pairwise literal rules, applied per level during construction.
//
// All rules are symmetric functions of the pair and marking is commutative,
// so the iteration order over a level's node set does not affect the result.
package planning

// updateActionMutex marks every unordered pair of distinct action-nodes in
// one action level mutex iff any of the four action rules holds:
// serial-exclusion, inconsistent effects, interference, competing needs.
// Complexity: O(A²·P) for A nodes and precondition/effect size P.
func (g *Graph) updateActionMutex(level actionLevel) {
	nodes := make([]*ActionNode, 0, len(level))
	for _, n := range level {
		nodes = append(nodes, n)
	}
	for i := 0; i < len(nodes)-1; i++ {
		for j := i + 1; j < len(nodes); j++ {
			n1, n2 := nodes[i], nodes[j]
			if g.serialExclusion(n1, n2) ||
				inconsistentEffects(n1, n2) ||
				interference(n1, n2) ||
				competingNeeds(n1, n2) {
				MutexifyActions(n1, n2)
			}
		}
	}
}

// serialExclusion holds under serial planning semantics when neither action
// is persistent: a serial step admits at most one genuine action. Pairs
// involving a no-op are exempt.
func (g *Graph) serialExclusion(n1, n2 *ActionNode) bool {
	if !g.serial {
		return false
	}
	if n1.persistent || n2.persistent {
		return false
	}

	return true
}

// inconsistentEffects holds when one action's add list intersects the
// other's remove list, in either direction: the pair asserts some literal
// both true and false.
func inconsistentEffects(n1, n2 *ActionNode) bool {
	for _, sym := range n1.action.EffectAdd {
		if n2.action.RemovesSymbol(sym) {
			return true
		}
	}
	for _, sym := range n1.action.EffectRem {
		if n2.action.AddsSymbol(sym) {
			return true
		}
	}

	return false
}

// interference holds when one action's effect negates a precondition the
// other depends on, checked in all four directions.
func interference(n1, n2 *ActionNode) bool {
	for _, sym := range n1.action.EffectAdd {
		if n2.action.NeedsNeg(sym) {
			return true
		}
	}
	for _, sym := range n1.action.EffectRem {
		if n2.action.NeedsPos(sym) {
			return true
		}
	}
	for _, sym := range n1.action.PrecondPos {
		if n2.action.RemovesSymbol(sym) {
			return true
		}
	}
	for _, sym := range n1.action.PrecondNeg {
		if n2.action.AddsSymbol(sym) {
			return true
		}
	}

	return false
}

// competingNeeds holds when some precondition literal-node of the first
// action is marked mutex, at the previous literal level, with some
// precondition literal-node of the second.
func competingNeeds(n1, n2 *ActionNode) bool {
	for p1 := range n1.parents {
		for p2 := range n2.parents {
			if p2.IsMutex(p1) {
				return true
			}
		}
	}

	return false
}

// updateLiteralMutex marks every unordered pair of distinct literal-nodes
// in one literal level mutex iff negation or inconsistent support holds.
// Complexity: O(V²·A²) worst case for V nodes with A producers each.
func (g *Graph) updateLiteralMutex(level literalLevel) {
	nodes := make([]*LiteralNode, 0, len(level))
	for _, n := range level {
		nodes = append(nodes, n)
	}
	for i := 0; i < len(nodes)-1; i++ {
		for j := i + 1; j < len(nodes); j++ {
			n1, n2 := nodes[i], nodes[j]
			if negationMutex(n1, n2) || inconsistentSupport(n1, n2) {
				MutexifyLiterals(n1, n2)
			}
		}
	}
}

// negationMutex holds when the two literals share a symbol with opposite
// polarity.
func negationMutex(n1, n2 *LiteralNode) bool {
	return n1.lit.Symbol == n2.lit.Symbol && n1.lit.Positive != n2.lit.Positive
}

// inconsistentSupport tests whether no pair of producers can achieve both
// literals together.
//
// Observed producer-pair mutex evidence makes the pair mutex, with an eager
// single-producer override: upon finding a mutex producer pair, if either
// producer of that pair achieves both literals within its own effects, the
// pair is declared jointly achievable and the scan stops immediately,
// without examining the remaining producer pairs.
func inconsistentSupport(n1, n2 *LiteralNode) bool {
	result := false
	for pa := range n1.parents {
		for pb := range n2.parents {
			if pa.IsMutex(pb) {
				result = true
				if (pa.hasChild(n1) && pa.hasChild(n2)) || (pb.hasChild(n1) && pb.hasChild(n2)) {
					return false
				}
			}
		}
	}

	return result
}
