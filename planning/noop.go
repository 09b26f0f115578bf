// This file synthesizes persistence (no-op) pseudo-actions.
package planning

import "github.com/katalvlaran/graphplan/strips"

// Operator names used for synthesized persistence actions.
const (
	noopPosName = "Noop_pos"
	noopNegName = "Noop_neg"
)

// NoopActions synthesizes the persistence pseudo-actions for a fluent
// vocabulary: for every fluent F, Noop_pos(F) requires F true and re-asserts
// it true, and Noop_neg(F) requires F false and re-asserts it false.
//
// No-ops exist only inside the planning graph, never in the problem domain.
// They let a literal survive unchanged from one level to the next, which the
// level-off test depends on, and they make "no operation touches this
// literal" an explicit choice under serial mutex semantics. Every
// synthesized action derives Persistent == true, since its precondition and
// effect literal sets coincide.
//
// The result preserves vocabulary order, two actions per fluent.
// Complexity: O(F) where F = |fluents|.
func NoopActions(fluents []string) []strips.Action {
	actions := make([]strips.Action, 0, 2*len(fluents))
	for _, f := range fluents {
		actions = append(actions, strips.Action{
			Name:       noopPosName,
			Args:       []string{f},
			PrecondPos: []string{f},
			EffectAdd:  []string{f},
		})
		actions = append(actions, strips.Action{
			Name:       noopNegName,
			Args:       []string{f},
			PrecondNeg: []string{f},
			EffectRem:  []string{f},
		})
	}

	return actions
}
