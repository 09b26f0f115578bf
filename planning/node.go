// This file declares the two planning-graph node kinds and their
// symmetric mutex marking.
//
// Identity is deliberately separate from relation state: a LiteralNode is
// identified by its strips.Literal and an ActionNode by its ActionKey, while
// the parent/child/mutex sets remain mutable per-level bookkeeping. Equal
// nodes rebuilt at different levels therefore deduplicate correctly even
// though their mutex sets may differ.
package planning

import (
	"sort"
	"strings"

	"github.com/katalvlaran/graphplan/strips"
)

// LiteralNode represents one literal (symbol + polarity) within a single
// literal level of the planning graph.
//
// Relations are per-level: parents are action-nodes at the previous action
// level that produce this literal, children are action-nodes at the next
// action level that consume it, and mutex holds sibling literal-nodes of the
// same level marked mutually exclusive.
type LiteralNode struct {
	lit      strips.Literal
	parents  map[*ActionNode]struct{}
	children map[*ActionNode]struct{}
	mutex    map[*LiteralNode]struct{}
}

// newLiteralNode creates an unlinked literal-node for lit.
func newLiteralNode(lit strips.Literal) *LiteralNode {
	return &LiteralNode{
		lit:      lit,
		parents:  make(map[*ActionNode]struct{}),
		children: make(map[*ActionNode]struct{}),
		mutex:    make(map[*LiteralNode]struct{}),
	}
}

// Literal returns the node's identity literal.
func (n *LiteralNode) Literal() strips.Literal { return n.lit }

// IsMutex reports whether other is in this node's mutex set.
// Complexity: O(1).
func (n *LiteralNode) IsMutex(other *LiteralNode) bool {
	_, ok := n.mutex[other]

	return ok
}

// Mutex returns the node's mutex siblings, sorted by literal for
// deterministic inspection.
func (n *LiteralNode) Mutex() []*LiteralNode {
	out := make([]*LiteralNode, 0, len(n.mutex))
	for m := range n.mutex {
		out = append(out, m)
	}
	sortLiteralNodes(out)

	return out
}

// Parents returns the producing action-nodes at the previous action level.
func (n *LiteralNode) Parents() []*ActionNode {
	out := make([]*ActionNode, 0, len(n.parents))
	for p := range n.parents {
		out = append(out, p)
	}
	sortActionNodes(out)

	return out
}

// Children returns the consuming action-nodes at the next action level.
func (n *LiteralNode) Children() []*ActionNode {
	out := make([]*ActionNode, 0, len(n.children))
	for c := range n.children {
		out = append(out, c)
	}
	sortActionNodes(out)

	return out
}

// ActionKey is the immutable identity of a ground action within the graph:
// name, canonicalized argument list, and the derived persistence flag.
// Two action-nodes are equal iff their keys are equal.
type ActionKey struct {
	// Name is the operator name.
	Name string

	// Args is the bound argument list joined in order.
	Args string

	// Persistent marks a no-op (persistence) action.
	Persistent bool
}

// actionKey derives the identity key for a ground action.
func actionKey(a *strips.Action, persistent bool) ActionKey {
	return ActionKey{
		Name:       a.Name,
		Args:       strings.Join(a.Args, ","),
		Persistent: persistent,
	}
}

// ActionNode represents one enabled ground action within a single action
// level of the planning graph.
//
// preLits and effLits are the literal identities implied by the action's
// preconditions and effects. They are computed once at construction and used
// purely for matching against literal levels; graph linkage always goes
// through the per-level parent/child sets.
type ActionNode struct {
	key        ActionKey
	action     strips.Action
	preLits    map[strips.Literal]struct{}
	effLits    map[strips.Literal]struct{}
	persistent bool
	parents    map[*LiteralNode]struct{}
	children   map[*LiteralNode]struct{}
	mutex      map[*ActionNode]struct{}
}

// newActionNode creates an unlinked action-node for action a, deriving its
// precondition/effect literal sets and the persistence flag (true iff the
// two sets are equal).
// Complexity: O(L) where L = total precondition/effect list length.
func newActionNode(a strips.Action) *ActionNode {
	pre := literalSet(a.PrecondPos, a.PrecondNeg)
	eff := literalSet(a.EffectAdd, a.EffectRem)
	persistent := literalSetsEqual(pre, eff)

	return &ActionNode{
		key:        actionKey(&a, persistent),
		action:     a,
		preLits:    pre,
		effLits:    eff,
		persistent: persistent,
		parents:    make(map[*LiteralNode]struct{}),
		children:   make(map[*LiteralNode]struct{}),
		mutex:      make(map[*ActionNode]struct{}),
	}
}

// literalSet builds the literal identity set for positive symbols pos and
// negative symbols neg.
func literalSet(pos, neg []string) map[strips.Literal]struct{} {
	set := make(map[strips.Literal]struct{}, len(pos)+len(neg))
	for _, sym := range pos {
		set[strips.Pos(sym)] = struct{}{}
	}
	for _, sym := range neg {
		set[strips.Neg(sym)] = struct{}{}
	}

	return set
}

// literalSetsEqual reports set equality of two literal identity sets.
func literalSetsEqual(a, b map[strips.Literal]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for lit := range a {
		if _, ok := b[lit]; !ok {
			return false
		}
	}

	return true
}

// Key returns the node's identity key.
func (n *ActionNode) Key() ActionKey { return n.key }

// Action returns the underlying ground action.
func (n *ActionNode) Action() strips.Action { return n.action }

// Persistent reports whether the node is a no-op (persistence) action.
func (n *ActionNode) Persistent() bool { return n.persistent }

// PreLiterals returns the precondition literal identities, sorted.
func (n *ActionNode) PreLiterals() []strips.Literal { return sortedLiterals(n.preLits) }

// EffectLiterals returns the effect literal identities, sorted.
func (n *ActionNode) EffectLiterals() []strips.Literal { return sortedLiterals(n.effLits) }

// IsMutex reports whether other is in this node's mutex set.
// Complexity: O(1).
func (n *ActionNode) IsMutex(other *ActionNode) bool {
	_, ok := n.mutex[other]

	return ok
}

// Mutex returns the node's mutex siblings, sorted by key for deterministic
// inspection.
func (n *ActionNode) Mutex() []*ActionNode {
	out := make([]*ActionNode, 0, len(n.mutex))
	for m := range n.mutex {
		out = append(out, m)
	}
	sortActionNodes(out)

	return out
}

// Parents returns the precondition literal-nodes at the previous literal level.
func (n *ActionNode) Parents() []*LiteralNode {
	out := make([]*LiteralNode, 0, len(n.parents))
	for p := range n.parents {
		out = append(out, p)
	}
	sortLiteralNodes(out)

	return out
}

// Children returns the effect literal-nodes at the next literal level.
func (n *ActionNode) Children() []*LiteralNode {
	out := make([]*LiteralNode, 0, len(n.children))
	for c := range n.children {
		out = append(out, c)
	}
	sortLiteralNodes(out)

	return out
}

// hasChild reports whether ln is among the node's effect children.
func (n *ActionNode) hasChild(ln *LiteralNode) bool {
	_, ok := n.children[ln]

	return ok
}

// MutexifyLiterals adds two sibling literal-nodes to each other's mutex set.
// Marking is symmetric and idempotent. The nodes must belong to the same
// literal level; cross-kind marking is unrepresentable by construction.
func MutexifyLiterals(a, b *LiteralNode) {
	a.mutex[b] = struct{}{}
	b.mutex[a] = struct{}{}
}

// MutexifyActions adds two sibling action-nodes to each other's mutex set.
// Marking is symmetric and idempotent.
func MutexifyActions(a, b *ActionNode) {
	a.mutex[b] = struct{}{}
	b.mutex[a] = struct{}{}
}

// sortedLiterals copies a literal set into a sorted slice.
func sortedLiterals(set map[strips.Literal]struct{}) []strips.Literal {
	out := make([]strips.Literal, 0, len(set))
	for lit := range set {
		out = append(out, lit)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out
}

// sortLiteralNodes orders nodes by their literal rendering.
func sortLiteralNodes(nodes []*LiteralNode) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].lit.String() < nodes[j].lit.String() })
}

// sortActionNodes orders nodes by name, args, then persistence.
func sortActionNodes(nodes []*ActionNode) {
	sort.Slice(nodes, func(i, j int) bool {
		ki, kj := nodes[i].key, nodes[j].key
		if ki.Name != kj.Name {
			return ki.Name < kj.Name
		}
		if ki.Args != kj.Args {
			return ki.Args < kj.Args
		}

		return !ki.Persistent && kj.Persistent
	})
}
