// This file declares Graph, the build-once leveled construction loop, and
// the introspection accessors over level contents.
package planning

import (
	"github.com/katalvlaran/graphplan/strips"
)

// literalLevel is one literal level: node instances keyed by literal identity.
type literalLevel map[strips.Literal]*LiteralNode

// actionLevel is one action level: node instances keyed by action identity.
type actionLevel map[ActionKey]*ActionNode

// Graph is a leveled, mutex-annotated planning graph for one queried state
// of a STRIPS problem.
//
// A Graph is built fully inside NewGraph and queried read-only afterwards;
// it holds no state shared with any other Graph and is meant to be
// discarded after its heuristic has been extracted. Levels alternate
// literal, action, literal, ... with literal level 0 seeded from the
// queried state.
type Graph struct {
	problem       *strips.Problem
	state         strips.State
	serial        bool
	allActions    []strips.Action
	literalLevels []literalLevel
	actionLevels  []actionLevel
	goal          map[strips.Literal]struct{}
}

// NewGraph constructs and fully levels a planning graph for the given
// problem and encoded state, applying any number of functional Options.
//
// The state is decoded and the problem validated before any graph work
// begins; decode and validation errors are returned as-is. The problem's
// ground actions are extended with the synthesized no-ops, literal level 0
// is seeded from the decoded state (no mutex at level 0), and construction
// alternates action and literal levels, annotating mutex relations per
// level, until two consecutive literal levels hold the same literals.
//
// Returns ErrNilProblem, a strips validation or decode error, or the built
// graph. Termination is guaranteed: literal levels grow monotonically
// within a finite vocabulary.
// Complexity: O(L·A²·P) time where L = levels, A = actions per level,
// P = max precondition/effect size; memory O(L·(A+V)) for V literals.
func NewGraph(problem *strips.Problem, encoded string, opts ...Option) (*Graph, error) {
	if problem == nil {
		return nil, ErrNilProblem
	}
	if err := problem.Validate(); err != nil {
		return nil, err
	}
	state, err := strips.DecodeState(encoded, problem.Fluents)
	if err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Candidate actions: the problem's ground actions followed by the
	// synthesized persistence no-ops, preserving fixed order.
	all := make([]strips.Action, 0, len(problem.Actions)+2*len(problem.Fluents))
	all = append(all, problem.Actions...)
	all = append(all, NoopActions(problem.Fluents)...)

	goal := make(map[strips.Literal]struct{}, len(problem.Goal))
	for _, sym := range problem.Goal {
		goal[strips.Pos(sym)] = struct{}{}
	}

	g := &Graph{
		problem:    problem,
		state:      state,
		serial:     o.Serial,
		allActions: all,
		goal:       goal,
	}
	if err = g.Build(); err != nil {
		return nil, err
	}

	return g, nil
}

// Build runs the level-off construction loop. It is invoked once by
// NewGraph; a graph is build-once, so any further call returns
// ErrGraphBuilt without touching the existing levels. Construct a new
// Graph for each new state instead.
func (g *Graph) Build() error {
	if len(g.literalLevels) != 0 || len(g.actionLevels) != 0 {
		return ErrGraphBuilt
	}

	// Literal level 0: the queried state itself. No mutex at level 0.
	s0 := make(literalLevel, len(g.state.Pos)+len(g.state.Neg))
	for _, sym := range g.state.Pos {
		lit := strips.Pos(sym)
		s0[lit] = newLiteralNode(lit)
	}
	for _, sym := range g.state.Neg {
		lit := strips.Neg(sym)
		s0[lit] = newLiteralNode(lit)
	}
	g.literalLevels = append(g.literalLevels, s0)

	// Alternate action/literal levels until two consecutive literal levels
	// contain the same literals.
	level := 0
	for {
		g.addActionLevel(level)
		g.updateActionMutex(g.actionLevels[level])

		level++
		g.addLiteralLevel(level)
		g.updateLiteralMutex(g.literalLevels[level])

		if literalLevelsEqual(g.literalLevels[level], g.literalLevels[level-1]) {
			return nil
		}
	}
}

// addActionLevel produces action level k from literal level k: every
// candidate action whose preconditions all appear in the literal level is
// instantiated as an action-node and linked parent/child with the matching
// literal-nodes.
func (g *Graph) addActionLevel(k int) {
	prev := g.literalLevels[k]
	al := make(actionLevel)
	for i := range g.allActions {
		parents, enabled := enabledParents(&g.allActions[i], prev)
		if !enabled {
			continue
		}
		node := newActionNode(g.allActions[i])
		for _, ln := range parents {
			ln.children[node] = struct{}{}
			node.parents[ln] = struct{}{}
		}
		al[node.key] = node
	}
	g.actionLevels = append(g.actionLevels, al)
}

// enabledParents resolves an action's preconditions against a literal level.
// Positive preconditions are checked first and short-circuit: if any is
// absent the action is rejected before negative preconditions are examined.
// On success it returns the matched literal-nodes, the action's parents.
func enabledParents(a *strips.Action, level literalLevel) ([]*LiteralNode, bool) {
	parents := make([]*LiteralNode, 0, len(a.PrecondPos)+len(a.PrecondNeg))
	for _, sym := range a.PrecondPos {
		ln, ok := level[strips.Pos(sym)]
		if !ok {
			return nil, false
		}
		parents = append(parents, ln)
	}
	for _, sym := range a.PrecondNeg {
		ln, ok := level[strips.Neg(sym)]
		if !ok {
			return nil, false
		}
		parents = append(parents, ln)
	}

	return parents, true
}

// addLiteralLevel produces literal level k as the union of the effect
// literals of action level k-1. When several actions produce the same
// literal, linkage reuses the node instance already in the level set, so
// one literal-node accumulates multiple action parents.
func (g *Graph) addLiteralLevel(k int) {
	sl := make(literalLevel)
	for _, an := range g.actionLevels[k-1] {
		for lit := range an.effLits {
			ln, ok := sl[lit]
			if !ok {
				ln = newLiteralNode(lit)
				sl[lit] = ln
			}
			ln.parents[an] = struct{}{}
			an.children[ln] = struct{}{}
		}
	}
	g.literalLevels = append(g.literalLevels, sl)
}

// literalLevelsEqual reports whether two literal levels contain the same
// literals. Identity only: mutex annotations are deliberately ignored, so
// the graph may level off while the newest level still carries different
// mutex relations than its predecessor.
func literalLevelsEqual(a, b literalLevel) bool {
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

// Serial reports whether the graph was built with serial planning semantics.
func (g *Graph) Serial() bool { return g.serial }

// NumLiteralLevels returns the number of literal levels, including the
// trailing level at which the graph leveled off.
func (g *Graph) NumLiteralLevels() int { return len(g.literalLevels) }

// NumActionLevels returns the number of action levels.
func (g *Graph) NumActionLevels() int { return len(g.actionLevels) }

// LiteralLevel returns the literal-nodes of level k, sorted by literal.
// Returns ErrLevelRange if k is outside the built graph.
func (g *Graph) LiteralLevel(k int) ([]*LiteralNode, error) {
	if k < 0 || k >= len(g.literalLevels) {
		return nil, ErrLevelRange
	}
	nodes := make([]*LiteralNode, 0, len(g.literalLevels[k]))
	for _, ln := range g.literalLevels[k] {
		nodes = append(nodes, ln)
	}
	sortLiteralNodes(nodes)

	return nodes, nil
}

// ActionLevel returns the action-nodes of level k, sorted by identity key.
// Returns ErrLevelRange if k is outside the built graph.
func (g *Graph) ActionLevel(k int) ([]*ActionNode, error) {
	if k < 0 || k >= len(g.actionLevels) {
		return nil, ErrLevelRange
	}
	nodes := make([]*ActionNode, 0, len(g.actionLevels[k]))
	for _, an := range g.actionLevels[k] {
		nodes = append(nodes, an)
	}
	sortActionNodes(nodes)

	return nodes, nil
}

// GoalLiterals returns the goal literal identities bound at construction
// time (always positive polarity), sorted.
func (g *Graph) GoalLiterals() []strips.Literal { return sortedLiterals(g.goal) }
