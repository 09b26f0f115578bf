package planning_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/graphplan/planning"
	"github.com/katalvlaran/graphplan/strips"
)

// moveProblem is the canonical two-location fixture: one Move action from
// A to B, initial state At(A), goal At(B).
func moveProblem() *strips.Problem {
	return &strips.Problem{
		Fluents: []string{"At(A)", "At(B)"},
		Actions: []strips.Action{{
			Name:       "Move",
			Args:       []string{"A", "B"},
			PrecondPos: []string{"At(A)"},
			EffectAdd:  []string{"At(B)"},
			EffectRem:  []string{"At(A)"},
		}},
		Goal: []string{"At(B)"},
	}
}

// mustGraph builds a graph or fails the test.
func mustGraph(t *testing.T, p *strips.Problem, state string, opts ...planning.Option) *planning.Graph {
	t.Helper()
	g, err := planning.NewGraph(p, state, opts...)
	if err != nil {
		t.Fatalf("NewGraph error: %v", err)
	}

	return g
}

// literalAt returns the node for lit in literal level k, or nil if absent.
func literalAt(t *testing.T, g *planning.Graph, k int, lit strips.Literal) *planning.LiteralNode {
	t.Helper()
	nodes, err := g.LiteralLevel(k)
	if err != nil {
		t.Fatalf("LiteralLevel(%d) error: %v", k, err)
	}
	for _, n := range nodes {
		if n.Literal() == lit {
			return n
		}
	}

	return nil
}

// requireLiteralAt returns the node for lit in literal level k, failing the
// test if it is absent.
func requireLiteralAt(t *testing.T, g *planning.Graph, k int, lit strips.Literal) *planning.LiteralNode {
	t.Helper()
	n := literalAt(t, g, k, lit)
	if n == nil {
		t.Fatalf("literal %s absent from literal level %d", lit, k)
	}

	return n
}

// actionAt returns the node for the named action in action level k, or nil
// if absent.
func actionAt(t *testing.T, g *planning.Graph, k int, name string, args ...string) *planning.ActionNode {
	t.Helper()
	nodes, err := g.ActionLevel(k)
	if err != nil {
		t.Fatalf("ActionLevel(%d) error: %v", k, err)
	}
	for _, n := range nodes {
		a := n.Action()
		if a.Name == name && (len(args) == 0 && len(a.Args) == 0 || reflect.DeepEqual(a.Args, args)) {
			return n
		}
	}

	return nil
}

// requireActionAt returns the named action-node in level k, failing the
// test if it is absent.
func requireActionAt(t *testing.T, g *planning.Graph, k int, name string, args ...string) *planning.ActionNode {
	t.Helper()
	n := actionAt(t, g, k, name, args...)
	if n == nil {
		t.Fatalf("action %s%v absent from action level %d", name, args, k)
	}

	return n
}
