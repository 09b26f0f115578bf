package planning_test

import (
	"fmt"

	"github.com/katalvlaran/graphplan/planning"
	"github.com/katalvlaran/graphplan/strips"
)

// ExampleNewGraph builds the two-location Move fixture and extracts the
// level-sum heuristic: the goal +At(B) first appears at literal level 1.
func ExampleNewGraph() {
	p := &strips.Problem{
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

	g, err := planning.NewGraph(p, "TF")
	if err != nil {
		fmt.Println("build failed:", err)

		return
	}
	h, err := g.LevelSum()
	if err != nil {
		fmt.Println("goal unreachable:", err)

		return
	}
	fmt.Println("level-sum:", h)
	// Output:
	// level-sum: 1
}

// ExampleGraph_LiteralLevel inspects the seeded state level of the graph.
func ExampleGraph_LiteralLevel() {
	p := &strips.Problem{
		Fluents: []string{"At(A)", "At(B)"},
		Goal:    []string{"At(A)"},
	}
	g, err := planning.NewGraph(p, "TF")
	if err != nil {
		fmt.Println("build failed:", err)

		return
	}

	nodes, err := g.LiteralLevel(0)
	if err != nil {
		fmt.Println("no such level:", err)

		return
	}
	for _, n := range nodes {
		fmt.Println(n.Literal())
	}
	// Output:
	// At(A)
	// ~At(B)
}

// ExampleNoopActions shows the persistence pair synthesized per fluent.
func ExampleNoopActions() {
	for _, a := range planning.NoopActions([]string{"At(A)"}) {
		fmt.Println(a.Signature())
	}
	// Output:
	// Noop_pos(At(A))
	// Noop_neg(At(A))
}
