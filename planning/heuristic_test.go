package planning_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/graphplan/planning"
	"github.com/katalvlaran/graphplan/strips"
)

// TestLevelSum_MoveScenario: the goal +At(B) first appears at literal
// level 1, so the estimate is 1.
func TestLevelSum_MoveScenario(t *testing.T) {
	g := mustGraph(t, moveProblem(), "TF")

	h, err := g.LevelSum()
	if err != nil {
		t.Fatalf("LevelSum error: %v", err)
	}
	if h != 1 {
		t.Errorf("LevelSum = %d; want 1", h)
	}
}

// TestLevelSum_GoalAtLevelZero: a goal already satisfied by the queried
// state costs 0.
func TestLevelSum_GoalAtLevelZero(t *testing.T) {
	g := mustGraph(t, moveProblem(), "TT")

	h, err := g.LevelSum()
	if err != nil {
		t.Fatalf("LevelSum error: %v", err)
	}
	if h != 0 {
		t.Errorf("LevelSum = %d; want 0 for goal satisfied at level 0", h)
	}
}

// TestLevelSum_MixedGoals: with one goal at level 0 and one at level 1 the
// sum is strictly positive, so 0 holds iff every goal is initial.
func TestLevelSum_MixedGoals(t *testing.T) {
	p := &strips.Problem{
		Fluents: []string{"P", "Q"},
		Actions: []strips.Action{{
			Name:       "MakeQ",
			PrecondPos: []string{"P"},
			EffectAdd:  []string{"Q"},
		}},
		Goal: []string{"P", "Q"},
	}
	g := mustGraph(t, p, "TF")

	h, err := g.LevelSum()
	if err != nil {
		t.Fatalf("LevelSum error: %v", err)
	}
	if h != 1 {
		t.Errorf("LevelSum = %d; want 1 (P at level 0, Q at level 1)", h)
	}
}

// TestLevelSum_Unreachable: a goal literal absent from the leveled graph
// yields ErrGoalUnreachable, never a silent numeric estimate.
func TestLevelSum_Unreachable(t *testing.T) {
	p := &strips.Problem{
		Fluents: []string{"P", "Q"},
		Goal:    []string{"Q"}, // no action ever adds Q
	}
	g := mustGraph(t, p, "TF")

	h, err := g.LevelSum()
	if !errors.Is(err, planning.ErrGoalUnreachable) {
		t.Fatalf("LevelSum error = %v; want ErrGoalUnreachable", err)
	}
	if h != 0 {
		t.Errorf("LevelSum returned %d alongside the unreachable error; want 0", h)
	}
}

// TestLevelCost probes first-appearance indices and the missing case.
func TestLevelCost(t *testing.T) {
	g := mustGraph(t, moveProblem(), "TF")

	cases := []struct {
		lit   strips.Literal
		want  int
		found bool
	}{
		{strips.Pos("At(A)"), 0, true},
		{strips.Neg("At(B)"), 0, true},
		{strips.Pos("At(B)"), 1, true},
		{strips.Neg("At(A)"), 1, true},
		{strips.Pos("Elsewhere"), 0, false},
	}
	for _, tc := range cases {
		got, found := g.LevelCost(tc.lit)
		if found != tc.found || got != tc.want {
			t.Errorf("LevelCost(%s) = (%d, %v); want (%d, %v)",
				tc.lit, got, found, tc.want, tc.found)
		}
	}
}
