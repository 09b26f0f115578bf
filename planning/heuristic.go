// This file implements the level-sum heuristic extractor.
package planning

import (
	"fmt"

	"github.com/katalvlaran/graphplan/strips"
)

// LevelCost returns the index of the first literal level containing lit,
// scanning levels in increasing order. The boolean is false when lit never
// appears anywhere in the leveled graph.
// Complexity: O(L) for L literal levels.
func (g *Graph) LevelCost(lit strips.Literal) (int, bool) {
	for i, level := range g.literalLevels {
		if _, ok := level[lit]; ok {
			return i, true
		}
	}

	return 0, false
}

// LevelSum returns the level-sum heuristic for the goal set bound at
// construction time: the sum, over all goal literals, of the index of the
// first literal level in which each appears. The estimate is admissible
// under the assumption that goals are achievable independently, and is 0
// exactly when every goal literal already holds in the queried state.
//
// A goal literal absent from every level makes the goal unreachable within
// the leveled graph; LevelSum then returns ErrGoalUnreachable wrapped with
// the first such literal (in sorted order) rather than a numeric estimate.
// Callers typically escalate that to an infinite cost.
// Complexity: O(G·L) for G goal literals and L literal levels.
func (g *Graph) LevelSum() (int, error) {
	sum := 0
	for _, goal := range sortedLiterals(g.goal) {
		cost, ok := g.LevelCost(goal)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrGoalUnreachable, goal)
		}
		sum += cost
	}

	return sum, nil
}
