// Package planning builds leveled, mutex-annotated planning graphs over
// STRIPS problems and extracts the level-sum distance heuristic from them.
//
// Overview:
//
//   - A planning graph is a bipartite, level-by-level structure alternating
//     literal levels and action levels: literal level 0 holds the queried
//     state, action level k holds every ground action (including synthesized
//     no-ops) whose preconditions all appear in literal level k, and literal
//     level k+1 is the union of action level k's effects.
//   - Construction stops at the level-off fixed point: two consecutive
//     literal levels containing the same literals. Termination is guaranteed
//     because literal levels grow monotonically within a finite vocabulary,
//     so at most 2·F+1 literal levels exist for F fluents.
//   - Each level is annotated with a symmetric sibling mutex relation.
//     Action pairs are mutex under any of four rules: serial-exclusion
//     (serial mode, both actions non-persistent), inconsistent effects (one
//     adds what the other removes), interference (one's effect negates a
//     precondition of the other), competing needs (mutex preconditions at
//     the previous literal level). Literal pairs are mutex under negation
//     (same symbol, opposite polarity) or inconsistent support (producers
//     pairwise in conflict, with a single producer achieving both literals
//     overriding to non-mutex).
//   - The level-sum heuristic is the sum, over the goal literals, of each
//     literal's first level of appearance: an admissible estimate when
//     goals are treated as independent.
//
// Lifecycle:
//
//   - One Graph per queried state. NewGraph validates the problem, decodes
//     the state, and levels the graph fully before returning; afterwards the
//     graph is read-only. Build is guarded so a second build attempt on the
//     same instance fails with ErrGraphBuilt instead of resetting levels.
//   - A search driver constructs and discards many graphs per session.
//     Nothing is shared or memoized across instances.
//
// Complexity:
//
//	– Time:  O(L·A²·P) where L = levels, A = enabled actions per level,
//	   P = max precondition/effect list size; the action-mutex pass
//	   dominates with its pairwise scan.
//	– Space: O(L·(A+V)) for V vocabulary literals; each level owns its
//	   node instances, so equal literals at different levels are distinct
//	   objects carrying their own mutex sets.
//
// Options:
//
//	– WithSerial: serial (single non-persistent action per step) vs.
//	   parallel semantics. Default is serial.
//
// Errors (sentinel):
//
//	– ErrNilProblem       if NewGraph receives a nil problem.
//	– ErrGraphBuilt       if Build is invoked on an already-built graph.
//	– ErrGoalUnreachable  if a goal literal never appears in any level.
//	– ErrLevelRange       if a level accessor receives an out-of-range index.
//	– strips.ErrStateLength / strips.ErrStateSymbol and the strips
//	   validation errors surface unchanged from NewGraph, before any
//	   graph work begins.
//
// Example usage:
//
//	p := &strips.Problem{
//	    Fluents: []string{"At(A)", "At(B)"},
//	    Actions: []strips.Action{{
//	        Name:       "Move",
//	        Args:       []string{"A", "B"},
//	        PrecondPos: []string{"At(A)"},
//	        EffectAdd:  []string{"At(B)"},
//	        EffectRem:  []string{"At(A)"},
//	    }},
//	    Goal: []string{"At(B)"},
//	}
//	g, err := planning.NewGraph(p, "TF")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h, err := g.LevelSum()
//	if err != nil {
//	    log.Fatal(err) // goal unreachable within the leveled graph
//	}
//	fmt.Println(h) // 1
//
// Thread safety:
//
//   - Construction is single-threaded and synchronous; no partial results
//     are observable. A built Graph is safe for concurrent reads, since
//     every accessor copies out of the internal sets.
//
// See also:
//
//   - strips.Problem: the ground problem model and state codec consumed here.
package planning
