// Package graphplan is your in-memory toolkit for planning-graph reasoning
// over STRIPS classical-planning problems — from the ground problem model
// to mutex analysis and admissible distance heuristics.
//
// 🚀 What is graphplan?
//
//	A modern, pure-Go library that brings together:
//		• STRIPS primitives: ground literals, actions, problems & the T/F state codec
//		• No-op synthesis: persistence pseudo-actions for every fluent
//		• Leveled construction: alternating literal/action levels to the level-off fixed point
//		• Mutex reasoning: four action rules & two literal rules per level
//		• Heuristics: the level-sum estimate over goal literals
//
// ✨ Why choose graphplan?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – build-once graphs, sentinel errors, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Inspectable – level contents and mutex sets exposed for validation
//
// Under the hood, everything is organized under two subpackages:
//
//	planning/ — planning-graph nodes, leveled builder, mutex engine & level-sum heuristic
//	strips/   — ground Literal, Action, Problem types & the textual state codec
//
// Quick ASCII example (one Move action, goal At(B)):
//
//	S0: +At(A) -At(B)   →   A0: Move, no-ops   →   S1: +At(B) -At(A) ...
//
// The goal literal +At(B) first appears in literal level 1, so the
// level-sum heuristic for this state is 1.
//
// Next up: level-max and set-level heuristics, plan extraction and beyond.
//
//	go get github.com/katalvlaran/graphplan
package graphplan
