// Package planning defines core types and configuration options
// for leveled planning-graph construction.
//
// This file declares Options, Option, sentinel errors, and DefaultOptions.
package planning

import "errors"

// Sentinel errors returned by the planning-graph implementation.
var (
	// ErrNilProblem indicates that a nil *strips.Problem was passed to NewGraph.
	ErrNilProblem = errors.New("planning: problem is nil")

	// ErrGraphBuilt indicates a second build attempt on an already-built
	// graph; construct a new Graph for each queried state instead.
	ErrGraphBuilt = errors.New("planning: graph already built")

	// ErrGoalUnreachable indicates a goal literal that never appears in any
	// literal level of the leveled graph. Callers typically escalate this to
	// an infinite heuristic cost.
	ErrGoalUnreachable = errors.New("planning: goal literal unreachable within leveled graph")

	// ErrLevelRange indicates a level index outside the built graph.
	ErrLevelRange = errors.New("planning: level index out of range")
)

// Options configures planning-graph construction.
//
// Serial – build a serial planning graph: at most one non-persistent action
// may execute per step, enforced by the serial-exclusion mutex rule.
// Default is true, matching the classical serial formulation.
type Options struct {
	Serial bool // serial (single-action-per-step) semantics
}

// Option represents a functional option for configuring graph construction.
type Option func(*Options)

// WithSerial sets serial planning semantics. Pass false to build a parallel
// planning graph in which distinct non-persistent actions are not mutex
// merely for co-occurring at a level.
func WithSerial(serial bool) Option {
	return func(o *Options) { o.Serial = serial }
}

// DefaultOptions returns an Options struct initialized with the defaults
// used by NewGraph before functional options are applied.
//
// Defaults:
//   - Serial: true (serial planning graph).
func DefaultOptions() Options {
	return Options{Serial: true}
}
