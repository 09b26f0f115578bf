// This file declares Literal, Action, Problem, sentinel errors,
// and problem validation.
package strips

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the strips problem model.
var (
	// ErrNoFluents indicates a problem with an empty fluent vocabulary.
	ErrNoFluents = errors.New("strips: fluent vocabulary is empty")

	// ErrDuplicateFluent indicates the vocabulary lists a symbol more than once.
	ErrDuplicateFluent = errors.New("strips: duplicate fluent in vocabulary")

	// ErrUnknownFluent indicates a reference to a symbol outside the vocabulary.
	ErrUnknownFluent = errors.New("strips: fluent not in vocabulary")
)

// Literal is a ground atomic proposition together with a truth polarity.
//
// Literal is a comparable value type: symbol and polarity are its sole
// identity, so it can be used directly as a map key for set membership and
// deduplication across planning-graph levels.
type Literal struct {
	// Symbol is the ground proposition, e.g. "At(C1, SFO)".
	Symbol string

	// Positive is true when the proposition is asserted true.
	Positive bool
}

// Pos returns the positive literal for sym.
func Pos(sym string) Literal { return Literal{Symbol: sym, Positive: true} }

// Neg returns the negative literal for sym.
func Neg(sym string) Literal { return Literal{Symbol: sym, Positive: false} }

// Negate returns the literal with the same symbol and opposite polarity.
func (l Literal) Negate() Literal { return Literal{Symbol: l.Symbol, Positive: !l.Positive} }

// String renders the literal as "Sym" or "~Sym".
func (l Literal) String() string {
	if l.Positive {
		return l.Symbol
	}

	return "~" + l.Symbol
}

// Action is a ground STRIPS operator: no free variables remain, every
// precondition and effect is a symbol from the problem vocabulary.
//
// The four lists follow the classical add/remove formulation:
// PrecondPos/PrecondNeg must hold true/false for the action to be enabled,
// EffectAdd symbols become true and EffectRem symbols become false.
type Action struct {
	// Name is the operator name, e.g. "Load".
	Name string

	// Args are the constants the operator was instantiated with.
	Args []string

	// PrecondPos lists symbols that must be true before execution.
	PrecondPos []string

	// PrecondNeg lists symbols that must be false before execution.
	PrecondNeg []string

	// EffectAdd lists symbols asserted true by execution.
	EffectAdd []string

	// EffectRem lists symbols asserted false by execution.
	EffectRem []string
}

// Signature renders the ground action as "Name(arg1, arg2)".
// Complexity: O(len(Args)).
func (a Action) Signature() string {
	if len(a.Args) == 0 {
		return a.Name + "()"
	}

	return a.Name + "(" + strings.Join(a.Args, ", ") + ")"
}

// AddsSymbol reports whether sym is in the action's add list.
func (a Action) AddsSymbol(sym string) bool { return containsSymbol(a.EffectAdd, sym) }

// RemovesSymbol reports whether sym is in the action's remove list.
func (a Action) RemovesSymbol(sym string) bool { return containsSymbol(a.EffectRem, sym) }

// NeedsPos reports whether sym is a positive precondition of the action.
func (a Action) NeedsPos(sym string) bool { return containsSymbol(a.PrecondPos, sym) }

// NeedsNeg reports whether sym is a negative precondition of the action.
func (a Action) NeedsNeg(sym string) bool { return containsSymbol(a.PrecondNeg, sym) }

// containsSymbol reports membership of sym in list.
// Lists are short (per-action preconditions/effects), so a linear scan
// beats building a set per query.
func containsSymbol(list []string, sym string) bool {
	for _, s := range list {
		if s == sym {
			return true
		}
	}

	return false
}

// Problem is a complete ground STRIPS planning problem: the fixed-order
// fluent vocabulary, the fixed-order list of ground actions, and the goal.
//
// Fluent order is significant: encoded state strings assign one 'T'/'F'
// character per fluent in vocabulary order, and no-op synthesis follows the
// same order.
type Problem struct {
	// Fluents is the fixed-order ground proposition vocabulary.
	Fluents []string

	// Actions is the fixed-order list of ground actions.
	Actions []Action

	// Goal lists the fluents that must hold true (positive polarity).
	Goal []string
}

// Validate checks the problem for structural consistency: a non-empty,
// duplicate-free vocabulary, and actions/goal that only reference
// vocabulary symbols.
// Returns ErrNoFluents, ErrDuplicateFluent, or ErrUnknownFluent (wrapped
// with the offending symbol).
// Complexity: O(F + A·L) where F = |Fluents|, A = |Actions|,
// L = max precondition/effect list length.
func (p *Problem) Validate() error {
	if len(p.Fluents) == 0 {
		return ErrNoFluents
	}

	vocab := make(map[string]struct{}, len(p.Fluents))
	for _, f := range p.Fluents {
		if _, dup := vocab[f]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateFluent, f)
		}
		vocab[f] = struct{}{}
	}

	for i := range p.Actions {
		a := &p.Actions[i]
		for _, list := range [][]string{a.PrecondPos, a.PrecondNeg, a.EffectAdd, a.EffectRem} {
			for _, sym := range list {
				if _, ok := vocab[sym]; !ok {
					return fmt.Errorf("%w: %q in action %s", ErrUnknownFluent, sym, a.Signature())
				}
			}
		}
	}

	for _, sym := range p.Goal {
		if _, ok := vocab[sym]; !ok {
			return fmt.Errorf("%w: %q in goal", ErrUnknownFluent, sym)
		}
	}

	return nil
}
