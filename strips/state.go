// This file declares State and the textual state codec.
package strips

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the state codec.
var (
	// ErrStateLength indicates an encoded state whose length differs from
	// the vocabulary size.
	ErrStateLength = errors.New("strips: encoded state length does not match vocabulary")

	// ErrStateSymbol indicates an encoded state containing a character
	// other than 'T' or 'F'.
	ErrStateSymbol = errors.New("strips: encoded state character must be 'T' or 'F'")
)

// State represents a world state as disjoint positive and negative fluent
// lists, both ordered consistently with the vocabulary they were decoded
// against.
type State struct {
	// Pos lists the fluents that hold true.
	Pos []string

	// Neg lists the fluents that hold false.
	Neg []string
}

// DecodeState translates an encoded state string into a State.
//
// The string carries one character per fluent in vocabulary order:
// 'T' places the fluent in Pos, 'F' in Neg.
// Returns ErrStateLength or ErrStateSymbol (wrapped with position detail)
// on malformed input; no partial result is returned.
// Complexity: O(F) where F = |fluents|.
func DecodeState(encoded string, fluents []string) (State, error) {
	if len(encoded) != len(fluents) {
		return State{}, fmt.Errorf("%w: got %d characters for %d fluents",
			ErrStateLength, len(encoded), len(fluents))
	}

	st := State{
		Pos: make([]string, 0, len(fluents)),
		Neg: make([]string, 0, len(fluents)),
	}
	for i, f := range fluents {
		switch encoded[i] {
		case 'T':
			st.Pos = append(st.Pos, f)
		case 'F':
			st.Neg = append(st.Neg, f)
		default:
			return State{}, fmt.Errorf("%w: %q at position %d", ErrStateSymbol, encoded[i], i)
		}
	}

	return st, nil
}

// EncodeState translates a State back into its string representation
// against the given vocabulary.
// A fluent absent from Pos is encoded 'F'; a Pos fluent outside the
// vocabulary yields ErrUnknownFluent.
// Complexity: O(F + |s.Pos|).
func EncodeState(s State, fluents []string) (string, error) {
	index := make(map[string]int, len(fluents))
	for i, f := range fluents {
		index[f] = i
	}

	chars := []byte(strings.Repeat("F", len(fluents)))
	for _, f := range s.Pos {
		i, ok := index[f]
		if !ok {
			return "", fmt.Errorf("%w: %q in state", ErrUnknownFluent, f)
		}
		chars[i] = 'T'
	}

	return string(chars), nil
}
