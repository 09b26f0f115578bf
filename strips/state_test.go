package strips_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/graphplan/strips"
)

var codecFluents = []string{"At(A)", "At(B)", "Loaded"}

// TestDecodeState_Basic splits the vocabulary into ordered pos/neg lists.
func TestDecodeState_Basic(t *testing.T) {
	st, err := strips.DecodeState("TFT", codecFluents)
	if err != nil {
		t.Fatalf("DecodeState error: %v", err)
	}

	wantPos := []string{"At(A)", "Loaded"}
	wantNeg := []string{"At(B)"}
	if !reflect.DeepEqual(st.Pos, wantPos) {
		t.Errorf("Pos = %v; want %v", st.Pos, wantPos)
	}
	if !reflect.DeepEqual(st.Neg, wantNeg) {
		t.Errorf("Neg = %v; want %v", st.Neg, wantNeg)
	}
}

// TestDecodeState_Errors rejects malformed encodings without partial output.
func TestDecodeState_Errors(t *testing.T) {
	cases := []struct {
		name    string
		encoded string
		err     error
	}{
		{"TooShort", "TF", strips.ErrStateLength},
		{"TooLong", "TFTF", strips.ErrStateLength},
		{"BadCharacter", "TXF", strips.ErrStateSymbol},
		{"Lowercase", "tft", strips.ErrStateSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, err := strips.DecodeState(tc.encoded, codecFluents)
			if !errors.Is(err, tc.err) {
				t.Errorf("DecodeState(%q) error = %v; want %v", tc.encoded, err, tc.err)
			}
			if len(st.Pos) != 0 || len(st.Neg) != 0 {
				t.Errorf("DecodeState(%q) returned partial state %+v", tc.encoded, st)
			}
		})
	}
}

// TestEncodeState_RoundTrip checks decode→encode identity over all
// polarity combinations of a two-fluent vocabulary.
func TestEncodeState_RoundTrip(t *testing.T) {
	fluents := []string{"P", "Q"}
	for _, encoded := range []string{"TT", "TF", "FT", "FF"} {
		st, err := strips.DecodeState(encoded, fluents)
		if err != nil {
			t.Fatalf("DecodeState(%q) error: %v", encoded, err)
		}
		got, err := strips.EncodeState(st, fluents)
		if err != nil {
			t.Fatalf("EncodeState error: %v", err)
		}
		if got != encoded {
			t.Errorf("round trip of %q = %q", encoded, got)
		}
	}
}

// TestEncodeState_UnknownFluent rejects positive fluents outside the vocabulary.
func TestEncodeState_UnknownFluent(t *testing.T) {
	_, err := strips.EncodeState(strips.State{Pos: []string{"Z"}}, codecFluents)
	if !errors.Is(err, strips.ErrUnknownFluent) {
		t.Errorf("EncodeState error = %v; want ErrUnknownFluent", err)
	}
}
