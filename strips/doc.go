// Package strips defines the classical-planning problem model consumed by
// the planning-graph core: ground literals, ground actions, the fixed
// fluent vocabulary, the goal set, and the textual state codec.
//
// Overview:
//
//   - A Literal is a ground atomic proposition paired with a truth polarity.
//     Literal is a small value type and serves as the identity key for every
//     literal-level set in the planning graph: two literals are equal iff
//     their symbol and polarity match.
//   - An Action is a fully instantiated STRIPS operator described by four
//     symbol lists: positive preconditions, negative preconditions,
//     positive effects (add list) and negative effects (remove list).
//   - A Problem bundles the fixed-order fluent vocabulary, the fixed-order
//     ground action list and the goal fluents. The vocabulary order defines
//     the meaning of encoded state strings.
//   - A State splits the vocabulary into disjoint positive and negative
//     fluent lists; DecodeState and EncodeState translate between a State
//     and the "TFTF..." string representation, one character per fluent in
//     vocabulary order.
//
// Errors (sentinel):
//
//	– ErrStateLength     if an encoded state's length differs from the vocabulary size.
//	– ErrStateSymbol     if an encoded state contains a character other than 'T' or 'F'.
//	– ErrUnknownFluent   if an action, goal, or state references a symbol outside the vocabulary.
//	– ErrNoFluents       if a problem declares an empty vocabulary.
//	– ErrDuplicateFluent if the vocabulary lists the same symbol twice.
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
//	st, err := strips.DecodeState("TF", p.Fluents)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(st.Pos) // [At(A)]
package strips
