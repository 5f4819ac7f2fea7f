package ast

import "github.com/coregx/ahocorasick"

// literalAutomatonThreshold is the child count at or above which a Union of
// literal alternatives gets a precomputed Aho-Corasick automaton (mirrors
// the teacher's meta/compile.go literal-prefilter threshold: below it,
// the linear scan in testUnion is already cheaper than the multi-pattern
// machinery).
const literalAutomatonThreshold = 16

// unionLiteralAutomaton precomputes a multi-pattern automaton for a
// Union entirely composed of case-sensitive Literal children, letting
// Test run in time proportional to the input length rather than to the
// number of alternatives — the same trade the teacher's compiled
// prefilter makes for large literal sets. Returns nil when the union
// doesn't qualify (mixed node kinds, any case-insensitive literal, or
// too few children to be worth it), in which case testUnion falls back
// to the plain per-child scan.
func unionLiteralAutomaton(children []*Node) *ahocorasick.Automaton {
	if len(children) < literalAutomatonThreshold {
		return nil
	}

	b := ahocorasick.NewBuilder()
	for _, c := range children {
		text, caseInsensitive, ok := c.Literal()
		if !ok || caseInsensitive {
			return nil
		}
		b.AddPattern([]byte(text))
	}

	automaton, err := b.Build()
	if err != nil {
		return nil
	}
	return automaton
}

// matchesAnyLiteralExact reports whether s exactly equals one of the
// patterns compiled into automaton. Only a match starting at position 0
// and ending at len(s) counts: an alternation must match the whole
// string, not merely contain one of its alternatives as a substring.
func matchesAnyLiteralExact(automaton *ahocorasick.Automaton, s []byte) bool {
	for at := 0; ; at++ {
		m := automaton.Find(s, at)
		if m == nil {
			return false
		}
		if m.Start == 0 && m.End == len(s) {
			return true
		}
		at = m.Start
	}
}
