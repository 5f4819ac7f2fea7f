package ast

import "testing"

func TestUnion_LiteralAutomatonBuiltAboveThreshold(t *testing.T) {
	children := make([]*Node, literalAutomatonThreshold)
	for i := range children {
		children[i] = NewLiteral(string(rune('a'+i)), false)
	}
	n := NewUnion(children...)
	if n.literalAutomaton == nil {
		t.Fatal("expected a literal automaton for a union at the threshold")
	}
}

func TestUnion_LiteralAutomatonMatchesExactly(t *testing.T) {
	children := make([]*Node, literalAutomatonThreshold+4)
	for i := range children {
		children[i] = NewLiteral(string(rune('a'+i))+"x", false)
	}
	n := NewUnion(children...)

	if !n.Test("bx") {
		t.Error("expected automaton-backed union to match one of its literals")
	}
	if n.Test("b") {
		t.Error("expected no match on a literal's strict prefix")
	}
	if n.Test("bxy") {
		t.Error("expected no match on a superstring of a literal")
	}
}

func TestUnion_BelowThresholdSkipsAutomaton(t *testing.T) {
	n := NewUnion(NewLiteral("cat", false), NewLiteral("dog", false))
	if n.literalAutomaton != nil {
		t.Error("expected no automaton below the threshold")
	}
	if !n.Test("cat") {
		t.Error("expected plain linear scan to still match")
	}
}

func TestUnion_CaseInsensitiveLiteralSkipsAutomaton(t *testing.T) {
	children := make([]*Node, literalAutomatonThreshold)
	for i := range children {
		children[i] = NewLiteral(string(rune('a'+i)), i == 0)
	}
	n := NewUnion(children...)
	if n.literalAutomaton != nil {
		t.Error("expected a case-insensitive literal to disqualify the automaton fast path")
	}
}
