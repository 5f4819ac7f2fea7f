package ast

import (
	"testing"

	"github.com/coregx/rxgen/charclass"
)

func TestNewConcat_PanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected NewConcat to panic with no children")
		}
	}()
	NewConcat()
}

func TestNewUnion_PanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected NewUnion to panic with no children")
		}
	}()
	NewUnion()
}

func TestNewIntersection_PanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected NewIntersection to panic with no children")
		}
	}()
	NewIntersection()
}

func TestNode_AccessorsReturnFalseForWrongKind(t *testing.T) {
	n := NewLiteral("x", false)

	if _, ok := n.CharClass(); ok {
		t.Error("CharClass() ok should be false for a Literal node")
	}
	if _, ok := n.Children(); ok {
		t.Error("Children() ok should be false for a Literal node")
	}
	if _, _, _, _, ok := n.Quantifier(); ok {
		t.Error("Quantifier() ok should be false for a Literal node")
	}
	if _, _, ok := n.SizedChild(); ok {
		t.Error("SizedChild() ok should be false for a Literal node")
	}

	class := NewCharClassNode(charclass.NewRange('a', 'z'))
	if _, _, ok := class.Literal(); ok {
		t.Error("Literal() ok should be false for a CharClass node")
	}
}

func TestKind_String(t *testing.T) {
	cases := []struct {
		k    Kind
		want string
	}{
		{KindLiteral, "Literal"},
		{KindCharClass, "CharClass"},
		{KindConcat, "Concat"},
		{KindUnion, "Union"},
		{KindIntersection, "Intersection"},
		{KindQuantified, "Quantified"},
		{KindSized, "Sized"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", c.k, got, c.want)
		}
	}
}

func TestQuantifierType_String(t *testing.T) {
	cases := []struct {
		q    QuantifierType
		want string
	}{
		{Greedy, "Greedy"},
		{Reluctant, "Reluctant"},
		{Possessive, "Possessive"},
	}
	for _, c := range cases {
		if got := c.q.String(); got != c.want {
			t.Errorf("QuantifierType(%d).String() = %q, want %q", c.q, got, c.want)
		}
	}
}
