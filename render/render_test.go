package render_test

import (
	"testing"

	"github.com/coregx/rxgen/ast"
	"github.com/coregx/rxgen/charclass"
	"github.com/coregx/rxgen/render"
)

func TestString_Literal(t *testing.T) {
	if got := render.String(ast.NewLiteral("cat", false)); got != "cat" {
		t.Errorf("String() = %q, want %q", got, "cat")
	}
}

func TestString_LiteralCaseInsensitive(t *testing.T) {
	if got := render.String(ast.NewLiteral("cat", true)); got != "(?i:cat)" {
		t.Errorf("String() = %q, want %q", got, "(?i:cat)")
	}
}

func TestString_LiteralEscapesMetacharacters(t *testing.T) {
	got := render.String(ast.NewLiteral("a.b*c", false))
	if got != `a\.b\*c` {
		t.Errorf("String() = %q, want %q", got, `a\.b\*c`)
	}
}

func TestString_CharClassRange(t *testing.T) {
	n := ast.NewCharClassNode(charclass.NewRange('a', 'z'))
	if got := render.String(n); got != "[a-z]" {
		t.Errorf("String() = %q, want %q", got, "[a-z]")
	}
}

func TestString_CharClassSingletonRange(t *testing.T) {
	n := ast.NewCharClassNode(charclass.NewRange('a', 'a'))
	if got := render.String(n); got != "a" {
		t.Errorf("String() = %q, want %q", got, "a")
	}
}

func TestString_CharClassNegated(t *testing.T) {
	n := ast.NewCharClassNode(charclass.Negate(charclass.NewRange('a', 'z')))
	if got := render.String(n); got != "[^a-z]" {
		t.Errorf("String() = %q, want %q", got, "[^a-z]")
	}
}

func TestString_Union(t *testing.T) {
	n := ast.NewUnion(ast.NewLiteral("cat", false), ast.NewLiteral("dog", false))
	if got := render.String(n); got != "(cat|dog)" {
		t.Errorf("String() = %q, want %q", got, "(cat|dog)")
	}
}

func TestString_Concat(t *testing.T) {
	n := ast.NewConcat(ast.NewLiteral("foo", false), ast.NewCharClassNode(charclass.NewRange('0', '9')))
	if got := render.String(n); got != "foo[0-9]" {
		t.Errorf("String() = %q, want %q", got, "foo[0-9]")
	}
}

func TestString_QuantifiedStar(t *testing.T) {
	n := ast.NewCharClassNode(charclass.NewRange('a', 'z')).MustQuantify(0, ast.Infinite, ast.Greedy)
	if got := render.String(n); got != "[a-z]*" {
		t.Errorf("String() = %q, want %q", got, "[a-z]*")
	}
}

func TestString_QuantifiedBoundedReluctant(t *testing.T) {
	n := ast.NewCharClassNode(charclass.NewRange('0', '9')).MustQuantify(2, 4, ast.Reluctant)
	if got := render.String(n); got != "[0-9]{2,4}?" {
		t.Errorf("String() = %q, want %q", got, "[0-9]{2,4}?")
	}
}

func TestString_QuantifiedMultiCharLiteralGroups(t *testing.T) {
	n := ast.NewLiteral("ab", false).MustQuantify(1, ast.Infinite, ast.Greedy)
	if got := render.String(n); got != "(?:ab)+" {
		t.Errorf("String() = %q, want %q", got, "(?:ab)+")
	}
}

func TestString_Sized(t *testing.T) {
	child := ast.NewCharClassNode(charclass.NewRange('a', 'z')).MustQuantify(0, ast.Infinite, ast.Greedy)
	n := child.MustSized(10)
	if got := render.String(n); got != "[a-z]*" {
		t.Errorf("String() = %q, want %q (Sized must not appear in surface syntax)", got, "[a-z]*")
	}
}
