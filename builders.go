package rxgen

import (
	"github.com/coregx/rxgen/ast"
	"github.com/coregx/rxgen/charclass"
)

// Lit builds a Regex matching text exactly, or case-insensitively when ci
// is true.
func Lit(text string, ci bool) *Regex {
	return wrap(ast.NewLiteral(text, ci))
}

// Class builds a Regex matching exactly one code unit from class.
func Class(class *charclass.CharClass) *Regex {
	return wrap(ast.NewCharClassNode(class))
}

// Concat builds a Regex matching its operands in sequence.
func Concat(children ...*Regex) *Regex {
	return wrap(ast.NewConcat(nodes(children)...))
}

// Union builds a Regex matching any one of its operands.
func Union(children ...*Regex) *Regex {
	return wrap(ast.NewUnion(nodes(children)...))
}

// Intersect builds a Regex matching only strings every operand accepts.
func Intersect(children ...*Regex) *Regex {
	return wrap(ast.NewIntersection(nodes(children)...))
}

// Repeat builds a Regex repeating child between min and max times
// inclusive (max == ast.Infinite for unbounded). Returns an error if min
// is negative, max is negative and not ast.Infinite, or min > max.
func Repeat(child *Regex, min, max int, qtype ast.QuantifierType) (*Regex, error) {
	n, err := child.node.Quantify(min, max, qtype)
	if err != nil {
		return nil, err
	}
	return wrap(n), nil
}

// MustRepeat is Repeat but panics on error.
func MustRepeat(child *Regex, min, max int, qtype ast.QuantifierType) *Regex {
	re, err := Repeat(child, min, max, qtype)
	if err != nil {
		panic("rxgen: Repeat: " + err.Error())
	}
	return re
}

// Sized builds a Regex imposing an upper bound of size characters on
// generated output. Returns an error if size < child's minimum length.
func Sized(child *Regex, size int) (*Regex, error) {
	n, err := child.node.Sized(size)
	if err != nil {
		return nil, err
	}
	return wrap(n), nil
}

// MustSized is Sized but panics on error.
func MustSized(child *Regex, size int) *Regex {
	re, err := Sized(child, size)
	if err != nil {
		panic("rxgen: Sized: " + err.Error())
	}
	return re
}

func nodes(children []*Regex) []*ast.Node {
	out := make([]*ast.Node, len(children))
	for i, c := range children {
		out[i] = c.node
	}
	return out
}
