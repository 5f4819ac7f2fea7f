// Package ast implements the regex algebra: a closed family of seven node
// kinds — Literal, CharClassNode, Concat, Union, Intersection, Quantified,
// Sized — with three mutually consistent operations, Generate, Test, and
// Negate, plus length bookkeeping and structural simplification.
//
// Nodes are immutable value objects built once (by a parser, or directly
// by a caller) and shared read-only; a *Node owns no heap state outside
// its children, and the tree is never mutated after construction. This
// mirrors the teacher package's NFA State: a single tagged struct whose
// kind field selects which of its fields are meaningful, with
// variant-specific fields that return a zero value/false for the wrong
// kind (see nfa.State.ByteRange/Split/Epsilon for the pattern this
// follows).
package ast

import (
	"fmt"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/rxgen/charclass"
	"github.com/coregx/rxgen/internal/lenmath"
)

// Kind identifies which of the seven node variants a Node holds.
type Kind uint8

const (
	// KindLiteral matches a fixed string, optionally case-insensitively.
	KindLiteral Kind = iota
	// KindCharClass wraps a charclass.CharClass as a length-1 regex.
	KindCharClass
	// KindConcat matches its children in sequence.
	KindConcat
	// KindUnion matches any one of its children (alternation).
	KindUnion
	// KindIntersection matches only strings every child accepts.
	KindIntersection
	// KindQuantified repeats its child between min and max times (max may
	// be Infinite).
	KindQuantified
	// KindSized imposes a generation-time upper bound on output length.
	KindSized
)

// String returns a human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindCharClass:
		return "CharClass"
	case KindConcat:
		return "Concat"
	case KindUnion:
		return "Union"
	case KindIntersection:
		return "Intersection"
	case KindQuantified:
		return "Quantified"
	case KindSized:
		return "Sized"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// QuantifierType records how a Quantified node renders (spec: "affects
// rendering only, not semantics"). Generation and testing behave
// identically across all three.
type QuantifierType uint8

const (
	// Greedy is the default quantifier type (a*, a+, a{m,n}).
	Greedy QuantifierType = iota
	// Reluctant renders with a trailing '?' (a*?, a+?).
	Reluctant
	// Possessive renders with a trailing '+' (a*+, a++).
	Possessive
)

// String returns a human-readable name for the QuantifierType.
func (t QuantifierType) String() string {
	switch t {
	case Greedy:
		return "Greedy"
	case Reluctant:
		return "Reluctant"
	case Possessive:
		return "Possessive"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// Infinite is the sentinel MaxLength value meaning "no upper bound".
const Infinite = lenmath.Infinite

// Node is a single value in the regex algebra. The zero Node is not
// valid; construct one with NewLiteral, NewCharClassNode, NewConcat,
// NewUnion, NewIntersection, or a Node's own Quantify/Sized method.
type Node struct {
	kind Kind

	// KindLiteral
	text            string
	caseInsensitive bool

	// KindCharClass
	class *charclass.CharClass

	// KindConcat, KindUnion, KindIntersection
	children []*Node

	// KindQuantified, KindSized
	child *Node

	// KindQuantified
	min, max int // max == Infinite for unbounded
	qtype    QuantifierType

	// KindSized
	size int

	// KindUnion: populated only when every child is a case-sensitive
	// Literal and there are enough of them to be worth it (see
	// union_fastmatch.go).
	literalAutomaton *ahocorasick.Automaton

	// Precomputed for every kind (invariant 1: see length.go).
	minLen, maxLen int
}

// Kind returns the variant tag of n.
func (n *Node) Kind() Kind {
	return n.kind
}

// MinLength returns the minimum length of any string in n's language.
func (n *Node) MinLength() int {
	return n.minLen
}

// MaxLength returns the maximum length of any string in n's language, or
// Infinite if unbounded.
func (n *Node) MaxLength() int {
	return n.maxLen
}

// Literal returns the text and case-insensitivity flag for a KindLiteral
// node. ok is false for any other kind.
func (n *Node) Literal() (text string, caseInsensitive bool, ok bool) {
	if n.kind != KindLiteral {
		return "", false, false
	}
	return n.text, n.caseInsensitive, true
}

// CharClass returns the leaf class for a KindCharClass node. ok is false
// for any other kind.
func (n *Node) CharClass() (class *charclass.CharClass, ok bool) {
	if n.kind != KindCharClass {
		return nil, false
	}
	return n.class, true
}

// Children returns the ordered child list for KindConcat, KindUnion, or
// KindIntersection. ok is false for any other kind.
func (n *Node) Children() (children []*Node, ok bool) {
	switch n.kind {
	case KindConcat, KindUnion, KindIntersection:
		return n.children, true
	default:
		return nil, false
	}
}

// Quantifier returns the child and bounds for a KindQuantified node. ok
// is false for any other kind.
func (n *Node) Quantifier() (child *Node, min, max int, qtype QuantifierType, ok bool) {
	if n.kind != KindQuantified {
		return nil, 0, 0, 0, false
	}
	return n.child, n.min, n.max, n.qtype, true
}

// SizedChild returns the child and size for a KindSized node. ok is
// false for any other kind.
func (n *Node) SizedChild() (child *Node, size int, ok bool) {
	if n.kind != KindSized {
		return nil, 0, false
	}
	return n.child, n.size, true
}

// NewLiteral constructs a node matching text exactly (or case-
// insensitively when ci is true).
func NewLiteral(text string, ci bool) *Node {
	n := &Node{kind: KindLiteral, text: text, caseInsensitive: ci}
	n.minLen, n.maxLen = literalLength(text)
	return n
}

// NewCharClassNode wraps class as a length-1 regex.
func NewCharClassNode(class *charclass.CharClass) *Node {
	return &Node{kind: KindCharClass, class: class, minLen: 1, maxLen: 1}
}

// NewConcat constructs a node matching its children in sequence. Panics
// if children is empty; use NewLiteral("", false) for the empty
// language-of-one-string case.
func NewConcat(children ...*Node) *Node {
	if len(children) == 0 {
		panic("ast: NewConcat: at least one child required")
	}
	cp := append([]*Node(nil), children...)
	n := &Node{kind: KindConcat, children: cp}
	n.minLen, n.maxLen = concatLength(cp)
	return n
}

// NewUnion constructs a node matching any one of its children. Panics if
// children is empty.
func NewUnion(children ...*Node) *Node {
	if len(children) == 0 {
		panic("ast: NewUnion: at least one child required")
	}
	cp := append([]*Node(nil), children...)
	n := &Node{kind: KindUnion, children: cp, literalAutomaton: unionLiteralAutomaton(cp)}
	n.minLen, n.maxLen = unionLength(cp)
	return n
}

// NewIntersection constructs a node matching only strings every child
// accepts. Panics if children is empty.
func NewIntersection(children ...*Node) *Node {
	if len(children) == 0 {
		panic("ast: NewIntersection: at least one child required")
	}
	cp := append([]*Node(nil), children...)
	n := &Node{kind: KindIntersection, children: cp}
	n.minLen, n.maxLen = intersectionLength(cp)
	return n
}
