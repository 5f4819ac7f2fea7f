package ast

import (
	"unicode/utf8"

	"github.com/coregx/rxgen/internal/lenmath"
)

// literalLength returns minLength=maxLength=the character count of text
// (spec §4.2: "byte/char length — specify in characters").
func literalLength(text string) (min, max int) {
	n := utf8.RuneCountInString(text)
	return n, n
}

// concatLength sums children's bounds (spec §4.3), saturating at Infinite.
func concatLength(children []*Node) (min, max int) {
	for _, c := range children {
		min = min + c.MinLength()
		max = lenmath.Add(max, c.MaxLength())
	}
	return min, max
}

// unionLength takes the min of children's minLengths and the max of
// their maxLengths (spec §4.4).
func unionLength(children []*Node) (min, max int) {
	min = children[0].MinLength()
	max = children[0].MaxLength()
	for _, c := range children[1:] {
		min = lenmath.Min(min, c.MinLength())
		max = lenmath.Max(max, c.MaxLength())
	}
	return min, max
}

// intersectionLength takes the max of children's minLengths and the min
// of their maxLengths, ignoring Infinite in the min (spec §4.5).
func intersectionLength(children []*Node) (min, max int) {
	min = children[0].MinLength()
	max = children[0].MaxLength()
	for _, c := range children[1:] {
		min = lenmath.Max(min, c.MinLength())
		max = lenmath.Min(max, c.MaxLength())
	}
	return min, max
}

// quantifiedLength computes child.minLength*qmin and, unless either the
// repeat count or the child is unbounded, child.maxLength*qmax (spec
// §4.6).
func quantifiedLength(child *Node, qmin, qmax int) (min, max int) {
	min = lenmath.Mul(child.MinLength(), qmin)
	if qmax == Infinite || child.MaxLength() == Infinite {
		max = Infinite
	} else {
		max = lenmath.Mul(child.MaxLength(), qmax)
	}
	return min, max
}

// sizedLength clamps child's bounds to size, treating an Infinite
// maxLength as exactly size (spec §4.7).
func sizedLength(child *Node, size int) (min, max int) {
	min = lenmath.Min(child.MinLength(), size)
	max = lenmath.Clamp(child.MaxLength(), size)
	return min, max
}
