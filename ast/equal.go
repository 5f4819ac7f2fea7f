package ast

import "github.com/coregx/rxgen/charclass"

// Equal reports whether a and b are structurally identical nodes: same
// kind, same leaf data, and recursively equal children. Equal is used by
// Simplify to drop duplicate Union alternatives (spec §4.4) and is a
// supplemented operation — the source spec describes simplification in
// prose but never names the equality primitive it takes for granted.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindLiteral:
		return a.text == b.text && a.caseInsensitive == b.caseInsensitive
	case KindCharClass:
		return classEqual(a.class, b.class)
	case KindConcat, KindUnion, KindIntersection:
		if len(a.children) != len(b.children) {
			return false
		}
		for i := range a.children {
			if !Equal(a.children[i], b.children[i]) {
				return false
			}
		}
		return true
	case KindQuantified:
		return a.min == b.min && a.max == b.max && a.qtype == b.qtype && Equal(a.child, b.child)
	case KindSized:
		return a.size == b.size && Equal(a.child, b.child)
	default:
		return false
	}
}

// classEqual reports whether two CharClass leaves describe the same set
// membership by kind and underlying data, not merely the same Contains
// results (two differently-shaped classes that happen to contain the
// same elements are treated as unequal — a conservative choice: spec §9
// leaves class-level canonicalization as an open question, and the cost
// of a false "not equal" is only a missed simplification, not a
// correctness bug).
func classEqual(a, b *charclass.CharClass) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	ak, bk := a.Kind(), b.Kind()
	if ak != bk {
		return false
	}

	switch ak {
	case charclass.KindRange:
		alo, ahi, _ := a.Range()
		blo, bhi, _ := b.Range()
		return alo == blo && ahi == bhi
	case charclass.KindEnum:
		am, _ := a.Members()
		bm, _ := b.Members()
		if len(am) != len(bm) {
			return false
		}
		for i := range am {
			if am[i] != bm[i] {
				return false
			}
		}
		return true
	case charclass.KindUnion:
		ac, _ := a.Children()
		bc, _ := b.Children()
		if len(ac) != len(bc) {
			return false
		}
		for i := range ac {
			if !classEqual(ac[i], bc[i]) {
				return false
			}
		}
		return true
	case charclass.KindNegated:
		ai, _ := a.Inner()
		bi, _ := b.Inner()
		return classEqual(ai, bi)
	default:
		return false
	}
}
