// Package charclass implements the leaf alphabet of the regex algebra: a
// recursive expression over 16-bit code units (no surrogate-pair
// awareness — the universe is exactly [0x0000, 0xFFFF]).
//
// A CharClass supports two operations: Contains (membership) and Sample
// (draw a member deterministically from a seed). The defining invariant,
// enforced by every constructor and preserved by every combinator, is:
//
//	for every CharClass c and every seed s: c.Contains(c.Sample(s))
package charclass

import "github.com/coregx/rxgen/internal/sparse"

// Kind identifies which CharClass variant a value holds.
type Kind uint8

const (
	// KindRange is a contiguous inclusive range [Lo, Hi].
	KindRange Kind = iota
	// KindEnum is an explicit, possibly-repeating multiset of members.
	KindEnum
	// KindUnion is the union of one or more child classes.
	KindUnion
	// KindNegated is the complement of an inner class within the universe.
	KindNegated
)

// String returns a human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case KindRange:
		return "Range"
	case KindEnum:
		return "Enum"
	case KindUnion:
		return "Union"
	case KindNegated:
		return "Negated"
	default:
		return "Unknown"
	}
}

// MaxCodeUnit is the upper bound of the universe a CharClass ranges over.
const MaxCodeUnit = 0xFFFF

// CharClass is a recursive, immutable character-class expression. The zero
// value is not valid; use NewRange, NewEnum, NewUnion, or Negate to
// construct one.
type CharClass struct {
	kind Kind

	// KindRange
	lo, hi rune

	// KindEnum
	members []rune       // insertion order, duplicates preserved (multiset)
	set     *sparse.RuneSet // membership index built alongside members

	// KindUnion
	children   []*CharClass
	rangeCache []rangePair // populated iff every child is KindRange

	// KindNegated
	inner *CharClass
}

// Kind returns the variant tag of c.
func (c *CharClass) Kind() Kind {
	return c.kind
}

// NewRange constructs a class matching every code unit in [lo, hi]
// inclusive. Panics if lo > hi (a malformed range is a construction-time
// programmer error, not a runtime condition).
func NewRange(lo, hi rune) *CharClass {
	if lo > hi {
		panic("charclass: NewRange: lo > hi")
	}
	return &CharClass{kind: KindRange, lo: lo, hi: hi}
}

// NewEnum constructs a class matching exactly the given members. Members
// may repeat; repeats bias Sample toward the repeated value, which is the
// multiset semantics spec.md §3.2 calls for. Panics if members is empty.
func NewEnum(members ...rune) *CharClass {
	if len(members) == 0 {
		panic("charclass: NewEnum: at least one member required")
	}
	set := sparse.NewRuneSet()
	for _, m := range members {
		set.InsertRune(m)
	}
	cp := make([]rune, len(members))
	copy(cp, members)
	return &CharClass{kind: KindEnum, members: cp, set: set}
}

// NewUnion constructs a class matching any code unit matched by at least
// one child. Panics if children is empty.
func NewUnion(children ...*CharClass) *CharClass {
	if len(children) == 0 {
		panic("charclass: NewUnion: at least one child required")
	}
	cp := make([]*CharClass, len(children))
	copy(cp, children)

	var ranges []rangePair
	allRanges := true
	for _, child := range cp {
		lo, hi, ok := child.Range()
		if !ok {
			allRanges = false
			break
		}
		ranges = append(ranges, rangePair{lo: lo, hi: hi})
	}
	if !allRanges {
		ranges = nil
	}

	return &CharClass{kind: KindUnion, children: cp, rangeCache: ranges}
}

// Negate constructs the complement of inner within [0x0000, MaxCodeUnit].
func Negate(inner *CharClass) *CharClass {
	return &CharClass{kind: KindNegated, inner: inner}
}

// Range returns the bounds for a KindRange class. ok is false for any
// other kind.
func (c *CharClass) Range() (lo, hi rune, ok bool) {
	if c.kind != KindRange {
		return 0, 0, false
	}
	return c.lo, c.hi, true
}

// Members returns the enumerated members for a KindEnum class, in
// insertion order with duplicates preserved. ok is false for any other
// kind.
func (c *CharClass) Members() (members []rune, ok bool) {
	if c.kind != KindEnum {
		return nil, false
	}
	return c.members, true
}

// Children returns the child classes for a KindUnion class. ok is false
// for any other kind.
func (c *CharClass) Children() (children []*CharClass, ok bool) {
	if c.kind != KindUnion {
		return nil, false
	}
	return c.children, true
}

// Inner returns the complemented class for a KindNegated class. ok is
// false for any other kind.
func (c *CharClass) Inner() (inner *CharClass, ok bool) {
	if c.kind != KindNegated {
		return nil, false
	}
	return c.inner, true
}

// Contains reports whether c matches code unit r.
func (c *CharClass) Contains(r rune) bool {
	switch c.kind {
	case KindRange:
		return r >= c.lo && r <= c.hi
	case KindEnum:
		return c.set.ContainsRune(r)
	case KindUnion:
		if c.rangeCache != nil {
			return scanRanges(c.rangeCache, r)
		}
		for _, child := range c.children {
			if child.Contains(r) {
				return true
			}
		}
		return false
	case KindNegated:
		return !c.inner.Contains(r)
	default:
		return false
	}
}
