package ast

import (
	"testing"

	"github.com/coregx/rxgen/charclass"
)

func TestDescribe_LeafNode(t *testing.T) {
	n := NewLiteral("abc", false)
	stats := Describe(n)
	if stats.NodeCount != 1 {
		t.Errorf("NodeCount = %d, want 1", stats.NodeCount)
	}
	if stats.Depth != 0 {
		t.Errorf("Depth = %d, want 0", stats.Depth)
	}
	if stats.HasIntersection {
		t.Errorf("HasIntersection = true, want false")
	}
}

func TestDescribe_CountsEveryNode(t *testing.T) {
	n := NewConcat(NewLiteral("a", false), NewLiteral("b", false), NewLiteral("c", false))
	stats := Describe(n)
	if stats.NodeCount != 4 {
		t.Errorf("NodeCount = %d, want 4 (1 Concat + 3 Literal)", stats.NodeCount)
	}
	if stats.Depth != 1 {
		t.Errorf("Depth = %d, want 1", stats.Depth)
	}
}

func TestDescribe_DepthFollowsLongestPath(t *testing.T) {
	inner := NewLiteral("x", false).MustQuantify(1, 3, Greedy).MustSized(5)
	n := NewUnion(NewLiteral("short", false), inner)
	stats := Describe(n)
	// n -> inner (Sized) -> Quantified -> Literal: depth 3 beats the
	// short literal's depth 1.
	if stats.Depth != 3 {
		t.Errorf("Depth = %d, want 3", stats.Depth)
	}
}

func TestDescribe_DetectsIntersectionAnywhereInTree(t *testing.T) {
	digits := NewCharClassNode(charclass.NewRange('0', '9')).MustQuantify(3, 3, Greedy)
	inter := NewIntersection(digits, NewLiteral("123", false).Negate())
	n := NewConcat(NewLiteral("id-", false), inter)

	stats := Describe(n)
	if !stats.HasIntersection {
		t.Errorf("HasIntersection = false, want true")
	}
}

func TestDescribe_NoIntersectionWhenNonePresent(t *testing.T) {
	n := NewUnion(NewLiteral("a", false), NewLiteral("b", false))
	stats := Describe(n)
	if stats.HasIntersection {
		t.Errorf("HasIntersection = true, want false")
	}
}
