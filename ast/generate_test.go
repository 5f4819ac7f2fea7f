package ast

import (
	"errors"
	"strings"
	"testing"

	"github.com/coregx/rxgen/charclass"
	"github.com/coregx/rxgen/rng"
)

func TestGenerate_LiteralRoundTrips(t *testing.T) {
	n := NewLiteral("hello", false)
	out := n.Generate(rng.Seeded(1))
	if out != "hello" {
		t.Errorf("Generate() = %q, want %q", out, "hello")
	}
}

func TestGenerate_CaseInsensitiveLiteralIsStillAccepted(t *testing.T) {
	n := NewLiteral("hello", true)
	r := rng.Seeded(7)
	for i := 0; i < 20; i++ {
		out := n.Generate(r)
		if !strings.EqualFold(out, "hello") {
			t.Fatalf("Generate() = %q, not a case-fold of %q", out, "hello")
		}
		if !n.Test(out) {
			t.Fatalf("Generate() produced %q which Test rejects", out)
		}
		r = rng.Seeded(uint64(i + 1))
	}
}

func TestGenerate_CharClassAlwaysAccepted(t *testing.T) {
	n := NewCharClassNode(charclass.NewRange('a', 'z'))
	for seed := uint64(0); seed < 200; seed++ {
		out := n.Generate(rng.Seeded(seed))
		if !n.Test(out) {
			t.Fatalf("Generate() = %q, want a lowercase letter", out)
		}
	}
}

func TestGenerate_ConcatAlwaysAccepted(t *testing.T) {
	n := NewConcat(
		NewLiteral("id-", false),
		NewCharClassNode(charclass.NewRange('0', '9')).MustQuantify(4, 4, Greedy),
	)
	for seed := uint64(0); seed < 100; seed++ {
		out := n.Generate(rng.Seeded(seed))
		if !n.Test(out) {
			t.Fatalf("Generate() = %q, want something Test accepts", out)
		}
		if !strings.HasPrefix(out, "id-") || len(out) != 7 {
			t.Fatalf("Generate() = %q, want \"id-\" + 4 digits", out)
		}
	}
}

func TestGenerate_UnionAlwaysAccepted(t *testing.T) {
	n := NewUnion(NewLiteral("cat", false), NewLiteral("dog", false), NewLiteral("cow", false))
	for seed := uint64(0); seed < 50; seed++ {
		out := n.Generate(rng.Seeded(seed))
		if !n.Test(out) {
			t.Fatalf("Generate() = %q, want one of cat/dog/cow", out)
		}
	}
}

func TestGenerate_IntersectionAlwaysAccepted(t *testing.T) {
	allDigits := NewCharClassNode(charclass.NewRange('0', '9')).MustQuantify(3, 3, Greedy)
	alsoAllDigits := allDigits // same node twice: a trivially satisfiable intersection
	n := NewIntersection(allDigits, alsoAllDigits)
	for seed := uint64(0); seed < 50; seed++ {
		out, _, err := n.GenerateWithBudget(rng.Seeded(seed), 3)
		if err != nil {
			t.Fatalf("GenerateWithBudget: %v", err)
		}
		if !n.Test(out) {
			t.Fatalf("Generate() = %q, want a 3-digit string", out)
		}
	}
}

func TestGenerate_IntersectionExhaustedReturnsError(t *testing.T) {
	a := NewLiteral("abc", false)
	b := NewLiteral("xyz", false)
	n := NewIntersection(a, b) // unsatisfiable: no string is both
	_, _, err := n.GenerateWithOptions(rng.Seeded(1), 3, GenerateOptions{
		IntersectionRetries:    5,
		NegatedClassProbeLimit: defaultNegatedClassProbeLimit,
	})
	if err == nil {
		t.Fatal("expected an error for an unsatisfiable intersection")
	}
	if !errors.Is(err, ErrIntersectionExhausted) {
		t.Fatalf("expected ErrIntersectionExhausted, got %v", err)
	}
}

func TestGenerate_QuantifiedRespectsBounds(t *testing.T) {
	digit := NewCharClassNode(charclass.NewRange('0', '9'))
	n := digit.MustQuantify(2, 5, Greedy)
	for seed := uint64(0); seed < 100; seed++ {
		out := n.Generate(rng.Seeded(seed))
		if len(out) < 2 || len(out) > 5 {
			t.Fatalf("Generate() = %q, want length in [2,5]", out)
		}
		if !n.Test(out) {
			t.Fatalf("Generate() = %q rejected by Test", out)
		}
	}
}

func TestGenerate_SizedRespectsBound(t *testing.T) {
	letter := NewCharClassNode(charclass.NewRange('a', 'z')).MustQuantify(0, Infinite, Greedy)
	n := letter.MustSized(6)
	for seed := uint64(0); seed < 50; seed++ {
		out := n.Generate(rng.Seeded(seed))
		if len(out) > 6 {
			t.Fatalf("Generate() = %q, want length <= 6", out)
		}
	}
}

func TestGenerate_BudgetTooSmallErrors(t *testing.T) {
	n := NewLiteral("hello", false)
	_, _, err := n.GenerateWithBudget(rng.Seeded(1), 2)
	if err == nil {
		t.Fatal("expected an error when budget < MinLength")
	}
}

// TestGenerate_QuantifiedUnboundedNeverExceedsExplicitBudget guards
// against a regression where a child that always emits exactly its own
// minLength (a fixed-length literal) let the optional-repetition loop
// keep firing forever without depleting the tracked slack, since the
// excess-only decrement it shared with the mandatory loop never saw any
// excess to subtract.
func TestGenerate_QuantifiedUnboundedNeverExceedsExplicitBudget(t *testing.T) {
	fixed := NewLiteral("abcde", false) // minLength == maxLength == 5
	n := fixed.MustQuantify(1, Infinite, Greedy)

	const budget = 17
	for seed := uint64(0); seed < 200; seed++ {
		out, _, err := n.GenerateWithBudget(rng.Seeded(seed), budget)
		if err != nil {
			t.Fatalf("GenerateWithBudget: %v", err)
		}
		if len(out) > budget {
			t.Fatalf("Generate() = %q (len %d), exceeds budget %d", out, len(out), budget)
		}
		if len(out)%5 != 0 {
			t.Fatalf("Generate() = %q, want a whole number of 5-char repetitions", out)
		}
	}
}
