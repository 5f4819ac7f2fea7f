package ast

import (
	"errors"
	"testing"

	"github.com/coregx/rxgen/charclass"
)

func TestQuantify_ValidRange(t *testing.T) {
	digit := NewCharClassNode(charclass.NewRange('0', '9'))
	n, err := digit.Quantify(2, 5, Greedy)
	if err != nil {
		t.Fatalf("Quantify: %v", err)
	}
	if n.Kind() != KindQuantified {
		t.Errorf("Kind() = %v, want KindQuantified", n.Kind())
	}
}

func TestQuantify_UnboundedMax(t *testing.T) {
	digit := NewCharClassNode(charclass.NewRange('0', '9'))
	n, err := digit.Quantify(0, Infinite, Greedy)
	if err != nil {
		t.Fatalf("Quantify: %v", err)
	}
	if n.MaxLength() != Infinite {
		t.Errorf("MaxLength() = %d, want Infinite", n.MaxLength())
	}
}

func TestQuantify_RejectsMinGreaterThanMax(t *testing.T) {
	digit := NewCharClassNode(charclass.NewRange('0', '9'))
	_, err := digit.Quantify(5, 2, Greedy)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestQuantify_RejectsNegativeMin(t *testing.T) {
	digit := NewCharClassNode(charclass.NewRange('0', '9'))
	_, err := digit.Quantify(-1, 5, Greedy)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestQuantify_RejectsNegativeMaxOtherThanInfinite(t *testing.T) {
	digit := NewCharClassNode(charclass.NewRange('0', '9'))
	_, err := digit.Quantify(0, -2, Greedy)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestMustQuantify_PanicsOnInvalidRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustQuantify to panic on an invalid range")
		}
	}()
	digit := NewCharClassNode(charclass.NewRange('0', '9'))
	digit.MustQuantify(5, 2, Greedy)
}
