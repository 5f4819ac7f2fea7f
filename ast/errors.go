package ast

import (
	"errors"
	"fmt"
)

// Sentinel errors for the regex algebra. Mirrors the teacher package's
// nfa.Err* convention: a flat block of errors.New sentinels that callers
// can compare with errors.Is, plus richer wrapped types below for the
// cases that carry useful context.
var (
	// ErrInvalidRange indicates a Quantify call with min > max, or with
	// min/max out of the representable non-negative range.
	ErrInvalidRange = errors.New("ast: invalid quantifier range")

	// ErrSizeTooSmall indicates a Sized call with size < node.MinLength().
	ErrSizeTooSmall = errors.New("ast: size smaller than node's minimum length")

	// ErrBudgetTooSmall indicates a recursive Generate call received a
	// budget below the subtree's MinLength. This is a programmer error:
	// it should never surface from a top-level Generate call when
	// budget >= root.MinLength().
	ErrBudgetTooSmall = errors.New("ast: generation budget smaller than node's minimum length")

	// ErrIntersectionExhausted indicates Intersection's bounded
	// reject-sampling loop failed to find a jointly-accepted string
	// within its retry cap. This is a legitimate runtime failure: the
	// intersection may be empty or extremely sparse.
	ErrIntersectionExhausted = errors.New("ast: intersection generation exhausted its retry budget")
)

// QuantifyError wraps ErrInvalidRange with the offending bounds.
type QuantifyError struct {
	Min, Max int
	Err      error
}

func (e *QuantifyError) Error() string {
	return fmt.Sprintf("ast: quantify(min=%d, max=%d): %v", e.Min, e.Max, e.Err)
}

func (e *QuantifyError) Unwrap() error {
	return e.Err
}

// SizeError wraps ErrSizeTooSmall with the offending size and the node's
// actual minimum length.
type SizeError struct {
	Size, MinLength int
	Err             error
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("ast: sized(%d): node minLength is %d: %v", e.Size, e.MinLength, e.Err)
}

func (e *SizeError) Unwrap() error {
	return e.Err
}

// GenerateError wraps ErrBudgetTooSmall/ErrIntersectionExhausted with the
// node kind and budget in play when generation failed.
type GenerateError struct {
	Kind   Kind
	Budget int
	Err    error
}

func (e *GenerateError) Error() string {
	return fmt.Sprintf("ast: generate(%s, budget=%d): %v", e.Kind, e.Budget, e.Err)
}

func (e *GenerateError) Unwrap() error {
	return e.Err
}
