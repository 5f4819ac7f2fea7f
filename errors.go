package rxgen

import "github.com/coregx/rxgen/ast"

// Sentinel errors re-exported from ast, so callers working only against
// the root package never need to import ast to use errors.Is.
var (
	ErrInvalidRange          = ast.ErrInvalidRange
	ErrSizeTooSmall          = ast.ErrSizeTooSmall
	ErrBudgetTooSmall        = ast.ErrBudgetTooSmall
	ErrIntersectionExhausted = ast.ErrIntersectionExhausted
)

// QuantifyError, SizeError, and GenerateError are re-exported as type
// aliases so errors.As works against either package's name for the same
// underlying type.
type (
	QuantifyError = ast.QuantifyError
	SizeError     = ast.SizeError
	GenerateError = ast.GenerateError
)
