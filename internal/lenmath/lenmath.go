// Package lenmath provides saturating arithmetic over the length domain
// used throughout the ast and charclass packages: non-negative integers
// plus a distinguished "infinite" sentinel.
//
// Every node in the regex algebra carries a minLength/maxLength pair;
// maxLength has no natural upper bound (a* has none), so arithmetic over
// these values must saturate at Infinite rather than overflow or panic,
// the way internal/conv's conversions guard against silent overflow on
// the narrowing side.
package lenmath

// Infinite is the sentinel value representing "no upper bound". It is the
// only negative value length arithmetic in this package ever produces or
// accepts.
const Infinite = -1

// IsInfinite reports whether n is the Infinite sentinel.
func IsInfinite(n int) bool {
	return n == Infinite
}

// Add returns a+b, saturating at Infinite if either operand is Infinite.
func Add(a, b int) int {
	if a == Infinite || b == Infinite {
		return Infinite
	}
	return a + b
}

// Mul returns a*b, saturating at Infinite per the rule Infinite*0=0,
// Infinite*k=Infinite for k>0 (spec §4.9).
func Mul(a, b int) int {
	if a == Infinite {
		if b == 0 {
			return 0
		}
		return Infinite
	}
	if b == Infinite {
		if a == 0 {
			return 0
		}
		return Infinite
	}
	return a * b
}

// Min returns the smaller of a and b, treating Infinite as "no upper
// bound" and therefore ignoring it unless both operands are Infinite.
func Min(a, b int) int {
	if a == Infinite {
		return b
	}
	if b == Infinite {
		return a
	}
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b, treating Infinite as absorbing:
// if either operand is Infinite the result is Infinite.
func Max(a, b int) int {
	if a == Infinite || b == Infinite {
		return Infinite
	}
	if a > b {
		return a
	}
	return b
}

// Clamp returns n bounded to size, treating an Infinite n as exactly
// size (Sized's "∞ treated as size" rule, spec §4.7).
func Clamp(n, size int) int {
	if n == Infinite || n > size {
		return size
	}
	return n
}
