// Package conv provides safe integer conversion helpers for the regex
// generation engine.
//
// IntToUint32 performs bounds checking before narrowing int to uint32 to
// prevent silent overflow; it panics on overflow since this indicates a
// programming error (a Union with more children than fit in a uint32
// index is not a condition this module's generators can hit in practice,
// but GenInt's signature demands the narrower type).
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
