// Package rng provides the pure functional PRNG abstraction used to drive
// regex generation.
//
// Unlike math/rand's ambient, mutable generator, every primitive here
// returns a fresh state alongside the sampled value:
//
//	rng, b := r.GenBool()
//
// The caller threads the returned state into the next call. Two calls
// against the same starting state with the same method always produce the
// same (state, value) pair, which is what makes generate(seed, tree) fully
// reproducible and safe to fan out across goroutines (each goroutine
// threads its own state; nothing is shared).
//
// Example:
//
//	var r rng.RNG = rng.Seeded(42)
//	r, ok := r.GenBool()
//	r, n := r.GenInt(10)
//	fmt.Println(ok, n)
package rng

// RNG is the pure functional PRNG contract. Every method returns the next
// state alongside the sampled value; it never mutates the receiver.
type RNG interface {
	// GenBool returns the next state and a uniformly sampled bool.
	GenBool() (RNG, bool)

	// GenInt returns the next state and a uniform value in [0, bound).
	// Panics if bound == 0.
	GenInt(bound uint32) (RNG, uint32)

	// GenLong returns the next state and a uniformly sampled uint64.
	GenLong() (RNG, uint64)
}

// State is the reference RNG implementation: a 64-bit xorshift* generator.
// State is a plain value; all methods return a new State rather than
// mutating the receiver, so a State is safe to copy, store, and reuse from
// multiple goroutines.
type State struct {
	s uint64
}

// Seeded constructs a State from a seed. A zero seed is remapped to a
// fixed nonzero constant since xorshift cannot escape the all-zero state.
func Seeded(seed uint64) State {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	return State{s: seed}
}

// next advances the xorshift64* generator and returns the new state plus
// its raw 64-bit output.
func (s State) next() (State, uint64) {
	x := s.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	next := State{s: x}
	return next, x * 0x2545F4914F6CDD1D
}

// GenLong implements RNG.
func (s State) GenLong() (RNG, uint64) {
	next, v := s.next()
	return next, v
}

// GenBool implements RNG.
func (s State) GenBool() (RNG, bool) {
	next, v := s.next()
	return next, v&1 == 1
}

// GenInt implements RNG. Uses Lemire's multiply-shift bounded-range
// reduction in place of a modulo; there is no rejection step, so a bias
// of at most bound/2^32 remains. bound must be > 0.
func (s State) GenInt(bound uint32) (RNG, uint32) {
	if bound == 0 {
		panic("rng: GenInt called with bound 0")
	}
	next, v := s.next()
	hi, _ := bits64Mul32(uint32(v), bound)
	return next, hi
}

// bits64Mul32 computes the high 32 bits and low 32 bits of a*b where a,b
// are treated as uint32, implementing Lemire's multiply-and-shift bounded
// range reduction: floor(a*b / 2^32).
func bits64Mul32(a, b uint32) (hi, lo uint32) {
	prod := uint64(a) * uint64(b)
	return uint32(prod >> 32), uint32(prod)
}
