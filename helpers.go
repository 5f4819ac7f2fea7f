package rxgen

import (
	"github.com/coregx/rxgen/ast"
	"github.com/coregx/rxgen/charclass"
	"github.com/coregx/rxgen/rng"
)

// Seeded returns a deterministic RNG for the given seed. A zero seed is
// remapped internally to a fixed nonzero constant (see rng.Seeded).
func Seeded(seed uint64) rng.RNG {
	return rng.Seeded(seed)
}

// Digits builds a Regex matching exactly n ASCII digits. These common-
// format helpers are assembled from the core algebra rather than
// hand-special-cased per format string, the same way the rest of this
// package is: Digits(n) is Repeat(Class('0'-'9'), n, n).
func Digits(n int) *Regex {
	tree := ast.NewCharClassNode(charclass.NewRange('0', '9')).MustQuantify(n, n, ast.Greedy)
	return labeled(tree, "digits")
}

// ASCIILetters builds a Regex matching exactly n ASCII letters (upper or
// lower case).
func ASCIILetters(n int) *Regex {
	class := charclass.NewUnion(
		charclass.NewRange('a', 'z'),
		charclass.NewRange('A', 'Z'),
	)
	tree := ast.NewCharClassNode(class).MustQuantify(n, n, ast.Greedy)
	return labeled(tree, "ascii-letters")
}

// UUID builds a Regex matching a version-agnostic, lowercase-hex UUID in
// canonical 8-4-4-4-12 form (e.g. "3fa9c1de-0000-4000-8000-000000000000").
// This only constrains hex-digit groups and dashes; it does not encode
// the version/variant nibble constraints a real UUID generator would.
func UUID() *Regex {
	hex := charclass.NewUnion(
		charclass.NewRange('0', '9'),
		charclass.NewRange('a', 'f'),
	)
	group := func(n int) *ast.Node {
		return ast.NewCharClassNode(hex).MustQuantify(n, n, ast.Greedy)
	}
	dash := ast.NewLiteral("-", false)

	tree := ast.NewConcat(
		group(8), dash,
		group(4), dash,
		group(4), dash,
		group(4), dash,
		group(12),
	)
	return labeled(tree, "uuid")
}
