// Package rxgen generates random strings that match a regex-style
// algebra, for use in property-based testing. Unlike a conventional
// regex package, there is no pattern string or parser: a Regex is built
// directly from the algebra's combinators (Lit, Class, Concat, Union,
// Intersect, Repeat, Sized), since parsing a surface syntax into that
// algebra is an external collaborator outside this module's scope.
//
// Basic usage:
//
//	re := rxgen.Concat(
//	    rxgen.Lit("user-", false),
//	    rxgen.MustRepeat(rxgen.Class(charclass.NewRange('0', '9')), 4, 4, ast.Greedy),
//	)
//	s := re.Generate(rxgen.Seeded(42)) // e.g. "user-7123"
//	re.Test(s)                         // true
//
// Performance characteristics / Limitations:
//   - Generate is O(tree size) per call except Intersection, which
//     reject-samples up to Config.IntersectionRetries times.
//   - Test on Concat/Quantified evaluates a position-set walk that is
//     worst-case quadratic in input length; this module is a generator,
//     not a matching engine, and Test exists to support Intersection's
//     reject-sampling and round-trip testing, not high-throughput search.
//   - No POSIX/PCRE parsing, no uniform sampling over the language, no
//     partial/substring matching — see spec Non-goals.
package rxgen

import (
	"github.com/coregx/rxgen/ast"
	"github.com/coregx/rxgen/render"
)

// Regex is the public handle on a regex-algebra tree: the root node plus
// a source label used only for diagnostics (render.String(re.node) is
// the canonical surface form; src is whatever the caller built it from,
// often empty for trees assembled directly through the builders below).
type Regex struct {
	node *ast.Node
	src  string
}

// Node returns the underlying algebra tree, for callers that need to
// pass it to the ast or render packages directly.
func (re *Regex) Node() *ast.Node {
	return re.node
}

// String returns re's source label if one was set at construction, or
// the rendered surface form of its tree otherwise.
func (re *Regex) String() string {
	if re.src != "" {
		return re.src
	}
	return render.String(re.node)
}

func wrap(n *ast.Node) *Regex {
	return &Regex{node: n}
}

func labeled(n *ast.Node, src string) *Regex {
	return &Regex{node: n, src: src}
}
