package rxgen

import (
	"github.com/coregx/rxgen/ast"
	"github.com/coregx/rxgen/rng"
)

// Generate produces a random string in re's language using DefaultConfig().
func (re *Regex) Generate(r rng.RNG) string {
	return re.node.Generate(r)
}

// GenerateWithConfig produces a random string in re's language no longer
// than budget characters, using cfg's resource limits in place of the
// defaults.
func (re *Regex) GenerateWithConfig(r rng.RNG, cfg Config, budget int) (string, rng.RNG, error) {
	opts := ast.GenerateOptions{
		IntersectionRetries:    cfg.IntersectionRetries,
		NegatedClassProbeLimit: cfg.NegatedClassProbeLimit,
	}
	return re.node.GenerateWithOptions(r, budget, opts)
}

// GenerateWithDefaultBudget produces a random string in re's language
// using cfg's resource limits, falling back to cfg.DefaultBudget as the
// budget when re's language is unbounded (re.MaxLength() == ast.Infinite)
// instead of re's own finite MaxLength().
func (re *Regex) GenerateWithDefaultBudget(r rng.RNG, cfg Config) (string, rng.RNG, error) {
	budget := re.node.MaxLength()
	if budget == ast.Infinite {
		budget = cfg.DefaultBudget
	}
	return re.GenerateWithConfig(r, cfg, budget)
}

// Test reports whether input, taken as a whole, is in re's language.
func (re *Regex) Test(input string) bool {
	return re.node.Test(input)
}

// Negate returns a Regex for a structurally opposing language (spec's
// negate operation — not the Boolean complement for Concat and
// Intersection; see ast.Node.Negate).
func (re *Regex) Negate() *Regex {
	return wrap(re.node.Negate())
}

// Simplify returns a structurally reduced, language-equivalent Regex.
func (re *Regex) Simplify() *Regex {
	return wrap(re.node.Simplify())
}

// MinLength returns the minimum length of any string in re's language.
func (re *Regex) MinLength() int {
	return re.node.MinLength()
}

// MaxLength returns the maximum length of any string in re's language,
// or ast.Infinite if unbounded.
func (re *Regex) MaxLength() int {
	return re.node.MaxLength()
}
