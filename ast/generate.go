package ast

import (
	"strings"

	"github.com/coregx/rxgen/internal/conv"
	"github.com/coregx/rxgen/rng"
)

// DefaultBudget is used by Generate when a node's MaxLength is
// unbounded. Per spec §6 it must be >= 2^31-2; callers needing a
// different ceiling should call GenerateWithBudget directly (the
// rxgen facade's Config.DefaultBudget is the knob for that).
const DefaultBudget = 1<<31 - 2

// Generate produces a random string in n's language, threading r through
// the generation walk. Uses n.MaxLength() as the budget when finite,
// otherwise DefaultBudget. The budget is always >= n.MinLength(), so
// ErrBudgetTooSmall cannot occur; Generate panics if an Intersection
// node exhausts its reject-sampling cap (ErrIntersectionExhausted).
func (n *Node) Generate(r rng.RNG) string {
	budget := n.MaxLength()
	if budget == Infinite {
		budget = DefaultBudget
	}
	s, _, err := n.GenerateWithBudget(r, budget)
	if err != nil {
		// Only ErrIntersectionExhausted can reach here: budget is derived
		// from n itself above.
		panic("ast: Generate: " + err.Error())
	}
	return s
}

// GenerateOptions overrides the resource limits Generate/GenerateWithBudget
// otherwise default: how many times Intersection reject-samples, and how
// far Negated's membership probe searches. The rxgen facade's Config maps
// onto this one field-for-field; ast has no Config of its own since it
// has no notion of a "default budget" beyond DefaultBudget.
type GenerateOptions struct {
	// IntersectionRetries bounds Intersection's reject-sampling loop.
	IntersectionRetries int
	// NegatedClassProbeLimit bounds CharClass.Negated's Sample probing.
	NegatedClassProbeLimit int
}

// DefaultGenerateOptions returns the limits GenerateWithBudget uses.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		IntersectionRetries:    defaultIntersectionRetries,
		NegatedClassProbeLimit: defaultNegatedClassProbeLimit,
	}
}

// GenerateWithBudget produces a random string in n's language no longer
// than budget characters, threading r through the generation walk.
// Returns the advanced RNG state alongside the string. Returns
// *GenerateError wrapping ErrBudgetTooSmall if budget < n.MinLength(),
// or wrapping ErrIntersectionExhausted if an Intersection node's
// reject-sampling loop is exhausted. Uses DefaultGenerateOptions(); see
// GenerateWithOptions to override the resource limits.
func (n *Node) GenerateWithBudget(r rng.RNG, budget int) (string, rng.RNG, error) {
	return n.GenerateWithOptions(r, budget, DefaultGenerateOptions())
}

// GenerateWithOptions is GenerateWithBudget with explicit resource limits.
func (n *Node) GenerateWithOptions(r rng.RNG, budget int, opts GenerateOptions) (string, rng.RNG, error) {
	if budget < n.MinLength() {
		return "", r, &GenerateError{Kind: n.kind, Budget: budget, Err: ErrBudgetTooSmall}
	}

	switch n.kind {
	case KindLiteral:
		return genLiteral(n, r)
	case KindCharClass:
		return genCharClass(n, r, opts.NegatedClassProbeLimit)
	case KindConcat:
		return genConcat(n, r, budget, opts)
	case KindUnion:
		return genUnion(n, r, budget, opts)
	case KindIntersection:
		return genIntersection(n, r, budget, opts)
	case KindQuantified:
		return genQuantified(n, r, budget, opts)
	case KindSized:
		return genSized(n, r, budget, opts)
	default:
		panic("ast: GenerateWithOptions: unknown kind " + n.kind.String())
	}
}

// genLiteral implements spec §4.2: one gen_bool per character when
// case-insensitive, flipping ASCII-letter case on true; otherwise a
// single gen_bool is still consumed for the whole literal, so a
// case-sensitive literal always advances the RNG by exactly one step.
func genLiteral(n *Node, r rng.RNG) (string, rng.RNG, error) {
	if !n.caseInsensitive {
		var b bool
		r, b = r.GenBool()
		_ = b
		return n.text, r, nil
	}

	var sb strings.Builder
	sb.Grow(len(n.text))
	for _, c := range n.text {
		var flip bool
		r, flip = r.GenBool()
		sb.WriteRune(flipASCIICase(c, flip))
	}
	return sb.String(), r, nil
}

func flipASCIICase(c rune, flip bool) rune {
	if !flip {
		return c
	}
	switch {
	case c >= 'a' && c <= 'z':
		return c - ('a' - 'A')
	case c >= 'A' && c <= 'Z':
		return c + ('a' - 'A')
	default:
		return c
	}
}

// genCharClass implements spec §4.8: draw one gen_long seed and sample
// the wrapped class.
func genCharClass(n *Node, r rng.RNG, negatedProbeLimit int) (string, rng.RNG, error) {
	var seed uint64
	r, seed = r.GenLong()
	return string(n.class.SampleWithLimit(seed, negatedProbeLimit)), r, nil
}

// genConcat implements spec §4.3: thread a greedily-consumed slack
// budget through children in order.
func genConcat(n *Node, r rng.RNG, budget int, opts GenerateOptions) (string, rng.RNG, error) {
	slack := budget - n.MinLength()

	var sb strings.Builder
	for _, child := range n.children {
		childBudget := slack + child.MinLength()
		out, next, err := child.GenerateWithOptions(r, childBudget, opts)
		if err != nil {
			return "", r, err
		}
		r = next
		sb.WriteString(out)
		slack -= runeLen(out) - child.MinLength()
	}
	return sb.String(), r, nil
}

// genUnion implements spec §4.4: pick uniformly among children that fit
// the budget.
func genUnion(n *Node, r rng.RNG, budget int, opts GenerateOptions) (string, rng.RNG, error) {
	var fit []*Node
	for _, child := range n.children {
		if child.MinLength() <= budget {
			fit = append(fit, child)
		}
	}
	if len(fit) == 0 {
		return "", r, &GenerateError{Kind: KindUnion, Budget: budget, Err: ErrBudgetTooSmall}
	}

	var idx uint32
	r, idx = r.GenInt(conv.IntToUint32(len(fit)))
	return fit[idx].GenerateWithOptions(r, budget, opts)
}

// defaultIntersectionRetries is the reject-sampling cap spec §4.5 and §9
// call for ("a deliberate pragmatic trade-off... must not remove it").
const defaultIntersectionRetries = 100

// defaultNegatedClassProbeLimit mirrors charclass's own unexported
// default; kept in sync manually since ast has no dependency-free way to
// read charclass's unexported constant and a Config-level override
// belongs at this layer, not charclass's.
const defaultNegatedClassProbeLimit = 1 << 17

// genIntersection implements spec §4.5: generate from the first child
// and reject-sample against the rest.
func genIntersection(n *Node, r rng.RNG, budget int, opts GenerateOptions) (string, rng.RNG, error) {
	first := n.children[0]
	rest := n.children[1:]

	for attempt := 0; attempt < opts.IntersectionRetries; attempt++ {
		candidate, next, err := first.GenerateWithOptions(r, budget, opts)
		if err != nil {
			return "", r, err
		}
		r = next

		accepted := true
		for _, other := range rest {
			if !other.Test(candidate) {
				accepted = false
				break
			}
		}
		if accepted {
			return candidate, r, nil
		}
	}
	return "", r, &GenerateError{Kind: KindIntersection, Budget: budget, Err: ErrIntersectionExhausted}
}

// genQuantified implements spec §4.6: emit min mandatory repetitions,
// then keep emitting while budget and gen_bool allow.
//
// slack starts as "budget beyond the mandatory minimum" — the same
// quantity Concat's slack tracks — and the mandatory loop below spends it
// exactly the way Concat spends slack across a fixed child list: each of
// the n.min reps already has its own minLength folded into n.MinLength(),
// so granting childBudget = slack+childMin and then putting back
// whatever the child didn't use keeps slack equal to "budget minus total
// emitted so far" throughout.
//
// That invariant (slack == budget - emittedSoFar once every reserved
// child has run) is what the optional loop below relies on: an extra
// repetition beyond min was never reserved in n.MinLength(), so unlike
// the mandatory loop it must spend straight out of slack — childBudget
// is slack itself, not slack+childMin, and the full output length (not
// just the excess over childMin) comes back out of slack afterward.
// Reusing the mandatory loop's "subtract the excess" rule here would let
// a child that always emits exactly childMin (e.g. a fixed-length
// literal) loop forever without ever depleting slack, emitting past the
// caller's budget.
func genQuantified(n *Node, r rng.RNG, budget int, opts GenerateOptions) (string, rng.RNG, error) {
	slack := budget - n.MinLength()
	childMin := n.child.MinLength()
	var sb strings.Builder
	count := 0

	for ; count < n.min; count++ {
		childBudget := slack + childMin
		out, next, err := n.child.GenerateWithOptions(r, childBudget, opts)
		if err != nil {
			return "", r, err
		}
		r = next
		sb.WriteString(out)
		slack -= runeLen(out) - childMin
	}

	for slack >= childMin && (n.max == Infinite || count < n.max) {
		var cont bool
		r, cont = r.GenBool()
		if !cont {
			break
		}
		out, next, err := n.child.GenerateWithOptions(r, slack, opts)
		if err != nil {
			break
		}
		r = next
		sb.WriteString(out)
		slack -= runeLen(out)
		count++
	}

	return sb.String(), r, nil
}

// genSized implements spec §4.7: delegate to child with budget
// n.MaxLength(), or the caller's budget when that is smaller (sizing is a
// generation-only constraint).
func genSized(n *Node, r rng.RNG, budget int, opts GenerateOptions) (string, rng.RNG, error) {
	childBudget := n.MaxLength()
	if budget < childBudget {
		childBudget = budget
	}
	return n.child.GenerateWithOptions(r, childBudget, opts)
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
