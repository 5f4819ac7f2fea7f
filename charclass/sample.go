package charclass

// defaultNegatedProbeLimit bounds Negated.Sample's probing loop (spec
// §3.2: "a bound ≥ 2^16 probes guarantees success for bounded universes").
// SampleWithLimit accepts a caller-supplied limit (wired to
// Config.NegatedClassProbeLimit at the rxgen facade); Sample uses this
// default.
const defaultNegatedProbeLimit = 1 << 17

// Sample deterministically draws a member of c as a pure function of seed:
// Contains(Sample(seed)) always holds. Uses the package default probe
// limit for Negated classes; see SampleWithLimit to override it.
func (c *CharClass) Sample(seed uint64) rune {
	return c.SampleWithLimit(seed, defaultNegatedProbeLimit)
}

// SampleWithLimit is Sample with an explicit cap on Negated's probing
// loop, so callers with large DefaultBudget-like configuration knobs can
// raise it (spec §9's "Implementers may raise the cap" notion, mirrored
// here for Negated exactly as it is for Intersection's retry cap).
func (c *CharClass) SampleWithLimit(seed uint64, negatedProbeLimit int) rune {
	switch c.kind {
	case KindRange:
		span := uint64(c.hi-c.lo) + 1
		return c.lo + rune(seed%span)

	case KindEnum:
		idx := int(seed % uint64(len(c.members)))
		return c.members[idx]

	case KindUnion:
		idx := int(seed % uint64(len(c.children)))
		return c.children[idx].SampleWithLimit(seed/uint64(len(c.children))+1, negatedProbeLimit)

	case KindNegated:
		// spec §3.2 describes probing "inner.sample(seed+k)", but inner.Sample
		// is total over inner's own members by construction and can never
		// return a value outside inner — probing it directly would never
		// terminate. We instead probe candidate code units in the universe
		// directly, which is what makes the "bound >= 2^16 probes guarantees
		// success" claim true: walking the universe in order must eventually
		// strike a code unit inner doesn't contain unless inner is the whole
		// universe.
		for k := 0; k < negatedProbeLimit; k++ {
			candidate := rune((seed + uint64(k)) % (MaxCodeUnit + 1))
			if !c.inner.Contains(candidate) {
				return candidate
			}
		}
		panic("charclass: Negated.Sample: inner class covers the entire universe; complement is empty")

	default:
		panic("charclass: Sample: unknown kind")
	}
}
