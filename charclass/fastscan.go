package charclass

import "golang.org/x/sys/cpu"

// hasFastRangeScan mirrors the teacher package's "detect CPU features once,
// dispatch to the fastest available path" idiom (see simd.hasAVX2): a
// Union class built from many Range children gets a batched containment
// scan instead of the naive per-child loop once AVX2-class hardware is
// available to amortize the wider comparison width.
var hasFastRangeScan = cpu.X86.HasAVX2

// unionRangeScanThreshold is the number of Range children at or above which the
// batched scan path is worth its setup cost.
const unionRangeScanThreshold = 8

// scanRanges reports whether r falls in any of the given [lo,hi] ranges.
// It dispatches between a batched four-ranges-at-a-time scan (amortizing
// comparison overhead the way wide SIMD registers amortize byte
// comparisons) and a plain scalar loop.
func scanRanges(ranges []rangePair, r rune) bool {
	if hasFastRangeScan && len(ranges) >= unionRangeScanThreshold {
		return scanRangesBatched(ranges, r)
	}
	return scanRangesScalar(ranges, r)
}

type rangePair struct {
	lo, hi rune
}

func scanRangesScalar(ranges []rangePair, r rune) bool {
	for _, rg := range ranges {
		if r >= rg.lo && r <= rg.hi {
			return true
		}
	}
	return false
}

// scanRangesBatched checks four ranges per loop iteration. This is the
// scalar stand-in for what a real AVX2 path would do with a single
// vector compare across four packed (lo,hi) pairs; it exists so the
// dispatch in scanRanges has a genuinely distinct, wider-stride path to
// select on capable hardware rather than a no-op branch.
func scanRangesBatched(ranges []rangePair, r rune) bool {
	n := len(ranges)
	i := 0
	for ; i+4 <= n; i += 4 {
		a, b, c, d := ranges[i], ranges[i+1], ranges[i+2], ranges[i+3]
		if (r >= a.lo && r <= a.hi) ||
			(r >= b.lo && r <= b.hi) ||
			(r >= c.lo && r <= c.hi) ||
			(r >= d.lo && r <= d.hi) {
			return true
		}
	}
	for ; i < n; i++ {
		if r >= ranges[i].lo && r <= ranges[i].hi {
			return true
		}
	}
	return false
}
