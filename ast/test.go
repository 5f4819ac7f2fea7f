package ast

import "unicode"

// Test reports whether input, taken as a whole, is in n's language.
// This is full-string containment only (spec §1): Test never looks for
// a match inside a longer string. Test is total — it never errors,
// returning false for any non-match including a length mismatch.
func (n *Node) Test(input string) bool {
	return n.testRunes([]rune(input))
}

// testRunes dispatches Test's per-kind logic over a pre-decoded rune
// slice, so Concat/Quantified's position-set walk (spec §4.3/§4.6) can
// slice without repeated UTF-8 re-decoding.
func (n *Node) testRunes(s []rune) bool {
	switch n.kind {
	case KindLiteral:
		return testLiteral(n, s)
	case KindCharClass:
		return len(s) == 1 && n.class.Contains(s[0])
	case KindConcat:
		return testConcat(n, s)
	case KindUnion:
		return testUnion(n, s)
	case KindIntersection:
		return testIntersection(n, s)
	case KindQuantified:
		return testQuantified(n, s)
	case KindSized:
		return n.child.testRunes(s)
	default:
		panic("ast: Test: unknown kind " + n.kind.String())
	}
}

func testLiteral(n *Node, s []rune) bool {
	text := []rune(n.text)
	if len(text) != len(s) {
		return false
	}
	if !n.caseInsensitive {
		for i, c := range text {
			if s[i] != c {
				return false
			}
		}
		return true
	}
	for i, c := range text {
		if unicode.ToLower(s[i]) != unicode.ToLower(c) {
			return false
		}
	}
	return true
}

func testUnion(n *Node, s []rune) bool {
	if n.literalAutomaton != nil {
		return matchesAnyLiteralExact(n.literalAutomaton, []byte(string(s)))
	}
	for _, child := range n.children {
		if child.testRunes(s) {
			return true
		}
	}
	return false
}

func testIntersection(n *Node, s []rune) bool {
	for _, child := range n.children {
		if !child.testRunes(s) {
			return false
		}
	}
	return true
}

// testConcat implements spec §4.3's position-set walk: the reachable-end
// set starts at {0} and each child narrows it to the positions it can
// legally end a match at, bounded by the child's own length range.
func testConcat(n *Node, s []rune) bool {
	positions := map[int]bool{0: true}
	for _, child := range n.children {
		positions = stepPositions(positions, child, s)
		if len(positions) == 0 {
			return false
		}
	}
	return positions[len(s)]
}

// testQuantified implements spec §4.6's position-set walk: min mandatory
// iterations, then a reachability fixed point up to max (or until no new
// end positions appear, for max == Infinite — spec §9's "ensure the
// implementation detects the no-new-positions condition explicitly").
func testQuantified(n *Node, s []rune) bool {
	child, minReps, maxReps, _, _ := n.Quantifier()

	frontier := map[int]bool{0: true}
	for i := 0; i < minReps; i++ {
		frontier = stepPositions(frontier, child, s)
		if len(frontier) == 0 {
			return false
		}
	}

	reachable := make(map[int]bool, len(frontier))
	for p := range frontier {
		reachable[p] = true
	}

	for reps := minReps; maxReps == Infinite || reps < maxReps; reps++ {
		next := stepPositions(frontier, child, s)
		grew := false
		for p := range next {
			if !reachable[p] {
				reachable[p] = true
				grew = true
			}
		}
		if !grew {
			break
		}
		frontier = next
	}

	return reachable[len(s)]
}

// stepPositions advances a reachable-position set by one application of
// child: for every start position reached so far, every end position in
// [start+child.MinLength(), start+child.MaxLength()] (clamped to len(s))
// that child.Test accepts becomes reachable.
func stepPositions(prev map[int]bool, child *Node, s []rune) map[int]bool {
	next := make(map[int]bool)
	childMin := child.MinLength()
	childMax := child.MaxLength()
	n := len(s)

	for start := range prev {
		hi := n
		if childMax != Infinite && start+childMax < hi {
			hi = start + childMax
		}
		for end := start + childMin; end <= hi; end++ {
			if child.testRunes(s[start:end]) {
				next[end] = true
			}
		}
	}
	return next
}
