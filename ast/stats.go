package ast

// Stats is a read-only snapshot of a tree's shape, computed on demand by
// Describe. It exists for the same reason the teacher package's
// meta.Engine exposes diagnostic counters: a caller tuning Config's
// resource limits (IntersectionRetries in particular) needs to know
// whether a tree even contains an Intersection before raising them, and
// NodeCount/Depth are the usual "is this tree too big to generate from
// cheaply" questions. Nothing in Stats is tracked during Generate/Test —
// it is computed fresh each call, so it never touches the hot path.
type Stats struct {
	// NodeCount is the total number of Node values in the tree, root
	// included.
	NodeCount int
	// Depth is the number of edges on the tree's longest root-to-leaf
	// path (a single leaf node has Depth 0).
	Depth int
	// HasIntersection reports whether any node in the tree is a
	// KindIntersection, the only operator whose Generate can fail at
	// runtime (ErrIntersectionExhausted) rather than only at
	// construction time.
	HasIntersection bool
}

// Describe walks n's tree and returns a Stats snapshot.
func Describe(n *Node) Stats {
	count, depth, hasIntersection := describe(n)
	return Stats{NodeCount: count, Depth: depth, HasIntersection: hasIntersection}
}

func describe(n *Node) (count, depth int, hasIntersection bool) {
	count = 1
	hasIntersection = n.kind == KindIntersection

	switch n.kind {
	case KindConcat, KindUnion, KindIntersection:
		for _, child := range n.children {
			cCount, cDepth, cHasIntersection := describe(child)
			count += cCount
			if cDepth+1 > depth {
				depth = cDepth + 1
			}
			hasIntersection = hasIntersection || cHasIntersection
		}
	case KindQuantified, KindSized:
		cCount, cDepth, cHasIntersection := describe(n.child)
		count += cCount
		depth = cDepth + 1
		hasIntersection = hasIntersection || cHasIntersection
	}

	return count, depth, hasIntersection
}
