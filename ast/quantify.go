package ast

// Quantify wraps n in a Quantified node repeating n between min and max
// times inclusive (max == Infinite for unbounded). Returns
// *QuantifyError wrapping ErrInvalidRange if min is negative, max is
// negative and not Infinite, or min > max.
func (n *Node) Quantify(min, max int, qtype QuantifierType) (*Node, error) {
	if min < 0 || (max < 0 && max != Infinite) || (max != Infinite && min > max) {
		return nil, &QuantifyError{Min: min, Max: max, Err: ErrInvalidRange}
	}

	q := &Node{
		kind:  KindQuantified,
		child: n,
		min:   min,
		max:   max,
		qtype: qtype,
	}
	q.minLen, q.maxLen = quantifiedLength(n, min, max)
	return q, nil
}

// MustQuantify is Quantify but panics on error, for callers constructing
// trees from values known to be valid at construction time (mirrors the
// teacher's MustCompile panic-message convention).
func (n *Node) MustQuantify(min, max int, qtype QuantifierType) *Node {
	q, err := n.Quantify(min, max, qtype)
	if err != nil {
		panic("ast: Quantify: " + err.Error())
	}
	return q
}
