package ast

// Sized wraps n in a Sized node imposing an upper bound of size
// characters on generated output. Returns *SizeError wrapping
// ErrSizeTooSmall if size < n.MinLength().
func (n *Node) Sized(size int) (*Node, error) {
	if size < n.MinLength() {
		return nil, &SizeError{Size: size, MinLength: n.MinLength(), Err: ErrSizeTooSmall}
	}

	s := &Node{kind: KindSized, child: n, size: size}
	s.minLen, s.maxLen = sizedLength(n, size)
	return s, nil
}

// MustSized is Sized but panics on error.
func (n *Node) MustSized(size int) *Node {
	s, err := n.Sized(size)
	if err != nil {
		panic("ast: Sized: " + err.Error())
	}
	return s
}
