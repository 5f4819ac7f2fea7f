package ast

// Simplify returns a structurally reduced but language-equivalent tree:
// nested Concat/Union/Intersection of the same kind are flattened, a
// single-child Concat/Union/Intersection collapses to that child,
// duplicate Union alternatives are dropped (by Equal), adjacent Concat
// literals with matching case-sensitivity are merged, and a Sized node
// wrapping another Sized node collapses to the tighter of the two
// bounds. Simplify recurses children-first, so a reduction at one level
// can expose another at its parent.
func (n *Node) Simplify() *Node {
	switch n.kind {
	case KindConcat:
		return simplifyConcat(n)
	case KindUnion:
		return simplifyUnion(n)
	case KindIntersection:
		return simplifyIntersection(n)
	case KindQuantified:
		return simplifyQuantified(n)
	case KindSized:
		return simplifySized(n)
	default:
		return n
	}
}

func simplifyChildren(children []*Node) []*Node {
	out := make([]*Node, len(children))
	for i, c := range children {
		out[i] = c.Simplify()
	}
	return out
}

// simplifyConcat flattens nested Concat children, drops empty-literal
// children, and merges adjacent same-case literals.
func simplifyConcat(n *Node) *Node {
	children := simplifyChildren(n.children)

	var flat []*Node
	for _, c := range children {
		if grandchildren, ok := c.Children(); ok && c.kind == KindConcat {
			flat = append(flat, grandchildren...)
			continue
		}
		flat = append(flat, c)
	}

	var merged []*Node
	for _, c := range flat {
		if isEmptyLiteral(c) {
			continue
		}
		if len(merged) > 0 {
			prev := merged[len(merged)-1]
			if ptext, pci, pok := prev.Literal(); pok {
				if text, ci, ok := c.Literal(); ok && ci == pci {
					merged[len(merged)-1] = NewLiteral(ptext+text, ci)
					continue
				}
			}
		}
		merged = append(merged, c)
	}

	if len(merged) == 0 {
		return NewLiteral("", false)
	}
	if len(merged) == 1 {
		return merged[0]
	}
	return NewConcat(merged...)
}

// simplifyUnion flattens nested Union children and drops duplicate
// alternatives in the order they first appear.
func simplifyUnion(n *Node) *Node {
	children := simplifyChildren(n.children)

	var flat []*Node
	for _, c := range children {
		if grandchildren, ok := c.Children(); ok && c.kind == KindUnion {
			flat = append(flat, grandchildren...)
			continue
		}
		flat = append(flat, c)
	}

	var deduped []*Node
	for _, c := range flat {
		dup := false
		for _, existing := range deduped {
			if Equal(c, existing) {
				dup = true
				break
			}
		}
		if !dup {
			deduped = append(deduped, c)
		}
	}

	if len(deduped) == 1 {
		return deduped[0]
	}
	return NewUnion(deduped...)
}

// simplifyIntersection flattens nested Intersection children. Duplicates
// are not dropped here: unlike Union, Intersection's first child plays a
// distinguished role in both Generate (the reject-sampling seed) and
// Negate (spec §9's asymmetric rule), so removing a "redundant" repeat
// could change which child anchors those operations.
func simplifyIntersection(n *Node) *Node {
	children := simplifyChildren(n.children)

	var flat []*Node
	for _, c := range children {
		if grandchildren, ok := c.Children(); ok && c.kind == KindIntersection {
			flat = append(flat, grandchildren...)
			continue
		}
		flat = append(flat, c)
	}

	if len(flat) == 1 {
		return flat[0]
	}
	return NewIntersection(flat...)
}

// simplifyQuantified implements spec §4.6: {1,1} contributes nothing
// beyond its child, so it collapses away entirely; otherwise the
// simplified child is rewrapped in the same bounds.
func simplifyQuantified(n *Node) *Node {
	child := n.child.Simplify()
	if n.min == 1 && n.max == 1 {
		return child
	}
	if child == n.child {
		return n
	}
	return child.MustQuantify(n.min, n.max, n.qtype)
}

// simplifySized collapses Sized(Sized(x, a), b) to Sized(x, min(a, b)).
func simplifySized(n *Node) *Node {
	child := n.child.Simplify()

	if inner, size, ok := child.SizedChild(); ok {
		min := n.size
		if size < min {
			min = size
		}
		return inner.MustSized(min)
	}

	if child == n.child {
		return n
	}
	return child.MustSized(n.size)
}
