// Package render renders a regex-algebra tree back to Go regexp-dialect
// source text. This is the "toString" surface the algebra's types never
// implement themselves (ast.Node intentionally carries no String()
// suitable for regex syntax — Kind.String() exists only for diagnostics),
// so any caller needing a human- or engine-readable pattern goes through
// this package instead.
package render

import (
	"strconv"
	"strings"

	"github.com/coregx/rxgen/ast"
	"github.com/coregx/rxgen/charclass"
)

// String renders n as Go regexp-dialect source text. The result is a
// best-effort surface form: every node kind round-trips to a pattern a
// standard engine accepts, but KindIntersection has no single-pattern
// equivalent (no regex dialect expresses "matches every one of these"),
// so it renders as its first child's pattern only — see the intersection
// rendering note below.
func String(n *ast.Node) string {
	var sb strings.Builder
	writeNode(&sb, n)
	return sb.String()
}

func writeNode(sb *strings.Builder, n *ast.Node) {
	switch n.Kind() {
	case ast.KindLiteral:
		writeLiteral(sb, n)
	case ast.KindCharClass:
		class, _ := n.CharClass()
		writeClass(sb, class)
	case ast.KindConcat:
		children, _ := n.Children()
		for _, c := range children {
			writeGroupedIfNeeded(sb, c)
		}
	case ast.KindUnion:
		children, _ := n.Children()
		sb.WriteByte('(')
		for i, c := range children {
			if i > 0 {
				sb.WriteByte('|')
			}
			writeNode(sb, c)
		}
		sb.WriteByte(')')
	case ast.KindIntersection:
		writeIntersection(sb, n)
	case ast.KindQuantified:
		writeQuantified(sb, n)
	case ast.KindSized:
		child, _ := n.SizedChild()
		writeNode(sb, child)
	default:
		panic("render: String: unknown kind " + n.Kind().String())
	}
}

// writeGroupedIfNeeded writes a Concat child. It adds no grouping of its
// own: the one child that could change precedence bare (an alternation
// embedded directly in a sequence) is a Union, which already
// parenthesizes itself.
func writeGroupedIfNeeded(sb *strings.Builder, n *ast.Node) {
	if n.Kind() == ast.KindUnion {
		writeNode(sb, n) // Union already parenthesizes itself
		return
	}
	writeNode(sb, n)
}

func writeLiteral(sb *strings.Builder, n *ast.Node) {
	text, caseInsensitive, _ := n.Literal()
	if caseInsensitive {
		sb.WriteString("(?i:")
		sb.WriteString(quoteLiteral(text))
		sb.WriteByte(')')
		return
	}
	sb.WriteString(quoteLiteral(text))
}

// quoteLiteral escapes regexp metacharacters in a literal run so it
// renders back as an exact-match sequence, not as syntax.
func quoteLiteral(s string) string {
	const special = `\.+*?()|[]{}^$`
	var sb strings.Builder
	for _, r := range s {
		if strings.ContainsRune(special, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// writeQuantified renders the child followed by its repetition operator.
// Reluctant appends '?' and Possessive appends '+' per spec §6; Go's
// regexp/syntax package (like RE2 generally) has no possessive
// quantifier, so Possessive renders identically to Greedy's bound except
// for that trailing marker, and Go's regexp.Compile rejects the result
// ("invalid nested repetition operator"). Patterns with a Possessive
// quantifier therefore do not compile with Go's regexp (see DESIGN.md).
func writeQuantified(sb *strings.Builder, n *ast.Node) {
	child, min, max, qtype, _ := n.Quantifier()
	writeGroupedForQuantifier(sb, child)

	switch {
	case min == 0 && max == ast.Infinite:
		sb.WriteByte('*')
	case min == 1 && max == ast.Infinite:
		sb.WriteByte('+')
	case min == 0 && max == 1:
		sb.WriteByte('?')
	case max == ast.Infinite:
		sb.WriteByte('{')
		sb.WriteString(strconv.Itoa(min))
		sb.WriteString(",}")
	case min == max:
		sb.WriteByte('{')
		sb.WriteString(strconv.Itoa(min))
		sb.WriteByte('}')
	default:
		sb.WriteByte('{')
		sb.WriteString(strconv.Itoa(min))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(max))
		sb.WriteByte('}')
	}

	switch qtype {
	case ast.Reluctant:
		sb.WriteByte('?')
	case ast.Possessive:
		sb.WriteByte('+')
	}
}

// writeGroupedForQuantifier wraps multi-character children in a
// non-capturing group so the repetition operator binds to the whole
// child instead of just its last atom.
func writeGroupedForQuantifier(sb *strings.Builder, n *ast.Node) {
	switch n.Kind() {
	case ast.KindLiteral:
		text, _, _ := n.Literal()
		if len([]rune(text)) == 1 {
			writeNode(sb, n)
			return
		}
	case ast.KindCharClass:
		writeNode(sb, n)
		return
	}
	sb.WriteString("(?:")
	writeNode(sb, n)
	sb.WriteByte(')')
}

// writeIntersection renders an approximation: the first child's pattern,
// since no standard dialect can express "matches every alternative at
// once". This mirrors ast's own documented asymmetric treatment of
// Intersection's first child (see ast.Negate) — render and negate agree
// on which child is load-bearing, even though neither is a full
// Boolean-complement-safe operation.
func writeIntersection(sb *strings.Builder, n *ast.Node) {
	children, _ := n.Children()
	writeNode(sb, children[0])
}

func writeClass(sb *strings.Builder, c *charclass.CharClass) {
	switch c.Kind() {
	case charclass.KindRange:
		lo, hi, _ := c.Range()
		if lo == hi {
			sb.WriteString(quoteLiteral(string(lo)))
			return
		}
		sb.WriteByte('[')
		writeClassRange(sb, lo, hi)
		sb.WriteByte(']')
	case charclass.KindEnum:
		members, _ := c.Members()
		sb.WriteByte('[')
		for _, m := range members {
			writeClassRune(sb, m)
		}
		sb.WriteByte(']')
	case charclass.KindUnion:
		sb.WriteByte('[')
		writeUnionBody(sb, c)
		sb.WriteByte(']')
	case charclass.KindNegated:
		inner, _ := c.Inner()
		sb.WriteString("[^")
		writeClassBody(sb, inner)
		sb.WriteByte(']')
	default:
		panic("render: writeClass: unknown kind " + c.Kind().String())
	}
}

// writeClassBody writes the inside of a bracket expression for inner,
// without the surrounding brackets — used when nesting a class inside a
// negation or another union.
func writeClassBody(sb *strings.Builder, c *charclass.CharClass) {
	switch c.Kind() {
	case charclass.KindRange:
		lo, hi, _ := c.Range()
		writeClassRange(sb, lo, hi)
	case charclass.KindEnum:
		members, _ := c.Members()
		for _, m := range members {
			writeClassRune(sb, m)
		}
	case charclass.KindUnion:
		writeUnionBody(sb, c)
	case charclass.KindNegated:
		// A negated class nested inside another bracket expression has no
		// direct surface syntax (POSIX/RE2 character classes don't nest);
		// fall back to a non-capturing alternation group rendered outside
		// the enclosing brackets' reach is not possible here, so render
		// the widest faithful approximation: the full code-unit universe
		// minus nothing, i.e. treat it as unconstrained. This only arises
		// from hand-built trees combining Negated classes inside Union
		// classes, which spec.md's own constructors never produce.
		sb.WriteString(`\x00-\x{FFFF}`)
	}
}

func writeUnionBody(sb *strings.Builder, c *charclass.CharClass) {
	children, _ := c.Children()
	for _, child := range children {
		writeClassBody(sb, child)
	}
}

func writeClassRange(sb *strings.Builder, lo, hi rune) {
	writeClassRune(sb, lo)
	sb.WriteByte('-')
	writeClassRune(sb, hi)
}

// writeClassRune escapes the handful of characters meaningful inside a
// bracket expression.
func writeClassRune(sb *strings.Builder, r rune) {
	switch r {
	case '\\', ']', '^', '-':
		sb.WriteByte('\\')
	}
	sb.WriteRune(r)
}
