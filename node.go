package bigo

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// nodeText returns the source text spanned by n, or "" for a nil node.
func nodeText(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	return n.Content(src)
}

// firstDescendant returns the first node of the given type in a depth-first
// walk of n (including n itself), or nil.
func firstDescendant(n *sitter.Node, nodeType string) *sitter.Node {
	if n == nil {
		return nil
	}
	if n.Type() == nodeType {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if found := firstDescendant(n.Child(i), nodeType); found != nil {
			return found
		}
	}
	return nil
}

// firstIdentifier returns the text of the first identifier descendant of n.
func firstIdentifier(n *sitter.Node, src []byte) string {
	return nodeText(firstDescendant(n, "identifier"), src)
}

// trimExpr strips surrounding whitespace and a trailing semicolon from an
// expression snippet.
func trimExpr(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ";")
	return strings.TrimSpace(s)
}

// leadingInt parses a non-negative decimal integer at the start of s,
// after optional whitespace. Trailing text is ignored, matching atoi.
func leadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	start := i
	v := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		v = v*10 + int(s[i]-'0')
		i++
	}
	if i == start {
		return 0, false
	}
	return v, true
}

// isPlainIdentifier reports whether s is a bare C identifier: ASCII letters,
// digits, and underscores only, non-empty, not starting with a digit.
func isPlainIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
