package goquery

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// isHTMLSpace reports whether r is ASCII whitespace as defined by the HTML
// standard, which is what separates tokens in a class attribute.
func isHTMLSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// hasClassToken reports whether n carries class as one of the
// whitespace-separated tokens of its class attribute. The match is exact:
// "ab" does not match class="abc".
func hasClassToken(n *html.Node, class string) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	for _, a := range n.Attr {
		if a.Namespace != "" || a.Key != "class" {
			continue
		}
		for _, tok := range strings.FieldsFunc(a.Val, isHTMLSpace) {
			if tok == class {
				return true
			}
		}
	}
	return false
}

// isClassDiv reports whether n is an HTML div carrying class.
// The parser lower-cases tag names, so <DIV> is matched too.
func isClassDiv(n *html.Node, class string) bool {
	return n != nil &&
		n.Type == html.ElementNode &&
		n.Namespace == "" &&
		n.DataAtom == atom.Div &&
		hasClassToken(n, class)
}

// hasClassDivAncestor reports whether any ancestor of n is a div carrying class.
func hasClassDivAncestor(n *html.Node, class string) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if isClassDiv(p, class) {
			return true
		}
	}
	return false
}
