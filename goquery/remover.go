// Package goquery implements the HTML tree transformations on top of
// goquery and golang.org/x/net/html.
package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagefix"
)

// Ensure Remover implements pagefix.DivRemover at compile time.
var _ pagefix.DivRemover = (*Remover)(nil)

// Remover strips class-filtered divs from HTML documents.
type Remover struct{}

// NewRemover creates a new Remover.
func NewRemover() *Remover {
	return &Remover{}
}

// RemoveDivs removes every div carrying class, with its whole subtree.
//
// Matches are collected in a single scan before anything is removed. Only
// top-level matches are removed and counted; a match nested inside another
// match goes away with its ancestor. When nothing matches the input string
// is returned as is, so a no-op pass never reformats the document.
func (r *Remover) RemoveDivs(src, class string) (string, int, error) {
	if err := pagefix.ValidateClassName(class); err != nil {
		return "", 0, err
	}

	doc, err := parseDocument(src)
	if err != nil {
		return "", 0, err
	}

	matches := doc.Find("div").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return isClassDiv(sel.Get(0), class)
	})
	if matches.Length() == 0 {
		return src, 0, nil
	}

	top := matches.FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return !hasClassDivAncestor(sel.Get(0), class)
	})
	removed := top.Length()
	top.Remove()

	out, err := doc.Html()
	if err != nil {
		return "", 0, pagefix.Errorf(pagefix.EPARSE, "failed to render HTML: %v", err)
	}
	return out, removed, nil
}
