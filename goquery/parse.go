package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagefix"
	"golang.org/x/net/html"
)

// parseDocument parses src with scripting disabled, so <noscript> content
// is built into elements instead of being kept as raw text.
func parseDocument(src string) (*goquery.Document, error) {
	root, err := html.ParseWithOptions(strings.NewReader(src), html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, pagefix.Errorf(pagefix.EPARSE, "failed to parse HTML: %v", err)
	}
	return goquery.NewDocumentFromNode(root), nil
}
