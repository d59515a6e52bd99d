package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagefix"
)

// Ensure Extractor implements pagefix.ContainerExtractor at compile time.
var _ pagefix.ContainerExtractor = (*Extractor)(nil)

// Extractor pulls the container element and title out of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the first element, in document order, carrying the
// container class token, serialized with its own tag and attributes.
// Later container elements are ignored.
func (e *Extractor) Extract(src string) (*pagefix.Extraction, error) {
	doc, err := parseDocument(src)
	if err != nil {
		return nil, err
	}

	container := doc.Find("*").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return hasClassToken(sel.Get(0), pagefix.ContainerClass)
	}).First()
	if container.Length() == 0 {
		return nil, pagefix.Errorf(pagefix.ENOCONTAINER, "could not find %s element", pagefix.ContainerClass)
	}

	containerHTML, err := goquery.OuterHtml(container)
	if err != nil {
		return nil, pagefix.Errorf(pagefix.EPARSE, "failed to render container: %v", err)
	}

	title := doc.Find("title").First()

	return &pagefix.Extraction{
		Title:         title.Text(),
		HasTitle:      title.Length() > 0,
		ContainerHTML: containerHTML,
	}, nil
}
