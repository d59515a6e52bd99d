package mock

import "github.com/fwojciec/pagefix"

// Compile-time interface verification.
var (
	_ pagefix.DivRemover         = (*DivRemover)(nil)
	_ pagefix.ContainerExtractor = (*ContainerExtractor)(nil)
	_ pagefix.PageRenderer       = (*PageRenderer)(nil)
)

// DivRemover is a mock implementation of pagefix.DivRemover.
type DivRemover struct {
	RemoveDivsFn func(html, class string) (string, int, error)
}

func (r *DivRemover) RemoveDivs(html, class string) (string, int, error) {
	return r.RemoveDivsFn(html, class)
}

// ContainerExtractor is a mock implementation of pagefix.ContainerExtractor.
type ContainerExtractor struct {
	ExtractFn func(html string) (*pagefix.Extraction, error)
}

func (e *ContainerExtractor) Extract(html string) (*pagefix.Extraction, error) {
	return e.ExtractFn(html)
}

// PageRenderer is a mock implementation of pagefix.PageRenderer.
type PageRenderer struct {
	RenderFn func(title, content string) string
}

func (r *PageRenderer) Render(title, content string) string {
	return r.RenderFn(title, content)
}
