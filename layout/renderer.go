// Package layout holds the site chrome that re-wrapped pages are built from.
package layout

import (
	_ "embed"
	"strings"

	"github.com/fwojciec/pagefix"
	"golang.org/x/net/html"
)

// Insertion points in the page template.
const (
	TitleMarker   = "{{title}}"
	ContentMarker = "{{content}}"
)

// DefaultTitle is used for pages that have no <title> element.
const DefaultTitle = "DU A Unit Admission Question Bank - চর্চা"

// page is the site chrome: sidebar, header, stylesheet and script
// references, and the mobile menu overlay. It must stay byte-identical to
// the live site.
//
//go:embed page.html
var page string

// Ensure Renderer implements pagefix.PageRenderer at compile time.
var _ pagefix.PageRenderer = (*Renderer)(nil)

// Renderer fills the page template by literal substitution.
type Renderer struct {
	template string
}

// NewRenderer creates a new Renderer over the embedded site template.
func NewRenderer() *Renderer {
	return &Renderer{template: page}
}

// Template returns the raw template with its insertion markers.
func (r *Renderer) Template() string {
	return r.template
}

// Render returns the template with the escaped title and the raw content
// markup substituted in. Substitution is a single pass, so markers that
// appear inside content are left alone.
func (r *Renderer) Render(title, content string) string {
	return strings.NewReplacer(
		TitleMarker, html.EscapeString(title),
		ContentMarker, content,
	).Replace(r.template)
}
