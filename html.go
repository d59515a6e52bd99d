package pagefix

import "strings"

// ContainerClass is the class token that marks a page's main content element.
const ContainerClass = "container"

// DivRemover strips class-filtered div elements from an HTML document.
type DivRemover interface {
	// RemoveDivs removes every div whose class token set contains class,
	// together with its subtree, and returns the rewritten HTML and the
	// number of top-level matches removed.
	// When nothing matches, the input is returned unchanged and removed is 0.
	RemoveDivs(html, class string) (out string, removed int, err error)
}

// Extraction holds the parts of a page that survive re-wrapping.
type Extraction struct {
	// Title is the text of the first <title> element.
	Title string

	// HasTitle reports whether the document had a <title> element at all.
	HasTitle bool

	// ContainerHTML is the serialized container element, including its
	// own tag and attributes.
	ContainerHTML string
}

// ContainerExtractor locates the content container of a page.
type ContainerExtractor interface {
	// Extract returns the first element carrying the ContainerClass token
	// and the page title. Returns ENOCONTAINER if no such element exists.
	Extract(html string) (*Extraction, error)
}

// PageRenderer builds a complete page from a title and content markup.
type PageRenderer interface {
	Render(title, content string) string
}

// ValidateClassName returns EINVALID unless class is a single, non-empty
// class token.
func ValidateClassName(class string) error {
	if class == "" {
		return Errorf(EINVALID, "class name required")
	}
	if strings.ContainsAny(class, " \t\n\f\r") {
		return Errorf(EINVALID, "class name %q must be a single token", class)
	}
	return nil
}
