// Package pagefix provides batch tools that rewrite local, already-rendered
// HTML files in place. One tool strips class-filtered divs from every page
// under a directory; the other re-wraps a page's container element in a
// fixed site template.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, slog/).
package pagefix
