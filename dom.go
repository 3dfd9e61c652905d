package locaties

// Document is a minimal DOM-query capability over one rendered page
// snapshot. Extraction heuristics depend only on this interface, which
// keeps them testable without a live renderer.
type Document interface {
	// QueryAll returns every element matching the CSS selector,
	// in document order.
	QueryAll(selector string) []Element
}

// Element is a handle to one element in a rendered page snapshot.
type Element interface {
	// QueryAll returns matching descendant elements in document order.
	QueryAll(selector string) []Element

	// Attr returns the named attribute value. The bool is false when the
	// attribute is absent.
	Attr(name string) (string, bool)

	// Text returns the element's combined text content, trimmed.
	Text() string

	// Lines returns the element's text content split into trimmed,
	// whitespace-collapsed lines, one per text node, in document order.
	// Empty lines are omitted.
	Lines() []string
}

// Parser turns an HTML snapshot into a queryable Document.
type Parser interface {
	Parse(html string) (Document, error)
}
