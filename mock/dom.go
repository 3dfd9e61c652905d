package mock

import (
	locaties "github.com/Dexagod/interreg-static-test"
)

// Compile-time interface verification.
var (
	_ locaties.Parser   = (*Parser)(nil)
	_ locaties.Document = (*Document)(nil)
	_ locaties.Element  = (*Element)(nil)
)

// Parser is a mock implementation of locaties.Parser.
type Parser struct {
	ParseFn func(html string) (locaties.Document, error)
}

func (p *Parser) Parse(html string) (locaties.Document, error) {
	return p.ParseFn(html)
}

// Document is a constructive fake of locaties.Document: selectors map
// directly to prebuilt element lists.
type Document struct {
	Elements map[string][]locaties.Element
}

func (d *Document) QueryAll(selector string) []locaties.Element {
	return d.Elements[selector]
}

// Element is a constructive fake of locaties.Element.
type Element struct {
	Attrs      map[string]string
	TextValue  string
	LinesValue []string
	Children   map[string][]locaties.Element
}

func (e *Element) QueryAll(selector string) []locaties.Element {
	return e.Children[selector]
}

func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

func (e *Element) Text() string {
	return e.TextValue
}

func (e *Element) Lines() []string {
	return e.LinesValue
}
