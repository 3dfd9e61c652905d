// Package goquery implements the locaties DOM-query capability over
// rendered HTML snapshots.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	locaties "github.com/Dexagod/interreg-static-test"
)

// Compile-time interface verification.
var (
	_ locaties.Parser   = (*Parser)(nil)
	_ locaties.Document = (*Document)(nil)
	_ locaties.Element  = (*Element)(nil)
)

// Parser parses HTML snapshots into queryable documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds a Document from an HTML snapshot.
func (p *Parser) Parse(raw string) (locaties.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, locaties.Errorf(locaties.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Document wraps a parsed goquery document.
type Document struct {
	doc *goquery.Document
}

// QueryAll returns every element matching the CSS selector in document order.
func (d *Document) QueryAll(selector string) []locaties.Element {
	return collect(d.doc.Find(selector))
}

// Element wraps a single-node goquery selection.
type Element struct {
	sel *goquery.Selection
}

// QueryAll returns matching descendant elements in document order.
func (e *Element) QueryAll(selector string) []locaties.Element {
	return collect(e.sel.Find(selector))
}

// Attr returns the named attribute value.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// Text returns the element's combined text content, trimmed.
func (e *Element) Text() string {
	return strings.TrimSpace(e.sel.Text())
}

// Lines returns the element's text content as trimmed, whitespace-collapsed
// lines, one per text node, in document order. Script and style contents
// are skipped.
func (e *Element) Lines() []string {
	var lines []string
	for _, n := range e.sel.Nodes {
		walkText(n, &lines)
	}
	return lines
}

func walkText(n *html.Node, lines *[]string) {
	if n.Type == html.TextNode {
		for _, part := range strings.Split(n.Data, "\n") {
			if line := strings.Join(strings.Fields(part), " "); line != "" {
				*lines = append(*lines, line)
			}
		}
		return
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkText(c, lines)
	}
}

func collect(sel *goquery.Selection) []locaties.Element {
	var els []locaties.Element
	sel.Each(func(_ int, s *goquery.Selection) {
		els = append(els, &Element{sel: s})
	})
	return els
}
