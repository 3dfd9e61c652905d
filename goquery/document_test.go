package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	locaties "github.com/Dexagod/interreg-static-test"
	"github.com/Dexagod/interreg-static-test/goquery"
)

func parse(t *testing.T, raw string) locaties.Document {
	t.Helper()
	doc, err := goquery.NewParser().Parse(raw)
	require.NoError(t, err)
	return doc
}

func TestDocument_QueryAll_DocumentOrder(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<html><body>
<a href="/een">eerste</a>
<div><a href="/twee">tweede</a></div>
<a href="/drie">derde</a>
</body></html>`)

	anchors := doc.QueryAll("a[href]")
	require.Len(t, anchors, 3)
	assert.Equal(t, "eerste", anchors[0].Text())
	assert.Equal(t, "tweede", anchors[1].Text())
	assert.Equal(t, "derde", anchors[2].Text())
}

func TestDocument_QueryAll_NoMatches(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<html><body><p>niets</p></body></html>`)
	assert.Empty(t, doc.QueryAll("a[rel=next]"))
}

func TestElement_QueryAll_ScopedToDescendants(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<html><body>
<a href="/locaties/31032-t-kroonrad/"><img src="/uploads/binnen.jpg"></a>
<img src="/uploads/buiten.jpg">
</body></html>`)

	anchors := doc.QueryAll("a")
	require.Len(t, anchors, 1)
	imgs := anchors[0].QueryAll("img")
	require.Len(t, imgs, 1)
	src, ok := imgs[0].Attr("src")
	require.True(t, ok)
	assert.Equal(t, "/uploads/binnen.jpg", src)
}

func TestElement_Attr(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<html><body><a rel="next" href="#">volgende</a></body></html>`)
	els := doc.QueryAll("a")
	require.Len(t, els, 1)

	rel, ok := els[0].Attr("rel")
	require.True(t, ok)
	assert.Equal(t, "next", rel)

	_, ok = els[0].Attr("aria-disabled")
	assert.False(t, ok)
}

func TestElement_Text_Trimmed(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<html><body><span aria-current="page">
	2
</span></body></html>`)
	els := doc.QueryAll(`[aria-current="page"]`)
	require.Len(t, els, 1)
	assert.Equal(t, "2", els[0].Text())
}

func TestElement_Lines(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<html><body>
<a href="/locaties/31032-t-kroonrad/">
	<div>  3294   Molenstede  </div>
	<div>'t Kroonrad</div>
	<script>var x = "nooit";</script>
	<style>.a { color: red }</style>
</a>
</body></html>`)

	els := doc.QueryAll("a")
	require.Len(t, els, 1)
	assert.Equal(t, []string{"3294 Molenstede", "'t Kroonrad"}, els[0].Lines())
}

func TestElement_Lines_SplitsTextNodeOnNewlines(t *testing.T) {
	t.Parallel()

	// A single text node holding two visual lines must yield two lines, not
	// one merged string.
	doc := parse(t, "<html><body><a href=\"/x\">3294 Molenstede\n't Kroonrad</a></body></html>")

	els := doc.QueryAll("a")
	require.Len(t, els, 1)
	assert.Equal(t, []string{"3294 Molenstede", "'t Kroonrad"}, els[0].Lines())
}
