package crawl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	locaties "github.com/Dexagod/interreg-static-test"
	"github.com/Dexagod/interreg-static-test/crawl"
)

func TestMerger_EarliestNonEmptyWins(t *testing.T) {
	t.Parallel()

	m := crawl.NewMerger()
	m.Add(&locaties.Sighting{
		URL:   "https://example.com/locaties/31032-t-kroonrad",
		Title: "'t Kroonrad",
	})
	m.Add(&locaties.Sighting{
		URL:         "https://example.com/locaties/31032-t-kroonrad",
		Title:       "Andere titel",
		Description: "3294 Molenstede",
		Image:       "https://cdn.xano.io/thumbnail_123.jpg",
	})

	records := m.Records(0)
	require.Len(t, records, 1)
	assert.Equal(t, "'t Kroonrad", records[0].Title, "earlier title must not be overwritten")
	require.NotNil(t, records[0].Description)
	assert.Equal(t, "3294 Molenstede", *records[0].Description)
	require.NotNil(t, records[0].Image)
	assert.Equal(t, "https://cdn.xano.io/thumbnail_123.jpg", *records[0].Image)
}

func TestMerger_ComplementaryFieldsAcrossPages(t *testing.T) {
	t.Parallel()

	// Same listing seen on two pages with a different subset of fields each
	// time; the merged record carries the union.
	m := crawl.NewMerger()
	m.AddAll([]*locaties.Sighting{
		{URL: "https://example.com/locaties/31032-t-kroonrad", Title: "'t Kroonrad"},
	})
	m.AddAll([]*locaties.Sighting{
		{URL: "https://example.com/locaties/31032-t-kroonrad", Image: "https://cdn.xano.io/thumbnail_123.jpg"},
	})

	assert.Equal(t, 1, m.Len())
	records := m.Records(0)
	require.Len(t, records, 1)
	assert.Equal(t, "'t Kroonrad", records[0].Title)
	require.NotNil(t, records[0].Image)
	assert.Equal(t, "https://cdn.xano.io/thumbnail_123.jpg", *records[0].Image)
}

func TestMerger_RecordsSortedByURL(t *testing.T) {
	t.Parallel()

	m := crawl.NewMerger()
	m.AddAll([]*locaties.Sighting{
		{URL: "https://example.com/locaties/40211-de-schuur"},
		{URL: "https://example.com/locaties/31032-t-kroonrad"},
		{URL: "https://example.com/locaties/35999-den-hof"},
	})

	records := m.Records(0)
	require.Len(t, records, 3)
	assert.Equal(t, "https://example.com/locaties/31032-t-kroonrad", records[0].URL)
	assert.Equal(t, "https://example.com/locaties/35999-den-hof", records[1].URL)
	assert.Equal(t, "https://example.com/locaties/40211-de-schuur", records[2].URL)
}

func TestMerger_RecordsTruncatesAtMax(t *testing.T) {
	t.Parallel()

	m := crawl.NewMerger()
	m.AddAll([]*locaties.Sighting{
		{URL: "https://example.com/locaties/40211-de-schuur"},
		{URL: "https://example.com/locaties/31032-t-kroonrad"},
		{URL: "https://example.com/locaties/35999-den-hof"},
	})

	records := m.Records(2)
	require.Len(t, records, 2)
	assert.Equal(t, "https://example.com/locaties/31032-t-kroonrad", records[0].URL,
		"truncation happens after sorting")
	assert.Equal(t, "https://example.com/locaties/35999-den-hof", records[1].URL)
}

func TestMerger_IgnoresSightingsWithoutURL(t *testing.T) {
	t.Parallel()

	m := crawl.NewMerger()
	m.Add(nil)
	m.Add(&locaties.Sighting{Title: "zonder identiteit"})

	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Records(0))
}

func TestMerger_AddDoesNotAliasCaller(t *testing.T) {
	t.Parallel()

	s := &locaties.Sighting{URL: "https://example.com/locaties/31032-t-kroonrad", Title: "'t Kroonrad"}
	m := crawl.NewMerger()
	m.Add(s)
	s.Title = "gewijzigd na toevoegen"

	records := m.Records(0)
	require.Len(t, records, 1)
	assert.Equal(t, "'t Kroonrad", records[0].Title)
}

func TestMerger_CanonicalizesIdentity(t *testing.T) {
	t.Parallel()

	m := crawl.NewMerger()
	m.Add(&locaties.Sighting{URL: "https://example.com/locaties/31032-t-kroonrad"})

	records := m.Records(0)
	require.Len(t, records, 1)
	r := records[0]
	require.NotNil(t, r.Key)
	assert.Equal(t, "31032-t-kroonrad", *r.Key)
	require.NotNil(t, r.ID)
	assert.Equal(t, "31032", *r.ID)
	require.NotNil(t, r.Slug)
	assert.Equal(t, "t-kroonrad", *r.Slug)
	assert.Equal(t, "31032-t-kroonrad", r.Title, "missing title falls back to the key")
}
