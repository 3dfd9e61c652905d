package locaties_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	locaties "github.com/Dexagod/interreg-static-test"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "strips query",
			url:  "https://example.com/locaties/31032-t-kroonrad?page=2",
			want: "https://example.com/locaties/31032-t-kroonrad",
		},
		{
			name: "strips fragment",
			url:  "https://example.com/locaties/31032-t-kroonrad#photos",
			want: "https://example.com/locaties/31032-t-kroonrad",
		},
		{
			name: "strips trailing slash",
			url:  "https://example.com/locaties/31032-t-kroonrad/",
			want: "https://example.com/locaties/31032-t-kroonrad",
		},
		{
			name: "lowercases scheme and host",
			url:  "HTTPS://Example.COM/locaties/31032-t-kroonrad",
			want: "https://example.com/locaties/31032-t-kroonrad",
		},
		{
			name:    "rejects relative URL",
			url:     "/locaties/31032-t-kroonrad",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := locaties.NormalizeURL(tt.url)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, locaties.EINVALID, locaties.ErrorCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeURL_Idempotent(t *testing.T) {
	t.Parallel()

	once, err := locaties.NormalizeURL("https://Example.com/locaties/31032-t-kroonrad/?x=1#y")
	require.NoError(t, err)

	twice, err := locaties.NormalizeURL(once)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestIsListingURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{
			name: "detail URL matches",
			url:  "https://example.com/locaties/31032-t-kroonrad",
			want: true,
		},
		{
			name: "listing index does not match",
			url:  "https://example.com/locaties",
			want: false,
		},
		{
			name: "four-digit id does not match",
			url:  "https://example.com/locaties/3103-t-kroonrad",
			want: false,
		},
		{
			name: "missing slug does not match",
			url:  "https://example.com/locaties/31032",
			want: false,
		},
		{
			name: "extra trailing segment does not match",
			url:  "https://example.com/locaties/31032-t-kroonrad/fotos",
			want: false,
		},
		{
			name: "unrelated path does not match",
			url:  "https://example.com/nieuws/31032-artikel",
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, locaties.IsListingURL(tt.url))
		})
	}
}

func TestParseListingKey(t *testing.T) {
	t.Parallel()

	key, id, slug, ok := locaties.ParseListingKey("https://example.com/locaties/31032-t-kroonrad")

	require.True(t, ok)
	assert.Equal(t, "31032-t-kroonrad", key)
	assert.Equal(t, "31032", id)
	assert.Equal(t, "t-kroonrad", slug)
}

func TestParseListingKey_NoMatch(t *testing.T) {
	t.Parallel()

	_, _, _, ok := locaties.ParseListingKey("https://example.com/over-ons")

	assert.False(t, ok)
}

func TestSighting_Fill_EarlierNonEmptyWins(t *testing.T) {
	t.Parallel()

	a := &locaties.Sighting{
		URL:   "https://example.com/locaties/31032-t-kroonrad",
		Title: "'t Kroonrad",
	}
	b := &locaties.Sighting{
		URL:         "https://example.com/locaties/31032-t-kroonrad",
		Title:       "Other title",
		Description: "3294 Molenstede",
		Image:       "https://cdn.xano.io/thumbnail_123.jpg",
	}

	a.Fill(b)

	assert.Equal(t, "'t Kroonrad", a.Title, "existing value must not be overwritten")
	assert.Equal(t, "3294 Molenstede", a.Description, "gap must be filled")
	assert.Equal(t, "https://cdn.xano.io/thumbnail_123.jpg", a.Image)
}

func TestSighting_Fill_CommutativeOverNonEmptyValues(t *testing.T) {
	t.Parallel()

	// a and b have complementary fields, so merge order must not matter.
	mk := func() (*locaties.Sighting, *locaties.Sighting) {
		a := &locaties.Sighting{URL: "u", Title: "'t Kroonrad"}
		b := &locaties.Sighting{URL: "u", Image: "https://cdn.xano.io/thumbnail_123.jpg"}
		return a, b
	}

	a1, b1 := mk()
	a1.Fill(b1)

	a2, b2 := mk()
	b2.Fill(a2)

	assert.Equal(t, *a1, *b2)
}

func TestSighting_Fill_Idempotent(t *testing.T) {
	t.Parallel()

	s := &locaties.Sighting{URL: "u", Title: "t", Description: "d", Image: "i"}
	before := *s

	s.Fill(s)

	assert.Equal(t, before, *s)
}

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	t.Run("derives key id slug from listing path", func(t *testing.T) {
		t.Parallel()

		rec := locaties.Canonicalize(&locaties.Sighting{
			URL:         "https://example.com/locaties/31032-t-kroonrad",
			Title:       "'t Kroonrad",
			Description: "3294 Molenstede",
			Image:       "https://cdn.xano.io/thumbnail_123.jpg",
		})

		require.NotNil(t, rec.Key)
		assert.Equal(t, "31032-t-kroonrad", *rec.Key)
		require.NotNil(t, rec.ID)
		assert.Equal(t, "31032", *rec.ID)
		require.NotNil(t, rec.Slug)
		assert.Equal(t, "t-kroonrad", *rec.Slug)
		assert.Equal(t, rec.URL, rec.Canonical)
		require.NotNil(t, rec.Description)
		assert.Equal(t, "3294 Molenstede", *rec.Description)
	})

	t.Run("title falls back to key", func(t *testing.T) {
		t.Parallel()

		rec := locaties.Canonicalize(&locaties.Sighting{
			URL: "https://example.com/locaties/31032-t-kroonrad",
		})

		assert.Equal(t, "31032-t-kroonrad", rec.Title)
	})

	t.Run("title falls back to URL when no key", func(t *testing.T) {
		t.Parallel()

		rec := locaties.Canonicalize(&locaties.Sighting{
			URL: "https://example.com/locaties/special",
		})

		assert.Equal(t, "https://example.com/locaties/special", rec.Title)
		assert.Nil(t, rec.Key)
		assert.Nil(t, rec.ID)
		assert.Nil(t, rec.Slug)
	})

	t.Run("missing optional fields stay null", func(t *testing.T) {
		t.Parallel()

		rec := locaties.Canonicalize(&locaties.Sighting{
			URL:   "https://example.com/locaties/31032-t-kroonrad",
			Title: "'t Kroonrad",
		})

		assert.Nil(t, rec.Description)
		assert.Nil(t, rec.Image)
	})
}
