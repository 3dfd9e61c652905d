package crawl

import (
	"sort"

	locaties "github.com/Dexagod/interreg-static-test"
)

// Merger accumulates listing sightings across pages into one canonical map
// keyed by normalized URL. The earliest non-empty value wins per field;
// later sightings only fill gaps. The merger is owned by the single crawl
// loop, so no locking is needed.
type Merger struct {
	byURL map[string]*locaties.Sighting
}

// NewMerger creates an empty Merger.
func NewMerger() *Merger {
	return &Merger{byURL: make(map[string]*locaties.Sighting)}
}

// Add folds one sighting into the map. Sightings without a URL are ignored;
// identity is required for deduplication.
func (m *Merger) Add(s *locaties.Sighting) {
	if s == nil || s.Validate() != nil {
		return
	}
	existing, ok := m.byURL[s.URL]
	if !ok {
		clone := *s
		m.byURL[s.URL] = &clone
		return
	}
	existing.Fill(s)
}

// AddAll folds a page's extraction result into the map.
func (m *Merger) AddAll(sightings []*locaties.Sighting) {
	for _, s := range sightings {
		m.Add(s)
	}
}

// Len returns the number of unique listings accumulated so far.
func (m *Merger) Len() int {
	return len(m.byURL)
}

// Records produces the final output: every accumulated listing as a
// canonical record, sorted by URL ascending so the order is reproducible
// regardless of crawl order. If max > 0 the result is truncated to max
// records.
func (m *Merger) Records(max int) []*locaties.Record {
	urls := make([]string, 0, len(m.byURL))
	for u := range m.byURL {
		urls = append(urls, u)
	}
	sort.Strings(urls)

	if max > 0 && len(urls) > max {
		urls = urls[:max]
	}

	records := make([]*locaties.Record, 0, len(urls))
	for _, u := range urls {
		records = append(records, locaties.Canonicalize(m.byURL[u]))
	}
	return records
}
