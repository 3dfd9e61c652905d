package mock

import (
	"context"

	locaties "github.com/Dexagod/interreg-static-test"
)

// Compile-time interface verification.
var (
	_ locaties.RecordWriter   = (*RecordWriter)(nil)
	_ locaties.SitemapService = (*SitemapService)(nil)
)

// RecordWriter is a mock implementation of locaties.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(ctx context.Context, records []*locaties.Record) error
}

func (w *RecordWriter) WriteRecords(ctx context.Context, records []*locaties.Record) error {
	return w.WriteRecordsFn(ctx, records)
}

// SitemapService is a mock implementation of locaties.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *locaties.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *locaties.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
