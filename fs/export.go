package fs

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	locaties "github.com/Dexagod/interreg-static-test"
)

// ExportAll writes the record set through every writer concurrently.
// The record slice is read-only by contract, so concurrent export is safe.
func ExportAll(ctx context.Context, records []*locaties.Record, writers ...locaties.RecordWriter) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, w := range writers {
		w := w
		g.Go(func() error {
			return w.WriteRecords(ctx, records)
		})
	}
	return g.Wait()
}

// Ensure TSVWriter implements locaties.RecordWriter at compile time.
var _ locaties.RecordWriter = (*TSVWriter)(nil)

// TSVWriter writes records as a tab-separated file with a header row.
// Null fields serialize as empty cells.
type TSVWriter struct {
	path string
}

// NewTSVWriter creates a TSVWriter targeting the given file path.
func NewTSVWriter(path string) *TSVWriter {
	return &TSVWriter{path: path}
}

// WriteRecords serializes the records and atomically replaces the target file.
func (w *TSVWriter) WriteRecords(ctx context.Context, records []*locaties.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("url\tcanonical\tkey\tid\tslug\ttitle\tdescription\timage\n")
	for _, rec := range records {
		row := []string{
			rec.URL,
			rec.Canonical,
			deref(rec.Key),
			deref(rec.ID),
			deref(rec.Slug),
			rec.Title,
			deref(rec.Description),
			deref(rec.Image),
		}
		for i, cell := range row {
			if i > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(sanitizeCell(cell))
		}
		b.WriteByte('\n')
	}

	return writeAtomic(w.path, []byte(b.String()))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// sanitizeCell strips characters that would break the row structure.
func sanitizeCell(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
