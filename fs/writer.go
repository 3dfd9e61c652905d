// Package fs writes the final record set to disk with atomic semantics:
// content goes to a temporary file that is renamed into place, so a failed
// run never leaves a truncated output behind.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	locaties "github.com/Dexagod/interreg-static-test"
)

// Ensure Writer implements locaties.RecordWriter at compile time.
var _ locaties.RecordWriter = (*Writer)(nil)

// Writer writes records as a JSON array to a single file.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteRecords serializes the records and atomically replaces the target
// file. Nullable fields serialize as explicit JSON nulls.
func (w *Writer) WriteRecords(ctx context.Context, records []*locaties.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return writeAtomic(w.path, data)
}

// writeAtomic writes data to path via a temporary sibling file and rename.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
