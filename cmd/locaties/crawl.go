package main

import (
	"fmt"

	locaties "github.com/Dexagod/interreg-static-test"
	"github.com/Dexagod/interreg-static-test/crawl"
	"github.com/Dexagod/interreg-static-test/fs"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	deps.Crawler.Config = crawl.Config{
		StartURL:   c.URL,
		MaxRecords: c.MaxRecords,
		MaxPages:   c.MaxPages,
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressPage:
			fmt.Fprintf(deps.Stdout, "  page %d: %d listings (%d unique)\n",
				event.Page, event.Listings, event.Total)
		case crawl.ProgressFinished:
			fmt.Fprintf(deps.Stdout, "  done after %d page(s): %s\n", event.Page, event.Stop)
		}
	}

	result, err := deps.Crawler.Run(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locaties.ErrorMessage(err))
		return err
	}

	writers := []locaties.RecordWriter{fs.NewWriter(c.Out)}
	if c.TSV != "" {
		writers = append(writers, fs.NewTSVWriter(c.TSV))
	}
	if err := fs.ExportAll(deps.Ctx, result.Records, writers...); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing output: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d records to %s\n", len(result.Records), c.Out)
	return nil
}
