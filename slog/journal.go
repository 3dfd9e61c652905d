package slog

import (
	"context"
	"log/slog"
	"time"

	locaties "github.com/Dexagod/interreg-static-test"
)

// Ensure LoggingJournal implements locaties.CrawlJournal.
var _ locaties.CrawlJournal = (*LoggingJournal)(nil)

// LoggingJournal wraps a CrawlJournal with debug logging. Journal writes sit
// on the crawl's hot path, so everything logs at debug level.
type LoggingJournal struct {
	next   locaties.CrawlJournal
	logger *slog.Logger
}

// NewLoggingJournal creates a new LoggingJournal.
func NewLoggingJournal(next locaties.CrawlJournal, logger *slog.Logger) *LoggingJournal {
	return &LoggingJournal{next: next, logger: logger}
}

// BeginRun delegates to the wrapped journal.
func (j *LoggingJournal) BeginRun(ctx context.Context, startURL string) (run *locaties.CrawlRun, err error) {
	defer func(begin time.Time) {
		id := ""
		if run != nil {
			id = run.ID
		}
		j.logger.Debug("journal begin run",
			"id", id,
			"url", startURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return j.next.BeginRun(ctx, startURL)
}

// RecordVisit delegates to the wrapped journal.
func (j *LoggingJournal) RecordVisit(ctx context.Context, visit *locaties.PageVisit) (err error) {
	defer func(begin time.Time) {
		j.logger.Debug("journal visit",
			"run", visit.RunID,
			"page", visit.Page,
			"listings", visit.Listings,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return j.next.RecordVisit(ctx, visit)
}

// FinishRun delegates to the wrapped journal.
func (j *LoggingJournal) FinishRun(ctx context.Context, id, status string, pages, records int) (err error) {
	defer func(begin time.Time) {
		j.logger.Debug("journal finish run",
			"id", id,
			"status", status,
			"pages", pages,
			"records", records,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return j.next.FinishRun(ctx, id, status, pages, records)
}

// FindRuns delegates to the wrapped journal.
func (j *LoggingJournal) FindRuns(ctx context.Context, limit int) (runs []*locaties.CrawlRun, err error) {
	defer func(begin time.Time) {
		j.logger.Debug("journal find runs",
			"limit", limit,
			"count", len(runs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return j.next.FindRuns(ctx, limit)
}
