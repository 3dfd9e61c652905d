package mock

import (
	"context"

	locaties "github.com/Dexagod/interreg-static-test"
)

var _ locaties.CrawlJournal = (*CrawlJournal)(nil)

// CrawlJournal is a mock implementation of locaties.CrawlJournal.
type CrawlJournal struct {
	BeginRunFn    func(ctx context.Context, startURL string) (*locaties.CrawlRun, error)
	RecordVisitFn func(ctx context.Context, visit *locaties.PageVisit) error
	FinishRunFn   func(ctx context.Context, id, status string, pages, records int) error
	FindRunsFn    func(ctx context.Context, limit int) ([]*locaties.CrawlRun, error)
}

func (j *CrawlJournal) BeginRun(ctx context.Context, startURL string) (*locaties.CrawlRun, error) {
	return j.BeginRunFn(ctx, startURL)
}

func (j *CrawlJournal) RecordVisit(ctx context.Context, visit *locaties.PageVisit) error {
	return j.RecordVisitFn(ctx, visit)
}

func (j *CrawlJournal) FinishRun(ctx context.Context, id, status string, pages, records int) error {
	return j.FinishRunFn(ctx, id, status, pages, records)
}

func (j *CrawlJournal) FindRuns(ctx context.Context, limit int) ([]*locaties.CrawlRun, error) {
	return j.FindRunsFn(ctx, limit)
}
