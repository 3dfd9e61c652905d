package locaties

import (
	"context"
	"time"
)

// Run statuses recorded in the crawl journal.
const (
	RunRunning   = "running"
	RunCompleted = "completed"
	RunFailed    = "failed"
)

// CrawlRun describes one crawl of the source site.
type CrawlRun struct {
	ID         string    `json:"id"`
	StartURL   string    `json:"startUrl"`
	Status     string    `json:"status"`
	Pages      int       `json:"pages"`
	Records    int       `json:"records"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// PageVisit describes one listing page observed during a run: the two
// advancement signals as they appeared, the number of listings extracted,
// and a hash of the rendered snapshot for change inspection across runs.
type PageVisit struct {
	RunID        string    `json:"runId"`
	Page         int       `json:"page"`
	Indicator    string    `json:"indicator"`
	FirstURL     string    `json:"firstUrl"`
	Listings     int       `json:"listings"`
	SnapshotHash string    `json:"snapshotHash"`
	VisitedAt    time.Time `json:"visitedAt"`
}

// CrawlJournal persists crawl runs and their page visits. The journal is
// an observability aid: crawl correctness never depends on it, and
// journal failures must not abort a crawl.
type CrawlJournal interface {
	// BeginRun records the start of a crawl and returns the new run.
	BeginRun(ctx context.Context, startURL string) (*CrawlRun, error)

	// RecordVisit appends one page visit to a run.
	RecordVisit(ctx context.Context, visit *PageVisit) error

	// FinishRun records the final status and totals of a run.
	// Returns ENOTFOUND if the run does not exist.
	FinishRun(ctx context.Context, id, status string, pages, records int) error

	// FindRuns returns the most recent runs, newest first.
	FindRuns(ctx context.Context, limit int) ([]*CrawlRun, error)
}
