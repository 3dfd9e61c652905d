package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	locaties "github.com/Dexagod/interreg-static-test"
)

// Compile-time interface verification.
var _ locaties.CrawlJournal = (*JournalService)(nil)

// JournalService implements locaties.CrawlJournal using SQLite.
type JournalService struct {
	db *DB
}

// NewJournalService creates a new JournalService.
func NewJournalService(db *DB) *JournalService {
	return &JournalService{db: db}
}

// BeginRun records the start of a crawl and returns the new run.
func (s *JournalService) BeginRun(ctx context.Context, startURL string) (*locaties.CrawlRun, error) {
	if startURL == "" {
		return nil, locaties.Errorf(locaties.EINVALID, "run start URL required")
	}

	run := &locaties.CrawlRun{
		ID:        uuid.New().String(),
		StartURL:  startURL,
		Status:    locaties.RunRunning,
		StartedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, start_url, status, started_at)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.StartURL, run.Status, run.StartedAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return run, nil
}

// RecordVisit appends one page visit to a run.
func (s *JournalService) RecordVisit(ctx context.Context, visit *locaties.PageVisit) error {
	if visit.RunID == "" {
		return locaties.Errorf(locaties.EINVALID, "visit run ID required")
	}
	if visit.VisitedAt.IsZero() {
		visit.VisitedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visits (run_id, page, indicator, first_url, listings, snapshot_hash, visited_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, visit.RunID, visit.Page, visit.Indicator, visit.FirstURL, visit.Listings,
		visit.SnapshotHash, visit.VisitedAt.Format(time.RFC3339))

	return err
}

// FinishRun records the final status and totals of a run.
func (s *JournalService) FinishRun(ctx context.Context, id, status string, pages, records int) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE runs SET status = ?, pages = ?, records = ?, finished_at = ?
		WHERE id = ?
	`, status, pages, records, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return locaties.Errorf(locaties.ENOTFOUND, "run not found")
	}
	return nil
}

// FindRuns returns the most recent runs, newest first.
func (s *JournalService) FindRuns(ctx context.Context, limit int) ([]*locaties.CrawlRun, error) {
	query := `
		SELECT id, start_url, status, pages, records, started_at, finished_at
		FROM runs
		ORDER BY started_at DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*locaties.CrawlRun
	for rows.Next() {
		var run locaties.CrawlRun
		var startedAt, finishedAt string

		if err := rows.Scan(&run.ID, &run.StartURL, &run.Status, &run.Pages, &run.Records,
			&startedAt, &finishedAt); err != nil {
			return nil, err
		}

		run.StartedAt, err = time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse started_at: %w", err)
		}
		if finishedAt != "" {
			run.FinishedAt, err = time.Parse(time.RFC3339, finishedAt)
			if err != nil {
				return nil, fmt.Errorf("failed to parse finished_at: %w", err)
			}
		}

		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// FindVisits returns the page visits for a run in page order.
func (s *JournalService) FindVisits(ctx context.Context, runID string) ([]*locaties.PageVisit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, page, indicator, first_url, listings, snapshot_hash, visited_at
		FROM visits
		WHERE run_id = ?
		ORDER BY page ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visits []*locaties.PageVisit
	for rows.Next() {
		var v locaties.PageVisit
		var visitedAt string

		if err := rows.Scan(&v.RunID, &v.Page, &v.Indicator, &v.FirstURL, &v.Listings,
			&v.SnapshotHash, &visitedAt); err != nil {
			return nil, err
		}

		v.VisitedAt, err = time.Parse(time.RFC3339, visitedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse visited_at: %w", err)
		}

		visits = append(visits, &v)
	}
	return visits, rows.Err()
}
