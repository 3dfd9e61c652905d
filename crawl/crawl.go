// Package crawl drives a rendered browser session through a paginated
// listing site and folds per-page extraction results into one deduplicated,
// normalized record set.
package crawl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	locaties "github.com/Dexagod/interreg-static-test"
)

// Defaults for Config fields left at their zero value.
const (
	DefaultStartURL = "https://www.jeugdlocaties.be/locaties"

	// DefaultListingSelector matches anchors pointing at listing detail
	// pages; its presence is the signal that client-side rendering has
	// finished.
	DefaultListingSelector = `a[href*="locaties/"]`

	// DefaultNextSelector locates the next-page affordance.
	DefaultNextSelector = `a[rel="next"], .pagination-next a, .pagination .next a, li.next a`

	// DefaultIndicatorSelector locates the displayed page-number indicator.
	DefaultIndicatorSelector = `.pagination [aria-current="page"], .pagination .active, [aria-current="page"]`

	DefaultRenderWait  = 15 * time.Second
	DefaultAdvanceWait = 10 * time.Second
)

// Config holds the crawl settings. The zero value is usable: every field
// has a stated default.
type Config struct {
	// StartURL is the first listing page. Defaults to DefaultStartURL.
	StartURL string

	// MaxRecords caps the number of unique records kept. 0 = unlimited.
	MaxRecords int

	// MaxPages caps the number of listing pages visited. 0 = unlimited.
	MaxPages int

	// RenderWait bounds the wait for the first listing anchor to appear
	// after navigation. Defaults to DefaultRenderWait.
	RenderWait time.Duration

	// AdvanceWait bounds the wait for an advancement signal to change
	// after activating the next-page control. Defaults to
	// DefaultAdvanceWait.
	AdvanceWait time.Duration

	// ListingSelector, NextSelector and IndicatorSelector override the
	// DOM heuristics' anchor points. Defaults above.
	ListingSelector   string
	NextSelector      string
	IndicatorSelector string
}

func (c Config) withDefaults() Config {
	if c.StartURL == "" {
		c.StartURL = DefaultStartURL
	}
	if c.RenderWait <= 0 {
		c.RenderWait = DefaultRenderWait
	}
	if c.AdvanceWait <= 0 {
		c.AdvanceWait = DefaultAdvanceWait
	}
	if c.ListingSelector == "" {
		c.ListingSelector = DefaultListingSelector
	}
	if c.NextSelector == "" {
		c.NextSelector = DefaultNextSelector
	}
	if c.IndicatorSelector == "" {
		c.IndicatorSelector = DefaultIndicatorSelector
	}
	return c
}

// StopReason records why the pagination loop terminated. All reasons are
// normal stops, not errors.
type StopReason string

// Stop reasons, in the order the loop checks them.
const (
	StopMaxRecords   StopReason = "max_records"
	StopMaxPages     StopReason = "max_pages"
	StopNoNext       StopReason = "no_next"
	StopNextDisabled StopReason = "next_disabled"
	StopNoAdvance    StopReason = "no_advance"
)

// Result holds the outcome of a crawl.
type Result struct {
	Records []*locaties.Record
	Pages   int
	Stop    StopReason
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressPage ProgressType = iota
	ProgressFinished
)

// ProgressEvent reports progress as pages are visited.
type ProgressEvent struct {
	Type     ProgressType
	Page     int
	Listings int
	Total    int
	Stop     StopReason
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawler visits every listing page exactly once, in the order the
// next-page affordance presents them, and accumulates the extracted
// records. Crawling is fully sequential: one rendered session, one page
// at a time.
//
// Advancement is corroborated by two independent signals, the displayed
// page-number indicator and the first listing's URL, combined with OR:
// either one changing counts as a successful advance. If neither changes
// within the bounded wait the crawl stops with what it has; it never
// retries indefinitely or re-extracts the same page. This is a deliberate
// heuristic about the source's rendering behavior: a site that delays
// longer than the bound will terminate the crawl early.
type Crawler struct {
	Browser locaties.Browser
	Parser  locaties.Parser

	// Journal, Pacer and Logger are optional.
	Journal locaties.CrawlJournal
	Pacer   *Pacer
	Logger  *slog.Logger

	Config Config
}

// Run executes the crawl and returns the final sorted, deduplicated record
// set. Two outcomes are fatal: the start page never rendering (a
// JavaScript-required placeholder), and a crawl that finishes with zero
// records. Both indicate the source has changed or is unreachable and
// require human attention.
func (c *Crawler) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	cfg := c.Config.withDefaults()
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	base, err := url.Parse(cfg.StartURL)
	if err != nil {
		return nil, locaties.Errorf(locaties.EINVALID, "invalid start URL %q: %v", cfg.StartURL, err)
	}

	run := c.beginRun(ctx, cfg.StartURL, logger)

	if err := c.Browser.Navigate(ctx, cfg.StartURL); err != nil {
		c.finishRun(ctx, run, locaties.RunFailed, 0, 0, logger)
		return nil, fmt.Errorf("navigating to start page: %w", err)
	}

	// Bounded wait for client-side rendering; expiry alone is not fatal.
	// The placeholder check below decides.
	if err := c.Browser.WaitVisible(ctx, cfg.ListingSelector, cfg.RenderWait); err != nil {
		if ctx.Err() != nil {
			c.finishRun(ctx, run, locaties.RunFailed, 0, 0, logger)
			return nil, ctx.Err()
		}
		logger.Warn("no listings rendered within bound", "wait", cfg.RenderWait, "err", err)
	}

	merger := NewMerger()
	pages := 0
	var stop StopReason

	for {
		html, err := c.Browser.HTML(ctx)
		if err != nil {
			if pages == 0 {
				c.finishRun(ctx, run, locaties.RunFailed, 0, 0, logger)
				return nil, fmt.Errorf("reading page snapshot: %w", err)
			}
			logger.Warn("snapshot failed, stopping with accumulated records", "err", err)
			stop = StopNoAdvance
			break
		}

		doc, err := c.Parser.Parse(html)
		if err != nil {
			if pages == 0 {
				c.finishRun(ctx, run, locaties.RunFailed, 0, 0, logger)
				return nil, err
			}
			logger.Warn("snapshot parse failed, stopping", "err", err)
			stop = StopNoAdvance
			break
		}

		sightings := ExtractListings(doc, base)

		// A start page with no listings and a JavaScript placeholder is an
		// environment error, not a thin site.
		if pages == 0 && len(sightings) == 0 && unrenderedPlaceholder(html) {
			c.finishRun(ctx, run, locaties.RunFailed, 0, 0, logger)
			return nil, locaties.Errorf(locaties.EUNAVAILABLE,
				"start page shows a JavaScript-required placeholder; rendering is disabled or blocked")
		}

		merger.AddAll(sightings)
		pages++

		indicator := pageIndicator(doc, cfg.IndicatorSelector)
		firstURL := firstListingURL(sightings)
		c.recordVisit(ctx, run, pages, indicator, firstURL, len(sightings), html, logger)

		logger.Info("page extracted",
			"page", pages,
			"listings", len(sightings),
			"total", merger.Len(),
			"indicator", indicator,
		)
		if progress != nil {
			progress(ProgressEvent{Type: ProgressPage, Page: pages, Listings: len(sightings), Total: merger.Len()})
		}

		if cfg.MaxRecords > 0 && merger.Len() >= cfg.MaxRecords {
			stop = StopMaxRecords
			break
		}
		if cfg.MaxPages > 0 && pages >= cfg.MaxPages {
			stop = StopMaxPages
			break
		}

		next := firstMatch(doc, cfg.NextSelector)
		if next == nil {
			stop = StopNoNext
			break
		}
		if disabled(next) {
			stop = StopNextDisabled
			break
		}

		if err := c.Pacer.Wait(ctx); err != nil {
			c.finishRun(ctx, run, locaties.RunFailed, pages, merger.Len(), logger)
			return nil, err
		}

		if err := c.Browser.Click(ctx, cfg.NextSelector, cfg.AdvanceWait); err != nil {
			if ctx.Err() != nil {
				c.finishRun(ctx, run, locaties.RunFailed, pages, merger.Len(), logger)
				return nil, ctx.Err()
			}
			logger.Warn("next-page activation failed, stopping", "err", err)
			stop = StopNoAdvance
			break
		}

		// Both signals were captured before the click; either changing
		// corroborates a genuine advance.
		changed := func(snapshot string) bool {
			doc, err := c.Parser.Parse(snapshot)
			if err != nil {
				return false
			}
			if pageIndicator(doc, cfg.IndicatorSelector) != indicator {
				return true
			}
			return firstListingURL(ExtractListings(doc, base)) != firstURL
		}
		if err := c.Browser.WaitChange(ctx, changed, cfg.AdvanceWait); err != nil {
			if ctx.Err() != nil {
				c.finishRun(ctx, run, locaties.RunFailed, pages, merger.Len(), logger)
				return nil, ctx.Err()
			}
			logger.Info("no advancement signal within bound, stopping", "wait", cfg.AdvanceWait)
			stop = StopNoAdvance
			break
		}
	}

	records := merger.Records(cfg.MaxRecords)
	if len(records) == 0 {
		c.finishRun(ctx, run, locaties.RunFailed, pages, 0, logger)
		return nil, locaties.Errorf(locaties.ENOTFOUND,
			"crawl finished after %d page(s) with zero records; the page structure has likely changed", pages)
	}

	c.finishRun(ctx, run, locaties.RunCompleted, pages, len(records), logger)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Page: pages, Total: len(records), Stop: stop})
	}

	return &Result{Records: records, Pages: pages, Stop: stop}, nil
}

// beginRun starts a journal run. Journal failures are logged, never fatal.
func (c *Crawler) beginRun(ctx context.Context, startURL string, logger *slog.Logger) *locaties.CrawlRun {
	if c.Journal == nil {
		return nil
	}
	run, err := c.Journal.BeginRun(ctx, startURL)
	if err != nil {
		logger.Warn("journal begin failed", "err", err)
		return nil
	}
	return run
}

func (c *Crawler) recordVisit(ctx context.Context, run *locaties.CrawlRun, page int, indicator, firstURL string, listings int, html string, logger *slog.Logger) {
	if c.Journal == nil || run == nil {
		return
	}
	err := c.Journal.RecordVisit(ctx, &locaties.PageVisit{
		RunID:        run.ID,
		Page:         page,
		Indicator:    indicator,
		FirstURL:     firstURL,
		Listings:     listings,
		SnapshotHash: snapshotHash(html),
	})
	if err != nil {
		logger.Warn("journal visit failed", "page", page, "err", err)
	}
}

func (c *Crawler) finishRun(ctx context.Context, run *locaties.CrawlRun, status string, pages, records int, logger *slog.Logger) {
	if c.Journal == nil || run == nil {
		return
	}
	if err := c.Journal.FinishRun(ctx, run.ID, status, pages, records); err != nil {
		logger.Warn("journal finish failed", "err", err)
	}
}

// firstMatch returns the first element matching the selector, or nil.
func firstMatch(doc locaties.Document, selector string) locaties.Element {
	els := doc.QueryAll(selector)
	if len(els) == 0 {
		return nil
	}
	return els[0]
}

// disabled reports whether a next-page control is marked unusable.
func disabled(el locaties.Element) bool {
	if v, ok := el.Attr("aria-disabled"); ok && strings.EqualFold(v, "true") {
		return true
	}
	if _, ok := el.Attr("disabled"); ok {
		return true
	}
	if class, ok := el.Attr("class"); ok && strings.Contains(strings.ToLower(class), "disabled") {
		return true
	}
	return false
}

// pageIndicator returns the displayed page-number text, or empty when the
// indicator is absent.
func pageIndicator(doc locaties.Document, selector string) string {
	el := firstMatch(doc, selector)
	if el == nil {
		return ""
	}
	return el.Text()
}

// firstListingURL returns the first listing's normalized URL on the page,
// the second advancement signal.
func firstListingURL(sightings []*locaties.Sighting) string {
	if len(sightings) == 0 {
		return ""
	}
	return sightings[0].URL
}

// Placeholder markers shown by the source when scripting is unavailable.
// Dutch variants cover the source site's own locale.
var placeholderMarkers = []string{"enable", "required", "inschakelen", "vereist", "activeer"}

// unrenderedPlaceholder reports whether a snapshot looks like the
// "JavaScript required" placeholder instead of rendered content.
func unrenderedPlaceholder(html string) bool {
	lower := strings.ToLower(html)
	if !strings.Contains(lower, "javascript") {
		return false
	}
	for _, marker := range placeholderMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// snapshotHash computes a content hash of a rendered snapshot using xxhash.
func snapshotHash(html string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(html))
}
