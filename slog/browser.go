// Package slog provides logging decorators for the locaties service
// interfaces. Each decorator wraps an implementation and logs the operation
// with its duration and outcome.
package slog

import (
	"context"
	"log/slog"
	"time"

	locaties "github.com/Dexagod/interreg-static-test"
)

// Ensure LoggingBrowser implements locaties.Browser.
var _ locaties.Browser = (*LoggingBrowser)(nil)

// LoggingBrowser wraps a Browser with logging. Navigation is logged at info
// level; the per-page operations at debug level.
type LoggingBrowser struct {
	next   locaties.Browser
	logger *slog.Logger
}

// NewLoggingBrowser creates a new LoggingBrowser.
func NewLoggingBrowser(next locaties.Browser, logger *slog.Logger) *LoggingBrowser {
	return &LoggingBrowser{next: next, logger: logger}
}

// Navigate logs the URL being loaded and delegates to the wrapped browser.
func (b *LoggingBrowser) Navigate(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		b.logger.Info("navigate",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Navigate(ctx, url)
}

// WaitVisible delegates to the wrapped browser.
func (b *LoggingBrowser) WaitVisible(ctx context.Context, selector string, timeout time.Duration) (err error) {
	defer func(begin time.Time) {
		b.logger.Debug("wait visible",
			"selector", selector,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.WaitVisible(ctx, selector, timeout)
}

// Click delegates to the wrapped browser.
func (b *LoggingBrowser) Click(ctx context.Context, selector string, timeout time.Duration) (err error) {
	defer func(begin time.Time) {
		b.logger.Debug("click",
			"selector", selector,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Click(ctx, selector, timeout)
}

// HTML delegates to the wrapped browser.
func (b *LoggingBrowser) HTML(ctx context.Context) (html string, err error) {
	defer func(begin time.Time) {
		b.logger.Debug("snapshot",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.HTML(ctx)
}

// WaitChange delegates to the wrapped browser.
func (b *LoggingBrowser) WaitChange(ctx context.Context, changed func(html string) bool, timeout time.Duration) (err error) {
	defer func(begin time.Time) {
		b.logger.Debug("wait change",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.WaitChange(ctx, changed, timeout)
}

// Close delegates to the wrapped browser.
func (b *LoggingBrowser) Close() error {
	return b.next.Close()
}
