package locaties

import (
	"context"
	"time"
)

// Browser is the navigation-client boundary: one controllable rendered
// page. Implementations may use any automation engine; the crawl loop
// depends only on these semantics.
//
// Every wait is bounded by an explicit timeout. A wait that expires
// returns an error meaning "signal not observed"; callers decide what
// that means for their own state machine.
type Browser interface {
	// Navigate loads the URL and waits for the load event.
	Navigate(ctx context.Context, url string) error

	// WaitVisible blocks until an element matching the selector is
	// present, or the timeout expires.
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error

	// Click locates an element matching the selector and activates it.
	Click(ctx context.Context, selector string, timeout time.Duration) error

	// HTML returns the current rendered page snapshot.
	HTML(ctx context.Context) (string, error)

	// WaitChange polls the rendered snapshot until changed returns true,
	// or the timeout expires.
	WaitChange(ctx context.Context, changed func(html string) bool, timeout time.Duration) error

	// Close releases browser resources.
	// Must be called when the Browser is no longer needed.
	Close() error
}
