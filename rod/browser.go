// Package rod implements the locaties navigation-client boundary using
// Chrome browser automation.
package rod

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	locaties "github.com/Dexagod/interreg-static-test"
)

// Ensure Browser implements locaties.Browser at compile time.
var _ locaties.Browser = (*Browser)(nil)

// Session setup defaults. The locale matches the source site; neither
// affects extraction correctness.
const (
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"
	DefaultLocale    = "nl-BE,nl;q=0.9,en;q=0.8"

	// DefaultPollInterval is how often WaitChange re-reads the snapshot.
	DefaultPollInterval = 250 * time.Millisecond
)

// cookieSelectors are common consent-banner accept buttons. Dismissal is
// best effort: failures are logged and swallowed.
var cookieSelectors = []string{
	"#onetrust-accept-btn-handler",
	"#cookiescript_accept",
	"button[id*='accept-cookies']",
	".cookie-consent button",
}

// Browser drives one rendered page in a launched Chrome instance.
// The crawl loop is sequential, so Browser is not safe for concurrent use.
type Browser struct {
	browser      *rod.Browser
	launcher     *launcher.Launcher
	page         *rod.Page
	headless     bool
	userAgent    string
	locale       string
	pollInterval time.Duration
	logger       *slog.Logger
}

// Option configures a Browser.
type Option func(*Browser)

// WithHeadless toggles headless rendering. Defaults to true; visible mode
// only affects observability, never extraction.
func WithHeadless(headless bool) Option {
	return func(b *Browser) { b.headless = headless }
}

// WithUserAgent overrides the session user agent.
func WithUserAgent(ua string) Option {
	return func(b *Browser) { b.userAgent = ua }
}

// WithLocale overrides the Accept-Language sent by the session.
func WithLocale(locale string) Option {
	return func(b *Browser) { b.locale = locale }
}

// WithLogger sets the logger used for best-effort session setup warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Browser) { b.logger = logger }
}

// NewBrowser launches a Chrome browser with one page. Close must be called
// when the Browser is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewBrowser(opts ...Option) (*Browser, error) {
	b := &Browser{
		headless:     true,
		userAgent:    DefaultUserAgent,
		locale:       DefaultLocale,
		pollInterval: DefaultPollInterval,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}

	l := launcher.New().
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(b.headless)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		l.Kill()
		return nil, fmt.Errorf("creating page: %w", err)
	}

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent:      b.userAgent,
		AcceptLanguage: b.locale,
	}); err != nil {
		_ = browser.Close()
		l.Kill()
		return nil, fmt.Errorf("configuring session: %w", err)
	}

	b.browser = browser
	b.launcher = l
	b.page = page
	return b, nil
}

// Navigate loads the URL, waits for the load event, and dismisses any
// cookie banner it recognizes.
func (b *Browser) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	page := b.page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return err
	}
	if err := page.WaitLoad(); err != nil {
		return err
	}
	b.dismissCookieBanner(page)
	return nil
}

// WaitVisible blocks until an element matching the selector is present.
func (b *Browser) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	page := b.page.Context(ctx).Timeout(timeout)
	_, err := page.Element(selector)
	return err
}

// Click activates the first element matching the selector. When the direct
// click fails (overlapping markup can swallow pointer events), it falls
// back to clicking the element's parent before giving up.
func (b *Browser) Click(ctx context.Context, selector string, timeout time.Duration) error {
	page := b.page.Context(ctx).Timeout(timeout)
	el, err := page.Element(selector)
	if err != nil {
		return err
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		parent, perr := el.Parent()
		if perr == nil {
			if perr = parent.Click(proto.InputMouseButtonLeft, 1); perr == nil {
				b.logger.Debug("clicked ancestor after direct click failed", "selector", selector)
				return nil
			}
		}
		return err
	}
	return nil
}

// HTML returns the current rendered page snapshot.
func (b *Browser) HTML(ctx context.Context) (string, error) {
	return b.page.Context(ctx).HTML()
}

// WaitChange polls the rendered snapshot until changed returns true or the
// timeout expires.
func (b *Browser) WaitChange(ctx context.Context, changed func(html string) bool, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		html, err := b.page.Context(ctx).HTML()
		if err == nil && changed(html) {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("no change observed within %s", timeout)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(b.pollInterval):
		}
	}
}

// Close releases browser resources.
func (b *Browser) Close() error {
	err := b.browser.Close()
	b.launcher.Kill()
	return err
}

// dismissCookieBanner clicks the first recognized consent button, if any.
func (b *Browser) dismissCookieBanner(page *rod.Page) {
	for _, selector := range cookieSelectors {
		el, err := page.Timeout(time.Second).Element(selector)
		if err != nil {
			continue
		}
		if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
			b.logger.Warn("cookie banner dismissal failed", "selector", selector, "err", err)
			continue
		}
		b.logger.Debug("cookie banner dismissed", "selector", selector)
		return
	}
}
