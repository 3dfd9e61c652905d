package mock

import (
	"context"
	"time"

	locaties "github.com/Dexagod/interreg-static-test"
)

var _ locaties.Browser = (*Browser)(nil)

// Browser is a mock implementation of locaties.Browser.
type Browser struct {
	NavigateFn    func(ctx context.Context, url string) error
	WaitVisibleFn func(ctx context.Context, selector string, timeout time.Duration) error
	ClickFn       func(ctx context.Context, selector string, timeout time.Duration) error
	HTMLFn        func(ctx context.Context) (string, error)
	WaitChangeFn  func(ctx context.Context, changed func(html string) bool, timeout time.Duration) error
	CloseFn       func() error
}

func (b *Browser) Navigate(ctx context.Context, url string) error {
	return b.NavigateFn(ctx, url)
}

func (b *Browser) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	return b.WaitVisibleFn(ctx, selector, timeout)
}

func (b *Browser) Click(ctx context.Context, selector string, timeout time.Duration) error {
	return b.ClickFn(ctx, selector, timeout)
}

func (b *Browser) HTML(ctx context.Context) (string, error) {
	return b.HTMLFn(ctx)
}

func (b *Browser) WaitChange(ctx context.Context, changed func(html string) bool, timeout time.Duration) error {
	return b.WaitChangeFn(ctx, changed, timeout)
}

func (b *Browser) Close() error {
	return b.CloseFn()
}
