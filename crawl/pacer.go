package crawl

import (
	"context"

	"golang.org/x/time/rate"
)

// Pacer spaces page transitions using a token bucket, keeping the crawl
// polite toward the single source site. Burst is fixed at 1: no bursting.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer allowing rps page transitions per second.
func NewPacer(rps float64) *Pacer {
	return &Pacer{limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Wait blocks until the rate limit allows the next page transition.
// Returns an error if the context is canceled before the wait completes.
// A nil Pacer never waits.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.limiter.Wait(ctx)
}
