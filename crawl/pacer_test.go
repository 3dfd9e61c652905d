package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dexagod/interreg-static-test/crawl"
)

func TestPacer_FirstWaitIsImmediate(t *testing.T) {
	t.Parallel()

	p := crawl.NewPacer(1)
	start := time.Now()
	require.NoError(t, p.Wait(context.Background()))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestPacer_SpacesSubsequentWaits(t *testing.T) {
	t.Parallel()

	p := crawl.NewPacer(20) // 50ms apart
	require.NoError(t, p.Wait(context.Background()))

	start := time.Now()
	require.NoError(t, p.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestPacer_WaitHonorsContext(t *testing.T) {
	t.Parallel()

	p := crawl.NewPacer(0.1) // 10s apart
	require.NoError(t, p.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := p.Wait(ctx)
	require.Error(t, err)
}

func TestPacer_NilWaitsNever(t *testing.T) {
	t.Parallel()

	var p *crawl.Pacer
	require.NoError(t, p.Wait(context.Background()))
}
