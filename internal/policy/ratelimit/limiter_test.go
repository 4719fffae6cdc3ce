package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitSpacesRequestsPerDomain(t *testing.T) {
	l := New(50 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, l.Wait(ctx, "example.com"))
	require.NoError(t, l.Wait(ctx, "example.com"))
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
}

func TestWaitIndependentDomains(t *testing.T) {
	l := New(time.Second)
	ctx := context.Background()

	require.NoError(t, l.Wait(ctx, "a.example"))

	start := time.Now()
	require.NoError(t, l.Wait(ctx, "b.example"))
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestWaitZeroDelayNeverBlocks(t *testing.T) {
	l := New(0)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 100; i++ {
		require.NoError(t, l.Wait(ctx, "example.com"))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestWaitCanceledContext(t *testing.T) {
	l := New(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, l.Wait(ctx, "example.com"))
	cancel()
	assert.Error(t, l.Wait(ctx, "example.com"))
}
