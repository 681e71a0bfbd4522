package http

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

func newTestLimiter(limit int, window time.Duration) (*rateLimiter, *time.Time, *[]time.Duration) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var slept []time.Duration

	limiter := newRateLimiter(limit, window, quickbooks.NopLogger())
	limiter.now = func() time.Time { return current }
	limiter.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		current = current.Add(d)

		return nil
	}

	return limiter, &current, &slept
}

func TestRateLimiterUnderLimit(t *testing.T) {
	t.Parallel()

	limiter, _, slept := newTestLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Wait(context.Background()))
	}

	assert.Empty(t, *slept)
	assert.Len(t, limiter.stamps, 3)
}

func TestRateLimiterWaitsWhenFull(t *testing.T) {
	t.Parallel()

	limiter, current, slept := newTestLimiter(2, time.Minute)

	require.NoError(t, limiter.Wait(context.Background()))

	*current = current.Add(10 * time.Second)
	require.NoError(t, limiter.Wait(context.Background()))

	*current = current.Add(5 * time.Second)
	require.NoError(t, limiter.Wait(context.Background()))

	// Oldest entry is 15s old, so the slot opens after 45s plus the buffer.
	require.Len(t, *slept, 1)
	assert.Equal(t, 45*time.Second+limiter.buffer, (*slept)[0])
}

func TestRateLimiterPrunesExpiredEntries(t *testing.T) {
	t.Parallel()

	limiter, current, slept := newTestLimiter(2, time.Minute)

	require.NoError(t, limiter.Wait(context.Background()))
	require.NoError(t, limiter.Wait(context.Background()))

	*current = current.Add(2 * time.Minute)
	require.NoError(t, limiter.Wait(context.Background()))

	assert.Empty(t, *slept)
	assert.Len(t, limiter.stamps, 1)
}

func TestRateLimiterSleepCancelled(t *testing.T) {
	t.Parallel()

	limiter, _, _ := newTestLimiter(1, time.Minute)
	limiter.sleep = func(ctx context.Context, _ time.Duration) error {
		return context.Canceled
	}

	require.NoError(t, limiter.Wait(context.Background()))

	err := limiter.Wait(context.Background())
	require.ErrorIs(t, err, context.Canceled)
}

func TestSleepContextReturnsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sleepContext(ctx, time.Minute)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSleepContextZeroDuration(t *testing.T) {
	t.Parallel()

	require.NoError(t, sleepContext(context.Background(), 0))
}
