package http

import (
	"context"
	"sync"
	"time"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/internal/constants"
	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

// rateLimiter enforces a sliding-window request budget for one client
// instance. Timestamps older than the window are pruned lazily on each check;
// there is no background goroutine and no cross-process coordination.
type rateLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	buffer time.Duration
	stamps []time.Time
	logger quickbooks.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func newRateLimiter(limit int, window time.Duration, logger quickbooks.Logger) *rateLimiter {
	if logger == nil {
		logger = quickbooks.NopLogger()
	}

	return &rateLimiter{
		limit:  limit,
		window: window,
		buffer: constants.RateLimitWaitBuffer,
		logger: logger,
		now:    time.Now,
		sleep:  sleepContext,
	}
}

// Wait blocks until the caller is cleared to issue one more request, then
// records that request's timestamp. When the window is full, the wait is
// sized so the next slot opens strictly after the oldest entry ages out,
// padded by a small buffer against clock granularity.
func (l *rateLimiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)

	if len(l.stamps) >= l.limit {
		wait := l.window - now.Sub(l.stamps[0]) + l.buffer

		l.logger.Info("client rate limit reached, waiting", map[string]interface{}{
			"wait_ms":   wait.Milliseconds(),
			"in_window": len(l.stamps),
		})

		err := l.sleep(ctx, wait)
		if err != nil {
			return err
		}

		l.prune(l.now())
	}

	l.stamps = append(l.stamps, l.now())

	return nil
}

// prune drops all timestamps that have aged out of the trailing window.
func (l *rateLimiter) prune(now time.Time) {
	cutoff := now.Add(-l.window)

	idx := 0
	for idx < len(l.stamps) && !l.stamps[idx].After(cutoff) {
		idx++
	}

	if idx > 0 {
		l.stamps = l.stamps[idx:]
	}
}

// sleepContext waits for d or until ctx is done, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
