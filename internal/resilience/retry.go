package resilience

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// RetryPolicy retries an operation with exponential backoff.
// Delay for attempt n is base * multiplier^(n-1), capped at MaxDelay,
// with optional jitter drawing uniformly from 50-100% of the computed delay.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
	Multiplier float64
	MaxDelay   time.Duration
	Jitter     bool

	// sleep is swapped out in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// DefaultRetryPolicy returns the standard policy for outbound calls.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 3,
		BaseDelay:  200 * time.Millisecond,
		Multiplier: 2.0,
		MaxDelay:   5 * time.Second,
		Jitter:     true,
	}
}

// Do runs op up to MaxRetries times, backing off between attempts.
// It stops early on a fatal error or when ctx is done.
func (p RetryPolicy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	sleep := p.sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	var lastErr error
	for attempt := 1; attempt <= p.maxAttempts(); attempt++ {
		if attempt > 1 {
			if err := sleep(ctx, p.Delay(attempt-1)); err != nil {
				return err
			}
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if !IsRetryable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

// Delay computes the backoff after a given failed attempt (1-based).
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := time.Duration(float64(p.BaseDelay) * math.Pow(p.Multiplier, float64(attempt-1)))
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	if p.Jitter && d > 0 {
		// 50-100% of the computed delay.
		d = d/2 + time.Duration(rand.Int63n(int64(d/2)+1))
	}
	return d
}

func (p RetryPolicy) maxAttempts() int {
	if p.MaxRetries < 1 {
		return 1
	}
	return p.MaxRetries
}

// sleepCtx waits for d or until ctx is done, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
