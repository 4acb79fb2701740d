package resilience

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client composes a circuit breaker around a retry policy for one
// external dependency. The breaker wraps the retries: once it opens,
// calls fail fast before any retry is attempted.
type Client struct {
	name    string
	breaker *CircuitBreaker
	retry   RetryPolicy
	log     zerolog.Logger
}

// NewClient creates a resilience client for a named dependency.
func NewClient(name string, retry RetryPolicy, breaker *CircuitBreaker, log zerolog.Logger) *Client {
	return &Client{
		name:    name,
		breaker: breaker,
		retry:   retry,
		log:     log,
	}
}

// Do runs op under the breaker and retry policy. Every call carries an
// operation name and correlation id into the logs regardless of outcome.
func (c *Client) Do(ctx context.Context, operation string, op func(ctx context.Context) error) error {
	correlationID := uuid.New().String()[:8]
	start := time.Now()

	err := c.breaker.Do(ctx, func(ctx context.Context) error {
		return c.retry.Do(ctx, op)
	})

	event := c.log.Debug()
	if err != nil {
		event = c.log.Warn().Err(err)
	}
	event.
		Str("dependency", c.name).
		Str("operation", operation).
		Str("correlation_id", correlationID).
		Dur("elapsed", time.Since(start)).
		Str("breaker_state", string(c.breaker.State())).
		Msg("outbound call")

	return err
}

// Breaker exposes the underlying breaker for inspection.
func (c *Client) Breaker() *CircuitBreaker {
	return c.breaker
}
