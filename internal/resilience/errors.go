package resilience

import (
	"context"
	"errors"
	"fmt"
)

// ErrOpen is returned when a circuit breaker short-circuits a call.
// Callers can distinguish "dependency is down" from "this call failed".
var ErrOpen = errors.New("circuit breaker open")

// DependencyError classifies an outbound call failure as retryable
// (timeouts, network errors, 5xx) or fatal (4xx, auth failures).
type DependencyError struct {
	Dependency string
	StatusCode int // 0 when no HTTP response was received
	Retryable  bool
	Err        error
}

func (e *DependencyError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Dependency, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Dependency, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

// RetryableError marks an error as transient.
func RetryableError(dependency string, statusCode int, err error) *DependencyError {
	return &DependencyError{Dependency: dependency, StatusCode: statusCode, Retryable: true, Err: err}
}

// FatalError marks an error as permanent; the retry policy gives up immediately.
func FatalError(dependency string, statusCode int, err error) *DependencyError {
	return &DependencyError{Dependency: dependency, StatusCode: statusCode, Retryable: false, Err: err}
}

// IsRetryable decides whether an error is worth another attempt.
// Unclassified errors are treated as retryable; context cancellation and
// breaker short-circuits are not.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrOpen) {
		return false
	}
	var depErr *DependencyError
	if errors.As(err, &depErr) {
		return depErr.Retryable
	}
	return true
}
