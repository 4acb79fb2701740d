package redis

import "time"

// SetClock overrides the rate limit store's clock in tests.
func SetClock(s *RateLimitStore, now func() time.Time) {
	s.now = now
}
