package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "revenue-recovery/internal/adapter/storage/redis"
	"revenue-recovery/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the rate limits per endpoint group.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"webhooks":  {Limit: 300, Window: time.Minute},
		"scheduler": {Limit: 10, Window: time.Minute},
		"cases":     {Limit: 60, Window: time.Minute},
		"dashboard": {Limit: 60, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint
// group. failClosed decides what happens when redis is unreachable:
// production rejects (a broken limiter must not become an open door for
// webhook floods), everything else degrades to allow with a warning.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, failClosed bool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", rateLimitIdentifier(c), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			if failClosed {
				log.Error().Err(err).Str("group", group).Msg("rate limit check failed, rejecting request")
				retryAfter := int64(rule.Window / time.Second)
				resetAt := time.Now().Add(rule.Window).Unix()
				c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
				response.RateLimited(c, retryAfter, resetAt)
				c.Abort()
				return
			}
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.RateLimited(c, retryAfter, result.ResetAt)
			c.Abort()
			return
		}

		c.Next()
	}
}

// rateLimitIdentifier scopes the counter. The webhook route has no auth
// context, so company scoping comes from the platform's routing header
// when present; authenticated routes use the JWT company. Everything
// else falls back to the client IP.
func rateLimitIdentifier(c *gin.Context) string {
	if companyID := c.GetHeader("X-Company-ID"); companyID != "" {
		return "company:" + companyID
	}
	if v, exists := c.Get(CtxCompanyID); exists {
		if id, ok := v.(uuid.UUID); ok {
			return "company:" + id.String()
		}
	}
	return "ip:" + c.ClientIP()
}
