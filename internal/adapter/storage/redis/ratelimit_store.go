package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RateLimitStore implements a token-bucket rate limiter backed by Redis.
type RateLimitStore struct {
	client *goredis.Client
	prefix string
	now    func() time.Time
}

// NewRateLimitStore creates a new Redis-backed rate limit store.
func NewRateLimitStore(client *goredis.Client) *RateLimitStore {
	return &RateLimitStore{
		client: client,
		prefix: "ratelimit:",
		now:    time.Now,
	}
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// tokenBucketScript refills a per-key bucket on access and consumes one
// token. Capacity equals the limit, refill rate is limit/window, so
// clients can burst up to the limit and then proceed at a smoothed
// steady rate instead of stampeding at each window boundary.
//
// Returns {allowed, remaining, wait_ms} where wait_ms is the time until
// the next token when blocked, or until the bucket is full when allowed.
var tokenBucketScript = goredis.NewScript(`
local key = KEYS[1]
local capacity = tonumber(ARGV[1])
local refill_per_ms = tonumber(ARGV[2])
local now_ms = tonumber(ARGV[3])
local ttl_ms = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'ts')
local tokens = tonumber(state[1])
local ts = tonumber(state[2])
if tokens == nil or ts == nil then
  tokens = capacity
  ts = now_ms
end

local elapsed = now_ms - ts
if elapsed > 0 then
  tokens = math.min(capacity, tokens + elapsed * refill_per_ms)
end

local allowed = 0
if tokens >= 1 then
  allowed = 1
  tokens = tokens - 1
end

redis.call('HSET', key, 'tokens', tostring(tokens), 'ts', now_ms)
redis.call('PEXPIRE', key, ttl_ms)

local wait_ms
if allowed == 1 then
  wait_ms = math.ceil((capacity - tokens) / refill_per_ms)
else
  wait_ms = math.ceil((1 - tokens) / refill_per_ms)
end

return {allowed, math.floor(tokens), wait_ms}
`)

// Allow consumes one token from the bucket identified by key. The
// bucket holds up to limit tokens and refills at limit per window.
func (s *RateLimitStore) Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error) {
	nowT := s.now()
	refillPerMs := float64(limit) / float64(window.Milliseconds())

	// Keys are kept for two idle windows, after which the bucket is
	// full again anyway.
	vals, err := tokenBucketScript.Run(ctx, s.client,
		[]string{s.prefix + key},
		limit, refillPerMs, nowT.UnixMilli(), 2*window.Milliseconds(),
	).Slice()
	if err != nil {
		return nil, fmt.Errorf("redis rate limit: %w", err)
	}
	if len(vals) != 3 {
		return nil, fmt.Errorf("redis rate limit: unexpected script reply %v", vals)
	}

	allowed, _ := vals[0].(int64)
	remaining, _ := vals[1].(int64)
	waitMs, _ := vals[2].(int64)

	return &RateLimitResult{
		Allowed:   allowed == 1,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   nowT.Add(time.Duration(waitMs) * time.Millisecond).Unix(),
	}, nil
}
