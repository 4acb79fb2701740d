package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock key only when it still holds our token,
// so a holder whose TTL already expired cannot release a lock some other
// scheduler run has since acquired.
const releaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end`

// CompanyLock implements ports.CompanyLock using Redis SET NX with a TTL.
// The TTL bounds how long a crashed scheduler can keep a company locked.
type CompanyLock struct {
	client *goredis.Client
	prefix string
}

// NewCompanyLock creates a new Redis-backed per-company lock.
func NewCompanyLock(client *goredis.Client) *CompanyLock {
	return &CompanyLock{
		client: client,
		prefix: "companylock:",
	}
}

// Acquire attempts to take the lock for a company. Returns the holder
// token and acquired=true on success, acquired=false when another holder
// has the lock.
func (l *CompanyLock) Acquire(ctx context.Context, companyID uuid.UUID, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	key := l.prefix + companyID.String()

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("redis company lock acquire: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release frees the lock if the token still matches.
func (l *CompanyLock) Release(ctx context.Context, companyID uuid.UUID, token string) error {
	key := l.prefix + companyID.String()
	err := l.client.Eval(ctx, releaseScript, []string{key}, token).Err()
	if err != nil {
		return fmt.Errorf("redis company lock release: %w", err)
	}
	return nil
}
