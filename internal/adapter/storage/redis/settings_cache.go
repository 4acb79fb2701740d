package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"revenue-recovery/internal/core/domain"
	"revenue-recovery/internal/core/ports"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// SettingsCache is a read-through cache in front of a SettingsRepository.
// Creator settings change rarely but are read on every webhook and every
// scheduler visit, so a short TTL removes most of the read load.
type SettingsCache struct {
	client *goredis.Client
	inner  ports.SettingsRepository
	ttl    time.Duration
	prefix string
	log    zerolog.Logger
}

// NewSettingsCache creates a caching decorator over a settings repository.
func NewSettingsCache(client *goredis.Client, inner ports.SettingsRepository, ttl time.Duration, log zerolog.Logger) *SettingsCache {
	return &SettingsCache{
		client: client,
		inner:  inner,
		ttl:    ttl,
		prefix: "settings:",
		log:    log,
	}
}

// GetByCompany returns settings from cache, falling back to the inner
// repository on a miss. Cache failures degrade to the inner repository
// rather than failing the read.
func (c *SettingsCache) GetByCompany(ctx context.Context, companyID uuid.UUID) (*domain.CreatorSettings, error) {
	key := c.prefix + companyID.String()

	val, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		s := &domain.CreatorSettings{}
		if err := json.Unmarshal(val, s); err == nil {
			return s, nil
		}
		c.log.Warn().Str("company_id", companyID.String()).Msg("corrupt settings cache entry, falling through")
	} else if err != goredis.Nil {
		c.log.Warn().Err(err).Msg("settings cache read failed, falling through")
	}

	s, err := c.inner.GetByCompany(ctx, companyID)
	if err != nil || s == nil {
		return s, err
	}

	if data, err := json.Marshal(s); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Msg("settings cache write failed")
		}
	}
	return s, nil
}

// Invalidate drops the cached entry for a company.
func (c *SettingsCache) Invalidate(ctx context.Context, companyID uuid.UUID) error {
	if err := c.client.Del(ctx, c.prefix+companyID.String()).Err(); err != nil {
		return fmt.Errorf("redis settings cache invalidate: %w", err)
	}
	return nil
}
