package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyLock_AcquireAndRelease(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	lock := NewCompanyLock(client)
	ctx := context.Background()
	companyID := uuid.New()

	token, acquired, err := lock.Acquire(ctx, companyID, time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
	assert.NotEmpty(t, token)

	// Second acquire fails while the lock is held.
	_, acquired2, err := lock.Acquire(ctx, companyID, time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired2)

	// After release the lock is free again.
	require.NoError(t, lock.Release(ctx, companyID, token))
	_, acquired3, err := lock.Acquire(ctx, companyID, time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired3)
}

func TestCompanyLock_DifferentCompaniesIndependent(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	lock := NewCompanyLock(client)
	ctx := context.Background()

	_, ok1, err := lock.Acquire(ctx, uuid.New(), time.Minute)
	require.NoError(t, err)
	_, ok2, err2 := lock.Acquire(ctx, uuid.New(), time.Minute)
	require.NoError(t, err2)

	assert.True(t, ok1)
	assert.True(t, ok2)
}

func TestCompanyLock_ExpiresAfterTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	lock := NewCompanyLock(client)
	ctx := context.Background()
	companyID := uuid.New()

	_, acquired, err := lock.Acquire(ctx, companyID, time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	mr.FastForward(2 * time.Second)

	_, acquired, err = lock.Acquire(ctx, companyID, time.Second)
	require.NoError(t, err)
	assert.True(t, acquired, "lock should be free after its TTL expired")
}

func TestCompanyLock_StaleTokenCannotRelease(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	lock := NewCompanyLock(client)
	ctx := context.Background()
	companyID := uuid.New()

	staleToken, acquired, err := lock.Acquire(ctx, companyID, time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	// The first holder's TTL lapses and a second holder takes over.
	mr.FastForward(2 * time.Second)
	_, acquired, err = lock.Acquire(ctx, companyID, time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	// The stale token must not free the new holder's lock.
	require.NoError(t, lock.Release(ctx, companyID, staleToken))
	_, acquired, err = lock.Acquire(ctx, companyID, time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired, "new holder's lock must survive a stale release")
}
