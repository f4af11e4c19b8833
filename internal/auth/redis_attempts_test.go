//go:build integration
// +build integration

package auth

import (
	"context"
	"testing"
	"time"

	"parts-tracking-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisAttemptStore(t *testing.T) {
	client := testutils.SetupRedis(t)
	ctx := context.Background()
	store := NewRedisAttemptStore(client, LockoutPolicy{MaxAttempts: 3, LockDuration: time.Minute, CounterTTL: time.Hour})
	key := LockoutKey("employee", "ravi")

	for i := 0; i < 2; i++ {
		lockedFor, err := store.Fail(ctx, key)
		require.NoError(t, err)
		assert.Zero(t, lockedFor)
	}
	remaining, err := store.Locked(ctx, key)
	require.NoError(t, err)
	assert.Zero(t, remaining)

	lockedFor, err := store.Fail(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, lockedFor)

	remaining, err = store.Locked(ctx, key)
	require.NoError(t, err)
	assert.Greater(t, remaining, 50*time.Second)
	assert.LessOrEqual(t, remaining, time.Minute)

	ttl, err := client.TTL(ctx, failKey(key)).Result()
	require.NoError(t, err)
	assert.LessOrEqual(t, ttl, time.Duration(0), "counter is cleared once the lock engages")

	require.NoError(t, store.Reset(ctx, key))
	remaining, err = store.Locked(ctx, key)
	require.NoError(t, err)
	assert.Zero(t, remaining)
}

func TestRedisAttemptStoreCancelledContext(t *testing.T) {
	client := testutils.SetupRedis(t)
	store := NewRedisAttemptStore(client, DefaultLockoutPolicy)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Locked(ctx, "employee:ravi")
	assert.Error(t, err)
}
