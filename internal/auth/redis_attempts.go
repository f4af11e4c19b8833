package auth

import (
	"context"
	"time"

	apperrors "parts-tracking-backend/internal/errors"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "parts:login:"

// RedisAttemptStore shares failure counters and locks between server instances
type RedisAttemptStore struct {
	client *redis.Client
	policy LockoutPolicy
}

// NewRedisAttemptStore creates an attempt store backed by client
func NewRedisAttemptStore(client *redis.Client, policy LockoutPolicy) *RedisAttemptStore {
	return &RedisAttemptStore{client: client, policy: policy}
}

func failKey(key string) string { return redisKeyPrefix + "fail:" + key }
func lockKey(key string) string { return redisKeyPrefix + "lock:" + key }

// Locked returns the remaining TTL of the lock key
func (s *RedisAttemptStore) Locked(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := s.client.PTTL(ctx, lockKey(key)).Result()
	if err != nil {
		return 0, apperrors.NewConnectionError("read login lock", err)
	}
	if ttl <= 0 {
		return 0, nil
	}
	return ttl, nil
}

// Fail increments the failure counter and sets the lock once the limit is reached
func (s *RedisAttemptStore) Fail(ctx context.Context, key string) (time.Duration, error) {
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, failKey(key))
	pipe.Expire(ctx, failKey(key), s.policy.CounterTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, apperrors.NewConnectionError("record login failure", err)
	}
	if incr.Val() < int64(s.policy.MaxAttempts) {
		return 0, nil
	}

	pipe = s.client.TxPipeline()
	pipe.Set(ctx, lockKey(key), "1", s.policy.LockDuration)
	pipe.Del(ctx, failKey(key))
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, apperrors.NewConnectionError("lock login", err)
	}
	return s.policy.LockDuration, nil
}

// Reset deletes the counter and the lock
func (s *RedisAttemptStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, failKey(key), lockKey(key)).Err(); err != nil {
		return apperrors.NewConnectionError("reset login failures", err)
	}
	return nil
}
