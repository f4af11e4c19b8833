package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"parts-tracking-backend/internal/database/models"
)

// LockoutPolicy controls how many consecutive failures lock an account and for how long
type LockoutPolicy struct {
	MaxAttempts  int
	LockDuration time.Duration
	CounterTTL   time.Duration
}

// DefaultLockoutPolicy locks for 15 minutes after 5 failures, counters live for a day
var DefaultLockoutPolicy = LockoutPolicy{
	MaxAttempts:  5,
	LockDuration: 15 * time.Minute,
	CounterTTL:   24 * time.Hour,
}

// AttemptStore keeps failed login counters and active locks
type AttemptStore interface {
	// Locked returns the remaining lock time for key, zero when not locked
	Locked(ctx context.Context, key string) (time.Duration, error)
	// Fail records one failure and returns the lock duration if this failure engaged a lock
	Fail(ctx context.Context, key string) (time.Duration, error)
	// Reset forgets all failures and locks for key
	Reset(ctx context.Context, key string) error
}

// LockoutKey builds the attempt key for a login, usernames are case-insensitive
func LockoutKey(role models.Role, username string) string {
	return string(role) + ":" + strings.ToLower(strings.TrimSpace(username))
}

type attemptEntry struct {
	failures    int
	expiresAt   time.Time
	lockedUntil time.Time
}

// MemoryAttemptStore is a process-local AttemptStore
type MemoryAttemptStore struct {
	mu      sync.Mutex
	policy  LockoutPolicy
	now     func() time.Time
	entries map[string]*attemptEntry
}

// NewMemoryAttemptStore creates an in-memory attempt store. A nil clock means time.Now.
func NewMemoryAttemptStore(policy LockoutPolicy, now func() time.Time) *MemoryAttemptStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryAttemptStore{
		policy:  policy,
		now:     now,
		entries: make(map[string]*attemptEntry),
	}
}

// Locked returns the remaining lock time for key
func (s *MemoryAttemptStore) Locked(_ context.Context, key string) (time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return 0, nil
	}
	now := s.now()
	if now.Before(entry.lockedUntil) {
		return entry.lockedUntil.Sub(now), nil
	}
	if !now.Before(entry.expiresAt) {
		delete(s.entries, key)
	}
	return 0, nil
}

// Fail records one failure for key
func (s *MemoryAttemptStore) Fail(_ context.Context, key string) (time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, ok := s.entries[key]
	if !ok || !now.Before(entry.expiresAt) {
		entry = &attemptEntry{}
		s.entries[key] = entry
	}
	entry.failures++
	entry.expiresAt = now.Add(s.policy.CounterTTL)

	if entry.failures < s.policy.MaxAttempts {
		return 0, nil
	}
	entry.failures = 0
	entry.lockedUntil = now.Add(s.policy.LockDuration)
	if entry.expiresAt.Before(entry.lockedUntil) {
		entry.expiresAt = entry.lockedUntil
	}
	return s.policy.LockDuration, nil
}

// Reset forgets key
func (s *MemoryAttemptStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
