package ratelimit

import (
	"context"
	"time"
)

// Result contains the result of a rate limit check.
type Result struct {
	// Allowed indicates whether the request is allowed.
	Allowed bool

	// Limit is the maximum number of requests allowed in the window.
	Limit int

	// Remaining is the number of requests remaining in the current window.
	Remaining int

	// ResetAt is the time when the current window expires.
	ResetAt time.Time
}

// RetryAfter returns how long to wait before the next request is allowed.
// Returns 0 if the current request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Limiter defines the interface for rate limiting implementations.
type Limiter interface {
	// Allow checks if a single request is allowed for the given key,
	// consuming one slot if so.
	Allow(ctx context.Context, key string) (*Result, error)

	// Status returns the current state for the given key without consuming a slot.
	Status(ctx context.Context, key string) (*Result, error)

	// Reset clears the counter for the given key.
	Reset(ctx context.Context, key string) error
}

// Store defines the interface for rate limit storage backends.
type Store interface {
	// IncrementAndGet atomically increments the counter for the given key,
	// starting a new window of the given duration if none is active, and
	// returns the new value along with the time left in the window.
	IncrementAndGet(ctx context.Context, key string, incr int, window time.Duration) (current int64, ttl time.Duration, err error)

	// Get returns the current counter value and remaining window time without
	// incrementing. A key with no active window reports zero for both.
	Get(ctx context.Context, key string) (current int64, ttl time.Duration, err error)

	// Delete removes the given key from the store.
	Delete(ctx context.Context, key string) error
}

// KeyStatus is a read-only snapshot of one key's counter, used for statistics.
type KeyStatus struct {
	Key     string
	Count   int64
	ResetAt time.Time
}

// Snapshotter is implemented by stores that can enumerate their active keys.
type Snapshotter interface {
	Snapshot() []KeyStatus
}
