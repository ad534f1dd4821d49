package ratelimit

import (
	"context"
	"time"
)

// FixedWindow implements a fixed-window counter: requests are counted in
// wall-clock-aligned buckets of the configured duration, and the count resets
// each time a bucket's end is crossed. Bursts of up to 2x the limit are
// possible right at window boundaries; this is a characteristic of the
// algorithm, not a bug, accepted in exchange for O(1) state per key.
type FixedWindow struct {
	store  Store
	limit  int
	window time.Duration
}

// NewFixedWindow creates a fixed-window rate limiter.
func NewFixedWindow(store Store, limit int, window time.Duration) (*FixedWindow, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	return &FixedWindow{
		store:  store,
		limit:  limit,
		window: window,
	}, nil
}

// Allow consumes one slot for the key. The first hit of an expired or absent
// window starts a fresh one; hits at or over the limit are denied but still
// counted, so ResetAt stays accurate for denied callers.
func (fw *FixedWindow) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	current, ttl, err := fw.store.IncrementAndGet(ctx, key, 1, fw.window)
	if err != nil {
		return nil, err
	}

	return fw.result(current <= int64(fw.limit), current, ttl), nil
}

// Status reports the current window state without consuming a slot.
func (fw *FixedWindow) Status(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	current, ttl, err := fw.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = fw.window
	}

	return fw.result(current < int64(fw.limit), current, ttl), nil
}

// Reset clears the counter for the given key.
func (fw *FixedWindow) Reset(ctx context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	return fw.store.Delete(ctx, key)
}

func (fw *FixedWindow) result(allowed bool, current int64, ttl time.Duration) *Result {
	return &Result{
		Allowed:   allowed,
		Limit:     fw.limit,
		Remaining: max(0, fw.limit-int(current)),
		ResetAt:   time.Now().Add(ttl),
	}
}

// Snapshot exposes the store's active keys when the backend supports it.
// Returns nil otherwise.
func (fw *FixedWindow) Snapshot() []KeyStatus {
	if s, ok := fw.store.(Snapshotter); ok {
		return s.Snapshot()
	}
	return nil
}
