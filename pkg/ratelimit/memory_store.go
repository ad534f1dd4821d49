package ratelimit

import (
	"context"
	"sync"
	"time"
)

// window holds one key's counter state.
type window struct {
	count   int64
	resetAt time.Time
}

// MemoryStore implements Store using an in-process map. Expired windows are
// overwritten lazily on the next increment, with a periodic sweep to reclaim
// memory for keys that never come back.
type MemoryStore struct {
	mu      sync.RWMutex
	windows map[string]*window

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	stopOnce        sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets the sweep interval for removing expired windows.
// Set to 0 to disable the background sweep.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.cleanupInterval = interval
	}
}

// NewMemoryStore creates an in-memory store with optional cleanup.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		windows:         make(map[string]*window),
		cleanupInterval: 5 * time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(ms)
	}

	if ms.cleanupInterval > 0 {
		go ms.cleanup()
	}

	return ms
}

func (ms *MemoryStore) IncrementAndGet(ctx context.Context, key string, incr int, windowDur time.Duration) (int64, time.Duration, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	w, exists := ms.windows[key]

	if !exists || now.After(w.resetAt) {
		w = &window{
			count:   int64(incr),
			resetAt: now.Add(windowDur),
		}
		ms.windows[key] = w
		return w.count, windowDur, nil
	}

	w.count += int64(incr)
	return w.count, w.resetAt.Sub(now), nil
}

func (ms *MemoryStore) Get(ctx context.Context, key string) (int64, time.Duration, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	w, exists := ms.windows[key]
	if !exists {
		return 0, 0, nil
	}

	now := time.Now()
	if now.After(w.resetAt) {
		return 0, 0, nil
	}

	return w.count, w.resetAt.Sub(now), nil
}

func (ms *MemoryStore) Delete(ctx context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.windows, key)
	return nil
}

// Snapshot returns the active (non-expired) windows, for statistics reporting.
func (ms *MemoryStore) Snapshot() []KeyStatus {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	now := time.Now()
	statuses := make([]KeyStatus, 0, len(ms.windows))
	for key, w := range ms.windows {
		if now.After(w.resetAt) {
			continue
		}
		statuses = append(statuses, KeyStatus{
			Key:     key,
			Count:   w.count,
			ResetAt: w.resetAt,
		})
	}

	return statuses
}

// cleanup sweeps expired windows periodically.
func (ms *MemoryStore) cleanup() {
	ticker := time.NewTicker(ms.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.removeExpired()
		case <-ms.stopCleanup:
			return
		}
	}
}

func (ms *MemoryStore) removeExpired() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	for key, w := range ms.windows {
		if now.After(w.resetAt) {
			delete(ms.windows, key)
		}
	}
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (ms *MemoryStore) Close() {
	ms.stopOnce.Do(func() {
		close(ms.stopCleanup)
	})
}
