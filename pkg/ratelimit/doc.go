// Package ratelimit provides fixed-window rate limiting with pluggable
// storage backends.
//
// The fixed-window algorithm counts requests in buckets of a configured
// duration and resets the count when a bucket expires. It is intentionally
// simpler than token-bucket or sliding-window enforcement: bursts are
// possible at window boundaries, in exchange for O(1) state per key and a
// trivially shareable counter representation.
//
//	store := ratelimit.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimit.NewFixedWindow(store, 100, time.Hour)
//	result, err := limiter.Allow(ctx, "user@example.com")
//	if !result.Allowed {
//	    // denied; result.RetryAfter() says how long to wait
//	}
//
// MemoryStore keeps windows in-process; RedisStore shares them across
// processes using INCRBY plus key expiry.
package ratelimit
