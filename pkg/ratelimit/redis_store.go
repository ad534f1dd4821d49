package ratelimit

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on Redis so rate limit windows are shared
// across processes. Counters use INCRBY with a TTL set when a window starts;
// Redis expiry replaces the lazy-overwrite reset of MemoryStore.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a Redis-backed store. The prefix namespaces keys so
// multiple limiters can share one Redis database; pass "" for the default.
func NewRedisStore(client redis.UniversalClient, prefix string) (*RedisStore, error) {
	if client == nil {
		return nil, ErrStoreRequired
	}
	if prefix == "" {
		prefix = "ratelimit:"
	}

	return &RedisStore{
		client: client,
		prefix: prefix,
	}, nil
}

func (rs *RedisStore) IncrementAndGet(ctx context.Context, key string, incr int, window time.Duration) (int64, time.Duration, error) {
	redisKey := rs.prefix + key

	pipe := rs.client.TxPipeline()
	incrCmd := pipe.IncrBy(ctx, redisKey, int64(incr))
	ttlCmd := pipe.PTTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, errors.Join(ErrStoreUnavailable, err)
	}

	current := incrCmd.Val()
	ttl := ttlCmd.Val()

	// A negative TTL means the key has no expiry yet: this increment started
	// a new window, so arm the expiry now.
	if ttl < 0 {
		if err := rs.client.PExpire(ctx, redisKey, window).Err(); err != nil {
			return 0, 0, errors.Join(ErrStoreUnavailable, err)
		}
		ttl = window
	}

	return current, ttl, nil
}

func (rs *RedisStore) Get(ctx context.Context, key string) (int64, time.Duration, error) {
	redisKey := rs.prefix + key

	pipe := rs.client.TxPipeline()
	getCmd := pipe.Get(ctx, redisKey)
	ttlCmd := pipe.PTTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, 0, nil
		}
		return 0, 0, errors.Join(ErrStoreUnavailable, err)
	}

	current, err := getCmd.Int64()
	if err != nil {
		return 0, 0, errors.Join(ErrStoreUnavailable, err)
	}

	ttl := ttlCmd.Val()
	if ttl < 0 {
		ttl = 0
	}

	return current, ttl, nil
}

func (rs *RedisStore) Delete(ctx context.Context, key string) error {
	if err := rs.client.Del(ctx, rs.prefix+key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
