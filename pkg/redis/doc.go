// Package redis provides connection bootstrapping for the Redis server that
// backs distributed email rate limiting.
//
// Connect parses a redis:// URL, dials with retries, and verifies the
// connection with PING before handing the client to callers. The returned
// client is what ratelimit.NewRedisStore expects:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	store, err := ratelimit.NewRedisStore(client, "email:ratelimit")
//
// Healthcheck wraps the same PING as a probe function for readiness
// endpoints.
package redis
