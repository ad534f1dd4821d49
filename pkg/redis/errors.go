package redis

import "errors"

var (
	// ErrEmptyConnectionURL indicates the config carries no connection URL.
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL")

	// ErrInvalidConnectionURL indicates the connection URL could not be parsed.
	ErrInvalidConnectionURL = errors.New("redis: invalid connection URL")

	// ErrNotReady indicates the server did not answer PING within the
	// configured retry budget.
	ErrNotReady = errors.New("redis: server not ready")

	// ErrHealthcheckFailed wraps a failed readiness probe.
	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
)
