package ratelimit

import "errors"

var (
	// ErrInvalidLimit indicates a non-positive limit.
	ErrInvalidLimit = errors.New("invalid limit")

	// ErrInvalidWindow indicates a non-positive window duration.
	ErrInvalidWindow = errors.New("invalid window")

	// ErrKeyRequired indicates an empty rate limit key.
	ErrKeyRequired = errors.New("key is required")

	// ErrStoreRequired indicates a nil store was provided.
	ErrStoreRequired = errors.New("store is required")

	// ErrStoreUnavailable indicates the store backend failed.
	ErrStoreUnavailable = errors.New("store unavailable")
)
