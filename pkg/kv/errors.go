package kv

import "errors"

var (
	// ErrKeyNotFound is returned by Get for keys that have never been set.
	ErrKeyNotFound = errors.New("kv: key not found")

	// ErrFailedToParseConnString is returned when the Redis connection URL is malformed.
	ErrFailedToParseConnString = errors.New("kv: failed to parse redis connection string")

	// ErrRedisNotReady is returned when the Redis server cannot be reached
	// within the configured retry budget.
	ErrRedisNotReady = errors.New("kv: redis not ready")
)
