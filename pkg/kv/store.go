package kv

import "context"

// Store is the minimal key-value contract the session coordinator persists
// through: plain string values plus boolean flags. Implementations must be
// safe for concurrent use.
type Store interface {
	// Get returns the value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// GetBool returns the boolean flag for key. A missing key reads as false
	// with no error: an unset flag and a cleared flag are indistinguishable.
	GetBool(ctx context.Context, key string) (bool, error)

	// SetBool stores a boolean flag under key.
	SetBool(ctx context.Context, key string, value bool) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
