package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when a key does not exist or has expired.
var ErrNotFound = errors.New("cache: key not found")

// Cache abstracts a key-value cache with TTL support. Values are opaque
// byte slices; encoding is the caller's concern. All operations are safe
// for concurrent use.
type Cache interface {
	// Get retrieves the value associated with key.
	// Returns ErrNotFound if the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under key with the given TTL, replacing any
	// existing value.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a key that does not exist is a no-op,
	// not an error.
	Delete(ctx context.Context, key string) error

	// Ping verifies connectivity to the underlying cache backend.
	Ping(ctx context.Context) error

	// Close releases all resources held by the implementation.
	Close() error
}
