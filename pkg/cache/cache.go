// Package cache stores rendered artifacts between runs, so unchanged
// configurations are served from disk instead of being redrawn.
//
// Keys are content addressed: a Keyer derives them from the hash of the
// configuration file plus the parameters that influence the output (plan
// index, raster resolution). Editing the config changes the hash and
// naturally invalidates every artifact derived from it.
package cache

import (
	"context"
	"time"
)

// Cache is the storage contract shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A positive ttl bounds its lifetime; zero keeps it
	// until deleted.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
