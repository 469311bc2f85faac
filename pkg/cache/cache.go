// Package cache stores rendered artifacts between runs.
//
// Rendering a deep circle set to PDF or PNG dominates run time, and the
// output is a pure function of the inputs. The pipeline keys each artifact
// by a hash of the base circles, generation options and render options
// (see [Keyer]) and reuses it on the next identical run.
//
// [FileCache] keeps entries under the user cache directory; [NullCache]
// disables caching (--no-cache).
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the data for key and whether it was found. Expired or
	// corrupt entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// DefaultDir returns the cache directory: $XDG_CACHE_HOME/mobius, falling
// back to ~/.cache/mobius.
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "mobius"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "mobius"), nil
}
