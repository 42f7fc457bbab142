// Package cache provides pluggable caching for rendered artifacts and
// seeded generation results.
//
// Three backends are available:
//   - FileCache: directory-backed, for CLI usage
//   - RedisCache: shared cache for the HTTP server
//   - NullCache: disables caching entirely
//
// Keys are derived from content hashes, so a cache entry is only ever
// reused for byte-identical input.
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts keyed by content hash.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// PuzzleKey derives a cache key for a generated puzzle from its wordlist
// content and generation parameters.
func PuzzleKey(wordlistHash string, maxAttempts int, seed uint64) string {
	return hashKey("puzzle", wordlistHash, maxAttempts, seed)
}

// ArtifactKey derives a cache key for a rendered artifact.
func ArtifactKey(puzzleHash, format string) string {
	return hashKey("artifact", puzzleHash, format)
}
