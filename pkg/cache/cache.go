// Package cache provides pluggable byte caches for export artifacts.
//
// Three backends are available:
//   - FileCache: entries stored as files in a directory (CLI default)
//   - RedisCache: entries stored in Redis (shared deployments)
//   - NullCache: no-op, for tests or --no-cache runs
//
// Keys for export artifacts are derived from the source content hash plus the
// export options, so a changed file or a different format never serves a
// stale artifact.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values with per-entry expiration.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given time-to-live.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// DefaultTTL is the expiration applied to export artifacts unless configured
// otherwise.
const DefaultTTL = 24 * time.Hour

// ExportKey derives the cache key for an export artifact.
func ExportKey(contentHash, format string, emptyFields bool) string {
	return hashKey("export", contentHash, format, emptyFields)
}
