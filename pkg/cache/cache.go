// Package cache stores extraction results between runs.
//
// # Backends
//
// Four [Cache] implementations are provided:
//
//   - [FileCache]: JSON files under a local directory, for CLI use
//   - [SQLiteCache]: one SQLite database file under a local directory
//   - [RedisCache]: a shared Redis instance, for the HTTP API
//   - [NullCache]: never stores anything, for --no-cache
//
// # Keys
//
// Keys are built by a [Keyer] so that every caller derives identical keys
// for identical inputs:
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.ExtractKey("cocoapods", cache.ExtractKeyOpts{
//	    Path:        "ios/Podfile",
//	    ContentHash: cache.Hash(content),
//	})
//
// [ScopedKeyer] prefixes keys to give separate namespaces to separate
// tenants sharing one backend.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Default entry lifetimes.
const (
	// TTLExtract is how long an extraction result stays valid. Results only
	// depend on file content and path, so the limit just bounds the growth
	// of stale entries.
	TTLExtract = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key-value store with per-entry expiry.
type Cache interface {
	// Get returns the value stored under key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	// Clear removes all entries and reports how many were removed.
	Clear(ctx context.Context) (int, error)
}

// Keyer derives cache keys.
type Keyer interface {
	// ExtractKey returns the key of one manifest's extraction result.
	ExtractKey(manager string, opts ExtractKeyOpts) string
}

// ExtractKeyOpts are the inputs an extraction result depends on.
type ExtractKeyOpts struct {
	Path          string `json:"path"`
	ContentHash   string `json:"content_hash"`
	SkipLockFiles bool   `json:"skip_lock_files,omitempty"`
	SkipEmpty     bool   `json:"skip_empty,omitempty"`
}

// DefaultKeyer builds keys of the form "extract:<manager>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ExtractKey hashes the manager and opts into a key.
func (DefaultKeyer) ExtractKey(manager string, opts ExtractKeyOpts) string {
	return hashKey("extract:"+manager, opts)
}

var _ Keyer = DefaultKeyer{}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey joins prefix with the hash of parts' JSON encoding.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}
