package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired. Callers
// must treat any other error as a cache outage, not a miss.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is the fast-cache surface the services need: hash-shaped values for
// shipment projections plus expiring string values for report pages.
type Cache interface {
	// HGetAll returns the full field mapping stored under key. An empty map
	// with a nil error means the key does not exist.
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	// HSet writes the given fields into the hash at key, creating it if
	// needed. Fields not present in the map are left untouched.
	HSet(ctx context.Context, key string, fields map[string]string) error

	// Get returns the string value at key, or ErrCacheMiss.
	Get(ctx context.Context, key string) (string, error)

	// SetEx stores value at key with the given time-to-live.
	SetEx(ctx context.Context, key, value string, ttl time.Duration) error
}
