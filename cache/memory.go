package cache

import (
	"context"
	"sync"
	"time"
)

type expiringValue struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is an in-memory Cache used in tests and local runs. The clock
// is a field so tests can age out entries without sleeping.
type MemoryCache struct {
	mu      sync.RWMutex
	hashes  map[string]map[string]string
	strings map[string]expiringValue

	Now func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		hashes:  make(map[string]map[string]string),
		strings: make(map[string]expiringValue),
		Now:     time.Now,
	}
}

func (c *MemoryCache) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	fields := make(map[string]string, len(c.hashes[key]))
	for k, v := range c.hashes[key] {
		fields[k] = v
	}
	return fields, nil
}

func (c *MemoryCache) HSet(ctx context.Context, key string, fields map[string]string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	hash, ok := c.hashes[key]
	if !ok {
		hash = make(map[string]string, len(fields))
		c.hashes[key] = hash
	}
	for k, v := range fields {
		hash[k] = v
	}
	return nil
}

func (c *MemoryCache) Get(ctx context.Context, key string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.strings[key]
	if !ok || c.Now().After(entry.expiresAt) {
		return "", ErrCacheMiss
	}
	return entry.value, nil
}

func (c *MemoryCache) SetEx(ctx context.Context, key, value string, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.strings[key] = expiringValue{value: value, expiresAt: c.Now().Add(ttl)}
	return nil
}
