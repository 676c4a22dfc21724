package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryCacheHashOps(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	fields, err := c.HGetAll(ctx, "shipment:1")
	if err != nil {
		t.Fatalf("HGetAll on empty cache: %v", err)
	}
	if len(fields) != 0 {
		t.Fatalf("expected empty mapping, got %v", fields)
	}

	if err := c.HSet(ctx, "shipment:1", map[string]string{"status": "PENDING", "userId": "3"}); err != nil {
		t.Fatalf("HSet: %v", err)
	}
	// A partial write merges into the existing hash.
	if err := c.HSet(ctx, "shipment:1", map[string]string{"status": "IN_TRANSIT"}); err != nil {
		t.Fatalf("HSet merge: %v", err)
	}

	fields, err = c.HGetAll(ctx, "shipment:1")
	if err != nil {
		t.Fatalf("HGetAll: %v", err)
	}
	if fields["status"] != "IN_TRANSIT" || fields["userId"] != "3" {
		t.Fatalf("unexpected hash contents: %v", fields)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	c.Now = func() time.Time { return now }

	if _, err := c.Get(ctx, "report"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}

	if err := c.SetEx(ctx, "report", `[{"id":1}]`, time.Hour); err != nil {
		t.Fatalf("SetEx: %v", err)
	}
	value, err := c.Get(ctx, "report")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != `[{"id":1}]` {
		t.Fatalf("unexpected value %q", value)
	}

	now = now.Add(61 * time.Minute)
	if _, err := c.Get(ctx, "report"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected expired entry to miss, got %v", err)
	}
}
