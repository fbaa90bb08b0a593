package cache

import (
	"context"
	"sync"
	"time"

	"github.com/bizdash/backend/internal/domain/billing"
)

// InMemorySnapshotCache holds the catalog snapshot in process memory.
// Suitable for single-instance deployments and testing; state is not
// shared across instances.
type InMemorySnapshotCache struct {
	mu       sync.RWMutex
	snapshot *billing.CatalogSnapshot
	storedAt time.Time
	ttl      time.Duration
}

// NewInMemorySnapshotCache creates an in-memory snapshot cache with the
// given TTL; zero disables expiry
func NewInMemorySnapshotCache(ttl time.Duration) *InMemorySnapshotCache {
	return &InMemorySnapshotCache{ttl: ttl}
}

// Get returns the cached snapshot if present and not expired
func (c *InMemorySnapshotCache) Get(ctx context.Context) (*billing.CatalogSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.snapshot == nil {
		return nil, false
	}
	if c.ttl > 0 && time.Since(c.storedAt) > c.ttl {
		return nil, false
	}
	return c.snapshot, true
}

// Set stores the snapshot
func (c *InMemorySnapshotCache) Set(ctx context.Context, snap *billing.CatalogSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = snap
	c.storedAt = time.Now()
}

// Invalidate drops the cached snapshot
func (c *InMemorySnapshotCache) Invalidate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = nil
}
