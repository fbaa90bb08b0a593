package cache

import (
	"testing"
	"time"

	"github.com/bizdash/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() *billing.CatalogSnapshot {
	return billing.NewCatalogSnapshot(
		[]billing.CatalogEntry{{
			ID:        uuid.New(),
			Name:      "Steel Bolt",
			UnitPrice: decimal.NewFromInt(12),
		}},
		nil,
	)
}

func TestInMemorySnapshotCache_SetAndGet(t *testing.T) {
	cache := NewInMemorySnapshotCache(time.Minute)
	ctx := t.Context()

	_, ok := cache.Get(ctx)
	assert.False(t, ok, "empty cache misses")

	snap := sampleSnapshot()
	cache.Set(ctx, snap)

	got, ok := cache.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, snap, got)
}

func TestInMemorySnapshotCache_Invalidate(t *testing.T) {
	cache := NewInMemorySnapshotCache(time.Minute)
	ctx := t.Context()

	cache.Set(ctx, sampleSnapshot())
	cache.Invalidate(ctx)

	_, ok := cache.Get(ctx)
	assert.False(t, ok)
}

func TestInMemorySnapshotCache_TTLExpiry(t *testing.T) {
	cache := NewInMemorySnapshotCache(10 * time.Millisecond)
	ctx := t.Context()

	cache.Set(ctx, sampleSnapshot())
	time.Sleep(20 * time.Millisecond)

	_, ok := cache.Get(ctx)
	assert.False(t, ok, "entry past TTL misses")
}

func TestInMemorySnapshotCache_ZeroTTLNeverExpires(t *testing.T) {
	cache := NewInMemorySnapshotCache(0)
	ctx := t.Context()

	cache.Set(ctx, sampleSnapshot())
	time.Sleep(10 * time.Millisecond)

	_, ok := cache.Get(ctx)
	assert.True(t, ok)
}
