package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStockItem(t *testing.T) {
	item, err := NewStockItem(uuid.New(), "Widget", 10, 3)
	require.NoError(t, err)
	assert.Equal(t, 10, item.OnHand)
	assert.False(t, item.NeedsRestock())

	_, err = NewStockItem(uuid.Nil, "Widget", 10, 3)
	assert.Error(t, err)
}

func TestNewStockItem_ClampsNegatives(t *testing.T) {
	item, err := NewStockItem(uuid.New(), "Widget", -5, -2)
	require.NoError(t, err)
	assert.Equal(t, 0, item.OnHand)
	assert.Equal(t, 0, item.RestockLevel)
}

func TestStockItem_Adjust(t *testing.T) {
	item, err := NewStockItem(uuid.New(), "Widget", 10, 3)
	require.NoError(t, err)

	require.NoError(t, item.Adjust(5, AdjustmentReasonRestock, ""))
	assert.Equal(t, 15, item.OnHand)
	assert.NotNil(t, item.LastAdjusted)

	require.NoError(t, item.Adjust(-20, AdjustmentReasonSale, "oversold"))
	assert.Equal(t, 0, item.OnHand, "on-hand is capped at zero")

	assert.Error(t, item.Adjust(1, AdjustmentReason("GIFT"), ""))
}

func TestStockItem_NeedsRestock(t *testing.T) {
	item, err := NewStockItem(uuid.New(), "Widget", 4, 3)
	require.NoError(t, err)
	assert.False(t, item.NeedsRestock())

	require.NoError(t, item.Adjust(-1, AdjustmentReasonSale, ""))
	assert.True(t, item.NeedsRestock(), "at threshold counts as needing restock")
}
