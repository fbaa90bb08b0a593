package inventory

import (
	"context"
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AdjustmentReason classifies a manual stock change
type AdjustmentReason string

const (
	AdjustmentReasonRestock    AdjustmentReason = "RESTOCK"
	AdjustmentReasonSale       AdjustmentReason = "SALE"
	AdjustmentReasonDamage     AdjustmentReason = "DAMAGE"
	AdjustmentReasonCorrection AdjustmentReason = "CORRECTION"
)

// IsValid checks if the reason is a valid AdjustmentReason
func (r AdjustmentReason) IsValid() bool {
	switch r {
	case AdjustmentReasonRestock, AdjustmentReasonSale, AdjustmentReasonDamage, AdjustmentReasonCorrection:
		return true
	}
	return false
}

// StockItem tracks the on-hand quantity for one product
type StockItem struct {
	shared.BaseEntity
	ProductID    uuid.UUID
	ProductName  string
	OnHand       int
	RestockLevel int
	LastAdjusted *time.Time
	Note         string
}

// NewStockItem creates a stock record for a product
func NewStockItem(productID uuid.UUID, productName string, onHand, restockLevel int) (*StockItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if onHand < 0 {
		onHand = 0
	}
	if restockLevel < 0 {
		restockLevel = 0
	}
	return &StockItem{
		BaseEntity:   shared.NewBaseEntity(),
		ProductID:    productID,
		ProductName:  productName,
		OnHand:       onHand,
		RestockLevel: restockLevel,
	}, nil
}

// Adjust applies a signed quantity delta with a reason. The on-hand
// count never goes below zero; a draining delta is capped instead of
// rejected, matching the form's clamp-don't-fail convention.
func (s *StockItem) Adjust(delta int, reason AdjustmentReason, note string) error {
	if !reason.IsValid() {
		return shared.NewDomainError("INVALID_REASON", "Unknown stock adjustment reason")
	}
	s.OnHand += delta
	if s.OnHand < 0 {
		s.OnHand = 0
	}
	now := time.Now()
	s.LastAdjusted = &now
	if note != "" {
		s.Note = note
	}
	s.Touch()
	return nil
}

// SetRestockLevel updates the low-stock threshold
func (s *StockItem) SetRestockLevel(level int) {
	if level < 0 {
		level = 0
	}
	s.RestockLevel = level
	s.Touch()
}

// NeedsRestock returns true when on-hand quantity is at or below the threshold
func (s *StockItem) NeedsRestock() bool {
	return s.OnHand <= s.RestockLevel
}

// StockRepository defines the persistence contract for stock records
type StockRepository interface {
	shared.Repository[StockItem]
	FindByProduct(ctx context.Context, productID uuid.UUID) (*StockItem, error)
	FindBelowRestockLevel(ctx context.Context) ([]StockItem, error)
}
