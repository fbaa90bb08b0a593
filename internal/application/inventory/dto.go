package inventory

import (
	"time"

	"github.com/bizdash/backend/internal/domain/inventory"
	"github.com/google/uuid"
)

// CreateStockItemRequest registers stock tracking for a product
type CreateStockItemRequest struct {
	ProductID    uuid.UUID `json:"product_id" binding:"required"`
	OnHand       int       `json:"on_hand" binding:"min=0"`
	RestockLevel int       `json:"restock_level" binding:"min=0"`
}

// AdjustStockRequest applies a signed quantity delta
type AdjustStockRequest struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"required,oneof=RESTOCK SALE DAMAGE CORRECTION"`
	Note   string `json:"note" binding:"max=500"`
}

// SetRestockLevelRequest changes the low-stock threshold
type SetRestockLevelRequest struct {
	RestockLevel int `json:"restock_level" binding:"min=0"`
}

// StockItemResponse represents a stock record in API responses
type StockItemResponse struct {
	ID           uuid.UUID  `json:"id"`
	ProductID    uuid.UUID  `json:"product_id"`
	ProductName  string     `json:"product_name"`
	OnHand       int        `json:"on_hand"`
	RestockLevel int        `json:"restock_level"`
	NeedsRestock bool       `json:"needs_restock"`
	LastAdjusted *time.Time `json:"last_adjusted,omitempty"`
	Note         string     `json:"note,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ListFilter represents filter options for the stock list
type ListFilter struct {
	Search   string `form:"search"`
	LowOnly  bool   `form:"low_only"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToStockItemResponse converts a domain StockItem to StockItemResponse
func ToStockItemResponse(s *inventory.StockItem) StockItemResponse {
	return StockItemResponse{
		ID:           s.ID,
		ProductID:    s.ProductID,
		ProductName:  s.ProductName,
		OnHand:       s.OnHand,
		RestockLevel: s.RestockLevel,
		NeedsRestock: s.NeedsRestock(),
		LastAdjusted: s.LastAdjusted,
		Note:         s.Note,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
