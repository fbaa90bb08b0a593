package inventory

import (
	"context"
	"errors"

	"github.com/bizdash/backend/internal/domain/catalog"
	"github.com/bizdash/backend/internal/domain/inventory"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StockService handles stock record operations
type StockService struct {
	stockRepo   inventory.StockRepository
	productRepo catalog.ProductRepository
}

// NewStockService creates a new StockService
func NewStockService(stockRepo inventory.StockRepository, productRepo catalog.ProductRepository) *StockService {
	return &StockService{stockRepo: stockRepo, productRepo: productRepo}
}

// Create starts stock tracking for a product. The product name is
// denormalized onto the record for listing without a join.
func (s *StockService) Create(ctx context.Context, req CreateStockItemRequest) (*StockItemResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product not found")
		}
		return nil, err
	}

	if existing, err := s.stockRepo.FindByProduct(ctx, req.ProductID); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Stock record for this product already exists")
	}

	item, err := inventory.NewStockItem(req.ProductID, product.Name, req.OnHand, req.RestockLevel)
	if err != nil {
		return nil, err
	}
	if err := s.stockRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	resp := ToStockItemResponse(item)
	return &resp, nil
}

// GetByID retrieves a stock record by ID
func (s *StockService) GetByID(ctx context.Context, id uuid.UUID) (*StockItemResponse, error) {
	item, err := s.stockRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToStockItemResponse(item)
	return &resp, nil
}

// Adjust applies a signed delta with a reason to a stock record
func (s *StockService) Adjust(ctx context.Context, id uuid.UUID, req AdjustStockRequest) (*StockItemResponse, error) {
	item, err := s.stockRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := item.Adjust(req.Delta, inventory.AdjustmentReason(req.Reason), req.Note); err != nil {
		return nil, err
	}
	if err := s.stockRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	resp := ToStockItemResponse(item)
	return &resp, nil
}

// SetRestockLevel changes the low-stock threshold of a record
func (s *StockService) SetRestockLevel(ctx context.Context, id uuid.UUID, req SetRestockLevelRequest) (*StockItemResponse, error) {
	item, err := s.stockRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.SetRestockLevel(req.RestockLevel)
	if err := s.stockRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	resp := ToStockItemResponse(item)
	return &resp, nil
}

// List retrieves stock records with filtering and pagination
func (s *StockService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[StockItemResponse], error) {
	if filter.LowOnly {
		items, err := s.stockRepo.FindBelowRestockLevel(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]StockItemResponse, len(items))
		for i := range items {
			rows[i] = ToStockItemResponse(&items[i])
		}
		pageSize := len(rows)
		if pageSize == 0 {
			pageSize = 1
		}
		result := shared.NewPaginated(rows, int64(len(rows)), 1, pageSize)
		return &result, nil
	}

	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		f.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		f.OrderDir = filter.OrderDir
	}
	f.Search = filter.Search

	items, err := s.stockRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.stockRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	rows := make([]StockItemResponse, len(items))
	for i := range items {
		rows[i] = ToStockItemResponse(&items[i])
	}
	result := shared.NewPaginated(rows, total, f.Page, f.PageSize)
	return &result, nil
}

// Delete removes a stock record
func (s *StockService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.stockRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.stockRepo.Delete(ctx, id)
}
