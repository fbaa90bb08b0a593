package catalog

import (
	"context"

	"github.com/bizdash/backend/internal/domain/catalog"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SnapshotInvalidator drops the cached invoice-form catalog snapshot.
// Catalog writes call it so open form sessions keep their frozen prices
// while new sessions see the change.
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context)
}

// ProductService handles product catalog operations
type ProductService struct {
	productRepo catalog.ProductRepository
	snapshots   SnapshotInvalidator
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, snapshots SnapshotInvalidator) *ProductService {
	return &ProductService{productRepo: productRepo, snapshots: snapshots}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsBySKU(ctx, req.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this SKU already exists")
	}

	product, err := catalog.NewProduct(req.SKU, req.Name, req.UnitPrice)
	if err != nil {
		return nil, err
	}
	if req.Description != "" || req.Unit != "" {
		if err := product.Update(req.Name, req.Description, req.Unit); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.snapshots.Invalidate(ctx)
	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Update applies a partial update to a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := product.Name
	description := product.Description
	unit := product.Unit
	if req.Name != nil {
		name = *req.Name
	}
	if req.Description != nil {
		description = *req.Description
	}
	if req.Unit != nil {
		unit = *req.Unit
	}
	if err := product.Update(name, description, unit); err != nil {
		return nil, err
	}
	if req.UnitPrice != nil {
		if err := product.SetPrice(*req.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.snapshots.Invalidate(ctx)
	resp := ToProductResponse(product)
	return &resp, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[ProductResponse], error) {
	f := buildFilter(filter)

	products, err := s.productRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	rows := make([]ProductResponse, len(products))
	for i := range products {
		rows[i] = ToProductResponse(&products[i])
	}
	result := shared.NewPaginated(rows, total, f.Page, f.PageSize)
	return &result, nil
}

// Archive hides a product from the invoice form catalog
func (s *ProductService) Archive(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	product.Archive()
	if err := s.productRepo.Save(ctx, product); err != nil {
		return err
	}
	s.snapshots.Invalidate(ctx)
	return nil
}

// Restore reactivates an archived product
func (s *ProductService) Restore(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	product.Restore()
	if err := s.productRepo.Save(ctx, product); err != nil {
		return err
	}
	s.snapshots.Invalidate(ctx)
	return nil
}

// Delete removes a product. Invoice lines keep the copied description
// and price, so history is unaffected.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.snapshots.Invalidate(ctx)
	return nil
}

func buildFilter(filter ListFilter) shared.Filter {
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
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}
	return f
}
