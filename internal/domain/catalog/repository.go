package catalog

import (
	"context"

	"github.com/bizdash/backend/internal/domain/shared"
)

// ProductRepository defines the persistence contract for products
type ProductRepository interface {
	shared.Repository[Product]
	FindActive(ctx context.Context) ([]Product, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
}

// ServiceRepository defines the persistence contract for services
type ServiceRepository interface {
	shared.Repository[Service]
	FindActive(ctx context.Context) ([]Service, error)
}
