package partner

import (
	"context"

	"github.com/bizdash/backend/internal/domain/shared"
)

// CustomerRepository defines the persistence contract for customers
type CustomerRepository interface {
	shared.Repository[Customer]
	FindActive(ctx context.Context, filter shared.Filter) ([]Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// BillerRepository defines the persistence contract for billers
type BillerRepository interface {
	shared.Repository[Biller]
}
