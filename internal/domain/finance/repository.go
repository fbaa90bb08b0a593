package finance

import (
	"context"
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
)

// ExpenseRepository defines the persistence contract for expense records
type ExpenseRepository interface {
	shared.Repository[ExpenseRecord]
	FindByDateRange(ctx context.Context, from, to time.Time) ([]ExpenseRecord, error)
}

// IncomeRepository defines the persistence contract for income records
type IncomeRepository interface {
	shared.Repository[IncomeRecord]
	FindByDateRange(ctx context.Context, from, to time.Time) ([]IncomeRecord, error)
}
