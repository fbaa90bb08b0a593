package hr

import (
	"context"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StaffRepository defines the persistence contract for staff
type StaffRepository interface {
	shared.Repository[Staff]
	FindByEmail(ctx context.Context, email string) (*Staff, error)
	FindActive(ctx context.Context) ([]Staff, error)
}

// SalaryRepository defines the persistence contract for payroll records
type SalaryRepository interface {
	shared.Repository[SalaryRecord]
	FindByStaff(ctx context.Context, staffID uuid.UUID) ([]SalaryRecord, error)
	FindByMonth(ctx context.Context, month string) ([]SalaryRecord, error)
}
