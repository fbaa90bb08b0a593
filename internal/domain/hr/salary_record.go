package hr

import (
	"regexp"
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// monthPattern matches "YYYY-MM"
var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// SalaryRecord is one payroll payment. The staff name is denormalized
// at write time so the record survives later staff edits or departures.
type SalaryRecord struct {
	shared.BaseEntity
	StaffID   uuid.UUID
	StaffName string
	Month     string // YYYY-MM
	Amount    decimal.Decimal
	PaidAt    time.Time
	Method    string
	Note      string
}

// NewSalaryRecord creates a payroll payment record
func NewSalaryRecord(staffID uuid.UUID, staffName, month string, amount decimal.Decimal, paidAt time.Time, method string) (*SalaryRecord, error) {
	if staffID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STAFF", "Staff ID cannot be empty")
	}
	if staffName == "" {
		return nil, shared.NewDomainError("INVALID_STAFF", "Staff name cannot be empty")
	}
	if !monthPattern.MatchString(month) {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month must be in YYYY-MM format")
	}
	if amount.IsNegative() || amount.IsZero() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Salary amount must be positive")
	}
	if paidAt.IsZero() {
		paidAt = time.Now()
	}
	return &SalaryRecord{
		BaseEntity: shared.NewBaseEntity(),
		StaffID:    staffID,
		StaffName:  staffName,
		Month:      month,
		Amount:     amount,
		PaidAt:     paidAt,
		Method:     method,
	}, nil
}

// SetNote attaches a free-form note
func (r *SalaryRecord) SetNote(note string) {
	r.Note = note
	r.Touch()
}
