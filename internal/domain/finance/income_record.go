package finance

import (
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// IncomeCategory classifies an income record outside invoiced sales
type IncomeCategory string

const (
	IncomeCategorySales      IncomeCategory = "SALES"
	IncomeCategoryCommission IncomeCategory = "COMMISSION"
	IncomeCategoryInterest   IncomeCategory = "INTEREST"
	IncomeCategoryOther      IncomeCategory = "OTHER"
)

// IsValid checks if the category is a valid IncomeCategory
func (c IncomeCategory) IsValid() bool {
	switch c {
	case IncomeCategorySales, IncomeCategoryCommission, IncomeCategoryInterest, IncomeCategoryOther:
		return true
	}
	return false
}

// String returns the string representation of IncomeCategory
func (c IncomeCategory) String() string {
	return string(c)
}

// IncomeRecord is one incoming payment tracked outside the invoice flow
type IncomeRecord struct {
	shared.BaseEntity
	Category   IncomeCategory
	Title      string
	Amount     decimal.Decimal
	ReceivedAt time.Time
	Note       string
}

// NewIncomeRecord creates an income record
func NewIncomeRecord(category IncomeCategory, title string, amount decimal.Decimal, receivedAt time.Time) (*IncomeRecord, error) {
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown income category")
	}
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Income title cannot be empty")
	}
	if amount.IsNegative() || amount.IsZero() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Income amount must be positive")
	}
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}
	return &IncomeRecord{
		BaseEntity: shared.NewBaseEntity(),
		Category:   category,
		Title:      title,
		Amount:     amount,
		ReceivedAt: receivedAt,
	}, nil
}

// Update changes the editable fields of the record
func (r *IncomeRecord) Update(category IncomeCategory, title string, amount decimal.Decimal, receivedAt time.Time, note string) error {
	if !category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", "Unknown income category")
	}
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Income title cannot be empty")
	}
	if amount.IsNegative() || amount.IsZero() {
		return shared.NewDomainError("INVALID_AMOUNT", "Income amount must be positive")
	}
	r.Category = category
	r.Title = title
	r.Amount = amount
	if !receivedAt.IsZero() {
		r.ReceivedAt = receivedAt
	}
	r.Note = note
	r.Touch()
	return nil
}
