package finance

import (
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies an expense record
type ExpenseCategory string

const (
	ExpenseCategoryRent      ExpenseCategory = "RENT"
	ExpenseCategoryUtilities ExpenseCategory = "UTILITIES"
	ExpenseCategorySalary    ExpenseCategory = "SALARY"
	ExpenseCategoryPurchase  ExpenseCategory = "PURCHASE"
	ExpenseCategoryMarketing ExpenseCategory = "MARKETING"
	ExpenseCategoryTransport ExpenseCategory = "TRANSPORT"
	ExpenseCategoryOther     ExpenseCategory = "OTHER"
)

// IsValid checks if the category is a valid ExpenseCategory
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryRent, ExpenseCategoryUtilities, ExpenseCategorySalary,
		ExpenseCategoryPurchase, ExpenseCategoryMarketing, ExpenseCategoryTransport,
		ExpenseCategoryOther:
		return true
	}
	return false
}

// String returns the string representation of ExpenseCategory
func (c ExpenseCategory) String() string {
	return string(c)
}

// ExpenseRecord is one outgoing payment tracked on the dashboard
type ExpenseRecord struct {
	shared.BaseEntity
	Category   ExpenseCategory
	Title      string
	Amount     decimal.Decimal
	IncurredAt time.Time
	Note       string
}

// NewExpenseRecord creates an expense record
func NewExpenseRecord(category ExpenseCategory, title string, amount decimal.Decimal, incurredAt time.Time) (*ExpenseRecord, error) {
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown expense category")
	}
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Expense title cannot be empty")
	}
	if amount.IsNegative() || amount.IsZero() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount must be positive")
	}
	if incurredAt.IsZero() {
		incurredAt = time.Now()
	}
	return &ExpenseRecord{
		BaseEntity: shared.NewBaseEntity(),
		Category:   category,
		Title:      title,
		Amount:     amount,
		IncurredAt: incurredAt,
	}, nil
}

// Update changes the editable fields of the record
func (e *ExpenseRecord) Update(category ExpenseCategory, title string, amount decimal.Decimal, incurredAt time.Time, note string) error {
	if !category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", "Unknown expense category")
	}
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Expense title cannot be empty")
	}
	if amount.IsNegative() || amount.IsZero() {
		return shared.NewDomainError("INVALID_AMOUNT", "Expense amount must be positive")
	}
	e.Category = category
	e.Title = title
	e.Amount = amount
	if !incurredAt.IsZero() {
		e.IncurredAt = incurredAt
	}
	e.Note = note
	e.Touch()
	return nil
}
