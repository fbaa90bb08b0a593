package finance

import (
	"time"

	"github.com/bizdash/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordExpenseRequest records an outgoing payment
type RecordExpenseRequest struct {
	Category   string          `json:"category" binding:"required"`
	Title      string          `json:"title" binding:"required,min=1,max=200"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	IncurredAt *time.Time      `json:"incurred_at"`
	Note       string          `json:"note" binding:"max=500"`
}

// UpdateExpenseRequest updates an expense record
type UpdateExpenseRequest struct {
	Category   string          `json:"category" binding:"required"`
	Title      string          `json:"title" binding:"required,min=1,max=200"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	IncurredAt *time.Time      `json:"incurred_at"`
	Note       string          `json:"note" binding:"max=500"`
}

// ExpenseResponse represents an expense record in API responses
type ExpenseResponse struct {
	ID         uuid.UUID       `json:"id"`
	Category   string          `json:"category"`
	Title      string          `json:"title"`
	Amount     decimal.Decimal `json:"amount"`
	IncurredAt time.Time       `json:"incurred_at"`
	Note       string          `json:"note,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// RecordIncomeRequest records an incoming payment outside the invoice flow
type RecordIncomeRequest struct {
	Category   string          `json:"category" binding:"required"`
	Title      string          `json:"title" binding:"required,min=1,max=200"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	ReceivedAt *time.Time      `json:"received_at"`
	Note       string          `json:"note" binding:"max=500"`
}

// UpdateIncomeRequest updates an income record
type UpdateIncomeRequest struct {
	Category   string          `json:"category" binding:"required"`
	Title      string          `json:"title" binding:"required,min=1,max=200"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	ReceivedAt *time.Time      `json:"received_at"`
	Note       string          `json:"note" binding:"max=500"`
}

// IncomeResponse represents an income record in API responses
type IncomeResponse struct {
	ID         uuid.UUID       `json:"id"`
	Category   string          `json:"category"`
	Title      string          `json:"title"`
	Amount     decimal.Decimal `json:"amount"`
	ReceivedAt time.Time       `json:"received_at"`
	Note       string          `json:"note,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ListFilter represents filter options for finance lists
type ListFilter struct {
	Search   string     `form:"search"`
	Category string     `form:"category"`
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToExpenseResponse converts a domain ExpenseRecord to ExpenseResponse
func ToExpenseResponse(e *finance.ExpenseRecord) ExpenseResponse {
	return ExpenseResponse{
		ID:         e.ID,
		Category:   e.Category.String(),
		Title:      e.Title,
		Amount:     e.Amount,
		IncurredAt: e.IncurredAt,
		Note:       e.Note,
		CreatedAt:  e.CreatedAt,
	}
}

// ToIncomeResponse converts a domain IncomeRecord to IncomeResponse
func ToIncomeResponse(r *finance.IncomeRecord) IncomeResponse {
	return IncomeResponse{
		ID:         r.ID,
		Category:   r.Category.String(),
		Title:      r.Title,
		Amount:     r.Amount,
		ReceivedAt: r.ReceivedAt,
		Note:       r.Note,
		CreatedAt:  r.CreatedAt,
	}
}
