package finance

import (
	"context"
	"time"

	"github.com/bizdash/backend/internal/domain/finance"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseService records and lists expense entries
type ExpenseService struct {
	expenseRepo finance.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo finance.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// Record creates an expense record
func (s *ExpenseService) Record(ctx context.Context, req RecordExpenseRequest) (*ExpenseResponse, error) {
	incurredAt := time.Time{}
	if req.IncurredAt != nil {
		incurredAt = *req.IncurredAt
	}
	record, err := finance.NewExpenseRecord(finance.ExpenseCategory(req.Category), req.Title, req.Amount, incurredAt)
	if err != nil {
		return nil, err
	}
	if req.Note != "" {
		record.Note = req.Note
	}

	if err := s.expenseRepo.Save(ctx, record); err != nil {
		return nil, err
	}
	resp := ToExpenseResponse(record)
	return &resp, nil
}

// GetByID retrieves an expense record by ID
func (s *ExpenseService) GetByID(ctx context.Context, id uuid.UUID) (*ExpenseResponse, error) {
	record, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToExpenseResponse(record)
	return &resp, nil
}

// Update replaces the editable fields of an expense record
func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	record, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	incurredAt := time.Time{}
	if req.IncurredAt != nil {
		incurredAt = *req.IncurredAt
	}
	if err := record.Update(finance.ExpenseCategory(req.Category), req.Title, req.Amount, incurredAt, req.Note); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, record); err != nil {
		return nil, err
	}
	resp := ToExpenseResponse(record)
	return &resp, nil
}

// List retrieves expense records with filtering and pagination
func (s *ExpenseService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[ExpenseResponse], error) {
	f := financeFilter(filter)

	records, err := s.expenseRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.expenseRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	rows := make([]ExpenseResponse, len(records))
	for i := range records {
		rows[i] = ToExpenseResponse(&records[i])
	}
	result := shared.NewPaginated(rows, total, f.Page, f.PageSize)
	return &result, nil
}

// TotalBetween sums expenses in a date range, for the dashboard
func (s *ExpenseService) TotalBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	records, err := s.expenseRepo.FindByDateRange(ctx, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for i := range records {
		total = total.Add(records[i].Amount)
	}
	return total, nil
}

// Delete removes an expense record
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.expenseRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.expenseRepo.Delete(ctx, id)
}

func financeFilter(filter ListFilter) shared.Filter {
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
	if filter.Category != "" {
		f.Filters["category"] = filter.Category
	}
	if filter.From != nil {
		f.Filters["from"] = *filter.From
	}
	if filter.To != nil {
		f.Filters["to"] = *filter.To
	}
	return f
}
