package finance

import (
	"context"
	"time"

	"github.com/bizdash/backend/internal/domain/finance"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeService records and lists income entries tracked outside the
// invoice flow
type IncomeService struct {
	incomeRepo finance.IncomeRepository
}

// NewIncomeService creates a new IncomeService
func NewIncomeService(incomeRepo finance.IncomeRepository) *IncomeService {
	return &IncomeService{incomeRepo: incomeRepo}
}

// Record creates an income record
func (s *IncomeService) Record(ctx context.Context, req RecordIncomeRequest) (*IncomeResponse, error) {
	receivedAt := time.Time{}
	if req.ReceivedAt != nil {
		receivedAt = *req.ReceivedAt
	}
	record, err := finance.NewIncomeRecord(finance.IncomeCategory(req.Category), req.Title, req.Amount, receivedAt)
	if err != nil {
		return nil, err
	}
	if req.Note != "" {
		record.Note = req.Note
	}

	if err := s.incomeRepo.Save(ctx, record); err != nil {
		return nil, err
	}
	resp := ToIncomeResponse(record)
	return &resp, nil
}

// GetByID retrieves an income record by ID
func (s *IncomeService) GetByID(ctx context.Context, id uuid.UUID) (*IncomeResponse, error) {
	record, err := s.incomeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToIncomeResponse(record)
	return &resp, nil
}

// Update replaces the editable fields of an income record
func (s *IncomeService) Update(ctx context.Context, id uuid.UUID, req UpdateIncomeRequest) (*IncomeResponse, error) {
	record, err := s.incomeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	receivedAt := time.Time{}
	if req.ReceivedAt != nil {
		receivedAt = *req.ReceivedAt
	}
	if err := record.Update(finance.IncomeCategory(req.Category), req.Title, req.Amount, receivedAt, req.Note); err != nil {
		return nil, err
	}

	if err := s.incomeRepo.Save(ctx, record); err != nil {
		return nil, err
	}
	resp := ToIncomeResponse(record)
	return &resp, nil
}

// List retrieves income records with filtering and pagination
func (s *IncomeService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[IncomeResponse], error) {
	f := financeFilter(filter)

	records, err := s.incomeRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.incomeRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	rows := make([]IncomeResponse, len(records))
	for i := range records {
		rows[i] = ToIncomeResponse(&records[i])
	}
	result := shared.NewPaginated(rows, total, f.Page, f.PageSize)
	return &result, nil
}

// TotalBetween sums income in a date range, for the dashboard
func (s *IncomeService) TotalBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	records, err := s.incomeRepo.FindByDateRange(ctx, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for i := range records {
		total = total.Add(records[i].Amount)
	}
	return total, nil
}

// Delete removes an income record
func (s *IncomeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.incomeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.incomeRepo.Delete(ctx, id)
}
