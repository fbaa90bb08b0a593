package hr

import (
	"context"
	"errors"
	"time"

	"github.com/bizdash/backend/internal/domain/hr"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollService records and lists salary payments
type PayrollService struct {
	staffRepo  hr.StaffRepository
	salaryRepo hr.SalaryRepository
}

// NewPayrollService creates a new PayrollService
func NewPayrollService(staffRepo hr.StaffRepository, salaryRepo hr.SalaryRepository) *PayrollService {
	return &PayrollService{staffRepo: staffRepo, salaryRepo: salaryRepo}
}

// RecordPayment records one salary payment. The amount defaults to the
// staff member's monthly salary; the staff name is denormalized onto
// the record so it survives later staff edits.
func (s *PayrollService) RecordPayment(ctx context.Context, req RecordSalaryRequest) (*SalaryRecordResponse, error) {
	staff, err := s.staffRepo.FindByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_STAFF", "Staff member not found")
		}
		return nil, err
	}

	amount := staff.MonthlySalary
	if req.Amount != nil {
		amount = *req.Amount
	}

	existing, err := s.salaryRepo.FindByStaff(ctx, req.StaffID)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].Month == req.Month {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Salary for this month is already recorded")
		}
	}

	paidAt := time.Time{}
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}
	record, err := hr.NewSalaryRecord(staff.ID, staff.Name, req.Month, amount, paidAt, req.Method)
	if err != nil {
		return nil, err
	}
	if req.Note != "" {
		record.SetNote(req.Note)
	}

	if err := s.salaryRepo.Save(ctx, record); err != nil {
		return nil, err
	}
	resp := ToSalaryRecordResponse(record)
	return &resp, nil
}

// List retrieves salary records, optionally for one month
func (s *PayrollService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[SalaryRecordResponse], error) {
	if filter.Month != "" {
		records, err := s.salaryRepo.FindByMonth(ctx, filter.Month)
		if err != nil {
			return nil, err
		}
		rows := make([]SalaryRecordResponse, len(records))
		for i := range records {
			rows[i] = ToSalaryRecordResponse(&records[i])
		}
		pageSize := len(rows)
		if pageSize == 0 {
			pageSize = 1
		}
		result := shared.NewPaginated(rows, int64(len(rows)), 1, pageSize)
		return &result, nil
	}

	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.Search = filter.Search

	records, err := s.salaryRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.salaryRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	rows := make([]SalaryRecordResponse, len(records))
	for i := range records {
		rows[i] = ToSalaryRecordResponse(&records[i])
	}
	result := shared.NewPaginated(rows, total, f.Page, f.PageSize)
	return &result, nil
}

// ListByStaff retrieves the payroll history of one staff member
func (s *PayrollService) ListByStaff(ctx context.Context, staffID uuid.UUID) ([]SalaryRecordResponse, error) {
	records, err := s.salaryRepo.FindByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	rows := make([]SalaryRecordResponse, len(records))
	for i := range records {
		rows[i] = ToSalaryRecordResponse(&records[i])
	}
	return rows, nil
}

// MonthTotal sums the salary payouts of one month, for the dashboard
func (s *PayrollService) MonthTotal(ctx context.Context, month string) (decimal.Decimal, error) {
	records, err := s.salaryRepo.FindByMonth(ctx, month)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for i := range records {
		total = total.Add(records[i].Amount)
	}
	return total, nil
}

// Delete removes a salary record
func (s *PayrollService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.salaryRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.salaryRepo.Delete(ctx, id)
}
