package export

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/bizdash/backend/internal/domain/billing"
	"github.com/bizdash/backend/internal/domain/finance"
	"github.com/bizdash/backend/internal/domain/hr"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInvoiceRepo struct{ invoices []billing.Invoice }

func (r *stubInvoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	return nil, shared.ErrNotFound
}
func (r *stubInvoiceRepo) FindByNumber(ctx context.Context, number string) (*billing.Invoice, error) {
	return nil, shared.ErrNotFound
}
func (r *stubInvoiceRepo) FindAll(ctx context.Context, f shared.Filter) ([]billing.Invoice, error) {
	return r.invoices, nil
}
func (r *stubInvoiceRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]billing.Invoice, error) {
	return r.invoices, nil
}
func (r *stubInvoiceRepo) FindByCustomer(ctx context.Context, customerID uuid.UUID, f shared.Filter) ([]billing.Invoice, error) {
	return nil, nil
}
func (r *stubInvoiceRepo) Save(ctx context.Context, inv *billing.Invoice) error { return nil }
func (r *stubInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }
func (r *stubInvoiceRepo) Count(ctx context.Context, f shared.Filter) (int64, error) {
	return 0, nil
}
func (r *stubInvoiceRepo) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	return false, nil
}

type stubExpenseRepo struct{ records []finance.ExpenseRecord }

func (r *stubExpenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*finance.ExpenseRecord, error) {
	return nil, shared.ErrNotFound
}
func (r *stubExpenseRepo) FindAll(ctx context.Context, f shared.Filter) ([]finance.ExpenseRecord, error) {
	return r.records, nil
}
func (r *stubExpenseRepo) Save(ctx context.Context, e *finance.ExpenseRecord) error { return nil }
func (r *stubExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }
func (r *stubExpenseRepo) Count(ctx context.Context, f shared.Filter) (int64, error) {
	return 0, nil
}
func (r *stubExpenseRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]finance.ExpenseRecord, error) {
	return r.records, nil
}

type stubIncomeRepo struct{ records []finance.IncomeRecord }

func (r *stubIncomeRepo) FindByID(ctx context.Context, id uuid.UUID) (*finance.IncomeRecord, error) {
	return nil, shared.ErrNotFound
}
func (r *stubIncomeRepo) FindAll(ctx context.Context, f shared.Filter) ([]finance.IncomeRecord, error) {
	return r.records, nil
}
func (r *stubIncomeRepo) Save(ctx context.Context, e *finance.IncomeRecord) error { return nil }
func (r *stubIncomeRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }
func (r *stubIncomeRepo) Count(ctx context.Context, f shared.Filter) (int64, error) {
	return 0, nil
}
func (r *stubIncomeRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]finance.IncomeRecord, error) {
	return r.records, nil
}

type stubSalaryRepo struct{ records []hr.SalaryRecord }

func (r *stubSalaryRepo) FindByID(ctx context.Context, id uuid.UUID) (*hr.SalaryRecord, error) {
	return nil, shared.ErrNotFound
}
func (r *stubSalaryRepo) FindAll(ctx context.Context, f shared.Filter) ([]hr.SalaryRecord, error) {
	return r.records, nil
}
func (r *stubSalaryRepo) Save(ctx context.Context, s *hr.SalaryRecord) error { return nil }
func (r *stubSalaryRepo) Delete(ctx context.Context, id uuid.UUID) error     { return nil }
func (r *stubSalaryRepo) Count(ctx context.Context, f shared.Filter) (int64, error) {
	return 0, nil
}
func (r *stubSalaryRepo) FindByStaff(ctx context.Context, staffID uuid.UUID) ([]hr.SalaryRecord, error) {
	return nil, nil
}
func (r *stubSalaryRepo) FindByMonth(ctx context.Context, month string) ([]hr.SalaryRecord, error) {
	out := []hr.SalaryRecord{}
	for _, rec := range r.records {
		if rec.Month == month {
			out = append(out, rec)
		}
	}
	return out, nil
}

func makeExpense(t *testing.T, title string, amount int64) finance.ExpenseRecord {
	t.Helper()
	rec, err := finance.NewExpenseRecord(finance.ExpenseCategoryOther, title, decimal.NewFromInt(amount),
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return *rec
}

func TestExporter_Expenses(t *testing.T) {
	records := []finance.ExpenseRecord{
		makeExpense(t, "June rent", 15000),
		makeExpense(t, `Repair, "urgent"`, 800),
		makeExpense(t, "Fuel", 1200),
	}
	exporter := NewExporter(&stubInvoiceRepo{}, &stubExpenseRepo{records: records}, &stubIncomeRepo{}, &stubSalaryRepo{})

	result, err := exporter.Expenses(context.Background(), time.Time{}, time.Now())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(result.Data), "\n"), "\n")
	assert.Len(t, lines, len(records)+1, "N records render N+1 lines")
	assert.Equal(t, "date,category,title,amount,note", lines[0])

	// commas and quotes inside a field survive a round trip
	parsed, err := csv.NewReader(strings.NewReader(string(result.Data))).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, `Repair, "urgent"`, parsed[2][2])
	assert.Equal(t, "800.00", parsed[2][3])

	assert.True(t, strings.HasPrefix(result.Filename, "expenses_export_"))
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))
}

func TestExporter_EmptyTableStillHasHeader(t *testing.T) {
	exporter := NewExporter(&stubInvoiceRepo{}, &stubExpenseRepo{}, &stubIncomeRepo{}, &stubSalaryRepo{})

	result, err := exporter.Income(context.Background(), time.Time{}, time.Now())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(result.Data), "\n"), "\n")
	assert.Len(t, lines, 1)
}

func TestExporter_Invoices(t *testing.T) {
	draft := billing.NewInvoiceDraft("INV-7")
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	due := date.AddDate(0, 0, 15)
	draft.InvoiceDate = &date
	draft.DueDate = &due
	item := draft.Items[0]
	draft.SetItemDescription(item.ID, "consulting")
	draft.SetItemUnitPrice(item.ID, decimal.NewFromInt(1000))
	inv, err := billing.NewInvoice(draft,
		billing.PartySnapshot{Name: "Gupta Hardware"},
		billing.PartySnapshot{Name: "Sharma Traders"})
	require.NoError(t, err)

	exporter := NewExporter(&stubInvoiceRepo{invoices: []billing.Invoice{*inv}},
		&stubExpenseRepo{}, &stubIncomeRepo{}, &stubSalaryRepo{})

	result, err := exporter.Invoices(context.Background(), date, due)
	require.NoError(t, err)

	parsed, err := csv.NewReader(strings.NewReader(string(result.Data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, "INV-7", parsed[1][0])
	assert.Equal(t, "Gupta Hardware", parsed[1][3])
	assert.Equal(t, "1000.00", parsed[1][7])
	assert.Equal(t, "DUE", parsed[1][10])
}

func TestExporter_SalariesByMonth(t *testing.T) {
	recJune, err := hr.NewSalaryRecord(uuid.New(), "Priya", "2024-06", decimal.NewFromInt(30000), time.Now(), "UPI")
	require.NoError(t, err)
	recJuly, err := hr.NewSalaryRecord(uuid.New(), "Priya", "2024-07", decimal.NewFromInt(30000), time.Now(), "UPI")
	require.NoError(t, err)

	exporter := NewExporter(&stubInvoiceRepo{}, &stubExpenseRepo{}, &stubIncomeRepo{},
		&stubSalaryRepo{records: []hr.SalaryRecord{*recJune, *recJuly}})

	result, err := exporter.Salaries(context.Background(), "2024-06")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(result.Data), "\n"), "\n")
	assert.Len(t, lines, 2)

	result, err = exporter.Salaries(context.Background(), "")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimRight(string(result.Data), "\n"), "\n")
	assert.Len(t, lines, 3)
}
