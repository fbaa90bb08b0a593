package report

import (
	"context"
	"testing"
	"time"

	"github.com/bizdash/backend/internal/domain/billing"
	"github.com/bizdash/backend/internal/domain/catalog"
	"github.com/bizdash/backend/internal/domain/content"
	"github.com/bizdash/backend/internal/domain/finance"
	"github.com/bizdash/backend/internal/domain/hr"
	"github.com/bizdash/backend/internal/domain/partner"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCustomerRepo struct{ n int64 }

func (r *countingCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	return nil, shared.ErrNotFound
}
func (r *countingCustomerRepo) FindAll(ctx context.Context, f shared.Filter) ([]partner.Customer, error) {
	return nil, nil
}
func (r *countingCustomerRepo) FindActive(ctx context.Context, f shared.Filter) ([]partner.Customer, error) {
	return nil, nil
}
func (r *countingCustomerRepo) Save(ctx context.Context, c *partner.Customer) error { return nil }
func (r *countingCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (r *countingCustomerRepo) Count(ctx context.Context, f shared.Filter) (int64, error) {
	return r.n, nil
}
func (r *countingCustomerRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

type countingProductRepo struct{ n int64 }

func (r *countingProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return nil, shared.ErrNotFound
}
func (r *countingProductRepo) FindAll(ctx context.Context, f shared.Filter) ([]catalog.Product, error) {
	return nil, nil
}
func (r *countingProductRepo) FindActive(ctx context.Context) ([]catalog.Product, error) {
	return nil, nil
}
func (r *countingProductRepo) Save(ctx context.Context, p *catalog.Product) error { return nil }
func (r *countingProductRepo) Delete(ctx context.Context, id uuid.UUID) error     { return nil }
func (r *countingProductRepo) Count(ctx context.Context, f shared.Filter) (int64, error) {
	return r.n, nil
}
func (r *countingProductRepo) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	return false, nil
}

type countingPostRepo struct{ n int64 }

func (r *countingPostRepo) FindByID(ctx context.Context, id uuid.UUID) (*content.Post, error) {
	return nil, shared.ErrNotFound
}
func (r *countingPostRepo) FindAll(ctx context.Context, f shared.Filter) ([]content.Post, error) {
	return nil, nil
}
func (r *countingPostRepo) Save(ctx context.Context, p *content.Post) error { return nil }
func (r *countingPostRepo) Delete(ctx context.Context, id uuid.UUID) error  { return nil }
func (r *countingPostRepo) Count(ctx context.Context, f shared.Filter) (int64, error) {
	return r.n, nil
}
func (r *countingPostRepo) FindBySlug(ctx context.Context, slug string) (*content.Post, error) {
	return nil, shared.ErrNotFound
}
func (r *countingPostRepo) FindPublished(ctx context.Context) ([]content.Post, error) {
	return nil, nil
}

type countingStaffRepo struct{ n int64 }

func (r *countingStaffRepo) FindByID(ctx context.Context, id uuid.UUID) (*hr.Staff, error) {
	return nil, shared.ErrNotFound
}
func (r *countingStaffRepo) FindAll(ctx context.Context, f shared.Filter) ([]hr.Staff, error) {
	return nil, nil
}
func (r *countingStaffRepo) Save(ctx context.Context, s *hr.Staff) error { return nil }
func (r *countingStaffRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}
func (r *countingStaffRepo) Count(ctx context.Context, f shared.Filter) (int64, error) {
	return r.n, nil
}
func (r *countingStaffRepo) FindByEmail(ctx context.Context, email string) (*hr.Staff, error) {
	return nil, shared.ErrNotFound
}
func (r *countingStaffRepo) FindActive(ctx context.Context) ([]hr.Staff, error) {
	return nil, nil
}

type rangeInvoiceRepo struct{ invoices []billing.Invoice }

func (r *rangeInvoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	return nil, shared.ErrNotFound
}
func (r *rangeInvoiceRepo) FindByNumber(ctx context.Context, number string) (*billing.Invoice, error) {
	return nil, shared.ErrNotFound
}
func (r *rangeInvoiceRepo) FindAll(ctx context.Context, f shared.Filter) ([]billing.Invoice, error) {
	return r.invoices, nil
}
func (r *rangeInvoiceRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]billing.Invoice, error) {
	return r.invoices, nil
}
func (r *rangeInvoiceRepo) FindByCustomer(ctx context.Context, customerID uuid.UUID, f shared.Filter) ([]billing.Invoice, error) {
	return nil, nil
}
func (r *rangeInvoiceRepo) Save(ctx context.Context, inv *billing.Invoice) error { return nil }
func (r *rangeInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }
func (r *rangeInvoiceRepo) Count(ctx context.Context, f shared.Filter) (int64, error) {
	return int64(len(r.invoices)), nil
}
func (r *rangeInvoiceRepo) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	return false, nil
}

type rangeExpenseRepo struct{ records []finance.ExpenseRecord }

func (r *rangeExpenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*finance.ExpenseRecord, error) {
	return nil, shared.ErrNotFound
}
func (r *rangeExpenseRepo) FindAll(ctx context.Context, f shared.Filter) ([]finance.ExpenseRecord, error) {
	return r.records, nil
}
func (r *rangeExpenseRepo) Save(ctx context.Context, e *finance.ExpenseRecord) error { return nil }
func (r *rangeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }
func (r *rangeExpenseRepo) Count(ctx context.Context, f shared.Filter) (int64, error) {
	return 0, nil
}
func (r *rangeExpenseRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]finance.ExpenseRecord, error) {
	return r.records, nil
}

type rangeIncomeRepo struct{ records []finance.IncomeRecord }

func (r *rangeIncomeRepo) FindByID(ctx context.Context, id uuid.UUID) (*finance.IncomeRecord, error) {
	return nil, shared.ErrNotFound
}
func (r *rangeIncomeRepo) FindAll(ctx context.Context, f shared.Filter) ([]finance.IncomeRecord, error) {
	return r.records, nil
}
func (r *rangeIncomeRepo) Save(ctx context.Context, e *finance.IncomeRecord) error { return nil }
func (r *rangeIncomeRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }
func (r *rangeIncomeRepo) Count(ctx context.Context, f shared.Filter) (int64, error) {
	return 0, nil
}
func (r *rangeIncomeRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]finance.IncomeRecord, error) {
	return r.records, nil
}

type monthSalaryRepo struct{ byMonth map[string][]hr.SalaryRecord }

func (r *monthSalaryRepo) FindByID(ctx context.Context, id uuid.UUID) (*hr.SalaryRecord, error) {
	return nil, shared.ErrNotFound
}
func (r *monthSalaryRepo) FindAll(ctx context.Context, f shared.Filter) ([]hr.SalaryRecord, error) {
	return nil, nil
}
func (r *monthSalaryRepo) Save(ctx context.Context, s *hr.SalaryRecord) error { return nil }
func (r *monthSalaryRepo) Delete(ctx context.Context, id uuid.UUID) error     { return nil }
func (r *monthSalaryRepo) Count(ctx context.Context, f shared.Filter) (int64, error) {
	return 0, nil
}
func (r *monthSalaryRepo) FindByStaff(ctx context.Context, staffID uuid.UUID) ([]hr.SalaryRecord, error) {
	return nil, nil
}
func (r *monthSalaryRepo) FindByMonth(ctx context.Context, month string) ([]hr.SalaryRecord, error) {
	return r.byMonth[month], nil
}

func makeInvoice(t *testing.T, number string, date time.Time, total int64, paid bool) billing.Invoice {
	t.Helper()
	draft := billing.NewInvoiceDraft(number)
	due := date.AddDate(0, 0, 30)
	draft.InvoiceDate = &date
	draft.DueDate = &due
	item := draft.AddItem(billing.ItemTypeCustom)
	draft.SetItemDescription(item.ID, "work")
	draft.SetItemQuantity(item.ID, 1)
	draft.SetItemUnitPrice(item.ID, decimal.NewFromInt(total))
	require.NoError(t, draft.RemoveItem(draft.Items[0].ID))
	if paid {
		draft.SetPayment(billing.PaymentStatusPaid, billing.PaymentTypeAll, billing.PaymentMethodCash, "", decimal.Zero)
	}
	inv, err := billing.NewInvoice(draft, billing.PartySnapshot{Name: "C"}, billing.PartySnapshot{Name: "B"})
	require.NoError(t, err)
	return *inv
}

func TestDashboardService_Summary(t *testing.T) {
	june := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	july := time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC)

	invoices := []billing.Invoice{
		makeInvoice(t, "INV-1", june, 1000, true),
		makeInvoice(t, "INV-2", june, 500, false),
		makeInvoice(t, "INV-3", july, 2000, true),
	}

	expense, err := finance.NewExpenseRecord(finance.ExpenseCategoryRent, "Rent", decimal.NewFromInt(800), june)
	require.NoError(t, err)
	income, err := finance.NewIncomeRecord(finance.IncomeCategoryInterest, "FD interest", decimal.NewFromInt(300), june)
	require.NoError(t, err)
	salary, err := hr.NewSalaryRecord(uuid.New(), "Priya", "2024-06", decimal.NewFromInt(400), june, "UPI")
	require.NoError(t, err)

	svc := NewDashboardService(
		&countingCustomerRepo{n: 12},
		&countingProductRepo{n: 30},
		&countingPostRepo{n: 4},
		&countingStaffRepo{n: 3},
		&rangeInvoiceRepo{invoices: invoices},
		&rangeExpenseRepo{records: []finance.ExpenseRecord{*expense}},
		&rangeIncomeRepo{records: []finance.IncomeRecord{*income}},
		&monthSalaryRepo{byMonth: map[string][]hr.SalaryRecord{"2024-06": {*salary}}},
	)

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)
	resp, err := svc.Summary(context.Background(), from, to)
	require.NoError(t, err)

	assert.Equal(t, int64(12), resp.Customers)
	assert.Equal(t, int64(30), resp.Products)
	assert.Equal(t, int64(4), resp.Posts)
	assert.Equal(t, int64(3), resp.Staff)

	assert.True(t, resp.Revenue.Equal(decimal.NewFromInt(3500)))
	assert.True(t, resp.Collected.Equal(decimal.NewFromInt(3000)))
	assert.True(t, resp.Outstanding.Equal(decimal.NewFromInt(500)))
	assert.True(t, resp.OtherIncome.Equal(decimal.NewFromInt(300)))
	assert.True(t, resp.Expenses.Equal(decimal.NewFromInt(800)))
	assert.True(t, resp.Salaries.Equal(decimal.NewFromInt(400)))

	// profit = 3500 + 300 - 800 - 400
	assert.True(t, resp.Profit.Equal(decimal.NewFromInt(2600)))

	require.Len(t, resp.Monthly, 2)
	assert.Equal(t, "2024-06", resp.Monthly[0].Month)
	assert.True(t, resp.Monthly[0].Revenue.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, 2, resp.Monthly[0].Invoices)
	assert.Equal(t, "2024-07", resp.Monthly[1].Month)
	assert.True(t, resp.Monthly[1].Collected.Equal(decimal.NewFromInt(2000)))
}
