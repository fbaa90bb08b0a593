package report

import (
	"context"
	"sort"
	"time"

	"github.com/bizdash/backend/internal/domain/billing"
	"github.com/bizdash/backend/internal/domain/catalog"
	"github.com/bizdash/backend/internal/domain/content"
	"github.com/bizdash/backend/internal/domain/finance"
	"github.com/bizdash/backend/internal/domain/hr"
	"github.com/bizdash/backend/internal/domain/partner"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MonthRevenue is one point of the per-month revenue series
type MonthRevenue struct {
	Month     string          `json:"month"` // YYYY-MM
	Revenue   decimal.Decimal `json:"revenue"`
	Collected decimal.Decimal `json:"collected"`
	Invoices  int             `json:"invoices"`
}

// DashboardResponse is the aggregate view behind the dashboard home page.
// Profit is computed from actual records: invoiced revenue plus other
// income, minus expenses and salary payouts.
type DashboardResponse struct {
	Customers   int64           `json:"customers"`
	Products    int64           `json:"products"`
	Posts       int64           `json:"posts"`
	Staff       int64           `json:"staff"`
	Revenue     decimal.Decimal `json:"revenue"`
	Collected   decimal.Decimal `json:"collected"`
	Outstanding decimal.Decimal `json:"outstanding"`
	OtherIncome decimal.Decimal `json:"other_income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Salaries    decimal.Decimal `json:"salaries"`
	Profit      decimal.Decimal `json:"profit"`
	Monthly     []MonthRevenue  `json:"monthly"`
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
}

// DashboardService aggregates the numbers shown on the dashboard home
type DashboardService struct {
	customerRepo partner.CustomerRepository
	productRepo  catalog.ProductRepository
	postRepo     content.PostRepository
	staffRepo    hr.StaffRepository
	invoiceRepo  billing.InvoiceRepository
	expenseRepo  finance.ExpenseRepository
	incomeRepo   finance.IncomeRepository
	salaryRepo   hr.SalaryRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	customerRepo partner.CustomerRepository,
	productRepo catalog.ProductRepository,
	postRepo content.PostRepository,
	staffRepo hr.StaffRepository,
	invoiceRepo billing.InvoiceRepository,
	expenseRepo finance.ExpenseRepository,
	incomeRepo finance.IncomeRepository,
	salaryRepo hr.SalaryRepository,
) *DashboardService {
	return &DashboardService{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		postRepo:     postRepo,
		staffRepo:    staffRepo,
		invoiceRepo:  invoiceRepo,
		expenseRepo:  expenseRepo,
		incomeRepo:   incomeRepo,
		salaryRepo:   salaryRepo,
	}
}

// Summary computes the dashboard aggregates for a date range
func (s *DashboardService) Summary(ctx context.Context, from, to time.Time) (*DashboardResponse, error) {
	resp := &DashboardResponse{From: from, To: to}

	counts := []struct {
		dst   *int64
		count func(context.Context, shared.Filter) (int64, error)
	}{
		{&resp.Customers, s.customerRepo.Count},
		{&resp.Products, s.productRepo.Count},
		{&resp.Posts, s.postRepo.Count},
		{&resp.Staff, s.staffRepo.Count},
	}
	for _, c := range counts {
		n, err := c.count(ctx, shared.DefaultFilter())
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}

	invoices, err := s.invoiceRepo.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	resp.Revenue = decimal.Zero
	resp.Collected = decimal.Zero
	resp.Outstanding = decimal.Zero
	byMonth := make(map[string]*MonthRevenue)
	for i := range invoices {
		inv := &invoices[i]
		resp.Revenue = resp.Revenue.Add(inv.TotalAmount)
		resp.Collected = resp.Collected.Add(inv.AmountPaid)
		resp.Outstanding = resp.Outstanding.Add(inv.DueAmount)

		month := inv.InvoiceDate.Format("2006-01")
		point, ok := byMonth[month]
		if !ok {
			point = &MonthRevenue{Month: month, Revenue: decimal.Zero, Collected: decimal.Zero}
			byMonth[month] = point
		}
		point.Revenue = point.Revenue.Add(inv.TotalAmount)
		point.Collected = point.Collected.Add(inv.AmountPaid)
		point.Invoices++
	}

	resp.Monthly = make([]MonthRevenue, 0, len(byMonth))
	for _, point := range byMonth {
		resp.Monthly = append(resp.Monthly, *point)
	}
	sort.Slice(resp.Monthly, func(i, j int) bool {
		return resp.Monthly[i].Month < resp.Monthly[j].Month
	})

	expenses, err := s.expenseRepo.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	resp.Expenses = decimal.Zero
	for i := range expenses {
		resp.Expenses = resp.Expenses.Add(expenses[i].Amount)
	}

	income, err := s.incomeRepo.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	resp.OtherIncome = decimal.Zero
	for i := range income {
		resp.OtherIncome = resp.OtherIncome.Add(income[i].Amount)
	}

	resp.Salaries, err = s.salaryTotal(ctx, from, to)
	if err != nil {
		return nil, err
	}

	resp.Profit = resp.Revenue.Add(resp.OtherIncome).Sub(resp.Expenses).Sub(resp.Salaries)
	return resp, nil
}

// salaryTotal sums payroll payouts for every month touching the range
func (s *DashboardService) salaryTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	cursor := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(end) {
		records, err := s.salaryRepo.FindByMonth(ctx, cursor.Format("2006-01"))
		if err != nil {
			return decimal.Zero, err
		}
		for i := range records {
			total = total.Add(records[i].Amount)
		}
		cursor = cursor.AddDate(0, 1, 0)
	}
	return total, nil
}
