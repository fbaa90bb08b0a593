package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/bizdash/backend/internal/domain/billing"
	"github.com/bizdash/backend/internal/domain/finance"
	"github.com/bizdash/backend/internal/domain/hr"
	"github.com/bizdash/backend/internal/domain/shared"
)

// ContentType is the MIME type export downloads are served with
const ContentType = "text/csv"

// Result is one rendered export blob ready to be served as a download
type Result struct {
	Filename string
	Data     []byte
}

// Exporter renders record tables to CSV blobs. Every export has a fixed
// header row followed by one line per record; fields are escaped per
// CSV quoting rules.
type Exporter struct {
	invoiceRepo billing.InvoiceRepository
	expenseRepo finance.ExpenseRepository
	incomeRepo  finance.IncomeRepository
	salaryRepo  hr.SalaryRepository
}

// NewExporter creates a new Exporter
func NewExporter(
	invoiceRepo billing.InvoiceRepository,
	expenseRepo finance.ExpenseRepository,
	incomeRepo finance.IncomeRepository,
	salaryRepo hr.SalaryRepository,
) *Exporter {
	return &Exporter{
		invoiceRepo: invoiceRepo,
		expenseRepo: expenseRepo,
		incomeRepo:  incomeRepo,
		salaryRepo:  salaryRepo,
	}
}

// Invoices exports invoices in a date range
func (e *Exporter) Invoices(ctx context.Context, from, to time.Time) (*Result, error) {
	invoices, err := e.invoiceRepo.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(invoices)+1)
	rows = append(rows, []string{
		"number", "invoice_date", "due_date", "customer", "biller",
		"subtotal", "tax_amount", "total_amount", "amount_paid", "due_amount",
		"payment_status", "payment_method",
	})
	for i := range invoices {
		inv := &invoices[i]
		rows = append(rows, []string{
			inv.Number,
			inv.InvoiceDate.Format("2006-01-02"),
			inv.DueDate.Format("2006-01-02"),
			inv.Customer.Name,
			inv.Biller.Name,
			inv.Subtotal.StringFixed(2),
			inv.TaxAmount.StringFixed(2),
			inv.TotalAmount.StringFixed(2),
			inv.AmountPaid.StringFixed(2),
			inv.DueAmount.StringFixed(2),
			string(inv.PaymentStatus),
			string(inv.PaymentMethod),
		})
	}
	return render("invoices", rows)
}

// Expenses exports expense records in a date range
func (e *Exporter) Expenses(ctx context.Context, from, to time.Time) (*Result, error) {
	records, err := e.expenseRepo.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, []string{"date", "category", "title", "amount", "note"})
	for i := range records {
		rec := &records[i]
		rows = append(rows, []string{
			rec.IncurredAt.Format("2006-01-02"),
			rec.Category.String(),
			rec.Title,
			rec.Amount.StringFixed(2),
			rec.Note,
		})
	}
	return render("expenses", rows)
}

// Income exports income records in a date range
func (e *Exporter) Income(ctx context.Context, from, to time.Time) (*Result, error) {
	records, err := e.incomeRepo.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, []string{"date", "category", "title", "amount", "note"})
	for i := range records {
		rec := &records[i]
		rows = append(rows, []string{
			rec.ReceivedAt.Format("2006-01-02"),
			rec.Category.String(),
			rec.Title,
			rec.Amount.StringFixed(2),
			rec.Note,
		})
	}
	return render("income", rows)
}

// Salaries exports payroll records for one month, or all months when
// month is empty
func (e *Exporter) Salaries(ctx context.Context, month string) (*Result, error) {
	var (
		records []hr.SalaryRecord
		err     error
	)
	if month != "" {
		records, err = e.salaryRepo.FindByMonth(ctx, month)
	} else {
		filter := shared.DefaultFilter()
		filter.PageSize = 10000
		records, err = e.salaryRepo.FindAll(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, []string{"staff", "month", "amount", "paid_at", "method", "note"})
	for i := range records {
		rec := &records[i]
		rows = append(rows, []string{
			rec.StaffName,
			rec.Month,
			rec.Amount.StringFixed(2),
			rec.PaidAt.Format("2006-01-02"),
			rec.Method,
			rec.Note,
		})
	}
	return render("salaries", rows)
}

// render writes the rows as CSV and names the blob
// <entity>_export_<ISO-date>.csv
func render(entity string, rows [][]string) (*Result, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return &Result{
		Filename: fmt.Sprintf("%s_export_%s.csv", entity, time.Now().Format("2006-01-02")),
		Data:     buf.Bytes(),
	}, nil
}
