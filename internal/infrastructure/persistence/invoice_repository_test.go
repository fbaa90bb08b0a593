package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockInvoiceRepository creates a GormInvoiceRepository with a mocked SQL connection
func newMockInvoiceRepository(t *testing.T) (*GormInvoiceRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormInvoiceRepository(gormDB), mock, mockDB
}

func invoiceRows(invoiceID uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "number", "invoice_date", "due_date",
		"customer_id", "customer_name", "biller_id", "biller_name",
		"tax_rate_percent", "subtotal", "tax_amount", "total_amount",
		"amount_paid", "due_amount", "payment_status", "payment_type", "payment_method",
	}).AddRow(
		invoiceID, "INV-2026-0042", now, now.AddDate(0, 0, 14),
		uuid.New(), "Acme Traders", uuid.New(), "Bizdash Studio",
		decimal.NewFromInt(18), decimal.NewFromInt(1000), decimal.NewFromInt(180), decimal.NewFromInt(1180),
		decimal.NewFromInt(1180), decimal.Zero, "paid", "full", "upi",
	)
}

func TestGormInvoiceRepository_FindByID(t *testing.T) {
	t.Run("finds invoice with lines ordered by position", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		invoiceID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(invoiceID, 1).
			WillReturnRows(invoiceRows(invoiceID))

		lineRows := sqlmock.NewRows([]string{"id", "invoice_id", "type", "description", "quantity", "unit_price", "line_total", "position"}).
			AddRow(uuid.New(), invoiceID, "product", "Widget", 2, decimal.NewFromInt(500), decimal.NewFromInt(1000), 0)

		mock.ExpectQuery(`SELECT \* FROM "invoice_lines" WHERE "invoice_lines"\."invoice_id" = \$1 ORDER BY position ASC`).
			WithArgs(invoiceID).
			WillReturnRows(lineRows)

		invoice, err := repo.FindByID(context.Background(), invoiceID)

		assert.NoError(t, err)
		require.NotNil(t, invoice)
		assert.Equal(t, "INV-2026-0042", invoice.Number)
		require.Len(t, invoice.Items, 1)
		assert.Equal(t, "Widget", invoice.Items[0].Description)
		assert.Equal(t, 2, invoice.Items[0].Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing invoice", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		invoiceID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(invoiceID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		invoice, err := repo.FindByID(context.Background(), invoiceID)

		assert.Error(t, err)
		assert.Nil(t, invoice)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInvoiceRepository_ExistsByNumber(t *testing.T) {
	t.Run("returns true for taken number", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "invoices" WHERE number = \$1`).
			WithArgs("INV-2026-0042").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByNumber(context.Background(), "INV-2026-0042")

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns false for free number", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "invoices" WHERE number = \$1`).
			WithArgs("INV-2026-0099").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsByNumber(context.Background(), "INV-2026-0099")

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInvoiceRepository_Delete(t *testing.T) {
	t.Run("deletes invoice and its lines in one transaction", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		invoiceID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "invoice_lines" WHERE invoice_id = \$1`).
			WithArgs(invoiceID).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`DELETE FROM "invoices" WHERE id = \$1`).
			WithArgs(invoiceID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(context.Background(), invoiceID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when invoice is missing", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		invoiceID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "invoice_lines" WHERE invoice_id = \$1`).
			WithArgs(invoiceID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM "invoices" WHERE id = \$1`).
			WithArgs(invoiceID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(context.Background(), invoiceID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInvoiceRepository_Count(t *testing.T) {
	t.Run("counts with payment status filter", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "invoices" WHERE payment_status = \$1`).
			WithArgs("due").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		count, err := repo.Count(context.Background(), shared.Filter{
			Filters: map[string]interface{}{"payment_status": "due"},
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
