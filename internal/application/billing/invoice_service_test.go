package billing

import (
	"context"
	"testing"
	"time"

	"github.com/bizdash/backend/internal/domain/billing"
	"github.com/bizdash/backend/internal/domain/catalog"
	"github.com/bizdash/backend/internal/domain/partner"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memSnapshotCache struct {
	snap *billing.CatalogSnapshot
}

func (c *memSnapshotCache) Get(ctx context.Context) (*billing.CatalogSnapshot, bool) {
	return c.snap, c.snap != nil
}
func (c *memSnapshotCache) Set(ctx context.Context, snap *billing.CatalogSnapshot) { c.snap = snap }
func (c *memSnapshotCache) Invalidate(ctx context.Context)                         { c.snap = nil }

type fakeProductRepo struct {
	products []catalog.Product
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], nil
		}
	}
	return nil, shared.ErrNotFound
}
func (r *fakeProductRepo) FindAll(ctx context.Context, f shared.Filter) ([]catalog.Product, error) {
	return r.products, nil
}
func (r *fakeProductRepo) FindActive(ctx context.Context) ([]catalog.Product, error) {
	return r.products, nil
}
func (r *fakeProductRepo) Save(ctx context.Context, p *catalog.Product) error { return nil }
func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error     { return nil }
func (r *fakeProductRepo) Count(ctx context.Context, f shared.Filter) (int64, error) {
	return int64(len(r.products)), nil
}
func (r *fakeProductRepo) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	return false, nil
}

type fakeServiceRepo struct {
	services []catalog.Service
}

func (r *fakeServiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	for i := range r.services {
		if r.services[i].ID == id {
			return &r.services[i], nil
		}
	}
	return nil, shared.ErrNotFound
}
func (r *fakeServiceRepo) FindAll(ctx context.Context, f shared.Filter) ([]catalog.Service, error) {
	return r.services, nil
}
func (r *fakeServiceRepo) FindActive(ctx context.Context) ([]catalog.Service, error) {
	return r.services, nil
}
func (r *fakeServiceRepo) Save(ctx context.Context, s *catalog.Service) error { return nil }
func (r *fakeServiceRepo) Delete(ctx context.Context, id uuid.UUID) error     { return nil }
func (r *fakeServiceRepo) Count(ctx context.Context, f shared.Filter) (int64, error) {
	return int64(len(r.services)), nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*partner.Customer
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	if c, ok := r.customers[id]; ok {
		return c, nil
	}
	return nil, shared.ErrNotFound
}
func (r *fakeCustomerRepo) FindAll(ctx context.Context, f shared.Filter) ([]partner.Customer, error) {
	return nil, nil
}
func (r *fakeCustomerRepo) FindActive(ctx context.Context, f shared.Filter) ([]partner.Customer, error) {
	return nil, nil
}
func (r *fakeCustomerRepo) Save(ctx context.Context, c *partner.Customer) error { return nil }
func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (r *fakeCustomerRepo) Count(ctx context.Context, f shared.Filter) (int64, error) {
	return 0, nil
}
func (r *fakeCustomerRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

type fakeBillerRepo struct {
	billers map[uuid.UUID]*partner.Biller
}

func (r *fakeBillerRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Biller, error) {
	if b, ok := r.billers[id]; ok {
		return b, nil
	}
	return nil, shared.ErrNotFound
}
func (r *fakeBillerRepo) FindAll(ctx context.Context, f shared.Filter) ([]partner.Biller, error) {
	return nil, nil
}
func (r *fakeBillerRepo) Save(ctx context.Context, b *partner.Biller) error { return nil }
func (r *fakeBillerRepo) Delete(ctx context.Context, id uuid.UUID) error    { return nil }
func (r *fakeBillerRepo) Count(ctx context.Context, f shared.Filter) (int64, error) {
	return 0, nil
}

type fakeInvoiceRepo struct {
	saved      []*billing.Invoice
	numbers    map[string]bool
	failOnSave bool
}

func (r *fakeInvoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	for _, inv := range r.saved {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, shared.ErrNotFound
}
func (r *fakeInvoiceRepo) FindByNumber(ctx context.Context, number string) (*billing.Invoice, error) {
	for _, inv := range r.saved {
		if inv.Number == number {
			return inv, nil
		}
	}
	return nil, shared.ErrNotFound
}
func (r *fakeInvoiceRepo) FindAll(ctx context.Context, f shared.Filter) ([]billing.Invoice, error) {
	out := make([]billing.Invoice, len(r.saved))
	for i, inv := range r.saved {
		out[i] = *inv
	}
	return out, nil
}
func (r *fakeInvoiceRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]billing.Invoice, error) {
	return nil, nil
}
func (r *fakeInvoiceRepo) FindByCustomer(ctx context.Context, customerID uuid.UUID, f shared.Filter) ([]billing.Invoice, error) {
	var out []billing.Invoice
	for _, inv := range r.saved {
		if inv.Customer.PartyID == customerID {
			out = append(out, *inv)
		}
	}
	return out, nil
}
func (r *fakeInvoiceRepo) Save(ctx context.Context, inv *billing.Invoice) error {
	if r.failOnSave {
		return assert.AnError
	}
	r.saved = append(r.saved, inv)
	return nil
}
func (r *fakeInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakeInvoiceRepo) Count(ctx context.Context, f shared.Filter) (int64, error) {
	if customerID, ok := f.Filters["customer_id"].(uuid.UUID); ok {
		var count int64
		for _, inv := range r.saved {
			if inv.Customer.PartyID == customerID {
				count++
			}
		}
		return count, nil
	}
	return int64(len(r.saved)), nil
}
func (r *fakeInvoiceRepo) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	return r.numbers[number], nil
}

type serviceFixture struct {
	svc        *InvoiceService
	invoices   *fakeInvoiceRepo
	customerID uuid.UUID
	billerID   uuid.UUID
	productID  uuid.UUID
	serviceID  uuid.UUID
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	product, err := catalog.NewProduct("SKU-1", "Steel Bolt", decimal.NewFromInt(100))
	require.NoError(t, err)
	require.NoError(t, product.Update("Steel Bolt", "M8 bolt", "pcs"))
	svcEntry, err := catalog.NewService("Installation", decimal.NewFromInt(500))
	require.NoError(t, err)
	require.NoError(t, svcEntry.Update("Installation", "On-site install"))

	customer, err := partner.NewCustomer("Gupta Hardware")
	require.NoError(t, err)
	require.NoError(t, customer.SetContact("Ravi Gupta", "9876543210", "ravi@gupta.in"))
	customer.SetAddress("12 MG Road", "Pune", "MH", "411001")

	biller, err := partner.NewBiller("Sharma Traders")
	require.NoError(t, err)

	invoices := &fakeInvoiceRepo{numbers: map[string]bool{}}
	catalogSvc := NewCatalogSessionService(
		&fakeProductRepo{products: []catalog.Product{*product}},
		&fakeServiceRepo{services: []catalog.Service{*svcEntry}},
		&memSnapshotCache{},
		zap.NewNop(),
	)

	return &serviceFixture{
		svc: NewInvoiceService(
			invoices,
			&fakeCustomerRepo{customers: map[uuid.UUID]*partner.Customer{customer.ID: customer}},
			&fakeBillerRepo{billers: map[uuid.UUID]*partner.Biller{biller.ID: biller}},
			catalogSvc,
		),
		invoices:   invoices,
		customerID: customer.ID,
		billerID:   biller.ID,
		productID:  product.ID,
		serviceID:  svcEntry.ID,
	}
}

func validRequest(f *serviceFixture) SubmitInvoiceRequest {
	invDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	dueDate := invDate.AddDate(0, 0, 30)
	return SubmitInvoiceRequest{
		Number:         "INV-2024-001",
		InvoiceDate:    &invDate,
		DueDate:        &dueDate,
		CustomerID:     &f.customerID,
		BillerID:       &f.billerID,
		TaxRatePercent: decimal.NewFromInt(18),
		PaymentStatus:  "DUE",
		Items: []LineItemRequest{
			{Type: "product", CatalogID: &f.productID, Quantity: 2},
		},
	}
}

func TestInvoiceService_Submit(t *testing.T) {
	f := newServiceFixture(t)

	resp, err := f.svc.Submit(context.Background(), validRequest(f))
	require.NoError(t, err)

	assert.Equal(t, "INV-2024-001", resp.Number)
	assert.Equal(t, "Gupta Hardware", resp.Customer.Name)
	assert.Equal(t, "12 MG Road, Pune, MH, 411001", resp.Customer.Address)
	assert.Equal(t, "Sharma Traders", resp.Biller.Name)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "M8 bolt", resp.Items[0].Description, "description copied from the catalog")
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, resp.TaxAmount.Equal(decimal.NewFromInt(36)))
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(236)))
	assert.True(t, resp.DueAmount.Equal(decimal.NewFromInt(236)))
	require.Len(t, f.invoices.saved, 1)
}

func TestInvoiceService_Submit_ReportsAllFailures(t *testing.T) {
	f := newServiceFixture(t)
	missing := uuid.New()

	req := SubmitInvoiceRequest{
		Number:        "",
		CustomerID:    &missing,
		PaymentStatus: "PAID",
		PaymentType:   "CUSTOM",
		PaymentMethod: "UPI",
		Items: []LineItemRequest{
			{Type: "custom", Quantity: 0},
		},
	}

	_, err := f.svc.Submit(context.Background(), req)
	require.Error(t, err)

	var verr *shared.ValidationErrors
	require.ErrorAs(t, err, &verr)

	fields := make(map[string]bool)
	for _, fe := range verr.Fields {
		fields[fe.Field] = true
	}
	for _, want := range []string{
		"number", "invoice_date", "due_date", "customer_id", "biller_id",
		"payment_reference", "amount_paid",
		"items[0].description", "items[0].quantity",
	} {
		assert.True(t, fields[want], "expected failure for %s, got %v", want, verr.Fields)
	}
	assert.Empty(t, f.invoices.saved, "nothing persisted on validation failure")
}

func TestInvoiceService_ListByCustomer(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.Submit(context.Background(), validRequest(f))
	require.NoError(t, err)

	result, err := f.svc.ListByCustomer(context.Background(), f.customerID, InvoiceListFilter{})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "INV-2024-001", result.Items[0].Number)
	assert.Equal(t, int64(1), result.Total)

	other, err := f.svc.ListByCustomer(context.Background(), uuid.New(), InvoiceListFilter{})
	require.NoError(t, err)
	assert.Empty(t, other.Items)
	assert.Zero(t, other.Total)
}

func TestInvoiceService_Submit_DuplicateCatalogEntry(t *testing.T) {
	f := newServiceFixture(t)

	req := validRequest(f)
	req.Items = []LineItemRequest{
		{Type: "product", CatalogID: &f.productID, Quantity: 1},
		{Type: "product", CatalogID: &f.productID, Quantity: 3},
	}

	_, err := f.svc.Submit(context.Background(), req)
	var verr *shared.ValidationErrors
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "items[1].catalog_id", verr.Fields[0].Field)
	assert.Contains(t, verr.Fields[0].Message, "already used")
}

func TestInvoiceService_Submit_SameEntryAcrossTypesAllowed(t *testing.T) {
	f := newServiceFixture(t)

	req := validRequest(f)
	req.Items = []LineItemRequest{
		{Type: "product", CatalogID: &f.productID, Quantity: 1},
		{Type: "service", CatalogID: &f.serviceID, Quantity: 1},
	}

	resp, err := f.svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)
}

func TestInvoiceService_Submit_DuplicateNumber(t *testing.T) {
	f := newServiceFixture(t)
	f.invoices.numbers["INV-2024-001"] = true

	_, err := f.svc.Submit(context.Background(), validRequest(f))
	var verr *shared.ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "number", verr.Fields[0].Field)
}

func TestInvoiceService_Submit_PersistFailureIsRetryable(t *testing.T) {
	f := newServiceFixture(t)
	f.invoices.failOnSave = true

	req := validRequest(f)
	_, err := f.svc.Submit(context.Background(), req)
	require.ErrorIs(t, err, shared.ErrPersistFailed)

	f.invoices.failOnSave = false
	resp, err := f.svc.Submit(context.Background(), req)
	require.NoError(t, err, "same payload succeeds on retry")
	assert.Equal(t, "INV-2024-001", resp.Number)
}

func TestInvoiceService_Submit_PartlyPaid(t *testing.T) {
	f := newServiceFixture(t)

	paid := decimal.NewFromInt(100)
	req := validRequest(f)
	req.PaymentStatus = "PAID"
	req.PaymentType = "CUSTOM"
	req.PaymentMethod = "CASH"
	req.AmountPaid = &paid

	resp, err := f.svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.AmountPaid.Equal(decimal.NewFromInt(100)))
	assert.True(t, resp.DueAmount.Equal(decimal.NewFromInt(136)))
}

func TestInvoiceService_Submit_OverpaymentRejected(t *testing.T) {
	f := newServiceFixture(t)

	paid := decimal.NewFromInt(500)
	req := validRequest(f)
	req.PaymentStatus = "PAID"
	req.PaymentType = "CUSTOM"
	req.AmountPaid = &paid

	_, err := f.svc.Submit(context.Background(), req)
	var verr *shared.ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount_paid", verr.Fields[0].Field)
}

func TestInvoiceService_PreviewTotals(t *testing.T) {
	f := newServiceFixture(t)

	totals, err := f.svc.PreviewTotals(context.Background(), PreviewTotalsRequest{
		Items: []LineItemRequest{
			{Type: "product", CatalogID: &f.productID, Quantity: 2},
		},
		TaxRatePercent: decimal.NewFromInt(18),
		PaymentStatus:  "DUE",
	})
	require.NoError(t, err)
	assert.True(t, totals.TotalAmount.Equal(decimal.NewFromInt(236)))
}

func TestCatalogSessionService_SnapshotIsFrozen(t *testing.T) {
	product, err := catalog.NewProduct("SKU-9", "Widget", decimal.NewFromInt(50))
	require.NoError(t, err)
	repo := &fakeProductRepo{products: []catalog.Product{*product}}
	cache := &memSnapshotCache{}
	svc := NewCatalogSessionService(repo, &fakeServiceRepo{}, cache, zap.NewNop())

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	entry, ok := snap.Lookup(billing.ItemTypeProduct, product.ID)
	require.True(t, ok)
	assert.True(t, entry.UnitPrice.Equal(decimal.NewFromInt(50)))

	// price change after the fetch does not reach the cached snapshot
	require.NoError(t, repo.products[0].SetPrice(decimal.NewFromInt(75)))
	snap2, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	entry2, _ := snap2.Lookup(billing.ItemTypeProduct, product.ID)
	assert.True(t, entry2.UnitPrice.Equal(decimal.NewFromInt(50)))

	svc.Invalidate(context.Background())
	snap3, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	entry3, _ := snap3.Lookup(billing.ItemTypeProduct, product.ID)
	assert.True(t, entry3.UnitPrice.Equal(decimal.NewFromInt(75)))
}
