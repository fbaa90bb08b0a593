package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizdash/backend/internal/domain/billing"
	"github.com/bizdash/backend/internal/domain/partner"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceService assembles submitted invoice forms into immutable
// invoice records. Validation runs every check and reports every
// failing field at once; the request is never partially applied.
type InvoiceService struct {
	invoiceRepo  billing.InvoiceRepository
	customerRepo partner.CustomerRepository
	billerRepo   partner.BillerRepository
	catalog      *CatalogSessionService
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo billing.InvoiceRepository,
	customerRepo partner.CustomerRepository,
	billerRepo partner.BillerRepository,
	catalog *CatalogSessionService,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		billerRepo:   billerRepo,
		catalog:      catalog,
	}
}

// Submit validates the full form, freezes party snapshots and persists
// the invoice in a single write. On validation failure every failing
// field is reported; on persistence failure the caller may retry with
// the same payload since nothing was applied.
func (s *InvoiceService) Submit(ctx context.Context, req SubmitInvoiceRequest) (*InvoiceResponse, error) {
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	verr := &shared.ValidationErrors{}

	draft := s.buildDraft(req, snap, verr)
	s.validateDraft(draft, req, verr)

	customer := s.resolveCustomer(ctx, req.CustomerID, verr)
	biller := s.resolveBiller(ctx, req.BillerID, verr)

	if req.Number != "" {
		taken, err := s.invoiceRepo.ExistsByNumber(ctx, req.Number)
		if err != nil {
			return nil, err
		}
		if taken {
			verr.Add("number", "Invoice number is already in use")
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}

	invoice, err := billing.NewInvoice(draft, *customer, *biller)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, shared.ErrPersistFailed
	}

	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// PreviewTotals recomputes the derived amounts for the current form
// state without touching persistence.
func (s *InvoiceService) PreviewTotals(ctx context.Context, req PreviewTotalsRequest) (*billing.Totals, error) {
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	verr := &shared.ValidationErrors{}
	draft := s.buildDraft(SubmitInvoiceRequest{
		Items:          req.Items,
		TaxRatePercent: req.TaxRatePercent,
		PaymentStatus:  req.PaymentStatus,
		PaymentType:    req.PaymentType,
		AmountPaid:     req.AmountPaid,
	}, snap, verr)
	totals := draft.Totals()
	return &totals, nil
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// GetByNumber retrieves an invoice by its human-facing number
func (s *InvoiceService) GetByNumber(ctx context.Context, number string) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// List retrieves invoices with filtering and pagination
func (s *InvoiceService) List(ctx context.Context, filter InvoiceListFilter) (*shared.Paginated[InvoiceListResponse], error) {
	f := filter.toFilter()
	if filter.CustomerID != nil {
		f.Filters["customer_id"] = *filter.CustomerID
	}

	invoices, err := s.invoiceRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.invoiceRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	rows := make([]InvoiceListResponse, len(invoices))
	for i := range invoices {
		rows[i] = ToInvoiceListResponse(&invoices[i])
	}
	result := shared.NewPaginated(rows, total, f.Page, f.PageSize)
	return &result, nil
}

// ListByCustomer retrieves one customer's invoices with pagination
func (s *InvoiceService) ListByCustomer(ctx context.Context, customerID uuid.UUID, filter InvoiceListFilter) (*shared.Paginated[InvoiceListResponse], error) {
	f := filter.toFilter()
	invoices, err := s.invoiceRepo.FindByCustomer(ctx, customerID, f)
	if err != nil {
		return nil, err
	}

	f.Filters["customer_id"] = customerID
	total, err := s.invoiceRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	rows := make([]InvoiceListResponse, len(invoices))
	for i := range invoices {
		rows[i] = ToInvoiceListResponse(&invoices[i])
	}
	result := shared.NewPaginated(rows, total, f.Page, f.PageSize)
	return &result, nil
}

// buildDraft replays the request onto a fresh draft. Catalog selections
// run through the same duplicate guard the interactive form uses, so a
// payload that sneaks past the client is still rejected here.
func (s *InvoiceService) buildDraft(req SubmitInvoiceRequest, snap *billing.CatalogSnapshot, verr *shared.ValidationErrors) *billing.InvoiceDraft {
	draft := billing.NewInvoiceDraft(req.Number)
	draft.Items = nil
	draft.InvoiceDate = req.InvoiceDate
	draft.DueDate = req.DueDate
	draft.CustomerID = req.CustomerID
	draft.BillerID = req.BillerID
	draft.Notes = req.Notes

	for i, itemReq := range req.Items {
		field := fmt.Sprintf("items[%d]", i)
		itemType := billing.ItemType(itemReq.Type)
		if !itemType.IsValid() {
			verr.Add(field+".type", "Unknown item type")
			continue
		}

		item := draft.AddItem(itemType)

		if itemType.IsCatalogType() {
			if itemReq.CatalogID == nil {
				verr.Add(field+".catalog_id", "Catalog entry is required for "+itemType.String()+" items")
			} else {
				entry, ok := snap.Lookup(itemType, *itemReq.CatalogID)
				if !ok {
					verr.Add(field+".catalog_id", "Catalog entry not found")
				} else if err := draft.SelectCatalogEntry(item.ID, entry); err != nil {
					verr.Add(field+".catalog_id", domainMessage(err))
				}
			}
		} else {
			if itemReq.Description == "" {
				verr.Add(field+".description", "Description is required for custom items")
			}
			draft.SetItemDescription(item.ID, itemReq.Description)
		}

		if itemReq.Quantity < 1 {
			verr.Add(field+".quantity", "Quantity must be at least 1")
		}
		draft.SetItemQuantity(item.ID, itemReq.Quantity)

		if itemReq.UnitPrice != nil {
			if itemReq.UnitPrice.IsNegative() {
				verr.Add(field+".unit_price", "Unit price cannot be negative")
			}
			draft.SetItemUnitPrice(item.ID, *itemReq.UnitPrice)
		}
	}

	if req.TaxRatePercent.IsNegative() || req.TaxRatePercent.GreaterThan(decimal.NewFromInt(100)) {
		verr.Add("tax_rate_percent", "Tax rate must be between 0 and 100")
	}
	draft.SetTaxRate(req.TaxRatePercent)

	amountPaid := decimal.Zero
	if req.AmountPaid != nil {
		amountPaid = *req.AmountPaid
	}
	draft.SetPayment(
		billing.PaymentStatus(req.PaymentStatus),
		billing.PaymentType(req.PaymentType),
		billing.PaymentMethod(req.PaymentMethod),
		req.PaymentReference,
		amountPaid,
	)

	return draft
}

// validateDraft runs the submission checks that span multiple fields.
// Every check runs; nothing short-circuits.
func (s *InvoiceService) validateDraft(draft *billing.InvoiceDraft, req SubmitInvoiceRequest, verr *shared.ValidationErrors) {
	if draft.Number == "" {
		verr.Add("number", "Invoice number is required")
	}
	if draft.InvoiceDate == nil {
		verr.Add("invoice_date", "Invoice date is required")
	}
	if draft.DueDate == nil {
		verr.Add("due_date", "Due date is required")
	}
	if draft.InvoiceDate != nil && draft.DueDate != nil && draft.DueDate.Before(*draft.InvoiceDate) {
		verr.Add("due_date", "Due date cannot be before the invoice date")
	}
	if draft.CustomerID == nil {
		verr.Add("customer_id", "Customer is required")
	}
	if draft.BillerID == nil {
		verr.Add("biller_id", "Biller is required")
	}
	if len(draft.Items) == 0 {
		verr.Add("items", "At least one line item is required")
	}

	if draft.PaymentMethod.RequiresReference() && draft.PaymentReference == "" {
		verr.Add("payment_reference", "Payment reference is required for "+string(draft.PaymentMethod)+" payments")
	}

	if draft.PaymentStatus == billing.PaymentStatusPaid && draft.PaymentType == billing.PaymentTypeCustom {
		if req.AmountPaid == nil {
			verr.Add("amount_paid", "Amount paid is required for partly paid invoices")
		} else {
			total := draft.Totals().TotalAmount
			if req.AmountPaid.GreaterThan(total) {
				verr.Add("amount_paid", "Amount paid cannot exceed the invoice total")
			}
		}
	}
}

func (s *InvoiceService) resolveCustomer(ctx context.Context, id *uuid.UUID, verr *shared.ValidationErrors) *billing.PartySnapshot {
	if id == nil {
		return &billing.PartySnapshot{}
	}
	customer, err := s.customerRepo.FindByID(ctx, *id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			verr.Add("customer_id", "Customer not found")
		} else {
			verr.Add("customer_id", "Customer could not be resolved")
		}
		return &billing.PartySnapshot{}
	}
	return &billing.PartySnapshot{
		PartyID:     customer.ID,
		Name:        customer.Name,
		ContactName: customer.ContactName,
		Phone:       customer.Phone,
		Email:       customer.Email,
		Address:     customer.FullAddress(),
		TaxID:       customer.TaxID,
	}
}

func (s *InvoiceService) resolveBiller(ctx context.Context, id *uuid.UUID, verr *shared.ValidationErrors) *billing.PartySnapshot {
	if id == nil {
		return &billing.PartySnapshot{}
	}
	biller, err := s.billerRepo.FindByID(ctx, *id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			verr.Add("biller_id", "Biller not found")
		} else {
			verr.Add("biller_id", "Biller could not be resolved")
		}
		return &billing.PartySnapshot{}
	}
	return &billing.PartySnapshot{
		PartyID:     biller.ID,
		Name:        biller.Name,
		ContactName: biller.ContactName,
		Phone:       biller.Phone,
		Email:       biller.Email,
		Address:     biller.FullAddress(),
		TaxID:       biller.TaxID,
	}
}

func domainMessage(err error) string {
	var derr *shared.DomainError
	if errors.As(err, &derr) {
		return derr.Message
	}
	return err.Error()
}
