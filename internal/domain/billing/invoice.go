package billing

import (
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartySnapshot is a denormalized copy of a customer or biller frozen at
// submission time. It is intentionally not a live reference: later edits
// to the party record never change historical invoices.
type PartySnapshot struct {
	PartyID     uuid.UUID `json:"party_id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contact_name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	TaxID       string    `json:"tax_id"`
}

// InvoiceLine is one persisted invoice row, copied from a draft line item
type InvoiceLine struct {
	ID          uuid.UUID
	InvoiceID   uuid.UUID
	Type        ItemType
	ProductID   *uuid.UUID
	ServiceID   *uuid.UUID
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
	Position    int
}

// Invoice is the persisted, immutable result of a submitted draft.
// All derived amounts are stored as computed at submission time and are
// never recalculated, even if catalog prices change later.
type Invoice struct {
	shared.BaseEntity
	Number           string
	InvoiceDate      time.Time
	DueDate          time.Time
	Customer         PartySnapshot
	Biller           PartySnapshot
	Items            []InvoiceLine
	TaxRatePercent   decimal.Decimal
	Subtotal         decimal.Decimal
	TaxAmount        decimal.Decimal
	TotalAmount      decimal.Decimal
	AmountPaid       decimal.Decimal
	DueAmount        decimal.Decimal
	PaymentStatus    PaymentStatus
	PaymentType      PaymentType
	PaymentMethod    PaymentMethod
	PaymentReference string
	Notes            string
	CreatedBy        *uuid.UUID
}

// NewInvoice freezes a validated draft into an invoice record. The
// caller (the submission assembler) is responsible for running the full
// validation pass first; this constructor only enforces the structural
// invariants it cannot produce a record without.
func NewInvoice(draft *InvoiceDraft, customer, biller PartySnapshot) (*Invoice, error) {
	if draft.Number == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Invoice number cannot be empty")
	}
	if len(draft.Items) == 0 {
		return nil, shared.NewDomainError("NO_ITEMS", "Invoice must have at least one line item")
	}
	if draft.InvoiceDate == nil || draft.DueDate == nil {
		return nil, shared.NewDomainError("INVALID_DATES", "Invoice and due dates are required")
	}

	totals := draft.Totals()

	inv := &Invoice{
		BaseEntity:       shared.NewBaseEntity(),
		Number:           draft.Number,
		InvoiceDate:      *draft.InvoiceDate,
		DueDate:          *draft.DueDate,
		Customer:         customer,
		Biller:           biller,
		TaxRatePercent:   draft.TaxRatePercent,
		Subtotal:         totals.Subtotal,
		TaxAmount:        totals.TaxAmount,
		TotalAmount:      totals.TotalAmount,
		AmountPaid:       totals.AmountPaid,
		DueAmount:        totals.DueAmount,
		PaymentStatus:    draft.PaymentStatus,
		PaymentType:      draft.PaymentType,
		PaymentMethod:    draft.PaymentMethod,
		PaymentReference: draft.PaymentReference,
		Notes:            draft.Notes,
	}

	inv.Items = make([]InvoiceLine, len(draft.Items))
	for idx, item := range draft.Items {
		inv.Items[idx] = InvoiceLine{
			ID:          uuid.New(),
			InvoiceID:   inv.ID,
			Type:        item.Type,
			ProductID:   item.ProductID,
			ServiceID:   item.ServiceID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
			Position:    idx,
		}
	}

	return inv, nil
}

// IsPaid returns true if the invoice is fully settled
func (i *Invoice) IsPaid() bool {
	return i.PaymentStatus == PaymentStatusPaid && i.DueAmount.IsZero()
}

// IsOverdue returns true if the invoice still has a due amount past its due date
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.DueAmount.IsPositive() && now.After(i.DueDate)
}
