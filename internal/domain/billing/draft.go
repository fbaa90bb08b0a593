package billing

import (
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents whether an invoice has been settled
type PaymentStatus string

const (
	PaymentStatusPaid PaymentStatus = "PAID"
	PaymentStatusDue  PaymentStatus = "DUE"
)

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusPaid || s == PaymentStatusDue
}

// PaymentType represents how a paid invoice was settled.
// Only meaningful when the status is PAID.
type PaymentType string

const (
	PaymentTypeAll    PaymentType = "ALL"
	PaymentTypeCustom PaymentType = "CUSTOM"
)

// IsValid checks if the type is a valid PaymentType
func (t PaymentType) IsValid() bool {
	return t == PaymentTypeAll || t == PaymentTypeCustom
}

// PaymentMethod represents the payment channel recorded on an invoice
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodCheque PaymentMethod = "CHEQUE"
	PaymentMethodUPI    PaymentMethod = "UPI"
)

// IsValid checks if the method is a valid PaymentMethod
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodCheque, PaymentMethodUPI:
		return true
	}
	return false
}

// RequiresReference returns true for methods that need a transaction
// identifier to be recorded alongside the payment.
func (m PaymentMethod) RequiresReference() bool {
	return m == PaymentMethodUPI
}

// Totals holds every derived amount of an invoice
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	DueAmount   decimal.Decimal `json:"due_amount"`
}

// InvoiceDraft is the single mutable form state an invoice is assembled
// in. Every logical operation goes through one update method so the
// derived totals stay consistent in one place; the draft is validated
// once and then frozen into an immutable Invoice record.
type InvoiceDraft struct {
	Number           string
	InvoiceDate      *time.Time
	DueDate          *time.Time
	CustomerID       *uuid.UUID
	BillerID         *uuid.UUID
	Items            []LineItem
	TaxRatePercent   decimal.Decimal
	PaymentStatus    PaymentStatus
	PaymentType      PaymentType
	PaymentMethod    PaymentMethod
	PaymentReference string
	AmountPaid       decimal.Decimal
	Notes            string
}

// NewInvoiceDraft creates an empty draft with a single blank custom item
func NewInvoiceDraft(number string) *InvoiceDraft {
	return &InvoiceDraft{
		Number:         number,
		Items:          []LineItem{NewLineItem(ItemTypeCustom)},
		TaxRatePercent: decimal.Zero,
		PaymentStatus:  PaymentStatusDue,
		PaymentType:    PaymentTypeAll,
		PaymentMethod:  PaymentMethodCash,
		AmountPaid:     decimal.Zero,
	}
}

// AddItem appends a blank line item of the given type and returns it
func (d *InvoiceDraft) AddItem(itemType ItemType) *LineItem {
	d.Items = append(d.Items, NewLineItem(itemType))
	return &d.Items[len(d.Items)-1]
}

// RemoveItem removes a line item from the draft
func (d *InvoiceDraft) RemoveItem(itemID uuid.UUID) error {
	for idx, item := range d.Items {
		if item.ID == itemID {
			d.Items = append(d.Items[:idx], d.Items[idx+1:]...)
			return nil
		}
	}
	return shared.NewDomainError("ITEM_NOT_FOUND", "Line item not found")
}

// Item returns the line item with the given ID, or nil
func (d *InvoiceDraft) Item(itemID uuid.UUID) *LineItem {
	for idx := range d.Items {
		if d.Items[idx].ID == itemID {
			return &d.Items[idx]
		}
	}
	return nil
}

// SetItemType switches an item's kind, resetting its derived values
func (d *InvoiceDraft) SetItemType(itemID uuid.UUID, itemType ItemType) error {
	item := d.Item(itemID)
	if item == nil {
		return shared.NewDomainError("ITEM_NOT_FOUND", "Line item not found")
	}
	item.SetType(itemType)
	return nil
}

// SetItemQuantity updates an item's quantity, clamping invalid input
func (d *InvoiceDraft) SetItemQuantity(itemID uuid.UUID, quantity int) error {
	item := d.Item(itemID)
	if item == nil {
		return shared.NewDomainError("ITEM_NOT_FOUND", "Line item not found")
	}
	item.SetQuantity(quantity)
	return nil
}

// SetItemUnitPrice updates an item's unit price, clamping invalid input
func (d *InvoiceDraft) SetItemUnitPrice(itemID uuid.UUID, price decimal.Decimal) error {
	item := d.Item(itemID)
	if item == nil {
		return shared.NewDomainError("ITEM_NOT_FOUND", "Line item not found")
	}
	item.SetUnitPrice(price)
	return nil
}

// SetItemDescription updates an item's free-text description
func (d *InvoiceDraft) SetItemDescription(itemID uuid.UUID, description string) error {
	item := d.Item(itemID)
	if item == nil {
		return shared.NewDomainError("ITEM_NOT_FOUND", "Line item not found")
	}
	item.SetDescription(description)
	return nil
}

// SelectCatalogEntry resolves a catalog entry onto a line item. The
// selection is aborted when another item of the same type already
// references the entry; the rest of the draft is left intact.
func (d *InvoiceDraft) SelectCatalogEntry(itemID uuid.UUID, entry CatalogEntry) error {
	item := d.Item(itemID)
	if item == nil {
		return shared.NewDomainError("ITEM_NOT_FOUND", "Line item not found")
	}
	if item.Type != entry.Type {
		return shared.NewDomainError("TYPE_MISMATCH", "Catalog entry type does not match line item type")
	}
	if d.isDuplicate(entry.ID, entry.Type, itemID) {
		return shared.ErrDuplicateEntry
	}
	item.applyCatalogEntry(entry)
	return nil
}

// isDuplicate reports whether any other line item of the same type
// already references the catalog entry. The same entry may appear once
// as a product line and once as a service line; that is not a duplicate.
func (d *InvoiceDraft) isDuplicate(catalogID uuid.UUID, itemType ItemType, excludingItem uuid.UUID) bool {
	for idx := range d.Items {
		item := &d.Items[idx]
		if item.ID == excludingItem || item.Type != itemType {
			continue
		}
		if ref := item.CatalogRef(); ref != nil && *ref == catalogID {
			return true
		}
	}
	return false
}

// SetTaxRate sets the tax rate percent, clamped to [0, 100]
func (d *InvoiceDraft) SetTaxRate(percent decimal.Decimal) {
	if percent.IsNegative() {
		percent = decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	if percent.GreaterThan(hundred) {
		percent = hundred
	}
	d.TaxRatePercent = percent
}

// SetPayment records how the invoice is settled. Invalid enum input
// falls back to the safe defaults (DUE / ALL / CASH).
func (d *InvoiceDraft) SetPayment(status PaymentStatus, paymentType PaymentType, method PaymentMethod, reference string, amountPaid decimal.Decimal) {
	if !status.IsValid() {
		status = PaymentStatusDue
	}
	if !paymentType.IsValid() {
		paymentType = PaymentTypeAll
	}
	if !method.IsValid() {
		method = PaymentMethodCash
	}
	d.PaymentStatus = status
	d.PaymentType = paymentType
	d.PaymentMethod = method
	d.PaymentReference = reference
	if amountPaid.IsNegative() {
		amountPaid = decimal.Zero
	}
	d.AmountPaid = amountPaid
}

// Totals derives subtotal, tax, grand total and the outstanding due
// amount from the current draft state:
//
//	status DUE            -> due = total, paid = 0
//	status PAID, type ALL -> due = 0, paid = total
//	status PAID, CUSTOM   -> paid clamped to [0, total], due = total - paid
func (d *InvoiceDraft) Totals() Totals {
	subtotal := decimal.Zero
	for idx := range d.Items {
		subtotal = subtotal.Add(d.Items[idx].LineTotal)
	}
	taxAmount := subtotal.Mul(d.TaxRatePercent).Div(decimal.NewFromInt(100))
	totalAmount := subtotal.Add(taxAmount)

	totals := Totals{
		Subtotal:    subtotal,
		TaxAmount:   taxAmount,
		TotalAmount: totalAmount,
	}

	switch {
	case d.PaymentStatus == PaymentStatusDue:
		totals.AmountPaid = decimal.Zero
		totals.DueAmount = totalAmount
	case d.PaymentType == PaymentTypeAll:
		totals.AmountPaid = totalAmount
		totals.DueAmount = decimal.Zero
	default:
		paid := d.AmountPaid
		if paid.IsNegative() {
			paid = decimal.Zero
		}
		if paid.GreaterThan(totalAmount) {
			paid = totalAmount
		}
		totals.AmountPaid = paid
		totals.DueAmount = totalAmount.Sub(paid)
		if totals.DueAmount.IsNegative() {
			totals.DueAmount = decimal.Zero
		}
	}

	return totals
}

// ItemCount returns the number of line items in the draft
func (d *InvoiceDraft) ItemCount() int {
	return len(d.Items)
}
