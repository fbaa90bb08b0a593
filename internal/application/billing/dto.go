package billing

import (
	"time"

	"github.com/bizdash/backend/internal/domain/billing"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one invoice row as submitted by the form
type LineItemRequest struct {
	Type        string           `json:"type" binding:"required,oneof=product service custom"`
	CatalogID   *uuid.UUID       `json:"catalog_id"`
	Description string           `json:"description" binding:"max=500"`
	Quantity    int              `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
}

// SubmitInvoiceRequest is the full invoice form payload
type SubmitInvoiceRequest struct {
	Number           string            `json:"number" binding:"required,min=1,max=50"`
	InvoiceDate      *time.Time        `json:"invoice_date"`
	DueDate          *time.Time        `json:"due_date"`
	CustomerID       *uuid.UUID        `json:"customer_id"`
	BillerID         *uuid.UUID        `json:"biller_id"`
	Items            []LineItemRequest `json:"items"`
	TaxRatePercent   decimal.Decimal   `json:"tax_rate_percent"`
	PaymentStatus    string            `json:"payment_status"`
	PaymentType      string            `json:"payment_type"`
	PaymentMethod    string            `json:"payment_method"`
	PaymentReference string            `json:"payment_reference" binding:"max=100"`
	AmountPaid       *decimal.Decimal  `json:"amount_paid"`
	Notes            string            `json:"notes" binding:"max=2000"`
}

// PreviewTotalsRequest carries just enough of the form to recompute totals
type PreviewTotalsRequest struct {
	Items          []LineItemRequest `json:"items"`
	TaxRatePercent decimal.Decimal   `json:"tax_rate_percent"`
	PaymentStatus  string            `json:"payment_status"`
	PaymentType    string            `json:"payment_type"`
	AmountPaid     *decimal.Decimal  `json:"amount_paid"`
}

// PartyResponse is the frozen party snapshot on an invoice
type PartyResponse struct {
	PartyID     uuid.UUID `json:"party_id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contact_name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	TaxID       string    `json:"tax_id"`
}

// LineItemResponse is one persisted invoice row
type LineItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Type        string          `json:"type"`
	ProductID   *uuid.UUID      `json:"product_id,omitempty"`
	ServiceID   *uuid.UUID      `json:"service_id,omitempty"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// InvoiceResponse represents a persisted invoice in API responses
type InvoiceResponse struct {
	ID               uuid.UUID          `json:"id"`
	Number           string             `json:"number"`
	InvoiceDate      time.Time          `json:"invoice_date"`
	DueDate          time.Time          `json:"due_date"`
	Customer         PartyResponse      `json:"customer"`
	Biller           PartyResponse      `json:"biller"`
	Items            []LineItemResponse `json:"items"`
	TaxRatePercent   decimal.Decimal    `json:"tax_rate_percent"`
	Subtotal         decimal.Decimal    `json:"subtotal"`
	TaxAmount        decimal.Decimal    `json:"tax_amount"`
	TotalAmount      decimal.Decimal    `json:"total_amount"`
	AmountPaid       decimal.Decimal    `json:"amount_paid"`
	DueAmount        decimal.Decimal    `json:"due_amount"`
	PaymentStatus    string             `json:"payment_status"`
	PaymentType      string             `json:"payment_type"`
	PaymentMethod    string             `json:"payment_method"`
	PaymentReference string             `json:"payment_reference,omitempty"`
	Notes            string             `json:"notes,omitempty"`
	TotalDisplay     string             `json:"total_display"`
	DueDisplay       string             `json:"due_display"`
	CreatedAt        time.Time          `json:"created_at"`
}

// InvoiceListResponse is a compact list row
type InvoiceListResponse struct {
	ID            uuid.UUID       `json:"id"`
	Number        string          `json:"number"`
	InvoiceDate   time.Time       `json:"invoice_date"`
	DueDate       time.Time       `json:"due_date"`
	CustomerName  string          `json:"customer_name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	DueAmount     decimal.Decimal `json:"due_amount"`
	PaymentStatus string          `json:"payment_status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// InvoiceListFilter represents filter options for the invoice list
type InvoiceListFilter struct {
	Search     string     `form:"search"`
	Status     string     `form:"status" binding:"omitempty,oneof=PAID DUE"`
	CustomerID *uuid.UUID `form:"customer_id"`
	From       *time.Time `form:"from" time_format:"2006-01-02"`
	To         *time.Time `form:"to" time_format:"2006-01-02"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// toFilter maps the bound query parameters onto a repository filter
func (f InvoiceListFilter) toFilter() shared.Filter {
	out := shared.DefaultFilter()
	if f.Page > 0 {
		out.Page = f.Page
	}
	if f.PageSize > 0 {
		out.PageSize = f.PageSize
	}
	if f.OrderBy != "" {
		out.OrderBy = f.OrderBy
	}
	if f.OrderDir != "" {
		out.OrderDir = f.OrderDir
	}
	out.Search = f.Search
	if f.Status != "" {
		out.Filters["payment_status"] = f.Status
	}
	if f.From != nil {
		out.Filters["from"] = *f.From
	}
	if f.To != nil {
		out.Filters["to"] = *f.To
	}
	return out
}

// CatalogOptionResponse is one selectable catalog entry for the form
type CatalogOptionResponse struct {
	ID          uuid.UUID       `json:"id"`
	Type        string          `json:"type"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// ToInvoiceResponse converts a domain Invoice to InvoiceResponse
func ToInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	items := make([]LineItemResponse, len(inv.Items))
	for i, line := range inv.Items {
		items[i] = LineItemResponse{
			ID:          line.ID,
			Type:        line.Type.String(),
			ProductID:   line.ProductID,
			ServiceID:   line.ServiceID,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			LineTotal:   line.LineTotal,
		}
	}
	return InvoiceResponse{
		ID:               inv.ID,
		Number:           inv.Number,
		InvoiceDate:      inv.InvoiceDate,
		DueDate:          inv.DueDate,
		Customer:         toPartyResponse(inv.Customer),
		Biller:           toPartyResponse(inv.Biller),
		Items:            items,
		TaxRatePercent:   inv.TaxRatePercent,
		Subtotal:         inv.Subtotal,
		TaxAmount:        inv.TaxAmount,
		TotalAmount:      inv.TotalAmount,
		AmountPaid:       inv.AmountPaid,
		DueAmount:        inv.DueAmount,
		PaymentStatus:    string(inv.PaymentStatus),
		PaymentType:      string(inv.PaymentType),
		PaymentMethod:    string(inv.PaymentMethod),
		PaymentReference: inv.PaymentReference,
		Notes:            inv.Notes,
		TotalDisplay:     valueobject.NewMoneyINR(inv.TotalAmount).Display(),
		DueDisplay:       valueobject.NewMoneyINR(inv.DueAmount).Display(),
		CreatedAt:        inv.CreatedAt,
	}
}

// ToInvoiceListResponse converts a domain Invoice to a list row
func ToInvoiceListResponse(inv *billing.Invoice) InvoiceListResponse {
	return InvoiceListResponse{
		ID:            inv.ID,
		Number:        inv.Number,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		CustomerName:  inv.Customer.Name,
		TotalAmount:   inv.TotalAmount,
		DueAmount:     inv.DueAmount,
		PaymentStatus: string(inv.PaymentStatus),
		CreatedAt:     inv.CreatedAt,
	}
}

func toPartyResponse(p billing.PartySnapshot) PartyResponse {
	return PartyResponse{
		PartyID:     p.PartyID,
		Name:        p.Name,
		ContactName: p.ContactName,
		Phone:       p.Phone,
		Email:       p.Email,
		Address:     p.Address,
		TaxID:       p.TaxID,
	}
}

// ToCatalogOptionResponse converts a catalog entry to a form option
func ToCatalogOptionResponse(e billing.CatalogEntry) CatalogOptionResponse {
	return CatalogOptionResponse{
		ID:          e.ID,
		Type:        e.Type.String(),
		Name:        e.Name,
		Description: e.Description,
		UnitPrice:   e.UnitPrice,
	}
}
