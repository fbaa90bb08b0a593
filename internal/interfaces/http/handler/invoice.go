package handler

import (
	billingapp "github.com/bizdash/backend/internal/application/billing"
	"github.com/bizdash/backend/internal/domain/billing"
	"github.com/bizdash/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles invoice composition and lookup endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *billingapp.InvoiceService
	catalogSession *billingapp.CatalogSessionService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(
	invoiceService *billingapp.InvoiceService,
	catalogSession *billingapp.CatalogSessionService,
) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		catalogSession: catalogSession,
	}
}

// Submit validates the full invoice form and persists it
func (h *InvoiceHandler) Submit(c *gin.Context) {
	var req billingapp.SubmitInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	invoice, err := h.invoiceService.Submit(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, invoice)
}

// PreviewTotals recomputes subtotal, tax and due amount for the form
// without persisting anything
func (h *InvoiceHandler) PreviewTotals(c *gin.Context) {
	var req billingapp.PreviewTotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	totals, err := h.invoiceService.PreviewTotals(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, totals)
}

// GetByID returns a single invoice with its line items
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	invoice, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}

// GetByNumber returns an invoice by its human-facing number
func (h *InvoiceHandler) GetByNumber(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		h.BadRequest(c, "Invoice number is required")
		return
	}

	invoice, err := h.invoiceService.GetByNumber(c.Request.Context(), number)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}

// List returns a filtered page of invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	var filter billingapp.InvoiceListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.invoiceService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ListByCustomer returns a filtered page of one customer's invoices
func (h *InvoiceHandler) ListByCustomer(c *gin.Context) {
	customerID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	var filter billingapp.InvoiceListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.invoiceService.ListByCustomer(c.Request.Context(), customerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// CatalogOptions lists the selectable catalog entries for one line item
// type, served from the per-session snapshot
func (h *InvoiceHandler) CatalogOptions(c *gin.Context) {
	itemType := billing.ItemType(c.Query("type"))
	if !itemType.IsValid() || itemType == billing.ItemTypeCustom {
		h.BadRequest(c, "Query parameter 'type' must be 'product' or 'service'")
		return
	}

	options, err := h.catalogSession.Options(c.Request.Context(), itemType)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, options)
}
