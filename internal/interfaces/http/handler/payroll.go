package handler

import (
	"regexp"

	hrapp "github.com/bizdash/backend/internal/application/hr"
	"github.com/bizdash/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// PayrollHandler handles salary payment API endpoints
type PayrollHandler struct {
	BaseHandler
	payrollService *hrapp.PayrollService
}

// NewPayrollHandler creates a new PayrollHandler
func NewPayrollHandler(payrollService *hrapp.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollService: payrollService}
}

// RecordPayment records one salary payment for a staff member and month
func (h *PayrollHandler) RecordPayment(c *gin.Context) {
	var req hrapp.RecordSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	record, err := h.payrollService.RecordPayment(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, record)
}

// List returns a filtered page of salary payments
func (h *PayrollHandler) List(c *gin.Context) {
	var filter hrapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.payrollService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ListByStaff returns the payment history of one staff member,
// newest month first
func (h *PayrollHandler) ListByStaff(c *gin.Context) {
	staffID, err := uuid.Parse(c.Param("staff_id"))
	if err != nil {
		h.BadRequest(c, "Invalid staff ID format")
		return
	}

	records, err := h.payrollService.ListByStaff(c.Request.Context(), staffID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, records)
}

// MonthTotal returns the total salary paid out for one month
func (h *PayrollHandler) MonthTotal(c *gin.Context) {
	month := c.Query("month")
	if !monthPattern.MatchString(month) {
		h.BadRequest(c, "Query parameter 'month' must be in YYYY-MM format")
		return
	}

	total, err := h.payrollService.MonthTotal(c.Request.Context(), month)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"month": month, "total": total})
}

// Delete removes a mistakenly recorded salary payment
func (h *PayrollHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid salary record ID format")
		return
	}

	if err := h.payrollService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
