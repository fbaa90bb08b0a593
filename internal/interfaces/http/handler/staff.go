package handler

import (
	hrapp "github.com/bizdash/backend/internal/application/hr"
	"github.com/bizdash/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// StaffHandler handles staff directory API endpoints
type StaffHandler struct {
	BaseHandler
	staffService *hrapp.StaffService
}

// NewStaffHandler creates a new StaffHandler
func NewStaffHandler(staffService *hrapp.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// Create registers a new staff member
func (h *StaffHandler) Create(c *gin.Context) {
	var req hrapp.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	staff, err := h.staffService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, staff)
}

// GetByID returns a single staff member
func (h *StaffHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid staff ID format")
		return
	}

	staff, err := h.staffService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, staff)
}

// Update applies partial changes to a staff member
func (h *StaffHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid staff ID format")
		return
	}

	var req hrapp.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	staff, err := h.staffService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, staff)
}

// List returns a filtered page of staff members
func (h *StaffHandler) List(c *gin.Context) {
	var filter hrapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.staffService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// MarkLeft records that a staff member has left the company. Their
// records stay for payroll history but they can no longer log in.
func (h *StaffHandler) MarkLeft(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid staff ID format")
		return
	}

	if err := h.staffService.MarkLeft(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
