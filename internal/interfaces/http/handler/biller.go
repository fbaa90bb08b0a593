package handler

import (
	partnerapp "github.com/bizdash/backend/internal/application/partner"
	"github.com/bizdash/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// BillerHandler handles biller profile API endpoints
type BillerHandler struct {
	BaseHandler
	billerService *partnerapp.BillerService
}

// NewBillerHandler creates a new BillerHandler
func NewBillerHandler(billerService *partnerapp.BillerService) *BillerHandler {
	return &BillerHandler{billerService: billerService}
}

// Create registers a new biller profile
func (h *BillerHandler) Create(c *gin.Context) {
	var req partnerapp.CreateBillerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	biller, err := h.billerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, biller)
}

// GetByID returns a single biller profile
func (h *BillerHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid biller ID format")
		return
	}

	biller, err := h.billerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, biller)
}

// Update applies partial changes to a biller profile
func (h *BillerHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid biller ID format")
		return
	}

	var req partnerapp.UpdateBillerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	biller, err := h.billerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, biller)
}

// List returns a filtered page of biller profiles
func (h *BillerHandler) List(c *gin.Context) {
	var filter partnerapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.billerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Delete removes a biller profile
func (h *BillerHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid biller ID format")
		return
	}

	if err := h.billerService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
