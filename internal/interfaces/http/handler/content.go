package handler

import (
	contentapp "github.com/bizdash/backend/internal/application/content"
	"github.com/bizdash/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// PostHandler handles blog post management endpoints
type PostHandler struct {
	BaseHandler
	postService *contentapp.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *contentapp.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create adds a draft blog post
func (h *PostHandler) Create(c *gin.Context) {
	var req contentapp.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	post, err := h.postService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, post)
}

// GetByID returns a single post regardless of publish state
func (h *PostHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid post ID format")
		return
	}

	post, err := h.postService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, post)
}

// Update applies partial changes to a post
func (h *PostHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid post ID format")
		return
	}

	var req contentapp.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	post, err := h.postService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, post)
}

// Publish makes a draft post publicly visible
func (h *PostHandler) Publish(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid post ID format")
		return
	}

	post, err := h.postService.Publish(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, post)
}

// Unpublish takes a published post back to draft
func (h *PostHandler) Unpublish(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid post ID format")
		return
	}

	post, err := h.postService.Unpublish(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, post)
}

// List returns a filtered page of posts including drafts
func (h *PostHandler) List(c *gin.Context) {
	var filter contentapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.postService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Delete removes a post permanently
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid post ID format")
		return
	}

	if err := h.postService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// PublicPosts returns published posts only. Served without
// authentication for the public site.
func (h *PostHandler) PublicPosts(c *gin.Context) {
	var filter contentapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	filter.PublishedOnly = true

	result, err := h.postService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// PublicPostBySlug returns a published post by slug for the public site
func (h *PostHandler) PublicPostBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		h.BadRequest(c, "Post slug is required")
		return
	}

	post, err := h.postService.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if post.Status != "published" {
		h.NotFound(c, "Post not found")
		return
	}

	h.Success(c, post)
}

// LandingPageHandler handles landing page content endpoints
type LandingPageHandler struct {
	BaseHandler
	landingService *contentapp.LandingPageService
}

// NewLandingPageHandler creates a new LandingPageHandler
func NewLandingPageHandler(landingService *contentapp.LandingPageService) *LandingPageHandler {
	return &LandingPageHandler{landingService: landingService}
}

// Get returns the landing page content for editing
func (h *LandingPageHandler) Get(c *gin.Context) {
	page, err := h.landingService.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, page)
}

// Update replaces the landing page content as a whole
func (h *LandingPageHandler) Update(c *gin.Context) {
	var req contentapp.UpdateLandingPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	page, err := h.landingService.Update(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, page)
}

// PublicLandingPage serves the landing page content without authentication
func (h *LandingPageHandler) PublicLandingPage(c *gin.Context) {
	page, err := h.landingService.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, page)
}
