package content

import (
	"time"

	"github.com/bizdash/backend/internal/domain/content"
	"github.com/google/uuid"
)

// CreatePostRequest represents a request to create a blog post
type CreatePostRequest struct {
	Title      string `json:"title" binding:"required,min=1,max=200"`
	Body       string `json:"body" binding:"required"`
	CoverImage string `json:"cover_image" binding:"omitempty,url"`
	Publish    bool   `json:"publish"`
}

// UpdatePostRequest represents a request to update a blog post
type UpdatePostRequest struct {
	Title      string `json:"title" binding:"required,min=1,max=200"`
	Body       string `json:"body" binding:"required"`
	CoverImage string `json:"cover_image" binding:"omitempty,url"`
}

// PostResponse represents a blog post in API responses
type PostResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Body        string     `json:"body"`
	CoverImage  string     `json:"cover_image,omitempty"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PostListResponse is a compact post list row without the body
type PostListResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	CoverImage  string     `json:"cover_image,omitempty"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ListFilter represents filter options for the post list
type ListFilter struct {
	Search        string `form:"search"`
	PublishedOnly bool   `form:"published_only"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy       string `form:"order_by"`
	OrderDir      string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// UpdateLandingPageRequest replaces the landing page content as a whole
type UpdateLandingPageRequest struct {
	HeroTitle    string                 `json:"hero_title" binding:"required,min=1,max=200"`
	HeroSubtitle string                 `json:"hero_subtitle" binding:"max=500"`
	HeroImage    string                 `json:"hero_image" binding:"omitempty,url"`
	AboutTitle   string                 `json:"about_title" binding:"max=200"`
	AboutBody    string                 `json:"about_body"`
	ContactEmail string                 `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string                 `json:"contact_phone" binding:"max=30"`
	Address      string                 `json:"address" binding:"max=500"`
	Features     []content.FeatureBlock `json:"features" binding:"max=12"`
}

// LandingPageResponse represents the landing page content
type LandingPageResponse struct {
	HeroTitle    string                 `json:"hero_title"`
	HeroSubtitle string                 `json:"hero_subtitle"`
	HeroImage    string                 `json:"hero_image,omitempty"`
	AboutTitle   string                 `json:"about_title"`
	AboutBody    string                 `json:"about_body"`
	ContactEmail string                 `json:"contact_email"`
	ContactPhone string                 `json:"contact_phone"`
	Address      string                 `json:"address"`
	Features     []content.FeatureBlock `json:"features"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// ToPostResponse converts a domain Post to PostResponse
func ToPostResponse(p *content.Post) PostResponse {
	return PostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Body:        p.Body,
		CoverImage:  p.CoverImage,
		Status:      string(p.Status),
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToPostListResponse converts a domain Post to a list row
func ToPostListResponse(p *content.Post) PostListResponse {
	return PostListResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		CoverImage:  p.CoverImage,
		Status:      string(p.Status),
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
	}
}

// ToLandingPageResponse converts a domain LandingPage to LandingPageResponse
func ToLandingPageResponse(l *content.LandingPage) LandingPageResponse {
	return LandingPageResponse{
		HeroTitle:    l.HeroTitle,
		HeroSubtitle: l.HeroSubtitle,
		HeroImage:    l.HeroImage,
		AboutTitle:   l.AboutTitle,
		AboutBody:    l.AboutBody,
		ContactEmail: l.ContactEmail,
		ContactPhone: l.ContactPhone,
		Address:      l.Address,
		Features:     l.Features,
		UpdatedAt:    l.UpdatedAt,
	}
}
