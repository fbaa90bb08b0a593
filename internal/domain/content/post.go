package content

import (
	"regexp"
	"strings"
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
)

// PostStatus represents the lifecycle state of a blog post
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

var slugCleanup = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a post title
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugCleanup.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Post is a blog article shown on the public site
type Post struct {
	shared.BaseEntity
	Title       string
	Slug        string
	Body        string
	CoverImage  string
	Status      PostStatus
	PublishedAt *time.Time
}

// NewPost creates a draft post. The slug is derived from the title.
func NewPost(title, body, coverImage string) (*Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Post title cannot be empty")
	}
	if strings.TrimSpace(body) == "" {
		return nil, shared.NewDomainError("INVALID_BODY", "Post body cannot be empty")
	}
	slug := Slugify(title)
	if slug == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Post title must contain at least one letter or digit")
	}
	return &Post{
		BaseEntity: shared.NewBaseEntity(),
		Title:      strings.TrimSpace(title),
		Slug:       slug,
		Body:       body,
		CoverImage: coverImage,
		Status:     PostStatusDraft,
	}, nil
}

// Update changes the post content and re-derives the slug
func (p *Post) Update(title, body, coverImage string) error {
	if strings.TrimSpace(title) == "" {
		return shared.NewDomainError("INVALID_TITLE", "Post title cannot be empty")
	}
	if strings.TrimSpace(body) == "" {
		return shared.NewDomainError("INVALID_BODY", "Post body cannot be empty")
	}
	slug := Slugify(title)
	if slug == "" {
		return shared.NewDomainError("INVALID_TITLE", "Post title must contain at least one letter or digit")
	}
	p.Title = strings.TrimSpace(title)
	p.Slug = slug
	p.Body = body
	p.CoverImage = coverImage
	p.Touch()
	return nil
}

// Publish makes the post visible on the public site
func (p *Post) Publish() error {
	if p.Status == PostStatusPublished {
		return shared.NewDomainError("ALREADY_PUBLISHED", "Post is already published")
	}
	now := time.Now()
	p.Status = PostStatusPublished
	p.PublishedAt = &now
	p.Touch()
	return nil
}

// Unpublish moves the post back to draft
func (p *Post) Unpublish() error {
	if p.Status != PostStatusPublished {
		return shared.NewDomainError("NOT_PUBLISHED", "Post is not published")
	}
	p.Status = PostStatusDraft
	p.PublishedAt = nil
	p.Touch()
	return nil
}

// IsPublished reports whether the post is live
func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}
