package content

import (
	"context"

	"github.com/bizdash/backend/internal/domain/shared"
)

// PostRepository defines the persistence contract for blog posts
type PostRepository interface {
	shared.Repository[Post]
	FindBySlug(ctx context.Context, slug string) (*Post, error)
	FindPublished(ctx context.Context) ([]Post, error)
}

// LandingPageRepository stores the single landing page record
type LandingPageRepository interface {
	Get(ctx context.Context) (*LandingPage, error)
	Save(ctx context.Context, page *LandingPage) error
}
