package content

import (
	"context"

	"github.com/bizdash/backend/internal/domain/content"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PostService handles blog post operations. The body arrives as HTML
// produced by the dashboard's editor and is stored verbatim.
type PostService struct {
	postRepo content.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo content.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// Create creates a blog post, optionally publishing it immediately
func (s *PostService) Create(ctx context.Context, req CreatePostRequest) (*PostResponse, error) {
	post, err := content.NewPost(req.Title, req.Body, req.CoverImage)
	if err != nil {
		return nil, err
	}

	if existing, err := s.postRepo.FindBySlug(ctx, post.Slug); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A post with this title already exists")
	}

	if req.Publish {
		if err := post.Publish(); err != nil {
			return nil, err
		}
	}

	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	resp := ToPostResponse(post)
	return &resp, nil
}

// GetByID retrieves a post by ID
func (s *PostService) GetByID(ctx context.Context, id uuid.UUID) (*PostResponse, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToPostResponse(post)
	return &resp, nil
}

// GetBySlug retrieves a post by its URL slug, for the public site
func (s *PostService) GetBySlug(ctx context.Context, slug string) (*PostResponse, error) {
	post, err := s.postRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	resp := ToPostResponse(post)
	return &resp, nil
}

// Update replaces the content of a post
func (s *PostService) Update(ctx context.Context, id uuid.UUID, req UpdatePostRequest) (*PostResponse, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := post.Update(req.Title, req.Body, req.CoverImage); err != nil {
		return nil, err
	}
	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	resp := ToPostResponse(post)
	return &resp, nil
}

// Publish makes a post visible on the public site
func (s *PostService) Publish(ctx context.Context, id uuid.UUID) (*PostResponse, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := post.Publish(); err != nil {
		return nil, err
	}
	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	resp := ToPostResponse(post)
	return &resp, nil
}

// Unpublish moves a post back to draft
func (s *PostService) Unpublish(ctx context.Context, id uuid.UUID) (*PostResponse, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := post.Unpublish(); err != nil {
		return nil, err
	}
	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	resp := ToPostResponse(post)
	return &resp, nil
}

// List retrieves posts with filtering and pagination
func (s *PostService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[PostListResponse], error) {
	if filter.PublishedOnly {
		posts, err := s.postRepo.FindPublished(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]PostListResponse, len(posts))
		for i := range posts {
			rows[i] = ToPostListResponse(&posts[i])
		}
		pageSize := len(rows)
		if pageSize == 0 {
			pageSize = 1
		}
		result := shared.NewPaginated(rows, int64(len(rows)), 1, pageSize)
		return &result, nil
	}

	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		f.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		f.OrderDir = filter.OrderDir
	}
	f.Search = filter.Search

	posts, err := s.postRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.postRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	rows := make([]PostListResponse, len(posts))
	for i := range posts {
		rows[i] = ToPostListResponse(&posts[i])
	}
	result := shared.NewPaginated(rows, total, f.Page, f.PageSize)
	return &result, nil
}

// Delete removes a post
func (s *PostService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.postRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, id)
}
