package persistence

import (
	"context"
	"errors"

	"github.com/bizdash/backend/internal/domain/content"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormLandingPageRepository implements LandingPageRepository using GORM.
// The landing page is a singleton row; Get returns the most recently
// updated record when more than one exists.
type GormLandingPageRepository struct {
	db *gorm.DB
}

// NewGormLandingPageRepository creates a new GormLandingPageRepository
func NewGormLandingPageRepository(db *gorm.DB) *GormLandingPageRepository {
	return &GormLandingPageRepository{db: db}
}

// Get returns the landing page record
func (r *GormLandingPageRepository) Get(ctx context.Context) (*content.LandingPage, error) {
	var model models.LandingPageModel
	if err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates the landing page record
func (r *GormLandingPageRepository) Save(ctx context.Context, page *content.LandingPage) error {
	model, err := models.LandingPageModelFromDomain(page)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormLandingPageRepository implements LandingPageRepository
var _ content.LandingPageRepository = (*GormLandingPageRepository)(nil)
