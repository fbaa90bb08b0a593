package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/bizdash/backend/internal/domain/partner"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBillerRepository implements BillerRepository using GORM
type GormBillerRepository struct {
	db *gorm.DB
}

// NewGormBillerRepository creates a new GormBillerRepository
func NewGormBillerRepository(db *gorm.DB) *GormBillerRepository {
	return &GormBillerRepository{db: db}
}

// FindByID finds a biller by its ID
func (r *GormBillerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Biller, error) {
	var model models.BillerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all billers matching the filter
func (r *GormBillerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Biller, error) {
	var billerModels []models.BillerModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.BillerModel{}), filter)

	if err := query.Find(&billerModels).Error; err != nil {
		return nil, err
	}

	billers := make([]partner.Biller, len(billerModels))
	for i, model := range billerModels {
		billers[i] = *model.ToDomain()
	}
	return billers, nil
}

// Save creates or updates a biller
func (r *GormBillerRepository) Save(ctx context.Context, biller *partner.Biller) error {
	model := models.BillerModelFromDomain(biller)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a biller
func (r *GormBillerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BillerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts billers matching the filter
func (r *GormBillerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.BillerModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormBillerRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, BillerSortFields, "name")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormBillerRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("name ILIKE ? OR contact_name ILIKE ? OR email ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	return query
}

// Ensure GormBillerRepository implements BillerRepository
var _ partner.BillerRepository = (*GormBillerRepository)(nil)
