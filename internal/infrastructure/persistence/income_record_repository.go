package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bizdash/backend/internal/domain/finance"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormIncomeRepository implements IncomeRepository using GORM
type GormIncomeRepository struct {
	db *gorm.DB
}

// NewGormIncomeRepository creates a new GormIncomeRepository
func NewGormIncomeRepository(db *gorm.DB) *GormIncomeRepository {
	return &GormIncomeRepository{db: db}
}

// FindByID finds an income record by ID
func (r *GormIncomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.IncomeRecord, error) {
	var model models.IncomeRecordModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all income records matching the filter
func (r *GormIncomeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.IncomeRecord, error) {
	var recordModels []models.IncomeRecordModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.IncomeRecordModel{}), filter)

	if err := query.Find(&recordModels).Error; err != nil {
		return nil, err
	}

	records := make([]finance.IncomeRecord, len(recordModels))
	for i, model := range recordModels {
		records[i] = *model.ToDomain()
	}
	return records, nil
}

// FindByDateRange finds income records received in [from, to]
func (r *GormIncomeRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]finance.IncomeRecord, error) {
	var recordModels []models.IncomeRecordModel
	if err := r.db.WithContext(ctx).
		Where("received_at >= ? AND received_at <= ?", from, to).
		Order("received_at ASC").
		Find(&recordModels).Error; err != nil {
		return nil, err
	}

	records := make([]finance.IncomeRecord, len(recordModels))
	for i, model := range recordModels {
		records[i] = *model.ToDomain()
	}
	return records, nil
}

// Save creates or updates an income record
func (r *GormIncomeRepository) Save(ctx context.Context, record *finance.IncomeRecord) error {
	model := models.IncomeRecordModelFromDomain(record)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes an income record
func (r *GormIncomeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.IncomeRecordModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts income records matching the filter
func (r *GormIncomeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.IncomeRecordModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormIncomeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, FinanceRecordSortFields, "received_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormIncomeRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("title ILIKE ? OR note ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "category":
			query = query.Where("category = ?", value)
		}
	}

	return query
}

// Ensure GormIncomeRepository implements IncomeRepository
var _ finance.IncomeRepository = (*GormIncomeRepository)(nil)
