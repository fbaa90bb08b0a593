package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/bizdash/backend/internal/domain/hr"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSalaryRepository implements SalaryRepository using GORM
type GormSalaryRepository struct {
	db *gorm.DB
}

// NewGormSalaryRepository creates a new GormSalaryRepository
func NewGormSalaryRepository(db *gorm.DB) *GormSalaryRepository {
	return &GormSalaryRepository{db: db}
}

// FindByID finds a salary record by ID
func (r *GormSalaryRepository) FindByID(ctx context.Context, id uuid.UUID) (*hr.SalaryRecord, error) {
	var model models.SalaryRecordModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all salary records matching the filter
func (r *GormSalaryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]hr.SalaryRecord, error) {
	var recordModels []models.SalaryRecordModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.SalaryRecordModel{}), filter)

	if err := query.Find(&recordModels).Error; err != nil {
		return nil, err
	}

	records := make([]hr.SalaryRecord, len(recordModels))
	for i, model := range recordModels {
		records[i] = *model.ToDomain()
	}
	return records, nil
}

// FindByStaff finds all salary records paid to a staff member, newest month first
func (r *GormSalaryRepository) FindByStaff(ctx context.Context, staffID uuid.UUID) ([]hr.SalaryRecord, error) {
	var recordModels []models.SalaryRecordModel
	if err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("month DESC").
		Find(&recordModels).Error; err != nil {
		return nil, err
	}

	records := make([]hr.SalaryRecord, len(recordModels))
	for i, model := range recordModels {
		records[i] = *model.ToDomain()
	}
	return records, nil
}

// FindByMonth finds all salary records for a payroll month (YYYY-MM)
func (r *GormSalaryRepository) FindByMonth(ctx context.Context, month string) ([]hr.SalaryRecord, error) {
	var recordModels []models.SalaryRecordModel
	if err := r.db.WithContext(ctx).
		Where("month = ?", month).
		Order("staff_name ASC").
		Find(&recordModels).Error; err != nil {
		return nil, err
	}

	records := make([]hr.SalaryRecord, len(recordModels))
	for i, model := range recordModels {
		records[i] = *model.ToDomain()
	}
	return records, nil
}

// Save creates or updates a salary record
func (r *GormSalaryRepository) Save(ctx context.Context, record *hr.SalaryRecord) error {
	model := models.SalaryRecordModelFromDomain(record)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a salary record
func (r *GormSalaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SalaryRecordModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts salary records matching the filter
func (r *GormSalaryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.SalaryRecordModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormSalaryRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, SalaryRecordSortFields, "paid_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormSalaryRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("staff_name ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "staff_id":
			query = query.Where("staff_id = ?", value)
		case "month":
			query = query.Where("month = ?", value)
		}
	}

	return query
}

// Ensure GormSalaryRepository implements SalaryRepository
var _ hr.SalaryRepository = (*GormSalaryRepository)(nil)
