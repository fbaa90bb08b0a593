package models

import (
	"time"

	"github.com/bizdash/backend/internal/domain/finance"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ExpenseRecordModel is the persistence model for the ExpenseRecord domain entity.
type ExpenseRecordModel struct {
	BaseModel
	Category   finance.ExpenseCategory `gorm:"type:varchar(20);not null;index"`
	Title      string                  `gorm:"type:varchar(200);not null"`
	Amount     decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	IncurredAt time.Time               `gorm:"not null;index"`
	Note       string                  `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ExpenseRecordModel) TableName() string {
	return "expense_records"
}

// ToDomain converts the persistence model to a domain ExpenseRecord entity.
func (m *ExpenseRecordModel) ToDomain() *finance.ExpenseRecord {
	return &finance.ExpenseRecord{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Category:   m.Category,
		Title:      m.Title,
		Amount:     m.Amount,
		IncurredAt: m.IncurredAt,
		Note:       m.Note,
	}
}

// FromDomain populates the persistence model from a domain ExpenseRecord entity.
func (m *ExpenseRecordModel) FromDomain(e *finance.ExpenseRecord) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.Category = e.Category
	m.Title = e.Title
	m.Amount = e.Amount
	m.IncurredAt = e.IncurredAt
	m.Note = e.Note
}

// ExpenseRecordModelFromDomain creates a new persistence model from a domain ExpenseRecord entity.
func ExpenseRecordModelFromDomain(e *finance.ExpenseRecord) *ExpenseRecordModel {
	m := &ExpenseRecordModel{}
	m.FromDomain(e)
	return m
}

// IncomeRecordModel is the persistence model for the IncomeRecord domain entity.
type IncomeRecordModel struct {
	BaseModel
	Category   finance.IncomeCategory `gorm:"type:varchar(20);not null;index"`
	Title      string                 `gorm:"type:varchar(200);not null"`
	Amount     decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	ReceivedAt time.Time              `gorm:"not null;index"`
	Note       string                 `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (IncomeRecordModel) TableName() string {
	return "income_records"
}

// ToDomain converts the persistence model to a domain IncomeRecord entity.
func (m *IncomeRecordModel) ToDomain() *finance.IncomeRecord {
	return &finance.IncomeRecord{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Category:   m.Category,
		Title:      m.Title,
		Amount:     m.Amount,
		ReceivedAt: m.ReceivedAt,
		Note:       m.Note,
	}
}

// FromDomain populates the persistence model from a domain IncomeRecord entity.
func (m *IncomeRecordModel) FromDomain(r *finance.IncomeRecord) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.Category = r.Category
	m.Title = r.Title
	m.Amount = r.Amount
	m.ReceivedAt = r.ReceivedAt
	m.Note = r.Note
}

// IncomeRecordModelFromDomain creates a new persistence model from a domain IncomeRecord entity.
func IncomeRecordModelFromDomain(r *finance.IncomeRecord) *IncomeRecordModel {
	m := &IncomeRecordModel{}
	m.FromDomain(r)
	return m
}
