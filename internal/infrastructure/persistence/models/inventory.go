package models

import (
	"time"

	"github.com/bizdash/backend/internal/domain/inventory"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StockItemModel is the persistence model for the StockItem domain entity.
type StockItemModel struct {
	BaseModel
	ProductID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	ProductName  string     `gorm:"type:varchar(200);not null"`
	OnHand       int        `gorm:"not null;default:0"`
	RestockLevel int        `gorm:"not null;default:0"`
	LastAdjusted *time.Time `gorm:""`
	Note         string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (StockItemModel) TableName() string {
	return "stock_items"
}

// ToDomain converts the persistence model to a domain StockItem entity.
func (m *StockItemModel) ToDomain() *inventory.StockItem {
	return &inventory.StockItem{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		ProductID:    m.ProductID,
		ProductName:  m.ProductName,
		OnHand:       m.OnHand,
		RestockLevel: m.RestockLevel,
		LastAdjusted: m.LastAdjusted,
		Note:         m.Note,
	}
}

// FromDomain populates the persistence model from a domain StockItem entity.
func (m *StockItemModel) FromDomain(s *inventory.StockItem) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.ProductID = s.ProductID
	m.ProductName = s.ProductName
	m.OnHand = s.OnHand
	m.RestockLevel = s.RestockLevel
	m.LastAdjusted = s.LastAdjusted
	m.Note = s.Note
}

// StockItemModelFromDomain creates a new persistence model from a domain StockItem entity.
func StockItemModelFromDomain(s *inventory.StockItem) *StockItemModel {
	m := &StockItemModel{}
	m.FromDomain(s)
	return m
}
