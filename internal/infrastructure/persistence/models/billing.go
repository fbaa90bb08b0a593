package models

import (
	"time"

	"github.com/bizdash/backend/internal/domain/billing"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for the Invoice domain entity.
// Party snapshots are flattened into columns; they are frozen copies,
// not foreign keys into the party tables.
type InvoiceModel struct {
	BaseModel
	Number      string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	InvoiceDate time.Time `gorm:"not null;index"`
	DueDate     time.Time `gorm:"not null"`

	CustomerID          uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerName        string    `gorm:"type:varchar(200);not null"`
	CustomerContactName string    `gorm:"type:varchar(100)"`
	CustomerPhone       string    `gorm:"type:varchar(50)"`
	CustomerEmail       string    `gorm:"type:varchar(200)"`
	CustomerAddress     string    `gorm:"type:text"`
	CustomerTaxID       string    `gorm:"type:varchar(50)"`

	BillerID          uuid.UUID `gorm:"type:uuid;not null"`
	BillerName        string    `gorm:"type:varchar(200);not null"`
	BillerContactName string    `gorm:"type:varchar(100)"`
	BillerPhone       string    `gorm:"type:varchar(50)"`
	BillerEmail       string    `gorm:"type:varchar(200)"`
	BillerAddress     string    `gorm:"type:text"`
	BillerTaxID       string    `gorm:"type:varchar(50)"`

	TaxRatePercent   decimal.Decimal       `gorm:"type:decimal(5,2);not null;default:0"`
	Subtotal         decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	TaxAmount        decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	TotalAmount      decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	AmountPaid       decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	DueAmount        decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	PaymentStatus    billing.PaymentStatus `gorm:"type:varchar(20);not null;index"`
	PaymentType      billing.PaymentType   `gorm:"type:varchar(20);not null"`
	PaymentMethod    billing.PaymentMethod `gorm:"type:varchar(20);not null"`
	PaymentReference string                `gorm:"type:varchar(100)"`
	Notes            string                `gorm:"type:text"`
	CreatedBy        *uuid.UUID            `gorm:"type:uuid"`

	Lines []InvoiceLineModel `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// InvoiceLineModel is the persistence model for one invoice line.
type InvoiceLineModel struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key"`
	InvoiceID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	Type        billing.ItemType `gorm:"type:varchar(20);not null"`
	ProductID   *uuid.UUID       `gorm:"type:uuid"`
	ServiceID   *uuid.UUID       `gorm:"type:uuid"`
	Description string           `gorm:"type:text;not null"`
	Quantity    int              `gorm:"not null"`
	UnitPrice   decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	LineTotal   decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	Position    int              `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InvoiceLineModel) TableName() string {
	return "invoice_lines"
}

// ToDomain converts the persistence model to a domain Invoice entity.
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	inv := &billing.Invoice{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Number:      m.Number,
		InvoiceDate: m.InvoiceDate,
		DueDate:     m.DueDate,
		Customer: billing.PartySnapshot{
			PartyID:     m.CustomerID,
			Name:        m.CustomerName,
			ContactName: m.CustomerContactName,
			Phone:       m.CustomerPhone,
			Email:       m.CustomerEmail,
			Address:     m.CustomerAddress,
			TaxID:       m.CustomerTaxID,
		},
		Biller: billing.PartySnapshot{
			PartyID:     m.BillerID,
			Name:        m.BillerName,
			ContactName: m.BillerContactName,
			Phone:       m.BillerPhone,
			Email:       m.BillerEmail,
			Address:     m.BillerAddress,
			TaxID:       m.BillerTaxID,
		},
		TaxRatePercent:   m.TaxRatePercent,
		Subtotal:         m.Subtotal,
		TaxAmount:        m.TaxAmount,
		TotalAmount:      m.TotalAmount,
		AmountPaid:       m.AmountPaid,
		DueAmount:        m.DueAmount,
		PaymentStatus:    m.PaymentStatus,
		PaymentType:      m.PaymentType,
		PaymentMethod:    m.PaymentMethod,
		PaymentReference: m.PaymentReference,
		Notes:            m.Notes,
		CreatedBy:        m.CreatedBy,
	}

	inv.Items = make([]billing.InvoiceLine, len(m.Lines))
	for i, line := range m.Lines {
		inv.Items[i] = billing.InvoiceLine{
			ID:          line.ID,
			InvoiceID:   line.InvoiceID,
			Type:        line.Type,
			ProductID:   line.ProductID,
			ServiceID:   line.ServiceID,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			LineTotal:   line.LineTotal,
			Position:    line.Position,
		}
	}
	return inv
}

// FromDomain populates the persistence model from a domain Invoice entity.
func (m *InvoiceModel) FromDomain(inv *billing.Invoice) {
	m.FromDomainBaseEntity(inv.BaseEntity)
	m.Number = inv.Number
	m.InvoiceDate = inv.InvoiceDate
	m.DueDate = inv.DueDate

	m.CustomerID = inv.Customer.PartyID
	m.CustomerName = inv.Customer.Name
	m.CustomerContactName = inv.Customer.ContactName
	m.CustomerPhone = inv.Customer.Phone
	m.CustomerEmail = inv.Customer.Email
	m.CustomerAddress = inv.Customer.Address
	m.CustomerTaxID = inv.Customer.TaxID

	m.BillerID = inv.Biller.PartyID
	m.BillerName = inv.Biller.Name
	m.BillerContactName = inv.Biller.ContactName
	m.BillerPhone = inv.Biller.Phone
	m.BillerEmail = inv.Biller.Email
	m.BillerAddress = inv.Biller.Address
	m.BillerTaxID = inv.Biller.TaxID

	m.TaxRatePercent = inv.TaxRatePercent
	m.Subtotal = inv.Subtotal
	m.TaxAmount = inv.TaxAmount
	m.TotalAmount = inv.TotalAmount
	m.AmountPaid = inv.AmountPaid
	m.DueAmount = inv.DueAmount
	m.PaymentStatus = inv.PaymentStatus
	m.PaymentType = inv.PaymentType
	m.PaymentMethod = inv.PaymentMethod
	m.PaymentReference = inv.PaymentReference
	m.Notes = inv.Notes
	m.CreatedBy = inv.CreatedBy

	m.Lines = make([]InvoiceLineModel, len(inv.Items))
	for i, item := range inv.Items {
		m.Lines[i] = InvoiceLineModel{
			ID:          item.ID,
			InvoiceID:   inv.ID,
			Type:        item.Type,
			ProductID:   item.ProductID,
			ServiceID:   item.ServiceID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
			Position:    item.Position,
		}
	}
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice entity.
func InvoiceModelFromDomain(inv *billing.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(inv)
	return m
}
