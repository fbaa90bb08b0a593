package models

import (
	"github.com/bizdash/backend/internal/domain/partner"
	"github.com/bizdash/backend/internal/domain/shared"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	Name        string                 `gorm:"type:varchar(200);not null"`
	ContactName string                 `gorm:"type:varchar(100)"`
	Phone       string                 `gorm:"type:varchar(50);index"`
	Email       string                 `gorm:"type:varchar(200);index"`
	Address     string                 `gorm:"type:text"`
	City        string                 `gorm:"type:varchar(100)"`
	State       string                 `gorm:"type:varchar(100)"`
	PostalCode  string                 `gorm:"type:varchar(20)"`
	TaxID       string                 `gorm:"type:varchar(50)"`
	Notes       string                 `gorm:"type:text"`
	Status      partner.CustomerStatus `gorm:"type:varchar(20);not null;default:'active';index"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Name:        m.Name,
		ContactName: m.ContactName,
		Phone:       m.Phone,
		Email:       m.Email,
		Address:     m.Address,
		City:        m.City,
		State:       m.State,
		PostalCode:  m.PostalCode,
		TaxID:       m.TaxID,
		Notes:       m.Notes,
		Status:      m.Status,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.ContactName = c.ContactName
	m.Phone = c.Phone
	m.Email = c.Email
	m.Address = c.Address
	m.City = c.City
	m.State = c.State
	m.PostalCode = c.PostalCode
	m.TaxID = c.TaxID
	m.Notes = c.Notes
	m.Status = c.Status
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// BillerModel is the persistence model for the Biller domain entity.
type BillerModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);not null"`
	ContactName string `gorm:"type:varchar(100)"`
	Phone       string `gorm:"type:varchar(50)"`
	Email       string `gorm:"type:varchar(200)"`
	Address     string `gorm:"type:text"`
	City        string `gorm:"type:varchar(100)"`
	State       string `gorm:"type:varchar(100)"`
	PostalCode  string `gorm:"type:varchar(20)"`
	TaxID       string `gorm:"type:varchar(50)"`
	BankName    string `gorm:"type:varchar(200)"`
	BankAccount string `gorm:"type:varchar(100)"`
	UPIHandle   string `gorm:"type:varchar(100);column:upi_handle"`
	Notes       string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (BillerModel) TableName() string {
	return "billers"
}

// ToDomain converts the persistence model to a domain Biller entity.
func (m *BillerModel) ToDomain() *partner.Biller {
	return &partner.Biller{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Name:        m.Name,
		ContactName: m.ContactName,
		Phone:       m.Phone,
		Email:       m.Email,
		Address:     m.Address,
		City:        m.City,
		State:       m.State,
		PostalCode:  m.PostalCode,
		TaxID:       m.TaxID,
		BankName:    m.BankName,
		BankAccount: m.BankAccount,
		UPIHandle:   m.UPIHandle,
		Notes:       m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Biller entity.
func (m *BillerModel) FromDomain(b *partner.Biller) {
	m.FromDomainBaseEntity(b.BaseEntity)
	m.Name = b.Name
	m.ContactName = b.ContactName
	m.Phone = b.Phone
	m.Email = b.Email
	m.Address = b.Address
	m.City = b.City
	m.State = b.State
	m.PostalCode = b.PostalCode
	m.TaxID = b.TaxID
	m.BankName = b.BankName
	m.BankAccount = b.BankAccount
	m.UPIHandle = b.UPIHandle
	m.Notes = b.Notes
}

// BillerModelFromDomain creates a new persistence model from a domain Biller entity.
func BillerModelFromDomain(b *partner.Biller) *BillerModel {
	m := &BillerModel{}
	m.FromDomain(b)
	return m
}
