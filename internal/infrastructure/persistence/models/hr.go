package models

import (
	"time"

	"github.com/bizdash/backend/internal/domain/hr"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StaffModel is the persistence model for the Staff domain entity.
type StaffModel struct {
	BaseModel
	Name          string          `gorm:"type:varchar(200);not null"`
	Email         string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	Phone         string          `gorm:"type:varchar(50)"`
	Role          hr.StaffRole    `gorm:"type:varchar(20);not null;default:'staff'"`
	Designation   string          `gorm:"type:varchar(100)"`
	JoinedAt      time.Time       `gorm:"not null"`
	MonthlySalary decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PasswordHash  string          `gorm:"type:varchar(100)"`
	Status        hr.StaffStatus  `gorm:"type:varchar(20);not null;default:'active';index"`
}

// TableName returns the table name for GORM
func (StaffModel) TableName() string {
	return "staff"
}

// ToDomain converts the persistence model to a domain Staff entity.
func (m *StaffModel) ToDomain() *hr.Staff {
	return &hr.Staff{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		Role:          m.Role,
		Designation:   m.Designation,
		JoinedAt:      m.JoinedAt,
		MonthlySalary: m.MonthlySalary,
		PasswordHash:  m.PasswordHash,
		Status:        m.Status,
	}
}

// FromDomain populates the persistence model from a domain Staff entity.
func (m *StaffModel) FromDomain(s *hr.Staff) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Name = s.Name
	m.Email = s.Email
	m.Phone = s.Phone
	m.Role = s.Role
	m.Designation = s.Designation
	m.JoinedAt = s.JoinedAt
	m.MonthlySalary = s.MonthlySalary
	m.PasswordHash = s.PasswordHash
	m.Status = s.Status
}

// StaffModelFromDomain creates a new persistence model from a domain Staff entity.
func StaffModelFromDomain(s *hr.Staff) *StaffModel {
	m := &StaffModel{}
	m.FromDomain(s)
	return m
}

// SalaryRecordModel is the persistence model for the SalaryRecord domain entity.
type SalaryRecordModel struct {
	BaseModel
	StaffID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_salary_staff_month,priority:1"`
	StaffName string          `gorm:"type:varchar(200);not null"`
	Month     string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_salary_staff_month,priority:2;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PaidAt    time.Time       `gorm:"not null"`
	Method    string          `gorm:"type:varchar(50)"`
	Note      string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SalaryRecordModel) TableName() string {
	return "salary_records"
}

// ToDomain converts the persistence model to a domain SalaryRecord entity.
func (m *SalaryRecordModel) ToDomain() *hr.SalaryRecord {
	return &hr.SalaryRecord{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		StaffID:   m.StaffID,
		StaffName: m.StaffName,
		Month:     m.Month,
		Amount:    m.Amount,
		PaidAt:    m.PaidAt,
		Method:    m.Method,
		Note:      m.Note,
	}
}

// FromDomain populates the persistence model from a domain SalaryRecord entity.
func (m *SalaryRecordModel) FromDomain(r *hr.SalaryRecord) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.StaffID = r.StaffID
	m.StaffName = r.StaffName
	m.Month = r.Month
	m.Amount = r.Amount
	m.PaidAt = r.PaidAt
	m.Method = r.Method
	m.Note = r.Note
}

// SalaryRecordModelFromDomain creates a new persistence model from a domain SalaryRecord entity.
func SalaryRecordModelFromDomain(r *hr.SalaryRecord) *SalaryRecordModel {
	m := &SalaryRecordModel{}
	m.FromDomain(r)
	return m
}
