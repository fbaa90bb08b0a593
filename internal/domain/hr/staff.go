package hr

import (
	"strings"
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StaffRole controls what a staff login may do in the dashboard
type StaffRole string

const (
	StaffRoleAdmin   StaffRole = "admin"
	StaffRoleManager StaffRole = "manager"
	StaffRoleStaff   StaffRole = "staff"
)

// IsValid checks if the role is a valid StaffRole
func (r StaffRole) IsValid() bool {
	switch r {
	case StaffRoleAdmin, StaffRoleManager, StaffRoleStaff:
		return true
	}
	return false
}

// StaffStatus represents employment status
type StaffStatus string

const (
	StaffStatusActive StaffStatus = "active"
	StaffStatusLeft   StaffStatus = "left"
)

// Staff is an employee record; active staff with a password hash can
// log in to the dashboard.
type Staff struct {
	shared.BaseEntity
	Name          string
	Email         string
	Phone         string
	Role          StaffRole
	Designation   string
	JoinedAt      time.Time
	MonthlySalary decimal.Decimal
	PasswordHash  string
	Status        StaffStatus
}

// NewStaff creates a new active staff member
func NewStaff(name, email string, role StaffRole, monthlySalary decimal.Decimal) (*Staff, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Staff name cannot be empty")
	}
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Staff email cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown staff role")
	}
	if monthlySalary.IsNegative() {
		return nil, shared.NewDomainError("INVALID_SALARY", "Monthly salary cannot be negative")
	}
	return &Staff{
		BaseEntity:    shared.NewBaseEntity(),
		Name:          name,
		Email:         strings.ToLower(email),
		Role:          role,
		JoinedAt:      time.Now(),
		MonthlySalary: monthlySalary,
		Status:        StaffStatusActive,
	}, nil
}

// Update changes basic profile fields
func (s *Staff) Update(name, phone, designation string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Staff name cannot be empty")
	}
	s.Name = name
	s.Phone = phone
	s.Designation = designation
	s.Touch()
	return nil
}

// SetRole changes the staff role
func (s *Staff) SetRole(role StaffRole) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown staff role")
	}
	s.Role = role
	s.Touch()
	return nil
}

// SetMonthlySalary changes the salary used to prefill payroll entries
func (s *Staff) SetMonthlySalary(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_SALARY", "Monthly salary cannot be negative")
	}
	s.MonthlySalary = amount
	s.Touch()
	return nil
}

// SetPasswordHash stores the bcrypt hash for dashboard login
func (s *Staff) SetPasswordHash(hash string) {
	s.PasswordHash = hash
	s.Touch()
}

// MarkLeft records that the staff member has left; their login stops
// working but payroll history stays intact.
func (s *Staff) MarkLeft() error {
	if s.Status == StaffStatusLeft {
		return shared.NewDomainError("INVALID_STATE", "Staff member has already left")
	}
	s.Status = StaffStatusLeft
	s.Touch()
	return nil
}

// IsActive returns true for current employees
func (s *Staff) IsActive() bool {
	return s.Status == StaffStatusActive
}
