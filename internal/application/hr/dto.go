package hr

import (
	"time"

	"github.com/bizdash/backend/internal/domain/hr"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateStaffRequest represents a request to create a staff member
type CreateStaffRequest struct {
	Name          string          `json:"name" binding:"required,min=1,max=200"`
	Email         string          `json:"email" binding:"required,email"`
	Phone         string          `json:"phone" binding:"max=30"`
	Role          string          `json:"role" binding:"required,oneof=admin manager staff"`
	Designation   string          `json:"designation" binding:"max=100"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	Password      string          `json:"password" binding:"required,min=8,max=72"`
}

// UpdateStaffRequest represents a request to update a staff member
type UpdateStaffRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Phone         *string          `json:"phone" binding:"omitempty,max=30"`
	Role          *string          `json:"role" binding:"omitempty,oneof=admin manager staff"`
	Designation   *string          `json:"designation" binding:"omitempty,max=100"`
	MonthlySalary *decimal.Decimal `json:"monthly_salary"`
	Password      *string          `json:"password" binding:"omitempty,min=8,max=72"`
}

// StaffResponse represents a staff member in API responses
type StaffResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Role          string          `json:"role"`
	Designation   string          `json:"designation"`
	JoinedAt      time.Time       `json:"joined_at"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// RecordSalaryRequest records one payroll payment
type RecordSalaryRequest struct {
	StaffID uuid.UUID        `json:"staff_id" binding:"required"`
	Month   string           `json:"month" binding:"required"`
	Amount  *decimal.Decimal `json:"amount"`
	PaidAt  *time.Time       `json:"paid_at"`
	Method  string           `json:"method" binding:"max=50"`
	Note    string           `json:"note" binding:"max=500"`
}

// SalaryRecordResponse represents a payroll payment in API responses
type SalaryRecordResponse struct {
	ID        uuid.UUID       `json:"id"`
	StaffID   uuid.UUID       `json:"staff_id"`
	StaffName string          `json:"staff_name"`
	Month     string          `json:"month"`
	Amount    decimal.Decimal `json:"amount"`
	PaidAt    time.Time       `json:"paid_at"`
	Method    string          `json:"method"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// ListFilter represents filter options for staff and payroll lists
type ListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active left"`
	Month    string `form:"month"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToStaffResponse converts a domain Staff to StaffResponse
func ToStaffResponse(s *hr.Staff) StaffResponse {
	return StaffResponse{
		ID:            s.ID,
		Name:          s.Name,
		Email:         s.Email,
		Phone:         s.Phone,
		Role:          string(s.Role),
		Designation:   s.Designation,
		JoinedAt:      s.JoinedAt,
		MonthlySalary: s.MonthlySalary,
		Status:        string(s.Status),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ToSalaryRecordResponse converts a domain SalaryRecord to SalaryRecordResponse
func ToSalaryRecordResponse(r *hr.SalaryRecord) SalaryRecordResponse {
	return SalaryRecordResponse{
		ID:        r.ID,
		StaffID:   r.StaffID,
		StaffName: r.StaffName,
		Month:     r.Month,
		Amount:    r.Amount,
		PaidAt:    r.PaidAt,
		Method:    r.Method,
		Note:      r.Note,
		CreatedAt: r.CreatedAt,
	}
}
