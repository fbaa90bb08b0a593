package hr

import (
	"context"

	"github.com/bizdash/backend/internal/domain/hr"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PasswordHasher hashes and verifies login passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// StaffService handles staff record operations
type StaffService struct {
	staffRepo hr.StaffRepository
	hasher    PasswordHasher
}

// NewStaffService creates a new StaffService
func NewStaffService(staffRepo hr.StaffRepository, hasher PasswordHasher) *StaffService {
	return &StaffService{staffRepo: staffRepo, hasher: hasher}
}

// Create creates a new staff member with a login password
func (s *StaffService) Create(ctx context.Context, req CreateStaffRequest) (*StaffResponse, error) {
	if existing, err := s.staffRepo.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Staff member with this email already exists")
	}

	staff, err := hr.NewStaff(req.Name, req.Email, hr.StaffRole(req.Role), req.MonthlySalary)
	if err != nil {
		return nil, err
	}
	if err := staff.Update(req.Name, req.Phone, req.Designation); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	staff.SetPasswordHash(hash)

	if err := s.staffRepo.Save(ctx, staff); err != nil {
		return nil, err
	}
	resp := ToStaffResponse(staff)
	return &resp, nil
}

// GetByID retrieves a staff member by ID
func (s *StaffService) GetByID(ctx context.Context, id uuid.UUID) (*StaffResponse, error) {
	staff, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToStaffResponse(staff)
	return &resp, nil
}

// Update applies a partial update to a staff member
func (s *StaffService) Update(ctx context.Context, id uuid.UUID, req UpdateStaffRequest) (*StaffResponse, error) {
	staff, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := staff.Name
	phone := staff.Phone
	designation := staff.Designation
	if req.Name != nil {
		name = *req.Name
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Designation != nil {
		designation = *req.Designation
	}
	if err := staff.Update(name, phone, designation); err != nil {
		return nil, err
	}
	if req.Role != nil {
		if err := staff.SetRole(hr.StaffRole(*req.Role)); err != nil {
			return nil, err
		}
	}
	if req.MonthlySalary != nil {
		if err := staff.SetMonthlySalary(*req.MonthlySalary); err != nil {
			return nil, err
		}
	}
	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		staff.SetPasswordHash(hash)
	}

	if err := s.staffRepo.Save(ctx, staff); err != nil {
		return nil, err
	}
	resp := ToStaffResponse(staff)
	return &resp, nil
}

// List retrieves staff with filtering and pagination
func (s *StaffService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[StaffResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		f.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		f.OrderDir = filter.OrderDir
	}
	f.Search = filter.Search
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}

	staff, err := s.staffRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.staffRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	rows := make([]StaffResponse, len(staff))
	for i := range staff {
		rows[i] = ToStaffResponse(&staff[i])
	}
	result := shared.NewPaginated(rows, total, f.Page, f.PageSize)
	return &result, nil
}

// MarkLeft records a staff departure; payroll history stays intact
func (s *StaffService) MarkLeft(ctx context.Context, id uuid.UUID) error {
	staff, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := staff.MarkLeft(); err != nil {
		return err
	}
	return s.staffRepo.Save(ctx, staff)
}
