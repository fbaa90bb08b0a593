package catalog

import (
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ServiceStatus represents the availability of a service
type ServiceStatus string

const (
	ServiceStatusActive   ServiceStatus = "active"
	ServiceStatusArchived ServiceStatus = "archived"
)

// Service is an offered service an invoice line can reference,
// maintained independently from the product catalog.
type Service struct {
	shared.BaseEntity
	Name        string
	Description string
	Rate        decimal.Decimal
	Status      ServiceStatus
}

// NewService creates a new active service
func NewService(name string, rate decimal.Decimal) (*Service, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Service name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Service name cannot exceed 200 characters")
	}
	if rate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Service rate cannot be negative")
	}
	return &Service{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Rate:       rate,
		Status:     ServiceStatusActive,
	}, nil
}

// Update changes name and description
func (s *Service) Update(name, description string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Service name cannot be empty")
	}
	s.Name = name
	s.Description = description
	s.Touch()
	return nil
}

// SetRate changes the service rate
func (s *Service) SetRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Service rate cannot be negative")
	}
	s.Rate = rate
	s.Touch()
	return nil
}

// Archive hides the service from catalogs without deleting it
func (s *Service) Archive() {
	s.Status = ServiceStatusArchived
	s.Touch()
}

// Restore reactivates an archived service
func (s *Service) Restore() {
	s.Status = ServiceStatusActive
	s.Touch()
}

// IsActive returns true if the service is selectable
func (s *Service) IsActive() bool {
	return s.Status == ServiceStatusActive
}
