package catalog

import (
	"context"

	"github.com/bizdash/backend/internal/domain/catalog"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ServiceService handles offered-service catalog operations
type ServiceService struct {
	serviceRepo catalog.ServiceRepository
	snapshots   SnapshotInvalidator
}

// NewServiceService creates a new ServiceService
func NewServiceService(serviceRepo catalog.ServiceRepository, snapshots SnapshotInvalidator) *ServiceService {
	return &ServiceService{serviceRepo: serviceRepo, snapshots: snapshots}
}

// Create creates a new service
func (s *ServiceService) Create(ctx context.Context, req CreateServiceRequest) (*ServiceResponse, error) {
	service, err := catalog.NewService(req.Name, req.Rate)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		if err := service.Update(req.Name, req.Description); err != nil {
			return nil, err
		}
	}

	if err := s.serviceRepo.Save(ctx, service); err != nil {
		return nil, err
	}
	s.snapshots.Invalidate(ctx)
	resp := ToServiceResponse(service)
	return &resp, nil
}

// GetByID retrieves a service by ID
func (s *ServiceService) GetByID(ctx context.Context, id uuid.UUID) (*ServiceResponse, error) {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToServiceResponse(service)
	return &resp, nil
}

// Update applies a partial update to a service
func (s *ServiceService) Update(ctx context.Context, id uuid.UUID, req UpdateServiceRequest) (*ServiceResponse, error) {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := service.Name
	description := service.Description
	if req.Name != nil {
		name = *req.Name
	}
	if req.Description != nil {
		description = *req.Description
	}
	if err := service.Update(name, description); err != nil {
		return nil, err
	}
	if req.Rate != nil {
		if err := service.SetRate(*req.Rate); err != nil {
			return nil, err
		}
	}

	if err := s.serviceRepo.Save(ctx, service); err != nil {
		return nil, err
	}
	s.snapshots.Invalidate(ctx)
	resp := ToServiceResponse(service)
	return &resp, nil
}

// List retrieves services with filtering and pagination
func (s *ServiceService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[ServiceResponse], error) {
	f := buildFilter(filter)

	services, err := s.serviceRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.serviceRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	rows := make([]ServiceResponse, len(services))
	for i := range services {
		rows[i] = ToServiceResponse(&services[i])
	}
	result := shared.NewPaginated(rows, total, f.Page, f.PageSize)
	return &result, nil
}

// Archive hides a service from the invoice form catalog
func (s *ServiceService) Archive(ctx context.Context, id uuid.UUID) error {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	service.Archive()
	if err := s.serviceRepo.Save(ctx, service); err != nil {
		return err
	}
	s.snapshots.Invalidate(ctx)
	return nil
}

// Delete removes a service
func (s *ServiceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.serviceRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.snapshots.Invalidate(ctx)
	return nil
}
