package partner

import (
	"context"

	"github.com/bizdash/backend/internal/domain/partner"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BillerService handles biller record operations
type BillerService struct {
	billerRepo partner.BillerRepository
}

// NewBillerService creates a new BillerService
func NewBillerService(billerRepo partner.BillerRepository) *BillerService {
	return &BillerService{billerRepo: billerRepo}
}

// Create creates a new biller
func (s *BillerService) Create(ctx context.Context, req CreateBillerRequest) (*BillerResponse, error) {
	biller, err := partner.NewBiller(req.Name)
	if err != nil {
		return nil, err
	}
	if err := biller.SetContact(req.ContactName, req.Phone, req.Email); err != nil {
		return nil, err
	}
	biller.SetAddress(req.Address, req.City, req.State, req.PostalCode)
	if err := biller.SetTaxID(req.TaxID); err != nil {
		return nil, err
	}
	biller.SetBankDetails(req.BankName, req.BankAccount, req.UPIHandle)

	if err := s.billerRepo.Save(ctx, biller); err != nil {
		return nil, err
	}
	resp := ToBillerResponse(biller)
	return &resp, nil
}

// GetByID retrieves a biller by ID
func (s *BillerService) GetByID(ctx context.Context, id uuid.UUID) (*BillerResponse, error) {
	biller, err := s.billerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToBillerResponse(biller)
	return &resp, nil
}

// Update applies a partial update to a biller
func (s *BillerService) Update(ctx context.Context, id uuid.UUID, req UpdateBillerRequest) (*BillerResponse, error) {
	biller, err := s.billerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := biller.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.ContactName != nil || req.Phone != nil || req.Email != nil {
		contactName := biller.ContactName
		phone := biller.Phone
		email := biller.Email
		if req.ContactName != nil {
			contactName = *req.ContactName
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Email != nil {
			email = *req.Email
		}
		if err := biller.SetContact(contactName, phone, email); err != nil {
			return nil, err
		}
	}
	if req.Address != nil || req.City != nil || req.State != nil || req.PostalCode != nil {
		address := biller.Address
		city := biller.City
		state := biller.State
		postalCode := biller.PostalCode
		if req.Address != nil {
			address = *req.Address
		}
		if req.City != nil {
			city = *req.City
		}
		if req.State != nil {
			state = *req.State
		}
		if req.PostalCode != nil {
			postalCode = *req.PostalCode
		}
		biller.SetAddress(address, city, state, postalCode)
	}
	if req.TaxID != nil {
		if err := biller.SetTaxID(*req.TaxID); err != nil {
			return nil, err
		}
	}
	if req.BankName != nil || req.BankAccount != nil || req.UPIHandle != nil {
		bankName := biller.BankName
		bankAccount := biller.BankAccount
		upiHandle := biller.UPIHandle
		if req.BankName != nil {
			bankName = *req.BankName
		}
		if req.BankAccount != nil {
			bankAccount = *req.BankAccount
		}
		if req.UPIHandle != nil {
			upiHandle = *req.UPIHandle
		}
		biller.SetBankDetails(bankName, bankAccount, upiHandle)
	}

	if err := s.billerRepo.Save(ctx, biller); err != nil {
		return nil, err
	}
	resp := ToBillerResponse(biller)
	return &resp, nil
}

// List retrieves billers with filtering and pagination
func (s *BillerService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[BillerResponse], error) {
	f := buildFilter(filter)

	billers, err := s.billerRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.billerRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	rows := make([]BillerResponse, len(billers))
	for i := range billers {
		rows[i] = ToBillerResponse(&billers[i])
	}
	result := shared.NewPaginated(rows, total, f.Page, f.PageSize)
	return &result, nil
}

// Delete removes a biller record
func (s *BillerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.billerRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.billerRepo.Delete(ctx, id)
}
