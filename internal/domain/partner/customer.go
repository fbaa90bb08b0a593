package partner

import (
	"regexp"
	"strings"

	"github.com/bizdash/backend/internal/domain/shared"
)

// CustomerStatus represents the status of a customer record
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusArchived CustomerStatus = "archived"
)

// IsValid checks if the status is a valid CustomerStatus
func (s CustomerStatus) IsValid() bool {
	return s == CustomerStatusActive || s == CustomerStatusArchived
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Customer represents a billable customer. Invoices copy a frozen
// snapshot of these fields at submission time, so edits here never
// rewrite history.
type Customer struct {
	shared.BaseEntity
	Name        string
	ContactName string
	Phone       string
	Email       string
	Address     string
	City        string
	State       string
	PostalCode  string
	TaxID       string
	Notes       string
	Status      CustomerStatus
}

// NewCustomer creates a new active customer
func NewCustomer(name string) (*Customer, error) {
	if err := validatePartyName(name); err != nil {
		return nil, err
	}
	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Status:     CustomerStatusActive,
	}, nil
}

// Rename updates the customer name
func (c *Customer) Rename(name string) error {
	if err := validatePartyName(name); err != nil {
		return err
	}
	c.Name = name
	c.Touch()
	return nil
}

// SetContact updates the contact details
func (c *Customer) SetContact(contactName, phone, email string) error {
	if email != "" && !emailPattern.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	c.ContactName = contactName
	c.Phone = phone
	c.Email = strings.ToLower(email)
	c.Touch()
	return nil
}

// SetAddress updates the address fields
func (c *Customer) SetAddress(address, city, state, postalCode string) {
	c.Address = address
	c.City = city
	c.State = state
	c.PostalCode = postalCode
	c.Touch()
}

// SetTaxID updates the tax identification number
func (c *Customer) SetTaxID(taxID string) error {
	if len(taxID) > 50 {
		return shared.NewDomainError("INVALID_TAX_ID", "Tax ID cannot exceed 50 characters")
	}
	c.TaxID = taxID
	c.Touch()
	return nil
}

// SetNotes updates free-form notes
func (c *Customer) SetNotes(notes string) {
	c.Notes = notes
	c.Touch()
}

// Archive marks the customer as archived; archived customers stay
// resolvable on historical invoices but are hidden from pickers.
func (c *Customer) Archive() error {
	if c.Status == CustomerStatusArchived {
		return shared.NewDomainError("INVALID_STATE", "Customer is already archived")
	}
	c.Status = CustomerStatusArchived
	c.Touch()
	return nil
}

// Restore reactivates an archived customer
func (c *Customer) Restore() error {
	if c.Status == CustomerStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Customer is already active")
	}
	c.Status = CustomerStatusActive
	c.Touch()
	return nil
}

// IsActive returns true if the customer is active
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}

// FullAddress joins the address parts into a single display line
func (c *Customer) FullAddress() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{c.Address, c.City, c.State, c.PostalCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func validatePartyName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}
