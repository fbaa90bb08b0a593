package partner

import (
	"strings"

	"github.com/bizdash/backend/internal/domain/shared"
)

// Biller represents an issuing business entity printed on the invoice
// header. A dashboard usually carries one or two of these (separate
// trade names, branches), selected per invoice like a customer is.
type Biller struct {
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
	BankName    string
	BankAccount string
	UPIHandle   string
	Notes       string
}

// NewBiller creates a new biller
func NewBiller(name string) (*Biller, error) {
	if err := validatePartyName(name); err != nil {
		return nil, err
	}
	return &Biller{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// Rename updates the biller name
func (b *Biller) Rename(name string) error {
	if err := validatePartyName(name); err != nil {
		return err
	}
	b.Name = name
	b.Touch()
	return nil
}

// SetContact updates the contact details
func (b *Biller) SetContact(contactName, phone, email string) error {
	if email != "" && !emailPattern.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	b.ContactName = contactName
	b.Phone = phone
	b.Email = strings.ToLower(email)
	b.Touch()
	return nil
}

// SetAddress updates the address fields
func (b *Biller) SetAddress(address, city, state, postalCode string) {
	b.Address = address
	b.City = city
	b.State = state
	b.PostalCode = postalCode
	b.Touch()
}

// SetTaxID updates the tax identification number
func (b *Biller) SetTaxID(taxID string) error {
	if len(taxID) > 50 {
		return shared.NewDomainError("INVALID_TAX_ID", "Tax ID cannot exceed 50 characters")
	}
	b.TaxID = taxID
	b.Touch()
	return nil
}

// SetBankDetails updates the payment collection details shown to customers
func (b *Biller) SetBankDetails(bankName, bankAccount, upiHandle string) {
	b.BankName = bankName
	b.BankAccount = bankAccount
	b.UPIHandle = upiHandle
	b.Touch()
}

// FullAddress joins the address parts into a single display line
func (b *Biller) FullAddress() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{b.Address, b.City, b.State, b.PostalCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
