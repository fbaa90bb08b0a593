package catalog

import (
	"strings"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the availability of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusArchived ProductStatus = "archived"
)

// Product is a sellable catalog item an invoice line can reference.
// Line items copy price and description at selection time, so price
// changes here never alter existing invoices.
type Product struct {
	shared.BaseEntity
	SKU         string
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	Unit        string
	Status      ProductStatus
}

// NewProduct creates a new active product
func NewProduct(sku, name string, unitPrice decimal.Decimal) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		SKU:        strings.ToUpper(sku),
		Name:       name,
		UnitPrice:  unitPrice,
		Unit:       "pcs",
		Status:     ProductStatusActive,
	}, nil
}

// Update changes name, description and unit
func (p *Product) Update(name, description, unit string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	p.Name = name
	p.Description = description
	if unit != "" {
		p.Unit = unit
	}
	p.Touch()
	return nil
}

// SetPrice changes the catalog price. Existing invoice lines keep the
// price copied at their selection time.
func (p *Product) SetPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	p.UnitPrice = unitPrice
	p.Touch()
	return nil
}

// Archive hides the product from catalogs without deleting it
func (p *Product) Archive() {
	p.Status = ProductStatusArchived
	p.Touch()
}

// Restore reactivates an archived product
func (p *Product) Restore() {
	p.Status = ProductStatusActive
	p.Touch()
}

// IsActive returns true if the product is selectable
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}
