package billing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemType represents the kind of invoice line item
type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeService ItemType = "service"
	ItemTypeCustom  ItemType = "custom"
)

// IsValid checks if the type is a valid ItemType
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeProduct, ItemTypeService, ItemTypeCustom:
		return true
	}
	return false
}

// String returns the string representation of ItemType
func (t ItemType) String() string {
	return string(t)
}

// IsCatalogType returns true for types that reference a catalog entry
func (t ItemType) IsCatalogType() bool {
	return t == ItemTypeProduct || t == ItemTypeService
}

// LineItem is one priced row within an invoice draft.
//
// ProductID and ServiceID are mutually exclusive and only set while the
// matching type is active. LineTotal is derived and never set directly:
// every mutation path recomputes it as Quantity * UnitPrice.
type LineItem struct {
	ID          uuid.UUID
	Type        ItemType
	ProductID   *uuid.UUID
	ServiceID   *uuid.UUID
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// NewLineItem creates a blank line item of the given type.
// Invalid types fall back to custom so the row stays renderable.
func NewLineItem(itemType ItemType) LineItem {
	if !itemType.IsValid() {
		itemType = ItemTypeCustom
	}
	return LineItem{
		ID:        uuid.New(),
		Type:      itemType,
		Quantity:  1,
		UnitPrice: decimal.Zero,
		LineTotal: decimal.Zero,
	}
}

// SetType switches the item kind. Switching invalidates all prior derived
// values: the catalog reference and description are cleared, quantity
// resets to 1 and price/total to zero, forcing a re-selection.
func (i *LineItem) SetType(itemType ItemType) {
	if !itemType.IsValid() {
		itemType = ItemTypeCustom
	}
	i.Type = itemType
	i.ProductID = nil
	i.ServiceID = nil
	i.Description = ""
	i.Quantity = 1
	i.UnitPrice = decimal.Zero
	i.recalculate()
}

// SetQuantity sets the quantity, coercing out-of-range input to the
// nearest valid boundary rather than rejecting it.
func (i *LineItem) SetQuantity(quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	i.Quantity = quantity
	i.recalculate()
}

// SetUnitPrice sets the unit price, coercing negative input to zero.
func (i *LineItem) SetUnitPrice(price decimal.Decimal) {
	if price.IsNegative() {
		price = decimal.Zero
	}
	i.UnitPrice = price
	i.recalculate()
}

// SetDescription sets the free-text description. Only meaningful for
// custom items; catalog items get theirs from the catalog entry.
func (i *LineItem) SetDescription(description string) {
	i.Description = description
}

// applyCatalogEntry copies reference, description and price from a
// catalog entry. The copy is frozen: later catalog edits do not change
// this item. Duplicate guarding is the draft's responsibility.
func (i *LineItem) applyCatalogEntry(entry CatalogEntry) {
	switch entry.Type {
	case ItemTypeProduct:
		id := entry.ID
		i.ProductID = &id
		i.ServiceID = nil
	case ItemTypeService:
		id := entry.ID
		i.ServiceID = &id
		i.ProductID = nil
	}
	i.Description = entry.Description
	if i.Description == "" {
		i.Description = entry.Name
	}
	price := entry.UnitPrice
	if price.IsNegative() {
		price = decimal.Zero
	}
	i.UnitPrice = price
	i.recalculate()
}

// CatalogRef returns the active catalog reference, or nil for custom items
func (i *LineItem) CatalogRef() *uuid.UUID {
	switch i.Type {
	case ItemTypeProduct:
		return i.ProductID
	case ItemTypeService:
		return i.ServiceID
	}
	return nil
}

// IsComplete reports whether the item is fully specified for its type:
// catalog types need a reference, custom items a non-empty description.
func (i *LineItem) IsComplete() bool {
	switch i.Type {
	case ItemTypeProduct:
		return i.ProductID != nil
	case ItemTypeService:
		return i.ServiceID != nil
	case ItemTypeCustom:
		return i.Description != ""
	}
	return false
}

// recalculate derives LineTotal from quantity and price
func (i *LineItem) recalculate() {
	i.LineTotal = decimal.NewFromInt(int64(i.Quantity)).Mul(i.UnitPrice)
}
