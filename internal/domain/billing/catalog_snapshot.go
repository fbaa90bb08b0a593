package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogEntry is a read-only view of one product or service as it
// existed when the snapshot was taken. Line items copy from it at
// selection time; they never hold a live reference.
type CatalogEntry struct {
	ID          uuid.UUID       `json:"id"`
	Type        ItemType        `json:"type"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CatalogSnapshot holds the product and service catalogs fetched once
// per invoice form session.
type CatalogSnapshot struct {
	Products  map[uuid.UUID]CatalogEntry `json:"products"`
	Services  map[uuid.UUID]CatalogEntry `json:"services"`
	FetchedAt time.Time                  `json:"fetched_at"`
}

// NewCatalogSnapshot builds a snapshot from entry lists
func NewCatalogSnapshot(products, services []CatalogEntry) *CatalogSnapshot {
	snap := &CatalogSnapshot{
		Products:  make(map[uuid.UUID]CatalogEntry, len(products)),
		Services:  make(map[uuid.UUID]CatalogEntry, len(services)),
		FetchedAt: time.Now(),
	}
	for _, e := range products {
		e.Type = ItemTypeProduct
		snap.Products[e.ID] = e
	}
	for _, e := range services {
		e.Type = ItemTypeService
		snap.Services[e.ID] = e
	}
	return snap
}

// Lookup resolves a catalog entry by type and identity
func (s *CatalogSnapshot) Lookup(itemType ItemType, id uuid.UUID) (CatalogEntry, bool) {
	switch itemType {
	case ItemTypeProduct:
		e, ok := s.Products[id]
		return e, ok
	case ItemTypeService:
		e, ok := s.Services[id]
		return e, ok
	}
	return CatalogEntry{}, false
}

// EntriesFor returns all entries of the given type
func (s *CatalogSnapshot) EntriesFor(itemType ItemType) []CatalogEntry {
	var src map[uuid.UUID]CatalogEntry
	switch itemType {
	case ItemTypeProduct:
		src = s.Products
	case ItemTypeService:
		src = s.Services
	default:
		return nil
	}
	entries := make([]CatalogEntry, 0, len(src))
	for _, e := range src {
		entries = append(entries, e)
	}
	return entries
}

// AvailableFor returns the entries of the given type not yet referenced
// by the draft, so selection lists can filter out already-used entries.
// The item identified by excludingItem keeps its own entry available.
func (s *CatalogSnapshot) AvailableFor(draft *InvoiceDraft, itemType ItemType, excludingItem uuid.UUID) []CatalogEntry {
	all := s.EntriesFor(itemType)
	available := make([]CatalogEntry, 0, len(all))
	for _, e := range all {
		if !draft.isDuplicate(e.ID, itemType, excludingItem) {
			available = append(available, e)
		}
	}
	return available
}
