package billing

import (
	"context"

	"github.com/bizdash/backend/internal/domain/billing"
	"github.com/bizdash/backend/internal/domain/catalog"
	"go.uber.org/zap"
)

// SnapshotCache stores the assembled catalog snapshot between form
// sessions. Implementations may lose entries at any time; a miss just
// falls through to the repositories.
type SnapshotCache interface {
	Get(ctx context.Context) (*billing.CatalogSnapshot, bool)
	Set(ctx context.Context, snap *billing.CatalogSnapshot)
	Invalidate(ctx context.Context)
}

// CatalogSessionService builds the catalog snapshot an invoice form
// session works against. Prices and descriptions are frozen into the
// snapshot; catalog edits after the fetch do not leak into open forms.
type CatalogSessionService struct {
	productRepo catalog.ProductRepository
	serviceRepo catalog.ServiceRepository
	cache       SnapshotCache
	logger      *zap.Logger
}

// NewCatalogSessionService creates a new CatalogSessionService
func NewCatalogSessionService(
	productRepo catalog.ProductRepository,
	serviceRepo catalog.ServiceRepository,
	cache SnapshotCache,
	logger *zap.Logger,
) *CatalogSessionService {
	return &CatalogSessionService{
		productRepo: productRepo,
		serviceRepo: serviceRepo,
		cache:       cache,
		logger:      logger,
	}
}

// Snapshot returns the current catalog snapshot, serving from cache
// when possible.
func (s *CatalogSessionService) Snapshot(ctx context.Context) (*billing.CatalogSnapshot, error) {
	if snap, ok := s.cache.Get(ctx); ok {
		return snap, nil
	}

	products, err := s.productRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	services, err := s.serviceRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	productEntries := make([]billing.CatalogEntry, len(products))
	for i := range products {
		productEntries[i] = billing.CatalogEntry{
			ID:          products[i].ID,
			Type:        billing.ItemTypeProduct,
			Name:        products[i].Name,
			Description: products[i].Description,
			UnitPrice:   products[i].UnitPrice,
		}
	}
	serviceEntries := make([]billing.CatalogEntry, len(services))
	for i := range services {
		serviceEntries[i] = billing.CatalogEntry{
			ID:          services[i].ID,
			Type:        billing.ItemTypeService,
			Name:        services[i].Name,
			Description: services[i].Description,
			UnitPrice:   services[i].Rate,
		}
	}

	snap := billing.NewCatalogSnapshot(productEntries, serviceEntries)
	s.cache.Set(ctx, snap)
	s.logger.Debug("catalog snapshot rebuilt",
		zap.Int("products", len(productEntries)),
		zap.Int("services", len(serviceEntries)))
	return snap, nil
}

// Options lists the selectable entries of one type for the form
func (s *CatalogSessionService) Options(ctx context.Context, itemType billing.ItemType) ([]CatalogOptionResponse, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	entries := snap.EntriesFor(itemType)
	options := make([]CatalogOptionResponse, len(entries))
	for i, e := range entries {
		options[i] = ToCatalogOptionResponse(e)
	}
	return options, nil
}

// Invalidate drops the cached snapshot, forcing the next form session
// to refetch. Called after catalog writes.
func (s *CatalogSessionService) Invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx)
}
