package content

import (
	"context"
	"errors"

	"github.com/bizdash/backend/internal/domain/content"
	"github.com/bizdash/backend/internal/domain/shared"
)

// LandingPageService reads and replaces the single landing page record
type LandingPageService struct {
	landingRepo content.LandingPageRepository
}

// NewLandingPageService creates a new LandingPageService
func NewLandingPageService(landingRepo content.LandingPageRepository) *LandingPageService {
	return &LandingPageService{landingRepo: landingRepo}
}

// Get returns the landing page content, creating a minimal default on
// first access so the public site always has something to render.
func (s *LandingPageService) Get(ctx context.Context) (*LandingPageResponse, error) {
	page, err := s.landingRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		page, err = content.NewLandingPage("Welcome")
		if err != nil {
			return nil, err
		}
		if err := s.landingRepo.Save(ctx, page); err != nil {
			return nil, err
		}
	}
	resp := ToLandingPageResponse(page)
	return &resp, nil
}

// Update replaces the landing page content as a whole. Last write wins;
// there is no section-level merge.
func (s *LandingPageService) Update(ctx context.Context, req UpdateLandingPageRequest) (*LandingPageResponse, error) {
	page, err := s.landingRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		page, err = content.NewLandingPage(req.HeroTitle)
		if err != nil {
			return nil, err
		}
	}

	if err := page.UpdateHero(req.HeroTitle, req.HeroSubtitle, req.HeroImage); err != nil {
		return nil, err
	}
	page.UpdateAbout(req.AboutTitle, req.AboutBody)
	page.UpdateContact(req.ContactEmail, req.ContactPhone, req.Address)
	page.ReplaceFeatures(req.Features)

	if err := s.landingRepo.Save(ctx, page); err != nil {
		return nil, err
	}
	resp := ToLandingPageResponse(page)
	return &resp, nil
}
