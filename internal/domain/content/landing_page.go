package content

import (
	"strings"

	"github.com/bizdash/backend/internal/domain/shared"
)

// FeatureBlock is one highlighted feature on the landing page
type FeatureBlock struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// LandingPage holds the editable public site content. A single record
// exists per installation.
type LandingPage struct {
	shared.BaseEntity
	HeroTitle    string
	HeroSubtitle string
	HeroImage    string
	AboutTitle   string
	AboutBody    string
	ContactEmail string
	ContactPhone string
	Address      string
	Features     []FeatureBlock
}

// NewLandingPage creates the landing page content with minimal defaults
func NewLandingPage(heroTitle string) (*LandingPage, error) {
	if strings.TrimSpace(heroTitle) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Hero title cannot be empty")
	}
	return &LandingPage{
		BaseEntity: shared.NewBaseEntity(),
		HeroTitle:  strings.TrimSpace(heroTitle),
		Features:   []FeatureBlock{},
	}, nil
}

// UpdateHero changes the hero section
func (l *LandingPage) UpdateHero(title, subtitle, image string) error {
	if strings.TrimSpace(title) == "" {
		return shared.NewDomainError("INVALID_TITLE", "Hero title cannot be empty")
	}
	l.HeroTitle = strings.TrimSpace(title)
	l.HeroSubtitle = subtitle
	l.HeroImage = image
	l.Touch()
	return nil
}

// UpdateAbout changes the about section
func (l *LandingPage) UpdateAbout(title, body string) {
	l.AboutTitle = title
	l.AboutBody = body
	l.Touch()
}

// UpdateContact changes the contact details
func (l *LandingPage) UpdateContact(email, phone, address string) {
	l.ContactEmail = strings.ToLower(strings.TrimSpace(email))
	l.ContactPhone = phone
	l.Address = address
	l.Touch()
}

// ReplaceFeatures swaps the feature blocks. Blocks without a title are dropped.
func (l *LandingPage) ReplaceFeatures(features []FeatureBlock) {
	kept := make([]FeatureBlock, 0, len(features))
	for _, f := range features {
		if strings.TrimSpace(f.Title) == "" {
			continue
		}
		kept = append(kept, f)
	}
	l.Features = kept
	l.Touch()
}
