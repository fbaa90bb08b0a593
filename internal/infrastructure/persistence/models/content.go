package models

import (
	"encoding/json"
	"time"

	"github.com/bizdash/backend/internal/domain/content"
	"github.com/bizdash/backend/internal/domain/shared"
)

// PostModel is the persistence model for the Post domain entity.
type PostModel struct {
	BaseModel
	Title       string             `gorm:"type:varchar(200);not null"`
	Slug        string             `gorm:"type:varchar(200);not null;uniqueIndex"`
	Body        string             `gorm:"type:text;not null"`
	CoverImage  string             `gorm:"type:varchar(500)"`
	Status      content.PostStatus `gorm:"type:varchar(20);not null;default:'draft';index"`
	PublishedAt *time.Time         `gorm:""`
}

// TableName returns the table name for GORM
func (PostModel) TableName() string {
	return "posts"
}

// ToDomain converts the persistence model to a domain Post entity.
func (m *PostModel) ToDomain() *content.Post {
	return &content.Post{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Title:       m.Title,
		Slug:        m.Slug,
		Body:        m.Body,
		CoverImage:  m.CoverImage,
		Status:      m.Status,
		PublishedAt: m.PublishedAt,
	}
}

// FromDomain populates the persistence model from a domain Post entity.
func (m *PostModel) FromDomain(p *content.Post) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Title = p.Title
	m.Slug = p.Slug
	m.Body = p.Body
	m.CoverImage = p.CoverImage
	m.Status = p.Status
	m.PublishedAt = p.PublishedAt
}

// PostModelFromDomain creates a new persistence model from a domain Post entity.
func PostModelFromDomain(p *content.Post) *PostModel {
	m := &PostModel{}
	m.FromDomain(p)
	return m
}

// LandingPageModel is the persistence model for the LandingPage domain
// entity. Feature blocks are stored as a JSON column.
type LandingPageModel struct {
	BaseModel
	HeroTitle    string `gorm:"type:varchar(200);not null"`
	HeroSubtitle string `gorm:"type:varchar(500)"`
	HeroImage    string `gorm:"type:varchar(500)"`
	AboutTitle   string `gorm:"type:varchar(200)"`
	AboutBody    string `gorm:"type:text"`
	ContactEmail string `gorm:"type:varchar(200)"`
	ContactPhone string `gorm:"type:varchar(50)"`
	Address      string `gorm:"type:text"`
	Features     string `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (LandingPageModel) TableName() string {
	return "landing_pages"
}

// ToDomain converts the persistence model to a domain LandingPage entity.
func (m *LandingPageModel) ToDomain() *content.LandingPage {
	features := []content.FeatureBlock{}
	if m.Features != "" {
		// A corrupt column falls back to an empty feature list
		_ = json.Unmarshal([]byte(m.Features), &features)
	}
	return &content.LandingPage{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		HeroTitle:    m.HeroTitle,
		HeroSubtitle: m.HeroSubtitle,
		HeroImage:    m.HeroImage,
		AboutTitle:   m.AboutTitle,
		AboutBody:    m.AboutBody,
		ContactEmail: m.ContactEmail,
		ContactPhone: m.ContactPhone,
		Address:      m.Address,
		Features:     features,
	}
}

// FromDomain populates the persistence model from a domain LandingPage entity.
func (m *LandingPageModel) FromDomain(l *content.LandingPage) error {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.HeroTitle = l.HeroTitle
	m.HeroSubtitle = l.HeroSubtitle
	m.HeroImage = l.HeroImage
	m.AboutTitle = l.AboutTitle
	m.AboutBody = l.AboutBody
	m.ContactEmail = l.ContactEmail
	m.ContactPhone = l.ContactPhone
	m.Address = l.Address

	features := l.Features
	if features == nil {
		features = []content.FeatureBlock{}
	}
	data, err := json.Marshal(features)
	if err != nil {
		return err
	}
	m.Features = string(data)
	return nil
}

// LandingPageModelFromDomain creates a new persistence model from a domain LandingPage entity.
func LandingPageModelFromDomain(l *content.LandingPage) (*LandingPageModel, error) {
	m := &LandingPageModel{}
	if err := m.FromDomain(l); err != nil {
		return nil, err
	}
	return m, nil
}
