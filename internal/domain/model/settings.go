//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"time"

	"github.com/campushq/campushq-api/internal/domain/tenant"
)

// SchoolSettings are the admin-edited overrides for a tenant's public
// content. Empty fields mean "no override"; the overlay leaves the assembled
// value in place.
type SchoolSettings struct {
	OrgID          string    `json:"org_id"          db:"org_id"`
	SchoolName     string    `json:"school_name"     db:"school_name"`
	PrimaryColor   string    `json:"primary_color"   db:"primary_color"`
	SecondaryColor string    `json:"secondary_color" db:"secondary_color"`
	ContactEmail   string    `json:"contact_email"   db:"contact_email"`
	ContactPhone   string    `json:"contact_phone"   db:"contact_phone"`
	HeroTitle      string    `json:"hero_title"      db:"hero_title"`
	HeroSubtitle   string    `json:"hero_subtitle"   db:"hero_subtitle"`
	AboutHeading   string    `json:"about_heading"   db:"about_heading"`
	AboutBody      string    `json:"about_body"      db:"about_body"`
	UpdatedAt      time.Time `json:"updated_at"      db:"updated_at"`
}

// Overlay applies non-empty settings fields on top of an assembled
// organization config. The config remains total either way.
func (s SchoolSettings) Overlay(cfg tenant.OrganizationConfig) tenant.OrganizationConfig {
	if s.SchoolName != "" {
		cfg.Branding.SchoolName = s.SchoolName
	}
	if s.PrimaryColor != "" {
		cfg.Branding.PrimaryColor = s.PrimaryColor
	}
	if s.SecondaryColor != "" {
		cfg.Branding.SecondaryColor = s.SecondaryColor
	}
	if s.ContactEmail != "" {
		cfg.Contact.Email = s.ContactEmail
	}
	if s.ContactPhone != "" {
		cfg.Contact.Phone = s.ContactPhone
	}
	if s.HeroTitle != "" {
		cfg.Hero.Title = s.HeroTitle
	}
	if s.HeroSubtitle != "" {
		cfg.Hero.Subtitle = s.HeroSubtitle
	}
	if s.AboutHeading != "" {
		cfg.About.Heading = s.AboutHeading
	}
	if s.AboutBody != "" {
		cfg.About.Body = s.AboutBody
	}
	return cfg
}
