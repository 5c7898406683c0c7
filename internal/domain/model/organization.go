//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// Organization is one tenant: a school with its own subdomain, branding, and
// public content. Rows back both the organization directory (subdomain
// lookups) and the public site loader.
type Organization struct {
	ID             string    `json:"id"              db:"id"`
	Name           string    `json:"name"            db:"name"`
	Subdomain      string    `json:"subdomain"       db:"subdomain"`
	LogoURL        string    `json:"logo_url"        db:"logo_url"`
	PrimaryColor   string    `json:"primary_color"   db:"primary_color"`
	SecondaryColor string    `json:"secondary_color" db:"secondary_color"`
	ContactEmail   string    `json:"contact_email"   db:"contact_email"`
	ContactPhone   string    `json:"contact_phone"   db:"contact_phone"`
	ContactAddress string    `json:"contact_address" db:"contact_address"`
	HeroTitle      string    `json:"hero_title"      db:"hero_title"`
	HeroSubtitle   string    `json:"hero_subtitle"   db:"hero_subtitle"`
	HeroImageURL   string    `json:"hero_image_url"  db:"hero_image_url"`
	AboutHeading   string    `json:"about_heading"   db:"about_heading"`
	AboutBody      string    `json:"about_body"      db:"about_body"`
	CreatedAt      time.Time `json:"created_at"      db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"      db:"updated_at"`
}

// Program is one academic program offered by a tenant.
type Program struct {
	ID          string    `json:"id"          db:"id"`
	OrgID       string    `json:"org_id"      db:"org_id"`
	Name        string    `json:"name"        db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at"  db:"created_at"`
}

// FacultyMember is one public faculty listing for a tenant.
type FacultyMember struct {
	ID        string    `json:"id"         db:"id"`
	OrgID     string    `json:"org_id"     db:"org_id"`
	Name      string    `json:"name"       db:"name"`
	Title     string    `json:"title"      db:"title"`
	PhotoURL  string    `json:"photo_url"  db:"photo_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// OrgStats are the headline counters shown on the public site.
type OrgStats struct {
	Students int `json:"students" db:"students"`
	Teachers int `json:"teachers" db:"teachers"`
	Programs int `json:"programs" db:"programs"`
	Exams    int `json:"exams"    db:"exams"`
}

var subdomainAllowed = func(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
}

// ValidateSubdomain checks a tenant subdomain label: lowercase alphanumeric
// plus hyphens, non-empty, at most 63 chars per DNS label rules.
func ValidateSubdomain(s string) error {
	if s == "" {
		return errors.New("subdomain is required")
	}
	if len(s) > 63 {
		return errors.New("subdomain must be at most 63 characters")
	}
	if strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") {
		return errors.New("subdomain cannot start or end with a hyphen")
	}
	for _, r := range s {
		if !subdomainAllowed(r) {
			return errors.New("subdomain may only contain lowercase letters, digits, and hyphens")
		}
	}
	return nil
}
