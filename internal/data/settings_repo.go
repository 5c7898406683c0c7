package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campushq/campushq-api/internal/data/pgxutil"
	"github.com/campushq/campushq-api/internal/domain/model"
)

const settingsColumns = `org_id, school_name, primary_color, secondary_color,
	contact_email, contact_phone, hero_title, hero_subtitle,
	about_heading, about_body, updated_at`

// SettingsRepo provides database operations for admin-edited school settings.
// One row per organization, upserted on save.
type SettingsRepo struct {
	DB *sql.DB
}

// NewSettingsRepo creates a new SettingsRepo.
func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{DB: db}
}

// Get retrieves the settings for an organization.
func (r *SettingsRepo) Get(ctx context.Context, orgID string) (*model.SchoolSettings, error) {
	var out model.SchoolSettings
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+settingsColumns+` FROM school_settings WHERE org_id = $1`, orgID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.SchoolSettings])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get school settings: %w", err)
	}
	return &out, nil
}

// Put creates or replaces the settings for an organization.
func (r *SettingsRepo) Put(ctx context.Context, s *model.SchoolSettings) (*model.SchoolSettings, error) {
	if s == nil {
		return nil, errors.New("school settings are required")
	}
	if s.OrgID == "" {
		return nil, errors.New("org_id is required")
	}

	var out model.SchoolSettings
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO school_settings (
				org_id, school_name, primary_color, secondary_color,
				contact_email, contact_phone, hero_title, hero_subtitle,
				about_heading, about_body
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (org_id) DO UPDATE SET
				school_name = EXCLUDED.school_name,
				primary_color = EXCLUDED.primary_color,
				secondary_color = EXCLUDED.secondary_color,
				contact_email = EXCLUDED.contact_email,
				contact_phone = EXCLUDED.contact_phone,
				hero_title = EXCLUDED.hero_title,
				hero_subtitle = EXCLUDED.hero_subtitle,
				about_heading = EXCLUDED.about_heading,
				about_body = EXCLUDED.about_body,
				updated_at = now()
			RETURNING `+settingsColumns,
			s.OrgID, s.SchoolName, s.PrimaryColor, s.SecondaryColor,
			s.ContactEmail, s.ContactPhone, s.HeroTitle, s.HeroSubtitle,
			s.AboutHeading, s.AboutBody,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.SchoolSettings])
		return err
	}); err != nil {
		return nil, fmt.Errorf("put school settings: %w", err)
	}
	return &out, nil
}
