package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campushq/campushq-api/internal/data/pgxutil"
	"github.com/campushq/campushq-api/internal/domain/model"
)

const orgColumns = `id, name, subdomain, logo_url, primary_color, secondary_color,
	contact_email, contact_phone, contact_address,
	hero_title, hero_subtitle, hero_image_url, about_heading, about_body,
	created_at, updated_at`

// OrgRepo provides database operations for organizations (tenants) and
// their public content. It also serves as the organization directory for
// canonical subdomain lookups.
type OrgRepo struct {
	DB *sql.DB
}

// NewOrgRepo creates a new OrgRepo.
func NewOrgRepo(db *sql.DB) *OrgRepo {
	return &OrgRepo{DB: db}
}

// GetBySubdomain retrieves the organization owning a subdomain.
func (r *OrgRepo) GetBySubdomain(ctx context.Context, subdomain string) (*model.Organization, error) {
	return r.getOne(ctx,
		`SELECT `+orgColumns+` FROM organizations WHERE subdomain = $1`,
		strings.ToLower(strings.TrimSpace(subdomain)))
}

// GetByID retrieves an organization by ID.
func (r *OrgRepo) GetByID(ctx context.Context, id string) (*model.Organization, error) {
	return r.getOne(ctx, `SELECT `+orgColumns+` FROM organizations WHERE id = $1`, id)
}

// CanonicalSubdomain resolves an organization ID to its subdomain.
func (r *OrgRepo) CanonicalSubdomain(ctx context.Context, orgID string) (string, error) {
	if orgID == "" {
		return "", errors.New("org ID is required")
	}
	var sub string
	err := r.DB.QueryRowContext(ctx,
		`SELECT subdomain FROM organizations WHERE id = $1`, orgID).Scan(&sub)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrOrgNotFound
	}
	if err != nil {
		return "", fmt.Errorf("lookup subdomain: %w", err)
	}
	return sub, nil
}

// Create inserts a new organization.
func (r *OrgRepo) Create(ctx context.Context, org *model.Organization) (*model.Organization, error) {
	if org == nil {
		return nil, errors.New("organization is required")
	}
	if err := model.ValidateSubdomain(org.Subdomain); err != nil {
		return nil, err
	}

	var out model.Organization
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO organizations (
				name, subdomain, logo_url, primary_color, secondary_color,
				contact_email, contact_phone, contact_address,
				hero_title, hero_subtitle, hero_image_url, about_heading, about_body
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING `+orgColumns,
			strings.TrimSpace(org.Name), strings.ToLower(strings.TrimSpace(org.Subdomain)),
			org.LogoURL, org.PrimaryColor, org.SecondaryColor,
			org.ContactEmail, org.ContactPhone, org.ContactAddress,
			org.HeroTitle, org.HeroSubtitle, org.HeroImageURL, org.AboutHeading, org.AboutBody,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Organization])
		return err
	}); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrSubdomainExists
		}
		return nil, fmt.Errorf("create organization: %w", err)
	}
	return &out, nil
}

// ListPrograms returns the programs offered by an organization.
func (r *OrgRepo) ListPrograms(ctx context.Context, orgID string) ([]model.Program, error) {
	var out []model.Program
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, org_id, name, description, created_at
			FROM programs WHERE org_id = $1 ORDER BY name`, orgID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Program])
		return err
	}); err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	return out, nil
}

// ListFaculty returns the public faculty listings for an organization.
func (r *OrgRepo) ListFaculty(ctx context.Context, orgID string) ([]model.FacultyMember, error) {
	var out []model.FacultyMember
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, org_id, name, title, photo_url, created_at
			FROM faculty WHERE org_id = $1 ORDER BY name`, orgID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.FacultyMember])
		return err
	}); err != nil {
		return nil, fmt.Errorf("list faculty: %w", err)
	}
	return out, nil
}

// GetStats computes the headline counters for an organization.
func (r *OrgRepo) GetStats(ctx context.Context, orgID string) (*model.OrgStats, error) {
	var stats model.OrgStats
	err := r.DB.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM students WHERE org_id = $1),
			(SELECT COUNT(*) FROM faculty  WHERE org_id = $1),
			(SELECT COUNT(*) FROM programs WHERE org_id = $1),
			(SELECT COUNT(*) FROM exams    WHERE org_id = $1)`,
		orgID,
	).Scan(&stats.Students, &stats.Teachers, &stats.Programs, &stats.Exams)
	if err != nil {
		return nil, fmt.Errorf("org stats: %w", err)
	}
	return &stats, nil
}

func (r *OrgRepo) getOne(ctx context.Context, query string, arg any) (*model.Organization, error) {
	var out model.Organization
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, arg)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Organization])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrgNotFound
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &out, nil
}
