package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/campushq/campushq-api/internal/core"
	"github.com/campushq/campushq-api/internal/data"
	"github.com/campushq/campushq-api/internal/domain/model"
	"github.com/campushq/campushq-api/internal/domain/tenant"
)

// ErrOrganizationNotFound is returned when no tenant matches a subdomain.
// Handlers render this as a terminal "no data available" state rather than
// retrying or falling back to another tenant.
var ErrOrganizationNotFound = errors.New("organization not found")

// defaultDirectoryTTL bounds the cached orgID -> subdomain directory entries.
const defaultDirectoryTTL = 5 * time.Minute

// TenantServiceOptions groups dependencies for TenantService.
type TenantServiceOptions struct {
	Orgs     core.OrgRepository
	Settings core.SettingsRepository
	Cache    core.CacheRepository

	// FallbackSubdomain is used when a host carries no tenant label or the
	// directory lookup fails. Defaults to the shared auth subdomain.
	FallbackSubdomain string

	// DirectoryTTL overrides the cache TTL for subdomain directory entries.
	DirectoryTTL time.Duration
}

// TenantService resolves request hosts to tenants and assembles the public
// per-tenant configuration from organization content, live stats, and
// admin-edited settings.
type TenantService struct {
	orgs         core.OrgRepository
	settings     core.SettingsRepository
	cache        core.CacheRepository
	fallback     string
	directoryTTL time.Duration
}

// NewTenantService constructs a new TenantService.
func NewTenantService(opts TenantServiceOptions) *TenantService {
	fallback := opts.FallbackSubdomain
	if fallback == "" {
		fallback = tenant.DefaultSubdomain
	}
	ttl := opts.DirectoryTTL
	if ttl <= 0 {
		ttl = defaultDirectoryTTL
	}
	return &TenantService{
		orgs:         opts.Orgs,
		settings:     opts.Settings,
		cache:        opts.Cache,
		fallback:     fallback,
		directoryTTL: ttl,
	}
}

// Subdomain extracts the tenant label from a request host, falling back to
// the shared subdomain for apex domains, localhost, and IP literals.
func (s *TenantService) Subdomain(host string) string {
	return tenant.Subdomain(host, s.fallback)
}

// TargetSubdomain resolves the canonical subdomain for an organization,
// consulting the cache before the directory. Lookup failures fall back to
// the subdomain of the current host so a directory outage never strands a
// logged-in user on the shared domain.
func (s *TenantService) TargetSubdomain(ctx context.Context, orgID, host string) string {
	if orgID == "" {
		return s.Subdomain(host)
	}

	cacheKey := "org-subdomain:" + orgID
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && len(cached) > 0 {
			return string(cached)
		}
	}

	sub, err := s.orgs.CanonicalSubdomain(ctx, orgID)
	if err != nil || sub == "" {
		return s.Subdomain(host)
	}

	if s.cache != nil {
		// Best effort; a cache write failure must not break redirects.
		_ = s.cache.Set(ctx, cacheKey, []byte(sub), s.directoryTTL)
	}
	return sub
}

// LoadOrganizationConfig assembles the full public configuration for the
// tenant at the given subdomain. Content sections are fetched concurrently;
// admin settings overlay the assembled config last. An unknown subdomain
// returns ErrOrganizationNotFound.
func (s *TenantService) LoadOrganizationConfig(ctx context.Context, subdomain string) (*tenant.OrganizationConfig, error) {
	org, err := s.orgs.GetBySubdomain(ctx, subdomain)
	if err != nil {
		if errors.Is(err, data.ErrOrgNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("load organization: %w", err)
	}

	var (
		programs []model.Program
		faculty  []model.FacultyMember
		stats    *model.OrgStats
		settings *model.SchoolSettings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		programs, err = s.orgs.ListPrograms(gctx, org.ID)
		return err
	})
	g.Go(func() error {
		var err error
		faculty, err = s.orgs.ListFaculty(gctx, org.ID)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.orgs.GetStats(gctx, org.ID)
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = s.settings.Get(gctx, org.ID)
		if errors.Is(err, data.ErrSettingsNotFound) {
			settings = nil
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load organization content: %w", err)
	}

	cfg := tenant.BuildConfig(rawOrganizationData(org, programs, faculty, stats))
	if settings != nil {
		cfg = settings.Overlay(cfg)
	}
	return &cfg, nil
}

// rawOrganizationData flattens the fetched rows into the pure assembly input.
func rawOrganizationData(
	org *model.Organization,
	programs []model.Program,
	faculty []model.FacultyMember,
	stats *model.OrgStats,
) tenant.RawOrganizationData {
	raw := tenant.RawOrganizationData{
		OrgID:     org.ID,
		Subdomain: org.Subdomain,
		Name:      org.Name,
		LogoURL:   org.LogoURL,
		Primary:   org.PrimaryColor,
		Secondary: org.SecondaryColor,

		ContactEmail:   org.ContactEmail,
		ContactPhone:   org.ContactPhone,
		ContactAddress: org.ContactAddress,

		HeroTitle:    org.HeroTitle,
		HeroSubtitle: org.HeroSubtitle,
		HeroImageURL: org.HeroImageURL,

		AboutHeading: org.AboutHeading,
		AboutBody:    org.AboutBody,
	}

	for _, p := range programs {
		raw.Programs = append(raw.Programs, tenant.Program{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
		})
	}
	for _, f := range faculty {
		raw.Faculty = append(raw.Faculty, tenant.FacultyMember{
			ID:       f.ID,
			Name:     f.Name,
			Title:    f.Title,
			PhotoURL: f.PhotoURL,
		})
	}
	if stats != nil {
		raw.Stats = tenant.Stats{
			Students: stats.Students,
			Teachers: stats.Teachers,
			Programs: stats.Programs,
			Exams:    stats.Exams,
		}
	}
	return raw
}
