package service

import (
	"context"
	"errors"
	"strings"

	"github.com/campushq/campushq-api/internal/core"
	"github.com/campushq/campushq-api/internal/domain/model"
)

// OrganizationServiceOptions groups dependencies for OrganizationService.
type OrganizationServiceOptions struct {
	Orgs core.OrgRepository
}

// OrganizationService manages tenant records.
type OrganizationService struct {
	orgs core.OrgRepository
}

// NewOrganizationService constructs a new OrganizationService.
func NewOrganizationService(opts OrganizationServiceOptions) *OrganizationService {
	return &OrganizationService{orgs: opts.Orgs}
}

// Create registers a new tenant. The subdomain is normalized to lowercase
// and validated as a DNS label before hitting the unique constraint.
func (s *OrganizationService) Create(ctx context.Context, org *model.Organization) (*model.Organization, error) {
	if org == nil {
		return nil, errors.New("organization is required")
	}
	if strings.TrimSpace(org.Name) == "" {
		return nil, errors.New("name is required")
	}
	org.Subdomain = strings.ToLower(strings.TrimSpace(org.Subdomain))
	if err := model.ValidateSubdomain(org.Subdomain); err != nil {
		return nil, err
	}
	return s.orgs.Create(ctx, org)
}

// GetByID retrieves a tenant by ID.
func (s *OrganizationService) GetByID(ctx context.Context, id string) (*model.Organization, error) {
	return s.orgs.GetByID(ctx, id)
}

// GetBySubdomain retrieves a tenant by its subdomain.
func (s *OrganizationService) GetBySubdomain(ctx context.Context, subdomain string) (*model.Organization, error) {
	return s.orgs.GetBySubdomain(ctx, strings.ToLower(strings.TrimSpace(subdomain)))
}
