package service

import (
	"context"
	"errors"

	"github.com/campushq/campushq-api/internal/core"
	"github.com/campushq/campushq-api/internal/data"
	"github.com/campushq/campushq-api/internal/domain/model"
)

// SettingsServiceOptions groups dependencies for SettingsService.
type SettingsServiceOptions struct {
	Settings core.SettingsRepository
}

// SettingsService manages the admin-edited overrides for a tenant's public
// content.
type SettingsService struct {
	settings core.SettingsRepository
}

// NewSettingsService constructs a new SettingsService.
func NewSettingsService(opts SettingsServiceOptions) *SettingsService {
	return &SettingsService{settings: opts.Settings}
}

// Get returns a tenant's settings. A tenant that has never saved settings
// gets an empty record rather than an error, so the admin form always has
// something to render.
func (s *SettingsService) Get(ctx context.Context, orgID string) (*model.SchoolSettings, error) {
	if orgID == "" {
		return nil, errors.New("org ID is required")
	}
	settings, err := s.settings.Get(ctx, orgID)
	if errors.Is(err, data.ErrSettingsNotFound) {
		return &model.SchoolSettings{OrgID: orgID}, nil
	}
	return settings, err
}

// Put saves a tenant's settings, creating or replacing the record.
func (s *SettingsService) Put(ctx context.Context, settings *model.SchoolSettings) (*model.SchoolSettings, error) {
	if settings == nil || settings.OrgID == "" {
		return nil, errors.New("org ID is required")
	}
	return s.settings.Put(ctx, settings)
}
