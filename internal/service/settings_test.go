package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/campushq/campushq-api/internal/data"
	"github.com/campushq/campushq-api/internal/domain/model"
	"github.com/campushq/campushq-api/internal/mocks"
)

func TestSettingsService_Get_DefaultsWhenUnset(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSettingsRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), "org-1").Return(nil, data.ErrSettingsNotFound)

	svc := NewSettingsService(SettingsServiceOptions{Settings: repo})

	settings, err := svc.Get(context.Background(), "org-1")

	require.NoError(t, err)
	assert.Equal(t, "org-1", settings.OrgID)
	assert.Empty(t, settings.SchoolName)
}

func TestSettingsService_Get_RequiresOrgID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewSettingsService(SettingsServiceOptions{Settings: mocks.NewMockSettingsRepository(ctrl)})

	_, err := svc.Get(context.Background(), "")
	assert.ErrorContains(t, err, "org ID is required")
}

func TestSettingsService_Put(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSettingsRepository(ctrl)
	in := &model.SchoolSettings{OrgID: "org-1", SchoolName: "Northside Academy"}
	repo.EXPECT().Put(gomock.Any(), in).Return(in, nil)

	svc := NewSettingsService(SettingsServiceOptions{Settings: repo})

	saved, err := svc.Put(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Northside Academy", saved.SchoolName)

	_, err = svc.Put(context.Background(), &model.SchoolSettings{})
	assert.ErrorContains(t, err, "org ID is required")
}
