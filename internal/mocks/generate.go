// Package mocks provides generated mock implementations for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockOrgRepository(ctrl)
//	mockRepo.EXPECT().GetBySubdomain(gomock.Any(), "northside").Return(org, nil)
package mocks

// Generate mock for OrgRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=org_repository_mock.go github.com/campushq/campushq-api/internal/core OrgRepository

// Generate mock for StudentRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=student_repository_mock.go github.com/campushq/campushq-api/internal/core StudentRepository

// Generate mock for NotificationRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=notification_repository_mock.go github.com/campushq/campushq-api/internal/core NotificationRepository

// Generate mock for SettingsRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=settings_repository_mock.go github.com/campushq/campushq-api/internal/core SettingsRepository

// Generate mock for ExamRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=exam_repository_mock.go github.com/campushq/campushq-api/internal/core ExamRepository

// Generate mock for CacheRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=cache_repository_mock.go github.com/campushq/campushq-api/internal/core CacheRepository
