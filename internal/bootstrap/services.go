package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/campushq/campushq-api/config"
	"github.com/campushq/campushq-api/internal/data"
	"github.com/campushq/campushq-api/internal/service"
)

// ServiceContainer groups all services used by the HTTP server.
type ServiceContainer struct {
	Auth          *service.AuthService
	StudentAuth   *service.StudentAuthService
	Tenants       *service.TenantService
	Orgs          *service.OrganizationService
	Students      *service.StudentService
	Notifications *service.NotificationService
	Settings      *service.SettingsService
	Exams         *service.ExamService

	// Cache backs the tenant directory and the readiness check.
	Cache *data.RedisCacheRepo
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildServices wires repositories and services from shared dependencies.
func BuildServices(deps ServiceDeps) ServiceContainer {
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.AppConfig{}
	}

	orgRepo := data.NewOrgRepo(deps.DB)
	studentRepo := data.NewStudentRepo(deps.DB)
	notificationRepo := data.NewNotificationRepo(deps.DB)
	settingsRepo := data.NewSettingsRepo(deps.DB)
	examRepo := data.NewExamRepo(deps.DB)

	var cache *data.RedisCacheRepo
	if deps.RedisClient != nil {
		cache = data.NewRedisCacheRepo(deps.RedisClient)
	}

	authDeps := AuthDeps{
		Auth:        cfg.Auth,
		RedisClient: deps.RedisClient,
		Logger:      deps.Logger,
	}

	container := ServiceContainer{
		Auth:          BuildAuthService(authDeps),
		StudentAuth:   BuildStudentAuthService(authDeps, studentRepo),
		Orgs:          service.NewOrganizationService(service.OrganizationServiceOptions{Orgs: orgRepo}),
		Students:      service.NewStudentService(service.StudentServiceOptions{Students: studentRepo}),
		Notifications: service.NewNotificationService(service.NotificationServiceOptions{Notifications: notificationRepo}),
		Settings:      service.NewSettingsService(service.SettingsServiceOptions{Settings: settingsRepo}),
		Exams:         service.NewExamService(service.ExamServiceOptions{Exams: examRepo}),
		Cache:         cache,
	}

	tenantOpts := service.TenantServiceOptions{
		Orgs:              orgRepo,
		Settings:          settingsRepo,
		FallbackSubdomain: cfg.Tenancy.FallbackSubdomain,
		DirectoryTTL:      cfg.Cache.DirectoryTTL,
	}
	if cache != nil {
		tenantOpts.Cache = cache
	}
	container.Tenants = service.NewTenantService(tenantOpts)

	return container
}
