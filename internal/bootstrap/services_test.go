package bootstrap

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/campushq/campushq-api/config"
)

func TestBuildServicesWithoutRedis(t *testing.T) {
	cfg := &config.AppConfig{}
	cfg.Auth.Mode = config.AuthModeMock
	cfg.Auth.SessionTTL = time.Hour
	cfg.Tenancy.FallbackSubdomain = "auth"

	container := BuildServices(ServiceDeps{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	if container.Auth != nil {
		t.Fatalf("Auth = %v, want nil without redis", container.Auth)
	}
	if container.StudentAuth != nil {
		t.Fatalf("StudentAuth = %v, want nil without redis", container.StudentAuth)
	}
	if container.Cache != nil {
		t.Fatalf("Cache = %v, want nil without redis", container.Cache)
	}
	if container.Tenants == nil {
		t.Fatal("Tenants service not constructed")
	}
	if container.Orgs == nil || container.Students == nil {
		t.Fatal("admin services not constructed")
	}
	if container.Notifications == nil || container.Settings == nil || container.Exams == nil {
		t.Fatal("content services not constructed")
	}
}

func TestBuildServicesNilConfig(t *testing.T) {
	container := BuildServices(ServiceDeps{})

	if container.Tenants == nil {
		t.Fatal("Tenants service not constructed with defaults")
	}
}
