package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.HTTP.Addr)
	}
	if cfg.Auth.Mode != AuthModeOAuth {
		t.Errorf("expected default auth mode oauth, got %q", cfg.Auth.Mode)
	}
	if cfg.Auth.SessionTTL != 24*time.Hour {
		t.Errorf("expected default session TTL 24h, got %s", cfg.Auth.SessionTTL)
	}
	if cfg.Tenancy.FallbackSubdomain != "auth" {
		t.Errorf("expected fallback subdomain auth, got %q", cfg.Tenancy.FallbackSubdomain)
	}
	if cfg.Cache.DirectoryTTL != 5*time.Minute {
		t.Errorf("expected directory TTL 5m, got %s", cfg.Cache.DirectoryTTL)
	}
}

func TestAppConfig_EnvOverrides(t *testing.T) {
	t.Setenv("AUTH_MODE", "mock")
	t.Setenv("TENANT_BASE_DOMAIN", "CampusHQ.Example")
	t.Setenv("DB_NAME", "campushq_test")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Auth.Mode != AuthModeMock {
		t.Errorf("expected auth mode mock, got %q", cfg.Auth.Mode)
	}
	if cfg.Tenancy.BaseDomain != "campushq.example" {
		t.Errorf("expected lowered base domain, got %q", cfg.Tenancy.BaseDomain)
	}
	if cfg.Postgres.Name != "campushq_test" {
		t.Errorf("expected db name campushq_test, got %q", cfg.Postgres.Name)
	}
}

func TestAuthMode_UnmarshalText(t *testing.T) {
	var m AuthMode
	if err := m.UnmarshalText([]byte("OAuth")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != AuthModeOAuth {
		t.Errorf("expected oauth, got %q", m)
	}
	if err := m.UnmarshalText([]byte("ldap")); err == nil {
		t.Error("expected error for invalid mode")
	}
}

func TestAuthConfig_Sanitize(t *testing.T) {
	a := AuthConfig{SessionTTL: -time.Hour}
	a.Sanitize()
	if a.SessionTTL != 24*time.Hour {
		t.Errorf("expected sanitized TTL 24h, got %s", a.SessionTTL)
	}
}
