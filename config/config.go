package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: Authentication configuration
//   - database.go: Database and cache configuration
//   - http.go: HTTP server configuration
//   - tenancy.go: Multi-tenant domain configuration
type AppConfig struct {
	// IsDev controls development mode behavior (mock auth defaults, etc.)
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Authentication configuration
	Auth AuthConfig

	// Database configuration
	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`
	Cache    CacheConfig

	// HTTP server configuration
	HTTP HTTPConfig

	// Multi-tenant domain configuration
	Tenancy TenancyConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Auth.Sanitize()
	c.Tenancy.Sanitize()
	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
