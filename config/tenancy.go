package config

import "strings"

// TenancyConfig contains multi-tenant domain configuration.
type TenancyConfig struct {
	// BaseDomain is the apex domain tenant subdomains hang off
	// (e.g. "campushq.example" serves "northside.campushq.example").
	BaseDomain string `env:"TENANT_BASE_DOMAIN" envDefault:"localhost"`

	// FallbackSubdomain serves hosts with no tenant label: the apex domain,
	// localhost, and IP literals.
	FallbackSubdomain string `env:"TENANT_FALLBACK_SUBDOMAIN" envDefault:"auth"`
}

// Sanitize applies guardrails to tenancy configuration values.
func (t *TenancyConfig) Sanitize() {
	t.BaseDomain = strings.TrimSpace(strings.ToLower(t.BaseDomain))
	t.FallbackSubdomain = strings.TrimSpace(strings.ToLower(t.FallbackSubdomain))
	if t.FallbackSubdomain == "" {
		t.FallbackSubdomain = "auth"
	}
}
