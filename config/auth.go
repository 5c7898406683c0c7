package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeOAuth uses OAuth/OIDC for authentication.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oauth", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oauth, mock)", v)
	}
}

// OAuthConfig contains OAuth/OIDC configuration.
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"campushq"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:"campushq"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
	LogoutURL    string `env:"LOGOUT_URL"`

	// IdentityBaseURL is the identity service that serves user profiles.
	// The token handoff path fetches profiles from here.
	IdentityBaseURL string `env:"IDENTITY_BASE_URL" envDefault:"http://localhost:9000"`
}

// DevAuthConfig controls mock/dev authentication identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	UserID    string `env:"USER_ID"    envDefault:"dev-user"`
	Email     string `env:"EMAIL"      envDefault:"dev@example.com"`
	FirstName string `env:"FIRST_NAME" envDefault:"Dev"`
	LastName  string `env:"LAST_NAME"  envDefault:"User"`
	OrgID     string `env:"ORG_ID"     envDefault:"org-dev"`

	// AccountType feeds role resolution, e.g. "faculty" or
	// "organization_admin".
	AccountType string `env:"ACCOUNT_TYPE" envDefault:"organization_admin"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authentication provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"oauth"`

	// OAuth configuration (used when Mode=oauth).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// SessionTTL bounds OAuth and student sessions.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 24 * time.Hour
	}
}
