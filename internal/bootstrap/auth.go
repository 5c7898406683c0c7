package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/campushq/campushq-api/config"
	"github.com/campushq/campushq-api/internal/adapters/devauth"
	"github.com/campushq/campushq-api/internal/adapters/identity"
	"github.com/campushq/campushq-api/internal/adapters/oidc"
	redisadapter "github.com/campushq/campushq-api/internal/adapters/redis"
	"github.com/campushq/campushq-api/internal/core"
	"github.com/campushq/campushq-api/internal/ports"
	"github.com/campushq/campushq-api/internal/service"
)

// AuthDeps contains dependencies for the auth services.
type AuthDeps struct {
	Auth        config.AuthConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildAuthService creates an auth service based on the configured auth mode.
// Returns nil if auth is not configured or configuration is invalid.
func BuildAuthService(cfg AuthDeps) *service.AuthService {
	if cfg.RedisClient == nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("auth service disabled: redis client not configured", "mode", cfg.Auth.Mode)
		}
		return nil
	}

	sessions := redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, "session:")
	tokens := redisadapter.NewTokenStore(cfg.RedisClient)

	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		return buildDevAuthService(cfg, sessions, tokens)

	case config.AuthModeOAuth:
		return buildOAuthService(cfg, sessions, tokens)

	default:
		return nil
	}
}

func buildDevAuthService(
	cfg AuthDeps,
	sessions *redisadapter.SessionStore,
	tokens *redisadapter.TokenStore,
) *service.AuthService {
	dev := cfg.Auth.DevAuth

	// The dev account type shapes the resolved role; an admin identity also
	// gets the org permission grant so role resolution sees it.
	perms := map[string]string{}
	if dev.AccountType == "organization_admin" {
		perms["org"] = "manage"
	}

	prov, err := devauth.NewProvider(devauth.Config{
		UserID:          dev.UserID,
		Email:           dev.Email,
		OrgID:           dev.OrgID,
		Type:            dev.AccountType,
		Permissions:     perms,
		SessionDuration: cfg.Auth.SessionTTL,
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create dev auth provider, auth disabled", "error", err)
		}
		return nil
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider:   prov,
		Profiles:   prov,
		Sessions:   sessions,
		Tokens:     tokens,
		SessionTTL: cfg.Auth.SessionTTL,
	})
}

func buildOAuthService(
	cfg AuthDeps,
	sessions *redisadapter.SessionStore,
	tokens *redisadapter.TokenStore,
) *service.AuthService {
	// Only enable when fully configured
	oauth := cfg.Auth.OAuth
	if oauth.DiscoveryURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
		if cfg.Logger != nil {
			cfg.Logger.Warn("AuthModeOAuth selected but required config missing; auth disabled",
				"discovery_url_empty", oauth.DiscoveryURL == "",
				"client_id_empty", oauth.ClientID == "",
				"client_secret_empty", oauth.ClientSecret == "",
			)
		}
		return nil
	}

	prov, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     oauth.ClientID,
		ClientSecret: oauth.ClientSecret,
		RedirectURL:  oauth.RedirectURL,
		Scope:        oauth.Scope,
		DiscoveryURL: oauth.DiscoveryURL,
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create OIDC provider, auth disabled", "error", err)
		}
		return nil
	}

	profiles, err := buildProfileFetcher(oauth)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create identity client, auth disabled", "error", err)
		}
		return nil
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider:   prov,
		Profiles:   profiles,
		Sessions:   sessions,
		Tokens:     tokens,
		SessionTTL: cfg.Auth.SessionTTL,
	})
}

//nolint:ireturn // the fetcher port keeps the identity client swappable in tests.
func buildProfileFetcher(oauth config.OAuthConfig) (ports.ProfileFetcher, error) {
	return identity.NewClient(identity.Config{BaseURL: oauth.IdentityBaseURL})
}

// BuildStudentAuthService creates the student credential login service.
func BuildStudentAuthService(cfg AuthDeps, students core.StudentRepository) *service.StudentAuthService {
	if cfg.RedisClient == nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("student auth service disabled: redis client not configured")
		}
		return nil
	}

	return service.NewStudentAuthService(service.StudentAuthServiceOptions{
		Students:   students,
		Sessions:   redisadapter.NewStudentSessionStore(cfg.RedisClient),
		SessionTTL: cfg.Auth.SessionTTL,
	})
}
