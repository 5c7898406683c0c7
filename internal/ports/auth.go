package ports

// Package ports defines interfaces (hexagonal ports) for auth and tenancy
// behavior. Implementations live in internal/adapters and internal/data;
// orchestration in internal/service.

import (
	"context"
	"errors"
	"time"

	domainauth "github.com/campushq/campushq-api/internal/domain/auth"
)

// ErrNotFound is returned by stores when a record is absent or expired.
var ErrNotFound = errors.New("record not found")

// BeginInput carries inputs for initiating an auth flow.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// AuthProvider initiates and completes an authentication flow against an IdP.
type AuthProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce, and returns the authenticated identity.
	Exchange(ctx context.Context, in ExchangeInput) (domainauth.Identity, error)
}

// ProfileFetcher resolves a bearer token into a normalized identity by
// calling the identity service. Used by the cross-subdomain token handoff
// path, which receives a raw access token instead of an authorization code.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, accessToken string) (domainauth.Identity, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// StudentSessionStore persists the independent student credential sessions.
// Kept separate from SessionStore because the two records have different
// shapes and lifecycles, and StudentSession takes precedence when both exist.
type StudentSessionStore interface {
	Save(ctx context.Context, sess domainauth.StudentSession) error
	Get(ctx context.Context, id string) (domainauth.StudentSession, error)
	Delete(ctx context.Context, id string) error
}

// TokenStore is a TTL'd key-value store for bearer tokens. Get treats a
// record whose embedded expiry has passed as absent and removes it.
type TokenStore interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}

// OrgDirectory resolves organization identifiers to canonical subdomains.
type OrgDirectory interface {
	CanonicalSubdomain(ctx context.Context, orgID string) (string, error)
}
