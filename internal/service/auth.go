package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/campushq/campushq-api/internal/domain/auth"
	"github.com/campushq/campushq-api/internal/ports"
)

// ErrSessionExpired is returned when a session is absent or past its expiry.
var ErrSessionExpired = errors.New("session expired")

// defaultSessionTTL bounds sessions whose identity carries no expiry of its
// own (e.g. upstream tokens without an exp claim).
const defaultSessionTTL = 24 * time.Hour

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Provider   ports.AuthProvider
	Profiles   ports.ProfileFetcher
	Sessions   ports.SessionStore
	Tokens     ports.TokenStore
	SessionTTL time.Duration
}

// AuthService orchestrates authentication flows: the code-flow login against
// the identity provider, the cross-subdomain token handoff, and session
// lookup and teardown. Role resolution happens here so every login path
// produces the same session shape.
type AuthService struct {
	provider   ports.AuthProvider
	profiles   ports.ProfileFetcher
	sessions   ports.SessionStore
	tokens     ports.TokenStore
	sessionTTL time.Duration
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		provider:   opts.Provider,
		profiles:   opts.Profiles,
		sessions:   opts.Sessions,
		tokens:     opts.Tokens,
		sessionTTL: ttl,
	}
}

// BeginLoginResult contains the result of beginning a login flow.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginLogin initiates an authentication flow and returns the provider auth
// URL with state and nonce.
func (s *AuthService) BeginLogin(ctx context.Context, redirectURL string) (*BeginLoginResult, error) {
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	authURL, state, nonce, err := s.provider.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}

	return &BeginLoginResult{AuthURL: authURL, State: state, Nonce: nonce}, nil
}

// CompleteLoginInput groups parameters for completing a login flow.
type CompleteLoginInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteLogin completes an authentication flow by exchanging the code for
// an identity, resolving the role, and persisting a session.
func (s *AuthService) CompleteLogin(ctx context.Context, input CompleteLoginInput) (*domainauth.Session, error) {
	if input.Code == "" {
		return nil, errors.New("authorization code is required")
	}
	if input.State == "" {
		return nil, errors.New("state parameter is required")
	}
	if input.Nonce == "" {
		return nil, errors.New("nonce parameter is required")
	}

	identity, err := s.provider.Exchange(ctx, ports.ExchangeInput{
		Code:  input.Code,
		State: input.State,
		Nonce: input.Nonce,
	})
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	return s.establishSession(ctx, identity)
}

// HandoffLogin authenticates with a raw bearer token carried across
// subdomains. The token is resolved to a profile via the identity service
// and results in the same session shape as the code flow.
func (s *AuthService) HandoffLogin(ctx context.Context, accessToken string) (*domainauth.Session, error) {
	if accessToken == "" {
		return nil, errors.New("access token is required")
	}

	identity, err := s.profiles.FetchProfile(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	return s.establishSession(ctx, identity)
}

// establishSession resolves the role for an identity, persists the session,
// and stores the bearer token under the session ID for later upstream calls.
func (s *AuthService) establishSession(ctx context.Context, identity domainauth.Identity) (*domainauth.Session, error) {
	role := domainauth.ResolveRole(identity.Type, identity.Permissions)

	expiresAt := identity.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(s.sessionTTL)
	}

	session := domainauth.Session{
		ID:        uuid.New().String(),
		UserID:    identity.UserID,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Email:     identity.Email,
		Role:      role,
		OrgID:     identity.OrgID,
		ExpiresAt: expiresAt,
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	if s.tokens != nil && identity.AccessToken != "" {
		if err := s.tokens.Set(ctx, session.ID, identity.AccessToken, time.Until(expiresAt)); err != nil {
			return nil, fmt.Errorf("store access token: %w", err)
		}
	}

	return &session, nil
}

// GetSession retrieves a session by ID. Expired or absent sessions return
// ErrSessionExpired.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(ErrSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// ActiveToken returns the bearer token stored for a session, if any.
func (s *AuthService) ActiveToken(ctx context.Context, sessionID string) (string, bool, error) {
	if s.tokens == nil || sessionID == "" {
		return "", false, nil
	}
	return s.tokens.Get(ctx, sessionID)
}

// Logout removes a session and its stored token.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if s.tokens != nil {
		if err := s.tokens.Delete(ctx, sessionID); err != nil {
			return fmt.Errorf("delete access token: %w", err)
		}
	}

	return nil
}
