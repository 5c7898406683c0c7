package oidc

// Package oidc provides the OIDC/OAuth2 authentication adapter. The legacy
// platform used an implicit flow with the token in the URL fragment and no
// state verification; this adapter replaces it with an authorization-code
// flow carrying both state and nonce.

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	domainauth "github.com/campushq/campushq-api/internal/domain/auth"
	"github.com/campushq/campushq-api/internal/ports"
)

// defaultSessionTTL bounds a session when the provider token carries no expiry.
const defaultSessionTTL = 24 * time.Hour

// Provider implements ports.AuthProvider using OIDC/OAuth2.
type Provider struct {
	config     *oauth2.Config
	httpClient *http.Client

	oidcProvider *gooidc.Provider
	verifier     *gooidc.IDTokenVerifier
}

// ProviderConfig holds configuration for the OIDC provider.
type ProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scope        string
	DiscoveryURL string
	HTTPClient   *http.Client // Optional, defaults to a 30s-timeout client
}

// NewProvider creates a new OIDC provider. Discovery is fetched once.
func NewProvider(cfg ProviderConfig) (*Provider, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("client secret is required")
	}
	if cfg.RedirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}
	if cfg.DiscoveryURL == "" {
		return nil, errors.New("discovery URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
	issuer := strings.TrimSuffix(cfg.DiscoveryURL, "/")
	issuer = strings.TrimSuffix(issuer, "/.well-known/openid-configuration")
	issuer = strings.TrimSuffix(issuer, ".well-known/openid-configuration")
	op, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc new provider: %w", err)
	}

	p := &Provider{
		httpClient:   httpClient,
		oidcProvider: op,
		verifier:     op.Verifier(&gooidc.Config{ClientID: cfg.ClientID}),
	}
	p.config = &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       strings.Fields(cfg.Scope),
		Endpoint:     op.Endpoint(),
	}
	return p, nil
}

// Begin starts the code flow and returns the provider auth URL plus freshly
// generated state and nonce for the caller to pin in cookies.
func (p *Provider) Begin(_ context.Context, in ports.BeginInput) (string, string, string, error) {
	if in.RedirectURL == "" {
		return "", "", "", errors.New("redirect URL is required")
	}

	state, err := generateRandomString(32)
	if err != nil {
		return "", "", "", fmt.Errorf("generate state: %w", err)
	}
	nonce, err := generateRandomString(32)
	if err != nil {
		return "", "", "", fmt.Errorf("generate nonce: %w", err)
	}

	authURL := p.config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("nonce", nonce),
		oauth2.SetAuthURLParam("response_type", "code"),
	)
	return authURL, state, nonce, nil
}

// Exchange completes the code flow, verifies the id_token and nonce, and
// returns the normalized identity.
func (p *Provider) Exchange(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error) {
	if in.Code == "" {
		return domainauth.Identity{}, errors.New("authorization code is required")
	}
	if in.State == "" {
		return domainauth.Identity{}, errors.New("state is required")
	}
	if in.Nonce == "" {
		return domainauth.Identity{}, errors.New("nonce is required")
	}

	token, err := p.config.Exchange(ctx, in.Code)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("exchange code for token: %w", err)
	}

	claims, err := p.verifyIDToken(ctx, token, in.Nonce)
	if err != nil {
		return domainauth.Identity{}, err
	}

	// Fill gaps from the userinfo endpoint; some tenants' IdPs omit profile
	// claims from the id_token.
	if claims.Email == "" || claims.OrgID == "" {
		if uiErr := p.fillFromUserInfo(ctx, token.AccessToken, &claims); uiErr != nil {
			return domainauth.Identity{}, fmt.Errorf("get user info: %w", uiErr)
		}
	}

	expiresAt := time.Now().Add(defaultSessionTTL)
	if !token.Expiry.IsZero() {
		expiresAt = token.Expiry
	}

	return domainauth.Identity{
		UserID:      firstNonEmpty(claims.Sub, claims.Email),
		FirstName:   claims.GivenName,
		LastName:    claims.FamilyName,
		Email:       claims.Email,
		Type:        claims.Type,
		OrgID:       claims.OrgID,
		Permissions: coercePermissions(claims.Permissions),
		AccessToken: token.AccessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// idClaims is the superset of claim shapes the school IdP emits.
type idClaims struct {
	Sub         string         `json:"sub"`
	Email       string         `json:"email"`
	GivenName   string         `json:"given_name"`
	FamilyName  string         `json:"family_name"`
	Type        string         `json:"type"`
	OrgID       string         `json:"org_id"`
	Permissions map[string]any `json:"permissions"`
	Nonce       string         `json:"nonce"`
}

func (p *Provider) verifyIDToken(ctx context.Context, tok *oauth2.Token, expectedNonce string) (idClaims, error) {
	var claims idClaims
	rawID, ok := tok.Extra("id_token").(string)
	if !ok || rawID == "" {
		return claims, errors.New("missing id_token in token response")
	}
	idTok, err := p.verifier.Verify(ctx, rawID)
	if err != nil {
		return claims, fmt.Errorf("verify id_token: %w", err)
	}
	if err := idTok.Claims(&claims); err != nil {
		return claims, fmt.Errorf("parse id_token claims: %w", err)
	}
	if expectedNonce != "" && claims.Nonce != expectedNonce {
		return claims, errors.New("invalid nonce")
	}
	return claims, nil
}

func (p *Provider) fillFromUserInfo(ctx context.Context, accessToken string, claims *idClaims) error {
	ui, err := p.oidcProvider.UserInfo(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))
	if err != nil {
		return fmt.Errorf("fetch user info: %w", err)
	}
	var extra idClaims
	if err := ui.Claims(&extra); err != nil {
		return fmt.Errorf("decode user info: %w", err)
	}
	if claims.Sub == "" {
		claims.Sub = extra.Sub
	}
	if claims.Email == "" {
		claims.Email = extra.Email
	}
	if claims.GivenName == "" {
		claims.GivenName = extra.GivenName
	}
	if claims.FamilyName == "" {
		claims.FamilyName = extra.FamilyName
	}
	if claims.Type == "" {
		claims.Type = extra.Type
	}
	if claims.OrgID == "" {
		claims.OrgID = extra.OrgID
	}
	if len(claims.Permissions) == 0 {
		claims.Permissions = extra.Permissions
	}
	return nil
}

// coercePermissions flattens a raw permissions claim into string grants.
func coercePermissions(raw map[string]any) map[string]string {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		out[k] = fmt.Sprintf("%v", v)
	}
	return out
}

// firstNonEmpty returns the first non-empty string from vals, or empty string if none.
func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// generateRandomString generates a cryptographically secure URL-safe random string of exact length.
func generateRandomString(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}
	nBytes := (length*3 + 3) / 4
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	s := base64.RawURLEncoding.EncodeToString(b)
	for len(s) < length {
		extra := make([]byte, 1)
		if _, err := rand.Read(extra); err != nil {
			return "", err
		}
		s += base64.RawURLEncoding.EncodeToString(extra)
	}
	return s[:length], nil
}
