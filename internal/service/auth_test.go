package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/campushq/campushq-api/internal/domain/auth"
	mocks "github.com/campushq/campushq-api/internal/mocks/auth"
	"github.com/campushq/campushq-api/internal/ports"
)

// mockSessionStore is a test helper for testing session store errors.
type mockSessionStore struct {
	saveFunc   func(context.Context, domainauth.Session) error
	getFunc    func(context.Context, string) (domainauth.Session, error)
	deleteFunc func(context.Context, string) error
}

func (m *mockSessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, sess)
	}
	return nil
}

func (m *mockSessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return domainauth.Session{}, nil
}

func (m *mockSessionStore) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func newTestAuthService() (*AuthService, *mocks.MockAuthProvider, *mocks.MemorySessionStore, *mocks.MemoryTokenStore) {
	provider := mocks.NewMockAuthProvider()
	sessions := mocks.NewMemorySessionStore()
	tokens := mocks.NewMemoryTokenStore()
	svc := NewAuthService(AuthServiceOptions{
		Provider: provider,
		Profiles: mocks.NewMockProfileFetcher(),
		Sessions: sessions,
		Tokens:   tokens,
	})
	return svc, provider, sessions, tokens
}

func TestAuthService_BeginLogin_Success(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	result, err := svc.BeginLogin(context.Background(), "http://localhost:8080/auth/callback")

	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", result.AuthURL)
	assert.Equal(t, "state-1", result.State)
	assert.Equal(t, "nonce-1", result.Nonce)
}

func TestAuthService_BeginLogin_EmptyRedirectURL(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	result, err := svc.BeginLogin(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "redirect URL is required")
}

func TestAuthService_BeginLogin_ProviderError(t *testing.T) {
	svc, provider, _, _ := newTestAuthService()
	provider.BeginFunc = func(_ context.Context, _ ports.BeginInput) (string, string, string, error) {
		return "", "", "", errors.New("provider error")
	}

	result, err := svc.BeginLogin(context.Background(), "http://localhost:8080/auth/callback")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "begin auth flow")
}

func TestAuthService_CompleteLogin_Success(t *testing.T) {
	svc, provider, sessions, tokens := newTestAuthService()
	provider.DefaultUser = domainauth.Identity{
		UserID:      "user-42",
		FirstName:   "Priya",
		LastName:    "Nair",
		Email:       "priya@example.com",
		Type:        "faculty",
		OrgID:       "org-9",
		AccessToken: "tok-42",
	}

	session, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "code", State: "state-1", Nonce: "nonce-1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "user-42", session.UserID)
	assert.Equal(t, domainauth.RoleTeacher, session.Role)
	assert.Equal(t, "org-9", session.OrgID)

	// Session and token persisted under the session ID.
	stored, err := sessions.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, *session, stored)

	token, ok, err := tokens.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-42", token)
}

func TestAuthService_CompleteLogin_RoleResolution(t *testing.T) {
	tests := []struct {
		name        string
		accountType string
		permissions map[string]string
		want        domainauth.Role
	}{
		{"faculty type wins", "faculty", nil, domainauth.RoleTeacher},
		{"admin permission", "user", map[string]string{"organization_admin": "true"}, domainauth.RoleAdmin},
		{"teacher permission", "user", map[string]string{"team-science": "member"}, domainauth.RoleTeacher},
		{"no signals defaults student", "user", nil, domainauth.RoleStudent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, provider, _, _ := newTestAuthService()
			provider.DefaultUser = domainauth.Identity{
				UserID:      "u1",
				Type:        tt.accountType,
				Permissions: tt.permissions,
			}

			session, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
				Code: "code", State: "s", Nonce: "n",
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, session.Role)
		})
	}
}

func TestAuthService_CompleteLogin_MissingParams(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.CompleteLogin(ctx, CompleteLoginInput{State: "s", Nonce: "n"})
	assert.ErrorContains(t, err, "authorization code is required")

	_, err = svc.CompleteLogin(ctx, CompleteLoginInput{Code: "c", Nonce: "n"})
	assert.ErrorContains(t, err, "state parameter is required")

	_, err = svc.CompleteLogin(ctx, CompleteLoginInput{Code: "c", State: "s"})
	assert.ErrorContains(t, err, "nonce parameter is required")
}

func TestAuthService_CompleteLogin_ExchangeError(t *testing.T) {
	svc, provider, _, _ := newTestAuthService()
	provider.ExchangeFunc = func(_ context.Context, _ ports.ExchangeInput) (domainauth.Identity, error) {
		return domainauth.Identity{}, errors.New("bad code")
	}

	_, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{Code: "c", State: "s", Nonce: "n"})

	assert.ErrorContains(t, err, "exchange authorization code")
}

func TestAuthService_HandoffLogin_Success(t *testing.T) {
	provider := mocks.NewMockAuthProvider()
	profiles := mocks.NewMockProfileFetcher()
	profiles.DefaultUser = domainauth.Identity{
		UserID:      "user-7",
		FirstName:   "Ade",
		Type:        "user",
		Permissions: map[string]string{"org": "manage"},
		OrgID:       "org-3",
	}
	sessions := mocks.NewMemorySessionStore()
	tokens := mocks.NewMemoryTokenStore()
	svc := NewAuthService(AuthServiceOptions{
		Provider: provider, Profiles: profiles, Sessions: sessions, Tokens: tokens,
	})

	session, err := svc.HandoffLogin(context.Background(), "handoff-token")

	require.NoError(t, err)
	assert.Equal(t, "user-7", session.UserID)
	assert.Equal(t, domainauth.RoleAdmin, session.Role)

	// The raw token rides along and is stored for upstream calls.
	token, ok, err := tokens.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "handoff-token", token)
}

func TestAuthService_HandoffLogin_EmptyToken(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	_, err := svc.HandoffLogin(context.Background(), "")

	assert.ErrorContains(t, err, "access token is required")
}

func TestAuthService_HandoffLogin_FetchError(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	svc.profiles = &mocks.MockProfileFetcher{
		FetchFunc: func(_ context.Context, _ string) (domainauth.Identity, error) {
			return domainauth.Identity{}, errors.New("identity service down")
		},
	}

	_, err := svc.HandoffLogin(context.Background(), "tok")

	assert.ErrorContains(t, err, "fetch profile")
}

func TestAuthService_GetSession_Success(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	created, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{Code: "c", State: "s", Nonce: "n"})
	require.NoError(t, err)

	session, err := svc.GetSession(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.UserID, session.UserID)
}

func TestAuthService_GetSession_NotFound(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	_, err := svc.GetSession(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestAuthService_GetSession_Expired(t *testing.T) {
	sessions := mocks.NewMemorySessionStore()
	require.NoError(t, sessions.Save(context.Background(), domainauth.Session{
		ID:        "old",
		UserID:    "u1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))
	svc := NewAuthService(AuthServiceOptions{
		Provider: mocks.NewMockAuthProvider(),
		Sessions: sessions,
	})

	_, err := svc.GetSession(context.Background(), "old")

	assert.ErrorIs(t, err, ErrSessionExpired)

	// Expired session is cleaned up.
	_, err = sessions.Get(context.Background(), "old")
	assert.ErrorIs(t, err, mocks.ErrNotFound)
}

func TestAuthService_GetSession_StoreError(t *testing.T) {
	svc := NewAuthService(AuthServiceOptions{
		Provider: mocks.NewMockAuthProvider(),
		Sessions: &mockSessionStore{
			getFunc: func(_ context.Context, _ string) (domainauth.Session, error) {
				return domainauth.Session{}, errors.New("redis down")
			},
		},
	})

	_, err := svc.GetSession(context.Background(), "s1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionExpired)
	assert.Contains(t, err.Error(), "get session")
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, sessions, tokens := newTestAuthService()

	created, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{Code: "c", State: "s", Nonce: "n"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), created.ID))

	_, err = sessions.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, mocks.ErrNotFound)
	_, ok, err := tokens.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthService_Logout_EmptyID(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	assert.NoError(t, svc.Logout(context.Background(), ""))
}
