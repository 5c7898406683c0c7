package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/campushq/campushq-api/internal/domain/auth"
	"github.com/campushq/campushq-api/internal/ports"
)

func TestMockAuthProvider_DeterministicStateNonce(t *testing.T) {
	provider := NewMockAuthProvider()
	ctx := context.Background()

	authURL, state, nonce, err := provider.Begin(ctx, ports.BeginInput{RedirectURL: "http://localhost/callback"})
	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", authURL)
	assert.Equal(t, "state-1", state)
	assert.Equal(t, "nonce-1", nonce)

	_, state, nonce, err = provider.Begin(ctx, ports.BeginInput{RedirectURL: "http://localhost/callback"})
	require.NoError(t, err)
	assert.Equal(t, "state-2", state)
	assert.Equal(t, "nonce-2", nonce)
}

func TestMockAuthProvider_ExchangeDefaults(t *testing.T) {
	provider := NewMockAuthProvider()

	identity, err := provider.Exchange(context.Background(), ports.ExchangeInput{Code: "code", State: "state-1", Nonce: "nonce-1"})
	require.NoError(t, err)
	assert.Equal(t, "mock-user-1", identity.UserID)
	assert.Equal(t, "org-1", identity.OrgID)
	assert.True(t, identity.ExpiresAt.After(time.Now()))
}

func TestMockProfileFetcher(t *testing.T) {
	fetcher := NewMockProfileFetcher()

	identity, err := fetcher.FetchProfile(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", identity.AccessToken)

	_, err = fetcher.FetchProfile(context.Background(), "")
	assert.Error(t, err)
}

func TestMemorySessionStore_RoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	sess := domainauth.Session{ID: "s1", UserID: "u1", Role: domainauth.RoleTeacher}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySessionStore_EmptyID(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, domainauth.Session{}))
	_, err := store.Get(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, store.Delete(ctx, ""))
}

func TestMemoryStudentSessionStore_RoundTrip(t *testing.T) {
	store := NewMemoryStudentSessionStore()
	ctx := context.Background()

	sess := domainauth.StudentSession{ID: "ss1", StudentID: "stu1", Role: domainauth.RoleStudent}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "ss1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	require.NoError(t, store.Delete(ctx, "ss1"))
	_, err = store.Get(ctx, "ss1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryTokenStore_ExpiryOnRead(t *testing.T) {
	store := NewMemoryTokenStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k1", "v1", time.Hour))
	value, ok, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v1", value)

	require.NoError(t, store.Set(ctx, "k2", "v2", -time.Second))
	_, ok, err = store.Get(ctx, "k2")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}
