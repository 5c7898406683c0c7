// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainauth "github.com/campushq/campushq-api/internal/domain/auth"
	"github.com/campushq/campushq-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthProvider        = (*MockAuthProvider)(nil)
	_ ports.ProfileFetcher      = (*MockProfileFetcher)(nil)
	_ ports.SessionStore        = (*MemorySessionStore)(nil)
	_ ports.StudentSessionStore = (*MemoryStudentSessionStore)(nil)
	_ ports.TokenStore          = (*MemoryTokenStore)(nil)
)

// ErrNotFound aliases the ports sentinel so tests can assert against either.
var ErrNotFound = ports.ErrNotFound

// MockAuthProvider simulates an IdP for tests with deterministic state/nonce handling.
type MockAuthProvider struct {
	BeginFunc    func(ctx context.Context, in ports.BeginInput) (authURL, state, nonce string, err error)
	ExchangeFunc func(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error)

	// Deterministic values for predictable testing
	AuthURL     string
	StatePrefix string
	NoncePrefix string
	DefaultUser domainauth.Identity

	// Internal state tracking for deterministic behavior
	callCount int
}

// NewMockAuthProvider creates a MockAuthProvider with sensible defaults.
func NewMockAuthProvider() *MockAuthProvider {
	return &MockAuthProvider{
		AuthURL:     "https://mock-idp/auth",
		StatePrefix: "state",
		NoncePrefix: "nonce",
		DefaultUser: defaultIdentity(),
	}
}

func defaultIdentity() domainauth.Identity {
	return domainauth.Identity{
		UserID:      "mock-user-1",
		FirstName:   "Mock",
		LastName:    "User",
		Email:       "mock.user@example.com",
		Type:        "user",
		Permissions: map[string]string{},
		OrgID:       "org-1",
		AccessToken: "mock-token",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func (m *MockAuthProvider) Begin(ctx context.Context, in ports.BeginInput) (string, string, string, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx, in)
	}

	m.callCount++
	authURL := m.AuthURL
	if authURL == "" {
		authURL = "https://mock-idp/auth"
	}

	statePrefix := m.StatePrefix
	if statePrefix == "" {
		statePrefix = "state"
	}
	noncePrefix := m.NoncePrefix
	if noncePrefix == "" {
		noncePrefix = "nonce"
	}

	state := fmt.Sprintf("%s-%d", statePrefix, m.callCount)
	nonce := fmt.Sprintf("%s-%d", noncePrefix, m.callCount)

	return authURL, state, nonce, nil
}

func (m *MockAuthProvider) Exchange(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, in)
	}

	// Return a copy of the default user with a fresh expiration time
	user := m.DefaultUser
	if user.UserID == "" {
		user = defaultIdentity()
	}
	user.ExpiresAt = time.Now().Add(time.Hour)

	return user, nil
}

// MockProfileFetcher simulates the identity profile endpoint used by the
// token handoff path.
type MockProfileFetcher struct {
	FetchFunc func(ctx context.Context, accessToken string) (domainauth.Identity, error)

	DefaultUser domainauth.Identity
}

// NewMockProfileFetcher creates a MockProfileFetcher with sensible defaults.
func NewMockProfileFetcher() *MockProfileFetcher {
	return &MockProfileFetcher{DefaultUser: defaultIdentity()}
}

func (m *MockProfileFetcher) FetchProfile(ctx context.Context, accessToken string) (domainauth.Identity, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, accessToken)
	}
	if accessToken == "" {
		return domainauth.Identity{}, errors.New("access token is required")
	}
	user := m.DefaultUser
	if user.UserID == "" {
		user = defaultIdentity()
	}
	user.AccessToken = accessToken
	return user, nil
}

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	delete(m.sessions, id)
	return nil
}

// MemoryStudentSessionStore is an in-memory student session store for unit tests.
type MemoryStudentSessionStore struct {
	sessions map[string]domainauth.StudentSession
}

// NewMemoryStudentSessionStore creates a new in-memory student session store.
func NewMemoryStudentSessionStore() *MemoryStudentSessionStore {
	return &MemoryStudentSessionStore{
		sessions: make(map[string]domainauth.StudentSession),
	}
}

func (m *MemoryStudentSessionStore) Save(_ context.Context, sess domainauth.StudentSession) error {
	if sess.ID == "" {
		return errors.New("student session ID cannot be empty")
	}
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemoryStudentSessionStore) Get(_ context.Context, id string) (domainauth.StudentSession, error) {
	if id == "" {
		return domainauth.StudentSession{}, ErrNotFound
	}
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.StudentSession{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemoryStudentSessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	delete(m.sessions, id)
	return nil
}

// MemoryTokenStore is an in-memory token store for unit tests. Expiry is
// honored on read, mirroring the Redis-backed implementation.
type MemoryTokenStore struct {
	tokens map[string]tokenEntry
}

type tokenEntry struct {
	value     string
	expiresAt time.Time
}

// NewMemoryTokenStore creates a new in-memory token store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]tokenEntry)}
}

func (m *MemoryTokenStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if key == "" {
		return errors.New("token key cannot be empty")
	}
	m.tokens[key] = tokenEntry{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (m *MemoryTokenStore) Get(_ context.Context, key string) (string, bool, error) {
	entry, ok := m.tokens[key]
	if !ok {
		return "", false, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(m.tokens, key)
		return "", false, nil
	}
	return entry.value, true, nil
}

func (m *MemoryTokenStore) Delete(_ context.Context, key string) error {
	delete(m.tokens, key)
	return nil
}
