package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_CurrentShape(t *testing.T) {
	payload := decode(t, `{
		"data": {
			"id": "u-1",
			"attributes": {
				"first_name": "Alice",
				"last_name": "Mori",
				"email": "alice@acme.edu",
				"type": "faculty",
				"org_id": "org-9"
			},
			"user_permissions": {"team-math": "write"}
		}
	}`)

	ident, err := Normalize(payload)
	require.NoError(t, err)
	assert.Equal(t, "u-1", ident.UserID)
	assert.Equal(t, "Alice", ident.FirstName)
	assert.Equal(t, "Mori", ident.LastName)
	assert.Equal(t, "alice@acme.edu", ident.Email)
	assert.Equal(t, "faculty", ident.Type)
	assert.Equal(t, "org-9", ident.OrgID)
	assert.Equal(t, map[string]string{"team-math": "write"}, ident.Permissions)
}

func TestNormalize_LegacyFlatShape(t *testing.T) {
	payload := decode(t, `{
		"id": 42,
		"firstName": "Bob",
		"lastName": "Lee",
		"mail": "bob@acme.edu",
		"orgId": "org-2",
		"permission": {"org": "manage", "active": true}
	}`)

	ident, err := Normalize(payload)
	require.NoError(t, err)
	assert.Equal(t, "42", ident.UserID)
	assert.Equal(t, "Bob", ident.FirstName)
	assert.Equal(t, "Lee", ident.LastName)
	assert.Equal(t, "bob@acme.edu", ident.Email)
	assert.Equal(t, "org-2", ident.OrgID)
	assert.Equal(t, "manage", ident.Permissions["org"])
	assert.Equal(t, "true", ident.Permissions["active"])
}

func TestNormalize_MissingIDFails(t *testing.T) {
	_, err := Normalize(decode(t, `{"data": {"attributes": {"email": "x@y.z"}}}`))
	assert.Error(t, err)
}

func TestNormalize_EmptyPermissionsIsNonNil(t *testing.T) {
	ident, err := Normalize(decode(t, `{"id": "u-3"}`))
	require.NoError(t, err)
	assert.NotNil(t, ident.Permissions)
	assert.Empty(t, ident.Permissions)
}

func TestClient_FetchProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/me", r.URL.Path)
		assert.Equal(t, "permission", r.URL.Query().Get("include"))
		assert.Equal(t, "Bearer abc123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {
				"id": "u-7",
				"attributes": {"type": "faculty", "email": "x@y.com", "first_name": "A", "last_name": "B", "org_id": "O1"}
			}
		}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	ident, err := client.FetchProfile(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "u-7", ident.UserID)
	assert.Equal(t, "faculty", ident.Type)
	assert.Equal(t, "O1", ident.OrgID)
	assert.Equal(t, "abc123", ident.AccessToken)
	assert.False(t, ident.ExpiresAt.IsZero())
}

func TestClient_FetchProfile_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.FetchProfile(context.Background(), "expired")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_FetchProfile_EmptyToken(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://identity.local"})
	require.NoError(t, err)

	_, err = client.FetchProfile(context.Background(), "")
	assert.Error(t, err)
}

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}
