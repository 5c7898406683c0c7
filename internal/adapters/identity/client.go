package identity

// Package identity fetches user profiles from the identity service and
// normalizes them into the canonical domain Identity. This is the single
// ingestion boundary for the service's duck-typed payloads: field spellings
// have drifted across deployments (org_id/orgId/org, first_name/firstName,
// nested data.attributes vs flat), and all known variants are mapped here so
// nothing downstream has to care.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	domainauth "github.com/campushq/campushq-api/internal/domain/auth"
)

const defaultTimeout = 30 * time.Second

// profileTTL is how long a fetched profile is considered valid when the
// upstream response does not carry its own expiry.
const profileTTL = 24 * time.Hour

// Client calls the identity service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Config holds configuration for the identity client.
type Config struct {
	// BaseURL of the identity service, e.g. "https://id.campushq.io".
	BaseURL string
	// HTTPClient is optional; a 30s-timeout client is used when nil.
	HTTPClient *http.Client
}

// NewClient creates an identity client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("identity base URL is required")
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: hc,
	}, nil
}

// FetchProfile calls GET /users/me?include=permission with the bearer token
// and returns the normalized identity.
func (c *Client) FetchProfile(ctx context.Context, accessToken string) (domainauth.Identity, error) {
	if accessToken == "" {
		return domainauth.Identity{}, errors.New("access token is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/me?include=permission", nil)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("build identity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("call identity service: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return domainauth.Identity{}, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return domainauth.Identity{}, fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domainauth.Identity{}, fmt.Errorf("decode identity response: %w", err)
	}

	ident, err := Normalize(payload)
	if err != nil {
		return domainauth.Identity{}, err
	}
	ident.AccessToken = accessToken
	return ident, nil
}

// ErrUnauthorized is returned when the identity service rejects the token.
var ErrUnauthorized = errors.New("identity: token rejected")

// Expression sets tried in order for each canonical field. Earlier entries
// are the current upstream shape; later ones cover historical variants.
var (
	idExprs = []string{"data.id", "id", "data.attributes.id"}

	firstNameExprs = []string{
		"data.attributes.first_name", "attributes.first_name", "first_name",
		"data.attributes.firstName", "firstName", "given_name",
	}
	lastNameExprs = []string{
		"data.attributes.last_name", "attributes.last_name", "last_name",
		"data.attributes.lastName", "lastName", "family_name",
	}
	emailExprs = []string{
		"data.attributes.email", "attributes.email", "email", "mail",
	}
	typeExprs = []string{
		"data.attributes.type", "attributes.type", "type",
	}
	orgIDExprs = []string{
		"data.attributes.org_id", "attributes.org_id", "org_id",
		"data.attributes.orgId", "orgId", "org", "organization_id",
	}
	permissionExprs = []string{
		"data.user_permissions", "user_permissions",
		"data.attributes.permission", "attributes.permission", "permission",
	}
)

// Normalize maps a decoded identity payload of any known shape to the
// canonical Identity. It is exported for reuse by tests and by callers that
// already hold a decoded payload.
func Normalize(payload any) (domainauth.Identity, error) {
	id := searchString(payload, idExprs)
	if id == "" {
		return domainauth.Identity{}, errors.New("identity payload has no user id")
	}

	return domainauth.Identity{
		UserID:      id,
		FirstName:   searchString(payload, firstNameExprs),
		LastName:    searchString(payload, lastNameExprs),
		Email:       searchString(payload, emailExprs),
		Type:        searchString(payload, typeExprs),
		OrgID:       searchString(payload, orgIDExprs),
		Permissions: searchPermissions(payload),
		ExpiresAt:   time.Now().Add(profileTTL),
	}, nil
}

// searchString evaluates the expressions in order and returns the first
// non-empty string result.
func searchString(payload any, exprs []string) string {
	for _, expr := range exprs {
		res, err := jmespath.Search(expr, payload)
		if err != nil {
			continue
		}
		switch v := res.(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			// Numeric IDs appear in older payloads.
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// searchPermissions returns the first permission map found, with all values
// coerced to strings. Some payloads carry booleans or numbers as grants.
func searchPermissions(payload any) map[string]string {
	for _, expr := range permissionExprs {
		res, err := jmespath.Search(expr, payload)
		if err != nil {
			continue
		}
		m, ok := res.(map[string]any)
		if !ok || len(m) == 0 {
			continue
		}
		out := make(map[string]string, len(m))
		for k, v := range m {
			switch val := v.(type) {
			case string:
				out[k] = val
			case bool:
				out[k] = fmt.Sprintf("%t", val)
			case float64:
				out[k] = strconv.FormatFloat(val, 'f', -1, 64)
			default:
				out[k] = fmt.Sprintf("%v", val)
			}
		}
		return out
	}
	return map[string]string{}
}
