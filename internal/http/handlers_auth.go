package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainauth "github.com/campushq/campushq-api/internal/domain/auth"
	"github.com/campushq/campushq-api/internal/service"
)

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	Resolver     *SessionResolver
	Tenants      *service.TenantService
	CookieDomain string
	BaseDomain   string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// requireSvc rejects the request when the auth service is disabled, which
// happens when the session store backend is not configured.
func (h *AuthHandlers) requireSvc(w http.ResponseWriter) bool {
	if h.Svc != nil {
		return true
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusServiceUnavailable,
		ErrCode: "auth_unavailable",
		Err:     errors.New("authentication is not configured"),
	})
	return false
}

// Login handles the login initiation endpoint.
// GET /auth/login?redirect_uri=<optional_redirect>.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if !h.requireSvc(w) {
		return
	}
	redirectURI := safeRedirectPath(r.URL.Query().Get("redirect_uri"))

	result, err := h.Svc.BeginLogin(r.Context(), redirectURI)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "login_failed",
			Err:     err,
		})
		return
	}

	// Store state, nonce, and the original redirect URI in secure cookies
	h.setOAuthCookies(w, r, oauthCookieParams{State: result.State, Nonce: result.Nonce, RedirectURI: redirectURI})

	// Redirect to the identity provider
	http.Redirect(w, r, result.AuthURL, http.StatusFound)
}

// Callback handles the OAuth callback endpoint.
// GET /auth/callback?code=<code>&state=<state>.
func (h *AuthHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	if !h.requireSvc(w) {
		return
	}
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_code",
			Err:     errors.New("authorization code is required"),
		})
		return
	}
	if state == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_state",
			Err:     errors.New("state parameter is required"),
		})
		return
	}

	// Verify state and read nonce
	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value != state {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_state",
			Err:     errors.New("invalid or missing state parameter"),
		})
		return
	}
	nonceCookie, err := r.Cookie("oauth_nonce")
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_nonce",
			Err:     errors.New("missing nonce parameter"),
		})
		return
	}

	session, err := h.Svc.CompleteLogin(r.Context(), service.CompleteLoginInput{
		Code:  code,
		State: state,
		Nonce: nonceCookie.Value,
	})
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "login_completion_failed",
			Err:     err,
		})
		return
	}

	// Set session cookie and clear temporary OAuth cookies
	h.setSessionCookie(w, r, *session)
	h.clearCookie(w, r, "oauth_state")
	h.clearCookie(w, r, "oauth_nonce")

	http.Redirect(w, r, h.postLoginDestination(w, r, session), http.StatusFound)
}

// Handoff authenticates with a bearer token carried across subdomains.
// GET /auth/handoff?access_token=<token>&redirect_uri=<optional_redirect>.
//
// The shared auth subdomain hands users off to their school's subdomain with
// the token in the query rather than a fragment, so the server can establish
// the session before any page loads.
func (h *AuthHandlers) Handoff(w http.ResponseWriter, r *http.Request) {
	if !h.requireSvc(w) {
		return
	}
	token := r.URL.Query().Get("access_token")
	if token == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_token",
			Err:     errors.New("access_token is required"),
		})
		return
	}

	session, err := h.Svc.HandoffLogin(r.Context(), token)
	if err != nil {
		// A failed identity lookup is not retried; the user lands back on
		// the public page with the token stripped from the URL.
		h.logger().WarnContext(r.Context(), "handoff login failed", "error", err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	h.setSessionCookie(w, r, *session)

	redirectURI := safeRedirectPath(r.URL.Query().Get("redirect_uri"))
	if redirectURI == "/" {
		redirectURI = domainauth.DashboardPath(session.Role)
	}
	http.Redirect(w, r, redirectURI, http.StatusFound)
}

// Logout handles the logout endpoint.
// POST /auth/logout.
//
// Both session kinds are cleared so a shared browser ends up fully signed
// out regardless of which login path was used.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil && h.Svc != nil {
		if logoutErr := h.Svc.Logout(r.Context(), c.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}
	if h.Resolver != nil && h.Resolver.Students != nil {
		if c, err := r.Cookie(studentSessionCookie); err == nil {
			if logoutErr := h.Resolver.Students.Logout(r.Context(), c.Value); logoutErr != nil {
				h.logger().WarnContext(r.Context(), "student logout failed", "error", logoutErr)
			}
		}
	}

	h.clearCookie(w, r, sessionCookie)
	h.clearCookie(w, r, studentSessionCookie)

	redirectURI := r.FormValue("redirect_uri")
	if redirectURI == "" {
		redirectURI = r.URL.Query().Get("redirect_uri")
	}
	redirectURI = safeRedirectPath(redirectURI)

	isAJAX := strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest")
	if isAJAX {
		WriteJSON(w, http.StatusOK, map[string]string{
			"status":      "success",
			"redirect_to": redirectURI,
		})
		return
	}

	http.Redirect(w, r, redirectURI, http.StatusFound)
}

// Status returns the current authentication status.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	principal := h.Resolver.Resolve(r)
	if principal == nil {
		WriteJSON(w, http.StatusOK, map[string]any{
			"authenticated": false,
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user": map[string]any{
			"id":         principal.UserID,
			"student_id": principal.StudentID,
			"first_name": principal.FirstName,
			"last_name":  principal.LastName,
			"email":      principal.Email,
			"role":       principal.Role,
			"org_id":     principal.OrgID,
		},
		"student":   principal.Student,
		"dashboard": principal.DashboardPath(),
	})
}

// Bootstrap resolves the post-login landing for the current user.
// GET /session/bootstrap.
//
// It reports the active principal (student sessions win), the dashboard for
// the principal's role, and the canonical subdomain for their organization
// so the shared auth domain can send them home.
func (h *AuthHandlers) Bootstrap(w http.ResponseWriter, r *http.Request) {
	principal := h.Resolver.Resolve(r)
	if principal == nil {
		WriteJSON(w, http.StatusOK, map[string]any{
			"authenticated": false,
			"login_url":     "/auth/login",
		})
		return
	}

	resp := map[string]any{
		"authenticated": true,
		"role":          principal.Role,
		"dashboard":     principal.DashboardPath(),
		"student":       principal.Student,
	}
	if h.Tenants != nil {
		sub := h.Tenants.TargetSubdomain(r.Context(), principal.OrgID, r.Host)
		resp["subdomain"] = sub
		if h.BaseDomain != "" {
			resp["home_url"] = "https://" + sub + "." + h.BaseDomain + principal.DashboardPath()
		}
	}
	WriteJSON(w, http.StatusOK, resp)
}

// postLoginDestination returns the redirect target after a completed login,
// consuming the post_login_redirect cookie. A bare "/" is upgraded to the
// role's dashboard.
func (h *AuthHandlers) postLoginDestination(w http.ResponseWriter, r *http.Request, s *domainauth.Session) string {
	redirectURI := "/"
	if redirectCookie, err := r.Cookie("post_login_redirect"); err == nil {
		redirectURI = safeRedirectPath(redirectCookie.Value)
		h.clearCookie(w, r, "post_login_redirect")
	}
	if redirectURI == "/" {
		redirectURI = domainauth.DashboardPath(s.Role)
	}
	return redirectURI
}

// clearCookie clears a cookie by setting it to expire immediately.
// It mirrors key attributes (Secure, Path, Domain, SameSite) used when setting cookies
// to maximize compatibility across browsers during deletion.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// oauthCookieParams groups values needed to set OAuth cookies.
type oauthCookieParams struct {
	State       string
	Nonce       string
	RedirectURI string
}

// setOAuthCookies stores OAuth state, nonce, and the post-login redirect in secure cookies.
func (h *AuthHandlers) setOAuthCookies(w http.ResponseWriter, r *http.Request, p oauthCookieParams) {
	isSecure := isSecureRequest(r)
	const oauthCookieTTL = 600 // 10 minutes

	for name, value := range map[string]string{
		"oauth_state":         p.State,
		"oauth_nonce":         p.Nonce,
		"post_login_redirect": p.RedirectURI,
	} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    value,
			Path:     "/",
			Domain:   h.CookieDomain,
			HttpOnly: true,
			Secure:   isSecure,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   oauthCookieTTL,
		})
	}
}

// setSessionCookie writes the session cookie based on the session's expiry.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    s.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}

// isSecureRequest reports whether the request arrived over TLS, directly or
// via a terminating proxy.
func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// safeRedirectPath ensures the provided redirect is a same-origin relative path
// starting with "/" and not an absolute URL. Returns "/" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return candidate
}
