package httpx

import (
	"errors"
	"net/http"
	"time"

	"github.com/campushq/campushq-api/internal/service"
)

// StudentAuthHandlers provides HTTP handlers for the student credential
// login path.
type StudentAuthHandlers struct {
	Svc          StudentAuthServiceInterface
	CookieDomain string
}

// studentAuthRequest is the wire shape of the student login request.
type studentAuthRequest struct {
	Data struct {
		Type       string `json:"type"`
		Attributes struct {
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"attributes"`
	} `json:"data"`
}

// Login handles the student credential login.
// POST /students/auth.
func (h *StudentAuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusServiceUnavailable,
			ErrCode: "auth_unavailable",
			Err:     errors.New("student authentication is not configured"),
		})
		return
	}
	var req studentAuthRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Data.Type != "student_auth" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_request",
			Err:     errors.New(`data.type must be "student_auth"`),
		})
		return
	}

	session, err := h.Svc.Login(r.Context(), req.Data.Attributes.Username, req.Data.Attributes.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteError(w, ErrorParams{
				Code:    http.StatusUnauthorized,
				ErrCode: "invalid_credentials",
				Err:     err,
			})
			return
		}
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "login_failed",
			Err:     err,
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     studentSessionCookie,
		Value:    session.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
	})

	WriteJSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{
			"type": "student_session",
			"id":   session.ID,
			"attributes": map[string]any{
				"student_id": session.StudentID,
				"org_id":     session.OrgID,
				"first_name": session.FirstName,
				"last_name":  session.LastName,
				"role":       session.Role,
				"expires_at": session.ExpiresAt,
			},
		},
		"redirect_to": "/student-dashboard",
	})
}

// Logout ends the student session.
// POST /students/logout.
func (h *StudentAuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(studentSessionCookie); err == nil && h.Svc != nil {
		// Best effort; the cookie is cleared regardless.
		_ = h.Svc.Logout(r.Context(), c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     studentSessionCookie,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
	WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
