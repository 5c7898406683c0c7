package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	domainauth "github.com/campushq/campushq-api/internal/domain/auth"
	"github.com/campushq/campushq-api/internal/service"
)

// Cookie names shared between handlers and middleware.
const (
	sessionCookie        = "session_id"
	studentSessionCookie = "student_session_id"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// AuthServiceInterface defines the auth service operations handlers depend on.
type AuthServiceInterface interface {
	BeginLogin(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	CompleteLogin(ctx context.Context, input service.CompleteLoginInput) (*domainauth.Session, error)
	HandoffLogin(ctx context.Context, accessToken string) (*domainauth.Session, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// StudentAuthServiceInterface defines the student auth operations handlers depend on.
type StudentAuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (*domainauth.StudentSession, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.StudentSession, error)
	Logout(ctx context.Context, sessionID string) error
}

// SessionResolver resolves the request principal from whichever session
// cookie is present. Student credential sessions take precedence over OAuth
// sessions, so a shared browser always lands in the student experience.
type SessionResolver struct {
	Auth     AuthServiceInterface
	Students StudentAuthServiceInterface
}

// Resolve returns the request principal, or nil when unauthenticated.
func (sr *SessionResolver) Resolve(r *http.Request) *Principal {
	if sr == nil {
		return nil
	}
	if sr.Students != nil {
		if c, err := r.Cookie(studentSessionCookie); err == nil && c.Value != "" {
			if sess, err := sr.Students.GetSession(r.Context(), c.Value); err == nil {
				return principalFromStudentSession(sess)
			}
		}
	}
	if sr.Auth != nil {
		if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
			if sess, err := sr.Auth.GetSession(r.Context(), c.Value); err == nil {
				return principalFromSession(sess)
			}
		}
	}
	return nil
}

// RequireAuth returns a middleware that requires authentication.
// If the user is not authenticated, it returns a 401 Unauthorized response.
func RequireAuth(sr *SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := sr.Resolve(r)
			if principal == nil {
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "authentication_required",
					Err:     errors.New("authentication required"),
				})
				return
			}

			ctx := SetPrincipalInContext(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuthRedirect behaves like RequireAuth but sends unauthenticated
// requests to the login page instead of returning 401. It guards the
// browser-facing dashboard routes, where a JSON error body would dead-end
// the user.
func RequireAuthRedirect(sr *SessionResolver, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := sr.Resolve(r)
			if principal == nil {
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}

			ctx := SetPrincipalInContext(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns a middleware that requires a specific role.
// If the user doesn't have the required role, it returns a 403 Forbidden response.
func RequireRole(sr *SessionResolver, requiredRole domainauth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := sr.Resolve(r)
			if principal == nil {
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "authentication_required",
					Err:     errors.New("authentication required"),
				})
				return
			}

			if !hasRequiredRole(principal.Role, requiredRole) {
				WriteError(w, ErrorParams{
					Code:    http.StatusForbidden,
					ErrCode: "insufficient_permissions",
					Err:     errors.New("insufficient permissions"),
				})
				return
			}

			ctx := SetPrincipalInContext(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth returns a middleware that optionally adds authentication information.
// If the user is authenticated, the principal is added to the request context.
// If not authenticated, the request continues without session information.
func OptionalAuth(sr *SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if principal := sr.Resolve(r); principal != nil {
				r = r.WithContext(SetPrincipalInContext(r.Context(), principal))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// hasRequiredRole checks if the user's role meets the required role.
// Role hierarchy: Student < Teacher < Admin.
func hasRequiredRole(userRole, requiredRole domainauth.Role) bool {
	roleHierarchy := map[domainauth.Role]int{
		domainauth.RoleStudent: 0,
		domainauth.RoleTeacher: 1,
		domainauth.RoleAdmin:   2,
	}

	userLevel, userExists := roleHierarchy[userRole]
	requiredLevel, requiredExists := roleHierarchy[requiredRole]

	if !userExists || !requiredExists {
		return false
	}

	return userLevel >= requiredLevel
}

// Chain applies middlewares to a handler in the order given, so the first
// middleware is the outermost.
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
