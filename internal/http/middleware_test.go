package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/campushq/campushq-api/internal/domain/auth"
	"github.com/campushq/campushq-api/internal/service"
)

// stubAuthService is a test double for AuthServiceInterface.
type stubAuthService struct {
	session *domainauth.Session
	err     error
}

func (s *stubAuthService) GetSession(_ context.Context, _ string) (*domainauth.Session, error) {
	return s.session, s.err
}

func (s *stubAuthService) BeginLogin(_ context.Context, _ string) (*service.BeginLoginResult, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) CompleteLogin(_ context.Context, _ service.CompleteLoginInput) (*domainauth.Session, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) HandoffLogin(_ context.Context, _ string) (*domainauth.Session, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) Logout(_ context.Context, _ string) error { return nil }

// stubStudentAuthService is a test double for StudentAuthServiceInterface.
type stubStudentAuthService struct {
	session *domainauth.StudentSession
	err     error
}

func (s *stubStudentAuthService) Login(_ context.Context, _, _ string) (*domainauth.StudentSession, error) {
	return nil, errors.New("not implemented")
}

func (s *stubStudentAuthService) GetSession(_ context.Context, _ string) (*domainauth.StudentSession, error) {
	return s.session, s.err
}

func (s *stubStudentAuthService) Logout(_ context.Context, _ string) error { return nil }

func teacherSession() *domainauth.Session {
	return &domainauth.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		Role:      domainauth.RoleTeacher,
		OrgID:     "org-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func studentSession() *domainauth.StudentSession {
	return &domainauth.StudentSession{
		ID:        "stu-sess-1",
		StudentID: "student-1",
		OrgID:     "org-1",
		Role:      domainauth.RoleStudent,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestSessionResolver_StudentSessionTakesPrecedence(t *testing.T) {
	resolver := &SessionResolver{
		Auth:     &stubAuthService{session: teacherSession()},
		Students: &stubStudentAuthService{session: studentSession()},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "sess-1"})
	req.AddCookie(&http.Cookie{Name: studentSessionCookie, Value: "stu-sess-1"})

	principal := resolver.Resolve(req)
	require.NotNil(t, principal)
	assert.True(t, principal.Student)
	assert.Equal(t, "student-1", principal.StudentID)
	assert.Equal(t, domainauth.RoleStudent, principal.Role)
}

func TestSessionResolver_FallsBackToOAuthSession(t *testing.T) {
	resolver := &SessionResolver{
		Auth:     &stubAuthService{session: teacherSession()},
		Students: &stubStudentAuthService{err: service.ErrSessionExpired},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "sess-1"})
	req.AddCookie(&http.Cookie{Name: studentSessionCookie, Value: "stale"})

	principal := resolver.Resolve(req)
	require.NotNil(t, principal)
	assert.False(t, principal.Student)
	assert.Equal(t, domainauth.RoleTeacher, principal.Role)
}

func TestSessionResolver_NoCookies(t *testing.T) {
	resolver := &SessionResolver{Auth: &stubAuthService{session: teacherSession()}}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, resolver.Resolve(req))
}

func TestRequireAuth_Unauthenticated(t *testing.T) {
	resolver := &SessionResolver{Auth: &stubAuthService{err: service.ErrSessionExpired}}
	handler := RequireAuth(resolver)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authentication_required")
}

func TestRequireAuth_SetsPrincipal(t *testing.T) {
	resolver := &SessionResolver{Auth: &stubAuthService{session: teacherSession()}}

	var got *Principal
	handler := RequireAuth(resolver)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, _ = GetPrincipalFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "sess-1"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.UserID)
}

func TestRequireAuthRedirect_Unauthenticated(t *testing.T) {
	resolver := &SessionResolver{}
	handler := RequireAuthRedirect(resolver, "/auth/login")(http.HandlerFunc(
		func(http.ResponseWriter, *http.Request) { t.Fatal("handler should not run") },
	))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
}

func TestRequireAuthRedirect_SetsPrincipal(t *testing.T) {
	resolver := &SessionResolver{Auth: &stubAuthService{session: teacherSession()}}

	var got *Principal
	handler := RequireAuthRedirect(resolver, "/auth/login")(http.HandlerFunc(
		func(_ http.ResponseWriter, r *http.Request) {
			got, _ = GetPrincipalFromContext(r.Context())
		},
	))

	req := httptest.NewRequest(http.MethodGet, "/teacher-dashboard", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "sess-1"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.UserID)
}

func TestRequireRole_Hierarchy(t *testing.T) {
	cases := []struct {
		name     string
		userRole domainauth.Role
		required domainauth.Role
		want     int
	}{
		{"admin passes admin gate", domainauth.RoleAdmin, domainauth.RoleAdmin, http.StatusOK},
		{"admin passes teacher gate", domainauth.RoleAdmin, domainauth.RoleTeacher, http.StatusOK},
		{"teacher fails admin gate", domainauth.RoleTeacher, domainauth.RoleAdmin, http.StatusForbidden},
		{"teacher passes student gate", domainauth.RoleTeacher, domainauth.RoleStudent, http.StatusOK},
		{"student fails teacher gate", domainauth.RoleStudent, domainauth.RoleTeacher, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sess := teacherSession()
			sess.Role = tc.userRole
			resolver := &SessionResolver{Auth: &stubAuthService{session: sess}}

			handler := RequireRole(resolver, tc.required)(http.HandlerFunc(
				func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) },
			))

			req := httptest.NewRequest(http.MethodGet, "/admin-portal/students", nil)
			req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "sess-1"})
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestRequireRole_Unauthenticated(t *testing.T) {
	resolver := &SessionResolver{}
	handler := RequireRole(resolver, domainauth.RoleAdmin)(http.HandlerFunc(
		func(http.ResponseWriter, *http.Request) { t.Fatal("handler should not run") },
	))

	req := httptest.NewRequest(http.MethodGet, "/admin-portal/students", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalAuth_ContinuesWithoutSession(t *testing.T) {
	resolver := &SessionResolver{}
	var sawPrincipal bool
	handler := OptionalAuth(resolver)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, sawPrincipal = GetPrincipalFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/org/config", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, sawPrincipal)
}

func TestChain_OrderIsOutsideIn(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}), mw("outer"), mw("inner"))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner"}, order)
}
