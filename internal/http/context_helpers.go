package httpx

import (
	"context"

	domainauth "github.com/campushq/campushq-api/internal/domain/auth"
)

// principalKey carries the unified identity view for the request.
type principalKey struct{}

// Principal is the unified view of whichever session authenticated the
// request. Student credential sessions take precedence over OAuth sessions
// when both cookies are present.
type Principal struct {
	UserID    string
	StudentID string
	FirstName string
	LastName  string
	Email     string
	Role      domainauth.Role
	OrgID     string

	// Student is true when the principal came from a student credential
	// session rather than the OAuth flow.
	Student bool
}

// DashboardPath returns the dashboard the principal belongs on.
func (p *Principal) DashboardPath() string {
	return domainauth.DashboardPath(p.Role)
}

// SetPrincipalInContext returns a child context that carries the given principal.
func SetPrincipalInContext(ctx context.Context, p *Principal) context.Context {
	if p == nil {
		return ctx
	}
	return context.WithValue(ctx, principalKey{}, p)
}

// GetPrincipalFromContext returns the request principal and a boolean indicating presence.
func GetPrincipalFromContext(ctx context.Context) (*Principal, bool) {
	if p, ok := ctx.Value(principalKey{}).(*Principal); ok && p != nil {
		return p, true
	}
	return nil, false
}

// principalFromSession builds a Principal from an OAuth session.
func principalFromSession(s *domainauth.Session) *Principal {
	return &Principal{
		UserID:    s.UserID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
		Role:      s.Role,
		OrgID:     s.OrgID,
	}
}

// principalFromStudentSession builds a Principal from a student credential session.
func principalFromStudentSession(s *domainauth.StudentSession) *Principal {
	return &Principal{
		StudentID: s.StudentID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
		Role:      s.Role,
		OrgID:     s.OrgID,
		Student:   true,
	}
}
