package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Identity represents the authenticated principal as normalized by an
// identity adapter. Adapters map provider-specific claim and attribute
// shapes into this canonical form; nothing past the adapter boundary ever
// sees a raw payload.
type Identity struct {
	UserID      string // stable user identifier (e.g., sub)
	FirstName   string
	LastName    string
	Email       string
	Type        string            // upstream account type, e.g. "faculty"
	Permissions map[string]string // permission key -> grant (e.g. "org" -> "manage")
	OrgID       string            // owning organization (tenant)
	AccessToken string            // bearer token the identity was fetched with
	ExpiresAt   time.Time         // absolute expiry from IdP token
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier (e.g., random URL-safe string).
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	OrgID     string    `json:"org_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// StudentSession is the credential record created by the student
// username/date-of-birth login path. It is persisted independently of
// Session and, when both exist, takes precedence as the active identity.
type StudentSession struct {
	ID              string    `json:"id"`
	StudentID       string    `json:"student_id"`
	OrgID           string    `json:"org_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Role            Role      `json:"role"`
	AuthenticatedAt time.Time `json:"authenticated_at"`
	ExpiresAt       time.Time `json:"expires_at"`
}

// IsAdmin returns true if the session role is admin.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }
