package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campushq/campushq-api/internal/core"
	"github.com/campushq/campushq-api/internal/data"
	domainauth "github.com/campushq/campushq-api/internal/domain/auth"
	"github.com/campushq/campushq-api/internal/ports"
)

// ErrInvalidCredentials is returned for any student login failure: malformed
// username, unknown student, or wrong date of birth. One error for all cases
// so responses do not reveal whether a username exists.
var ErrInvalidCredentials = errors.New("invalid username or password")

// dobLayout is the credential format students type: DD/MM/YYYY.
const dobLayout = "02/01/2006"

// defaultStudentSessionTTL bounds student credential sessions.
const defaultStudentSessionTTL = 24 * time.Hour

// StudentAuthServiceOptions groups dependencies for StudentAuthService.
type StudentAuthServiceOptions struct {
	Students   core.StudentRepository
	Sessions   ports.StudentSessionStore
	SessionTTL time.Duration
}

// StudentAuthService implements the student credential login: username
// "<org_id>-<first_name>" and the date of birth, formatted DD/MM/YYYY, as
// the password.
type StudentAuthService struct {
	students   core.StudentRepository
	sessions   ports.StudentSessionStore
	sessionTTL time.Duration
}

// NewStudentAuthService constructs a new StudentAuthService.
func NewStudentAuthService(opts StudentAuthServiceOptions) *StudentAuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultStudentSessionTTL
	}
	return &StudentAuthService{
		students:   opts.Students,
		sessions:   opts.Sessions,
		sessionTTL: ttl,
	}
}

// FormatDateOfBirth renders a date of birth in the credential format
// students are told to type.
func FormatDateOfBirth(dob time.Time) string {
	return dob.Format(dobLayout)
}

// ParseStudentUsername splits a login username into organization ID and
// first name. Organization IDs are UUIDs, so when the username starts with a
// valid UUID the split point is fixed; otherwise the first hyphen wins,
// which keeps short seed-data org IDs working.
func ParseStudentUsername(username string) (orgID, firstName string, err error) {
	const uuidLen = 36
	username = strings.TrimSpace(username)
	if len(username) > uuidLen+1 && username[uuidLen] == '-' {
		if uuid.Validate(username[:uuidLen]) == nil {
			return username[:uuidLen], username[uuidLen+1:], nil
		}
	}
	idx := strings.Index(username, "-")
	if idx <= 0 || idx == len(username)-1 {
		return "", "", ErrInvalidCredentials
	}
	return username[:idx], username[idx+1:], nil
}

// Login verifies student credentials and persists a student session. The
// session takes precedence over any OAuth session during bootstrap.
func (s *StudentAuthService) Login(ctx context.Context, username, password string) (*domainauth.StudentSession, error) {
	orgID, firstName, err := ParseStudentUsername(username)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, ErrInvalidCredentials
	}

	student, err := s.students.FindByOrgAndFirstName(ctx, orgID, firstName)
	if err != nil {
		if errors.Is(err, data.ErrStudentNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find student: %w", err)
	}

	if FormatDateOfBirth(student.DateOfBirth) != strings.TrimSpace(password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	session := domainauth.StudentSession{
		ID:              uuid.New().String(),
		StudentID:       student.ID,
		OrgID:           student.OrgID,
		FirstName:       student.FirstName,
		LastName:        student.LastName,
		Email:           student.Email,
		Role:            domainauth.RoleStudent,
		AuthenticatedAt: now,
		ExpiresAt:       now.Add(s.sessionTTL),
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save student session: %w", saveErr)
	}

	return &session, nil
}

// GetSession retrieves a student session by ID. Expired or absent sessions
// return ErrSessionExpired.
func (s *StudentAuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.StudentSession, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("get student session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(ErrSessionExpired, fmt.Errorf("delete student session: %w", deleteErr))
		}
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// Logout removes a student session.
func (s *StudentAuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete student session: %w", err)
	}
	return nil
}
