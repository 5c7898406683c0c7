// Package core defines the repository contracts (ports in hexagonal
// architecture) between the service layer and the data layer. Services
// depend on these interfaces, never on concrete implementations.
package core

import (
	"context"
	"time"

	"github.com/campushq/campushq-api/internal/domain/model"
)

// OrgRepository defines data operations for organizations and their public
// content (programs, faculty, headline stats).
type OrgRepository interface {
	Create(ctx context.Context, org *model.Organization) (*model.Organization, error)
	GetByID(ctx context.Context, id string) (*model.Organization, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*model.Organization, error)
	CanonicalSubdomain(ctx context.Context, orgID string) (string, error)
	ListPrograms(ctx context.Context, orgID string) ([]model.Program, error)
	ListFaculty(ctx context.Context, orgID string) ([]model.FacultyMember, error)
	GetStats(ctx context.Context, orgID string) (*model.OrgStats, error)
}

// StudentRepository defines data operations for student records.
type StudentRepository interface {
	Create(ctx context.Context, req *model.CreateStudentRequest) (*model.Student, error)
	GetByID(ctx context.Context, id string) (*model.Student, error)
	FindByOrgAndFirstName(ctx context.Context, orgID, firstName string) (*model.Student, error)
	List(ctx context.Context, orgID string) ([]model.Student, error)
	Delete(ctx context.Context, id string) error
}

// NotificationRepository defines data operations for tenant notifications.
type NotificationRepository interface {
	Create(ctx context.Context, req *model.CreateNotificationRequest) (*model.Notification, error)
	GetByID(ctx context.Context, id string) (*model.Notification, error)
	List(ctx context.Context, orgID string, audience model.NotificationAudience) ([]model.Notification, error)
	Update(ctx context.Context, id string, req *model.UpdateNotificationRequest) (*model.Notification, error)
	Delete(ctx context.Context, id string) error
}

// SettingsRepository defines data operations for admin-edited school settings.
type SettingsRepository interface {
	Get(ctx context.Context, orgID string) (*model.SchoolSettings, error)
	Put(ctx context.Context, s *model.SchoolSettings) (*model.SchoolSettings, error)
}

// ExamRepository defines data operations for exams and their results.
type ExamRepository interface {
	CreateExam(ctx context.Context, req *model.CreateExamRequest) (*model.Exam, error)
	GetExam(ctx context.Context, id string) (*model.Exam, error)
	ListExams(ctx context.Context, orgID string) ([]model.Exam, error)
	CreateResult(ctx context.Context, examID string, req *model.CreateResultRequest) (*model.ExamResult, error)
	ListResultsByExam(ctx context.Context, examID string) ([]model.ExamResult, error)
	ListResultsByStudent(ctx context.Context, studentID string) ([]model.ExamResult, error)
}

// CacheRepository defines byte-level cache operations. The data layer
// provides a Redis-backed implementation; services use it for short-lived
// lookups such as the subdomain directory.
type CacheRepository interface {
	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get retrieves a value by key. Returns nil when the key is absent or
	// expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes a key, reporting whether it existed.
	Delete(ctx context.Context, key string) (bool, error)

	// Health checks the cache connection.
	Health(ctx context.Context) error
}
