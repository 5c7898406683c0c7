// Package devseed populates a development database with a demo tenant so the
// login flows, dashboards, and admin portal have data to work against.
// Seeding is idempotent: records that already exist are left alone.
package devseed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/campushq/campushq-api/internal/data"
	"github.com/campushq/campushq-api/internal/domain/model"
	"github.com/campushq/campushq-api/internal/service"
)

// Services bundles the dependencies needed for development seeding.
type Services struct {
	Orgs          *service.OrganizationService
	Students      *service.StudentService
	Notifications *service.NotificationService
	Settings      *service.SettingsService
	Exams         *service.ExamService
}

// Run executes the full development seeding workflow.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	org, err := seedOrganization(ctx, svcs.Orgs, logger)
	if err != nil {
		return fmt.Errorf("seed organization: %w", err)
	}

	failures := 0
	students, n := seedStudents(ctx, svcs.Students, org.ID, logger)
	failures += n
	failures += seedSettings(ctx, svcs.Settings, org.ID, logger)
	failures += seedNotifications(ctx, svcs.Notifications, org.ID, logger)
	failures += seedExams(ctx, svcs.Exams, org.ID, students, logger)

	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

func seedOrganization(ctx context.Context, svc *service.OrganizationService, logger *slog.Logger) (*model.Organization, error) {
	const subdomain = "westbrook"

	org, err := svc.Create(ctx, &model.Organization{
		Name:         "Westbrook High School",
		Subdomain:    subdomain,
		PrimaryColor: "#1d4ed8",
		ContactEmail: "office@westbrook.example",
		HeroTitle:    "Welcome to Westbrook High",
		HeroSubtitle: "Learning for everyone",
		AboutHeading: "About our school",
		AboutBody:    "Westbrook High serves the development environment.",
	})
	if errors.Is(err, data.ErrSubdomainExists) {
		if logger != nil {
			logger.InfoContext(ctx, "demo organization already exists", "subdomain", subdomain)
		}
		return svc.GetBySubdomain(ctx, subdomain)
	}
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.InfoContext(ctx, "created demo organization", "subdomain", subdomain, "org_id", org.ID)
	}
	return org, nil
}

func seedStudents(ctx context.Context, svc *service.StudentService, orgID string, logger *slog.Logger) ([]model.Student, int) {
	requests := []model.CreateStudentRequest{
		{OrgID: orgID, FirstName: "kofi", LastName: "Mensah", Email: "kofi@westbrook.example", DateOfBirth: "2012-03-14"},
		{OrgID: orgID, FirstName: "amara", LastName: "Osei", Email: "amara@westbrook.example", DateOfBirth: "2011-11-02"},
		{OrgID: orgID, FirstName: "lena", LastName: "Fischer", Email: "lena@westbrook.example", DateOfBirth: "2012-07-21"},
	}

	failures := 0
	for _, req := range requests {
		created, err := svc.Create(ctx, &req)
		if errors.Is(err, data.ErrStudentEmailExists) {
			continue
		}
		if err != nil {
			if logger != nil {
				logger.ErrorContext(ctx, "failed to create demo student", "email", req.Email, "error", err)
			}
			failures++
			continue
		}
		if logger != nil {
			logger.InfoContext(ctx, "created demo student",
				"username", created.Username(),
				"password", service.FormatDateOfBirth(created.DateOfBirth))
		}
	}

	students, err := svc.List(ctx, orgID)
	if err != nil {
		if logger != nil {
			logger.ErrorContext(ctx, "failed to list demo students", "error", err)
		}
		return nil, failures + 1
	}
	return students, failures
}

func seedSettings(ctx context.Context, svc *service.SettingsService, orgID string, logger *slog.Logger) int {
	existing, err := svc.Get(ctx, orgID)
	if err != nil {
		if logger != nil {
			logger.ErrorContext(ctx, "failed to read demo settings", "error", err)
		}
		return 1
	}
	// Never overwrite settings an admin has already edited.
	if existing.SchoolName != "" {
		return 0
	}

	_, err = svc.Put(ctx, &model.SchoolSettings{
		OrgID:      orgID,
		SchoolName: "Westbrook High School",
		HeroTitle:  "Enrolment open for the new term",
	})
	if err != nil {
		if logger != nil {
			logger.ErrorContext(ctx, "failed to seed demo settings", "error", err)
		}
		return 1
	}
	return 0
}

func seedNotifications(ctx context.Context, svc *service.NotificationService, orgID string, logger *slog.Logger) int {
	existing, err := svc.ListFor(ctx, orgID, model.AudienceAll)
	if err != nil {
		if logger != nil {
			logger.ErrorContext(ctx, "failed to list demo notifications", "error", err)
		}
		return 1
	}
	if len(existing) > 0 {
		return 0
	}

	requests := []model.CreateNotificationRequest{
		{OrgID: orgID, Title: "Term starts Monday", Body: "Classes resume at 08:00.", Audience: "all"},
		{OrgID: orgID, Title: "Math exam next week", Body: "Covers chapters 4 through 6.", Audience: "students"},
		{OrgID: orgID, Title: "Staff meeting Friday", Body: "Agenda in the staff room.", Audience: "teachers"},
	}

	failures := 0
	for _, req := range requests {
		if _, err := svc.Create(ctx, &req); err != nil {
			if logger != nil {
				logger.ErrorContext(ctx, "failed to create demo notification", "title", req.Title, "error", err)
			}
			failures++
		}
	}
	return failures
}

func seedExams(ctx context.Context, svc *service.ExamService, orgID string, students []model.Student, logger *slog.Logger) int {
	existing, err := svc.ListExams(ctx, orgID)
	if err != nil {
		if logger != nil {
			logger.ErrorContext(ctx, "failed to list demo exams", "error", err)
		}
		return 1
	}
	if len(existing) > 0 {
		return 0
	}

	exam, err := svc.CreateExam(ctx, &model.CreateExamRequest{
		OrgID:    orgID,
		Name:     "Midterm Mathematics",
		Subject:  "Mathematics",
		ExamDate: "2026-10-05",
		MaxScore: 50,
	})
	if err != nil {
		if logger != nil {
			logger.ErrorContext(ctx, "failed to create demo exam", "error", err)
		}
		return 1
	}

	failures := 0
	scores := []int{42, 47, 35}
	for i, student := range students {
		if i >= len(scores) {
			break
		}
		_, err := svc.RecordResult(ctx, exam.ID, &model.CreateResultRequest{
			StudentID: student.ID,
			Score:     scores[i],
		})
		if err != nil && !errors.Is(err, data.ErrResultExists) {
			if logger != nil {
				logger.ErrorContext(ctx, "failed to record demo result", "student_id", student.ID, "error", err)
			}
			failures++
		}
	}
	return failures
}
