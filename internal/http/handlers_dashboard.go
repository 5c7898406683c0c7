package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	domainauth "github.com/campushq/campushq-api/internal/domain/auth"
	"github.com/campushq/campushq-api/internal/domain/model"
	"github.com/campushq/campushq-api/internal/service"
)

// navCard is one entry in a dashboard's navigation shell.
type navCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Href        string `json:"href"`
}

var adminNavCards = []navCard{
	{Title: "Notifications", Description: "Publish announcements for students and teachers", Href: "/admin-portal/notifications"},
	{Title: "Students", Description: "Enroll and manage student records", Href: "/admin-portal/students"},
	{Title: "Exams", Description: "Schedule exams and record results", Href: "/admin-portal/exams"},
	{Title: "School Settings", Description: "Edit the public site content", Href: "/admin-portal/settings"},
}

var teacherNavCards = []navCard{
	{Title: "Notifications", Description: "Announcements for teachers", Href: "/api/notifications"},
	{Title: "Exams", Description: "Exams and recorded results", Href: "/api/exams"},
	{Title: "Students", Description: "Your school's students", Href: "/api/students"},
}

var studentNavCards = []navCard{
	{Title: "Notifications", Description: "Announcements for students", Href: "/api/notifications"},
	{Title: "My Results", Description: "Your exam results", Href: "/api/my/results"},
}

// DashboardHandlers serves the role-gated dashboard shells. A principal
// landing on another role's dashboard is redirected to their own rather
// than shown an error.
type DashboardHandlers struct {
	Notifications *service.NotificationService
	Exams         *service.ExamService
	Students      *service.StudentService
	Logger        *slog.Logger
}

func (h *DashboardHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Admin serves the admin dashboard shell.
// GET /dashboard.
func (h *DashboardHandlers) Admin(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.gate(w, r, domainauth.RoleAdmin)
	if !ok {
		return
	}
	h.writeShell(w, r, principal, adminNavCards, model.AudienceAll)
}

// Teacher serves the teacher dashboard shell.
// GET /teacher-dashboard.
func (h *DashboardHandlers) Teacher(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.gate(w, r, domainauth.RoleTeacher)
	if !ok {
		return
	}
	h.writeShell(w, r, principal, teacherNavCards, model.AudienceTeachers)
}

// Student serves the student dashboard shell.
// GET /student-dashboard.
func (h *DashboardHandlers) Student(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.gate(w, r, domainauth.RoleStudent)
	if !ok {
		return
	}

	shell := h.buildShell(r, principal, studentNavCards, model.AudienceStudents)
	if principal.StudentID != "" && h.Exams != nil {
		results, err := h.Exams.ListResultsByStudent(r.Context(), principal.StudentID)
		if err != nil {
			h.logger().WarnContext(r.Context(), "load student results failed", "error", err)
		} else {
			shell["results"] = results
		}
	}
	WriteJSON(w, http.StatusOK, shell)
}

// audienceForRole maps a principal's role to the notification audience it
// should see. Admins see everything.
func audienceForRole(role domainauth.Role) model.NotificationAudience {
	switch role {
	case domainauth.RoleTeacher:
		return model.AudienceTeachers
	case domainauth.RoleStudent:
		return model.AudienceStudents
	default:
		return model.AudienceAll
	}
}

// MyNotifications lists the notifications addressed to the principal's
// audience.
// GET /api/notifications.
func (h *DashboardHandlers) MyNotifications(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	list, err := h.Notifications.ListFor(r.Context(), principal.OrgID, audienceForRole(principal.Role))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"notifications": list})
}

// OrgExams lists the organization's exams.
// GET /api/exams.
func (h *DashboardHandlers) OrgExams(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	list, err := h.Exams.ListExams(r.Context(), principal.OrgID)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"exams": list})
}

// OrgStudents lists the organization's students for staff.
// GET /api/students.
func (h *DashboardHandlers) OrgStudents(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	if principal.Role != domainauth.RoleAdmin && principal.Role != domainauth.RoleTeacher {
		WriteError(w, ErrorParams{
			Code:    http.StatusForbidden,
			ErrCode: "insufficient_role",
			Err:     errors.New("staff role required"),
		})
		return
	}
	list, err := h.Students.List(r.Context(), principal.OrgID)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"students": list})
}

// MyResults lists the signed-in student's exam results.
// GET /api/my/results.
func (h *DashboardHandlers) MyResults(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	if principal.StudentID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusForbidden,
			ErrCode: "insufficient_role",
			Err:     errors.New("student session required"),
		})
		return
	}
	results, err := h.Exams.ListResultsByStudent(r.Context(), principal.StudentID)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"results": results})
}

// gate checks that the authenticated principal holds exactly the dashboard's
// role. A mismatch redirects to the principal's own dashboard.
func (h *DashboardHandlers) gate(w http.ResponseWriter, r *http.Request, role domainauth.Role) (*Principal, bool) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		// RequireAuth runs before these handlers; a missing principal means
		// the route was wired without it.
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     http.ErrNoCookie,
		})
		return nil, false
	}
	if principal.Role != role {
		http.Redirect(w, r, principal.DashboardPath(), http.StatusFound)
		return nil, false
	}
	return principal, true
}

func (h *DashboardHandlers) writeShell(w http.ResponseWriter, r *http.Request, p *Principal, cards []navCard, audience model.NotificationAudience) {
	WriteJSON(w, http.StatusOK, h.buildShell(r, p, cards, audience))
}

func (h *DashboardHandlers) buildShell(r *http.Request, p *Principal, cards []navCard, audience model.NotificationAudience) map[string]any {
	shell := map[string]any{
		"role": p.Role,
		"user": map[string]any{
			"first_name": p.FirstName,
			"last_name":  p.LastName,
			"email":      p.Email,
			"org_id":     p.OrgID,
		},
		"nav": cards,
	}
	if h.Notifications != nil && p.OrgID != "" {
		notifications, err := h.Notifications.ListFor(r.Context(), p.OrgID, audience)
		if err != nil {
			h.logger().WarnContext(r.Context(), "load notifications failed", "error", err)
		} else {
			shell["notifications"] = notifications
		}
	}
	return shell
}
