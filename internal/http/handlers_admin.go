package httpx

import (
	"errors"
	"net/http"

	"github.com/campushq/campushq-api/internal/data"
	"github.com/campushq/campushq-api/internal/domain/model"
	apperrors "github.com/campushq/campushq-api/internal/errors"
	"github.com/campushq/campushq-api/internal/service"
)

// AdminHandlers provides the /admin-portal CRUD surface. All handlers run
// behind RequireRole(admin); list and create operations are scoped to the
// principal's organization, never to a client-supplied org ID.
type AdminHandlers struct {
	Orgs          *service.OrganizationService
	Students      *service.StudentService
	Notifications *service.NotificationService
	Settings      *service.SettingsService
	Exams         *service.ExamService
}

// CreateOrganization registers a new tenant.
// POST /admin-portal/organizations.
func (h *AdminHandlers) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	var org *model.Organization
	if !DecodeJSON(w, r, &org) {
		return
	}

	created, err := h.Orgs.Create(r.Context(), org)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrSubdomainExists):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "subdomain_conflict", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusCreated, created)
}

// ListNotifications returns every notification for the admin's organization.
// GET /admin-portal/notifications.
func (h *AdminHandlers) ListNotifications(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	list, err := h.Notifications.ListFor(r.Context(), principal.OrgID, model.AudienceAll)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"notifications": list})
}

// CreateNotification publishes a new announcement for the admin's organization.
// POST /admin-portal/notifications.
func (h *AdminHandlers) CreateNotification(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req *model.CreateNotificationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	req.OrgID = principal.OrgID

	created, err := h.Notifications.Create(r.Context(), req)
	if err != nil {
		writeCrudError(w, err, "create_failed")
		return
	}

	WriteJSON(w, http.StatusCreated, created)
}

// UpdateNotification applies a partial update to one announcement.
// PUT /admin-portal/notifications/{id}.
func (h *AdminHandlers) UpdateNotification(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if !h.ownsNotification(w, r, principal, id) {
		return
	}

	var req *model.UpdateNotificationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	updated, err := h.Notifications.Update(r.Context(), id, req)
	if err != nil {
		writeCrudError(w, err, "update_failed")
		return
	}

	WriteJSON(w, http.StatusOK, updated)
}

// DeleteNotification removes one announcement.
// DELETE /admin-portal/notifications/{id}.
func (h *AdminHandlers) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if !h.ownsNotification(w, r, principal, id) {
		return
	}

	if err := h.Notifications.Delete(r.Context(), id); err != nil {
		writeCrudError(w, err, "delete_failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ownsNotification verifies the notification exists and belongs to the
// admin's organization. Cross-tenant IDs report not found rather than
// forbidden so they don't confirm the record exists.
func (h *AdminHandlers) ownsNotification(w http.ResponseWriter, r *http.Request, p *Principal, id string) bool {
	existing, err := h.Notifications.GetByID(r.Context(), id)
	if err != nil {
		writeCrudError(w, err, "lookup_failed")
		return false
	}
	if existing.OrgID != p.OrgID {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: data.ErrNotificationNotFound})
		return false
	}
	return true
}

// GetSettings returns the admin's school settings, empty if never saved.
// GET /admin-portal/settings.
func (h *AdminHandlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	settings, err := h.Settings.Get(r.Context(), principal.OrgID)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "lookup_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, settings)
}

// PutSettings creates or replaces the admin's school settings.
// PUT /admin-portal/settings.
func (h *AdminHandlers) PutSettings(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var settings *model.SchoolSettings
	if !DecodeJSON(w, r, &settings) {
		return
	}
	if settings == nil {
		settings = &model.SchoolSettings{}
	}
	settings.OrgID = principal.OrgID

	saved, err := h.Settings.Put(r.Context(), settings)
	if err != nil {
		writeCrudError(w, err, "save_failed")
		return
	}

	WriteJSON(w, http.StatusOK, saved)
}

// ListStudents returns every student in the admin's organization.
// GET /admin-portal/students.
func (h *AdminHandlers) ListStudents(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	list, err := h.Students.List(r.Context(), principal.OrgID)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"students": list})
}

// CreateStudent enrolls a student and echoes back the derived login
// credentials so the admin can hand them out.
// POST /admin-portal/students.
func (h *AdminHandlers) CreateStudent(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req *model.CreateStudentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	req.OrgID = principal.OrgID

	created, err := h.Students.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrStudentEmailExists):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "email_conflict", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{
		"student": created,
		"credentials": map[string]string{
			"username": created.Username(),
			"password": service.FormatDateOfBirth(created.DateOfBirth),
		},
	})
}

// DeleteStudent removes a student record.
// DELETE /admin-portal/students/{id}.
func (h *AdminHandlers) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	existing, err := h.Students.GetByID(r.Context(), id)
	if err != nil {
		writeCrudError(w, err, "lookup_failed")
		return
	}
	if existing.OrgID != principal.OrgID {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: data.ErrStudentNotFound})
		return
	}

	if err := h.Students.Delete(r.Context(), id); err != nil {
		writeCrudError(w, err, "delete_failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListExams returns every exam for the admin's organization.
// GET /admin-portal/exams.
func (h *AdminHandlers) ListExams(w http.ResponseWriter, r *http.Request) {
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

// CreateExam schedules a new exam for the admin's organization.
// POST /admin-portal/exams.
func (h *AdminHandlers) CreateExam(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req *model.CreateExamRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	req.OrgID = principal.OrgID

	created, err := h.Exams.CreateExam(r.Context(), req)
	if err != nil {
		writeCrudError(w, err, "create_failed")
		return
	}

	WriteJSON(w, http.StatusCreated, created)
}

// ListResults returns the recorded results for one exam.
// GET /admin-portal/exams/{id}/results.
func (h *AdminHandlers) ListResults(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	examID := r.PathValue("id")
	if !h.ownsExam(w, r, principal, examID) {
		return
	}

	list, err := h.Exams.ListResultsByExam(r.Context(), examID)
	if err != nil {
		writeCrudError(w, err, "list_failed")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"results": list})
}

// RecordResult records one student's score for an exam. The grade is
// derived from the score unless explicitly supplied.
// POST /admin-portal/exams/{id}/results.
func (h *AdminHandlers) RecordResult(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	examID := r.PathValue("id")
	if !h.ownsExam(w, r, principal, examID) {
		return
	}

	var req *model.CreateResultRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Exams.RecordResult(r.Context(), examID, req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrResultExists):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "result_conflict", Err: err})
		default:
			writeCrudError(w, err, "create_failed")
		}
		return
	}

	WriteJSON(w, http.StatusCreated, result)
}

func (h *AdminHandlers) ownsExam(w http.ResponseWriter, r *http.Request, p *Principal, examID string) bool {
	exam, err := h.Exams.GetExam(r.Context(), examID)
	if err != nil {
		writeCrudError(w, err, "lookup_failed")
		return false
	}
	if exam.OrgID != p.OrgID {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: data.ErrExamNotFound})
		return false
	}
	return true
}

// requirePrincipal pulls the authenticated principal out of the request
// context. Admin routes run behind RequireRole, so a miss is a wiring bug.
func requirePrincipal(w http.ResponseWriter, r *http.Request) (*Principal, bool) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("no authenticated session"),
		})
		return nil, false
	}
	return principal, true
}

// writeCrudError maps common repository and validation failures onto HTTP
// statuses shared across the admin CRUD handlers.
func writeCrudError(w http.ResponseWriter, err error, fallbackCode string) {
	switch {
	case errors.Is(err, data.ErrOrgNotFound),
		errors.Is(err, data.ErrStudentNotFound),
		errors.Is(err, data.ErrNotificationNotFound),
		errors.Is(err, data.ErrSettingsNotFound),
		errors.Is(err, data.ErrExamNotFound):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err})
	case isValidationError(err):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
	case errors.As(err, new(*apperrors.AppError)):
		WriteAppError(w, err)
	default:
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: fallbackCode, Err: err})
	}
}
