package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	domainauth "github.com/campushq/campushq-api/internal/domain/auth"
	"github.com/campushq/campushq-api/internal/domain/model"
	"github.com/campushq/campushq-api/internal/mocks"
	"github.com/campushq/campushq-api/internal/service"
)

func requestWithPrincipal(method, target string, p *Principal) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(SetPrincipalInContext(req.Context(), p))
}

func TestDashboardHandlers_CrossRoleRedirects(t *testing.T) {
	h := &DashboardHandlers{}

	cases := []struct {
		name    string
		role    domainauth.Role
		student bool
		handler http.HandlerFunc
		want    string
	}{
		{"student on admin dashboard", domainauth.RoleStudent, true, h.Admin, "/student-dashboard"},
		{"teacher on admin dashboard", domainauth.RoleTeacher, false, h.Admin, "/teacher-dashboard"},
		{"admin on student dashboard", domainauth.RoleAdmin, false, h.Student, "/dashboard"},
		{"student on teacher dashboard", domainauth.RoleStudent, true, h.Teacher, "/student-dashboard"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Principal{Role: tc.role, Student: tc.student, OrgID: "org-1"}
			rec := httptest.NewRecorder()
			tc.handler(rec, requestWithPrincipal(http.MethodGet, "/", p))

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tc.want, rec.Header().Get("Location"))
		})
	}
}

func TestDashboardHandlers_Admin_Shell(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockNotificationRepository(ctrl)
	repo.EXPECT().
		List(gomock.Any(), "org-1", model.AudienceAll).
		Return([]model.Notification{{ID: "n1", Title: "Exam week"}}, nil)

	h := &DashboardHandlers{
		Notifications: service.NewNotificationService(service.NotificationServiceOptions{Notifications: repo}),
	}

	p := &Principal{Role: domainauth.RoleAdmin, OrgID: "org-1", FirstName: "Ama"}
	rec := httptest.NewRecorder()
	h.Admin(rec, requestWithPrincipal(http.MethodGet, "/dashboard", p))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"role":"admin"`)
	assert.Contains(t, body, "Exam week")
	assert.Contains(t, body, "/admin-portal/settings")
}

func TestDashboardHandlers_Student_IncludesResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	examRepo := mocks.NewMockExamRepository(ctrl)
	examRepo.EXPECT().
		ListResultsByStudent(gomock.Any(), "student-1").
		Return([]model.ExamResult{{ID: "r1", ExamID: "exam-1", Score: 42, Grade: "B"}}, nil)

	h := &DashboardHandlers{
		Exams: service.NewExamService(service.ExamServiceOptions{Exams: examRepo}),
	}

	p := &Principal{Role: domainauth.RoleStudent, Student: true, StudentID: "student-1"}
	rec := httptest.NewRecorder()
	h.Student(rec, requestWithPrincipal(http.MethodGet, "/student-dashboard", p))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"grade":"B"`)
	assert.Contains(t, body, "/api/my/results")
}

func TestDashboardHandlers_Unauthenticated(t *testing.T) {
	h := &DashboardHandlers{}
	rec := httptest.NewRecorder()
	h.Admin(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
