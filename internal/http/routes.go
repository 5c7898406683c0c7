package httpx

import (
	"log/slog"
	"net/http"

	"github.com/campushq/campushq-api/internal/core"
	domainauth "github.com/campushq/campushq-api/internal/domain/auth"
	"github.com/campushq/campushq-api/internal/service"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Auth          *service.AuthService
	StudentAuth   *service.StudentAuthService
	Tenants       *service.TenantService
	Orgs          *service.OrganizationService
	Students      *service.StudentService
	Notifications *service.NotificationService
	Settings      *service.SettingsService
	Exams         *service.ExamService

	// DB and Cache are checked by the readiness endpoint; nil skips a check.
	DB    Pinger
	Cache core.CacheRepository

	CookieDomain string
	BaseDomain   string
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Auth services are nil when Redis is unavailable; leaving the
	// interface fields unset keeps the nil checks meaningful.
	resolver := &SessionResolver{}
	if services.Auth != nil {
		resolver.Auth = services.Auth
	}
	if services.StudentAuth != nil {
		resolver.Students = services.StudentAuth
	}

	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Resolver:     resolver,
		Tenants:      services.Tenants,
		CookieDomain: services.CookieDomain,
		BaseDomain:   services.BaseDomain,
		Logger:       logger,
	}
	if services.Auth != nil {
		authHandlers.Svc = services.Auth
	}
	studentAuthHandlers := &StudentAuthHandlers{
		CookieDomain: services.CookieDomain,
	}
	if services.StudentAuth != nil {
		studentAuthHandlers.Svc = services.StudentAuth
	}
	tenantHandlers := &TenantHandlers{Tenants: services.Tenants}
	dashboardHandlers := &DashboardHandlers{
		Notifications: services.Notifications,
		Exams:         services.Exams,
		Students:      services.Students,
		Logger:        logger,
	}
	adminHandlers := &AdminHandlers{
		Orgs:          services.Orgs,
		Students:      services.Students,
		Notifications: services.Notifications,
		Settings:      services.Settings,
		Exams:         services.Exams,
	}
	readyHandlers := &ReadyHandlers{DB: services.DB, Cache: services.Cache}

	registerAuthRoutes(mux, authHandlers, studentAuthHandlers)
	registerTenantRoutes(mux, tenantHandlers)
	registerDashboardRoutes(mux, dashboardHandlers, resolver)
	registerAdminRoutes(mux, adminHandlers, resolver)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("GET /readyz", http.HandlerFunc(readyHandlers.Ready))

	return Chain(mux, Recover(logger), Logging(logger))
}

func registerAuthRoutes(mux *http.ServeMux, auth *AuthHandlers, students *StudentAuthHandlers) {
	mux.Handle("GET /auth/login", http.HandlerFunc(auth.Login))
	mux.Handle("GET /auth/callback", http.HandlerFunc(auth.Callback))
	mux.Handle("GET /auth/handoff", http.HandlerFunc(auth.Handoff))
	mux.Handle("GET /auth/logout", http.HandlerFunc(auth.Logout))
	mux.Handle("POST /auth/logout", http.HandlerFunc(auth.Logout))
	mux.Handle("GET /auth/status", http.HandlerFunc(auth.Status))
	mux.Handle("GET /session/bootstrap", http.HandlerFunc(auth.Bootstrap))

	mux.Handle("POST /students/auth", http.HandlerFunc(students.Login))
	mux.Handle("POST /students/logout", http.HandlerFunc(students.Logout))
}

func registerTenantRoutes(mux *http.ServeMux, h *TenantHandlers) {
	mux.Handle("GET /org/config", http.HandlerFunc(h.OrgConfig))
}

func registerDashboardRoutes(mux *http.ServeMux, h *DashboardHandlers, resolver *SessionResolver) {
	// Dashboards are browser pages: unauthenticated visitors go to the
	// login page rather than getting a JSON 401.
	authed := RequireAuthRedirect(resolver, "/auth/login")
	mux.Handle("GET /dashboard", authed(http.HandlerFunc(h.Admin)))
	mux.Handle("GET /teacher-dashboard", authed(http.HandlerFunc(h.Teacher)))
	mux.Handle("GET /student-dashboard", authed(http.HandlerFunc(h.Student)))

	// JSON listing endpoints the dashboard nav cards link to.
	api := RequireAuth(resolver)
	mux.Handle("GET /api/notifications", api(http.HandlerFunc(h.MyNotifications)))
	mux.Handle("GET /api/exams", api(http.HandlerFunc(h.OrgExams)))
	mux.Handle("GET /api/students", api(http.HandlerFunc(h.OrgStudents)))
	mux.Handle("GET /api/my/results", api(http.HandlerFunc(h.MyResults)))
}

func registerAdminRoutes(mux *http.ServeMux, h *AdminHandlers, resolver *SessionResolver) {
	admin := RequireRole(resolver, domainauth.RoleAdmin)
	handle := func(pattern string, hf http.HandlerFunc) {
		mux.Handle(pattern, admin(hf))
	}

	handle("POST /admin-portal/organizations", h.CreateOrganization)

	handle("GET /admin-portal/notifications", h.ListNotifications)
	handle("POST /admin-portal/notifications", h.CreateNotification)
	handle("PUT /admin-portal/notifications/{id}", h.UpdateNotification)
	handle("DELETE /admin-portal/notifications/{id}", h.DeleteNotification)

	handle("GET /admin-portal/settings", h.GetSettings)
	handle("PUT /admin-portal/settings", h.PutSettings)

	handle("GET /admin-portal/students", h.ListStudents)
	handle("POST /admin-portal/students", h.CreateStudent)
	handle("DELETE /admin-portal/students/{id}", h.DeleteStudent)

	handle("GET /admin-portal/exams", h.ListExams)
	handle("POST /admin-portal/exams", h.CreateExam)
	handle("GET /admin-portal/exams/{id}/results", h.ListResults)
	handle("POST /admin-portal/exams/{id}/results", h.RecordResult)
}
