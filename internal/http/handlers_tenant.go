package httpx

import (
	"errors"
	"net/http"

	"github.com/campushq/campushq-api/internal/service"
)

// TenantHandlers serves the public per-tenant configuration.
type TenantHandlers struct {
	Tenants *service.TenantService
}

// OrgConfig returns the assembled public configuration for the tenant at the
// request's subdomain.
// GET /org/config.
//
// An unknown subdomain is a terminal state: the response says so and the
// client renders "no data available" rather than retrying.
func (h *TenantHandlers) OrgConfig(w http.ResponseWriter, r *http.Request) {
	subdomain := r.URL.Query().Get("subdomain")
	if subdomain == "" {
		subdomain = h.Tenants.Subdomain(r.Host)
	}

	cfg, err := h.Tenants.LoadOrganizationConfig(r.Context(), subdomain)
	if err != nil {
		if errors.Is(err, service.ErrOrganizationNotFound) {
			WriteJSON(w, http.StatusNotFound, map[string]any{
				"error":     "organization_not_found",
				"message":   "no data available for this subdomain",
				"subdomain": subdomain,
				"terminal":  true,
			})
			return
		}
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "config_load_failed",
			Err:     err,
		})
		return
	}

	WriteJSON(w, http.StatusOK, cfg)
}
