package httpx

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/campushq/campushq-api/internal/core"
)

const healthResponse = `{"status":"ok"}`

// healthHandler returns a simple 200 OK status for liveness checks.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, healthResponse); err != nil {
		// Nothing more to do if the client connection is gone.
		return
	}
}

// Pinger is the slice of a database pool used by readiness checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadyHandlers backs the readiness endpoint with real dependency checks.
// Nil dependencies are skipped so partial wirings (e.g. tests) still work.
type ReadyHandlers struct {
	DB    Pinger
	Cache core.CacheRepository
}

// Ready reports whether the service can reach its database and cache.
// GET /readyz.
func (h *ReadyHandlers) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	if h.DB != nil {
		if err := h.DB.Ping(ctx); err != nil {
			checks["database"] = err.Error()
			healthy = false
		} else {
			checks["database"] = "ok"
		}
	}
	if h.Cache != nil {
		if err := h.Cache.Health(ctx); err != nil {
			checks["cache"] = err.Error()
			healthy = false
		} else {
			checks["cache"] = "ok"
		}
	}

	status := http.StatusOK
	state := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		state = "degraded"
	}
	WriteJSON(w, status, map[string]any{"status": state, "checks": checks})
}
