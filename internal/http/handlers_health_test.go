package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type stubCache struct{ err error }

func (c stubCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (c stubCache) Get(context.Context, string) ([]byte, error)              { return nil, nil }
func (c stubCache) Delete(context.Context, string) (bool, error)             { return false, nil }
func (c stubCache) Health(context.Context) error                             { return c.err }

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	healthHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHealthHandler_HeadHasNoBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodHead, "/healthz", nil)
	rec := httptest.NewRecorder()
	healthHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestReadyHandlers_AllHealthy(t *testing.T) {
	h := &ReadyHandlers{DB: stubPinger{}, Cache: stubCache{}}

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"status":"ok"`)
	assert.Contains(t, body, `"database":"ok"`)
	assert.Contains(t, body, `"cache":"ok"`)
}

func TestReadyHandlers_DegradedOnDBFailure(t *testing.T) {
	h := &ReadyHandlers{DB: stubPinger{err: errors.New("connection refused")}, Cache: stubCache{}}

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"status":"degraded"`)
	assert.Contains(t, body, "connection refused")
}

func TestReadyHandlers_SkipsAbsentDependencies(t *testing.T) {
	h := &ReadyHandlers{}

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
