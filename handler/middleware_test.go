package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emzola/bookstore/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimit(t *testing.T) {
	routes := newTestHandler(t, func(cfg *config.Config) {
		cfg.Limiter.Enabled = true
		cfg.Limiter.RPS = 0.001
		cfg.Limiter.Burst = 1
	}).Routes()

	assert.Equal(t, http.StatusOK, do(t, routes, http.MethodGet, "/books", "").Code)
	assertFailure(t, do(t, routes, http.MethodGet, "/books", ""), http.StatusTooManyRequests, "rate limit exceeded")

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.RemoteAddr = "198.51.100.7:4321"
	rr := httptest.NewRecorder()
	routes.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRecoverPanic(t *testing.T) {
	h := newTestHandler(t, nil)
	panicking := h.recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	panicking.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assertFailure(t, rr, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
	assert.Equal(t, "close", rr.Header().Get("Connection"))
}

func TestRequestID(t *testing.T) {
	routes := newTestHandler(t, nil).Routes()

	rr := do(t, routes, http.MethodGet, "/books", "")
	assert.Len(t, rr.Header().Get("X-Request-ID"), 36)

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr = httptest.NewRecorder()
	routes.ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-ID"))
}

func TestEnableCORS(t *testing.T) {
	routes := newTestHandler(t, func(cfg *config.Config) {
		cfg.Cors.TrustedOrigins = []string{"http://localhost:3000"}
	}).Routes()

	req := httptest.NewRequest(http.MethodOptions, "/books/1", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rr := httptest.NewRecorder()
	routes.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)

	req = httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Origin", "http://evil.test")
	rr = httptest.NewRecorder()
	routes.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestDebugVarsRequiresBasicAuth(t *testing.T) {
	routes := newTestHandler(t, func(cfg *config.Config) {
		cfg.Metrics.Enabled = true
		cfg.BasicAuth.Username = "admin"
		cfg.BasicAuth.Password = "secret"
	}).Routes()

	assertFailure(t, do(t, routes, http.MethodGet, "/debug/vars", ""), http.StatusUnauthorized, "invalid authentication credentials")

	req := httptest.NewRequest(http.MethodGet, "/debug/vars", nil)
	req.SetBasicAuth("admin", "secret")
	rr := httptest.NewRecorder()
	routes.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "total_requests_received")
}

func TestDebugVarsHiddenWithoutMetrics(t *testing.T) {
	routes := newTestHandler(t, nil).Routes()
	assertFailure(t, do(t, routes, http.MethodGet, "/debug/vars", ""), http.StatusNotFound, "")
}
