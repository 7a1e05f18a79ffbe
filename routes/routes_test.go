package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dosada05/volleyball-league/handlers"
	"github.com/Dosada05/volleyball-league/middleware"
	"github.com/Dosada05/volleyball-league/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(limiter *middleware.RateLimiter) *chi.Mux {
	router := chi.NewRouter()
	playoffs := services.NewPlayoffService(nil, nil, nil, nil, nil, nil)
	SetupRoutes(router, Handlers{
		Playoff: handlers.NewPlayoffHandler(playoffs),
	}, Options{AllowedOrigins: []string{"*"}, RateLimiter: limiter})
	return router
}

func TestRoutesServeTemplateAndHealth(t *testing.T) {
	router := newTestRouter(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/playoffs/template?teams=4", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"generator": "SeededWinners"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutesApplyRateLimit(t *testing.T) {
	router := newTestRouter(middleware.NewRateLimiter(1, 1, nil))

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/playoffs/template?teams=2", nil))
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/playoffs/template?teams=2", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	health := httptest.NewRecorder()
	router.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, health.Code, "health checks are not limited")
}
