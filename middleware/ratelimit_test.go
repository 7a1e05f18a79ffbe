package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newRequest(remote string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.RemoteAddr = remote
	return req
}

func TestRateLimiterRejectsOverBurst(t *testing.T) {
	now := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 2, nil)
	rl.now = func() time.Time { return now }

	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest("10.0.0.1:5000"))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest("10.0.0.2:5000"))
	assert.Equal(t, http.StatusOK, rec.Code, "other clients have their own bucket")

	now = now.Add(time.Second)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest("10.0.0.1:6000"))
	assert.Equal(t, http.StatusOK, rec.Code, "tokens refill over time")
}

func TestRateLimiterRetryAfter(t *testing.T) {
	rl := NewRateLimiter(0.5, 1, nil)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), newRequest("10.0.0.1:1"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest("10.0.0.1:1"))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "3", rec.Header().Get("Retry-After"))
}

func TestRateLimiterCleanup(t *testing.T) {
	now := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(5, 5, nil)
	rl.now = func() time.Time { return now }

	rl.limiterFor("a")
	now = now.Add(2 * time.Minute)
	rl.limiterFor("b")
	now = now.Add(2 * time.Minute)

	assert.Equal(t, 1, rl.Cleanup())
	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "b")
}
