package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
)

type recordedRequest struct {
	method, path, status string
}

type fakeRecorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (f *fakeRecorder) RecordHTTPRequest(method, path, status string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, recordedRequest{method, path, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	recorder := &fakeRecorder{}

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(recorder))
	r.HandleFunc("/api/v1/facilities/{facility}/bookings/{bookingId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/facilities/playground/bookings/42", nil))

	require.Len(t, recorder.requests, 1)
	assert.Equal(t, recordedRequest{
		method: http.MethodGet,
		path:   "/api/v1/facilities/{facility}/bookings/{bookingId}",
		status: "404",
	}, recorder.requests[0])
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", rec.Header().Get(HeaderRequestID))
}

func TestRateLimit_PerClient(t *testing.T) {
	rl := NewRateLimiter(1, 2, time.Minute)
	h := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(remote string, userID int64) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remote
		if userID != 0 {
			req = req.WithContext(WithUser(req.Context(), userID, domain.RoleUser))
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234", 0))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:5678", 0))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:9999", 0))

	// другой клиент со своим лимитом
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1234", 0))

	// после Auth ключ - пользователь, а не IP
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234", 7))
}

func TestRateLimiter_Evict(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Minute)
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("ip:1"))
	assert.False(t, rl.Allow("ip:1"))

	now = now.Add(2 * time.Minute)
	rl.evict()
	assert.Empty(t, rl.visitors)
}

func TestClientKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "ip:203.0.113.9", clientKey(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:4000"
	assert.Equal(t, "ip:192.0.2.1", clientKey(req))
}
