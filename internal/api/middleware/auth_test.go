package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
)

const testSecret = "test-secret"

// echoUser отвечает ID и ролью из контекста
func echoUser(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r.Context())
		require.True(t, ok)
		role, ok := GetRole(r.Context())
		require.True(t, ok)
		w.Header().Set("X-Test-User", string(role)+":"+strconv.FormatInt(userID, 10))
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuth_Headers(t *testing.T) {
	h := Auth("")(echoUser(t))

	tests := []struct {
		name       string
		userID     string
		role       string
		wantStatus int
		wantUser   string
	}{
		{name: "user by default", userID: "7", wantStatus: http.StatusNoContent, wantUser: "user:7"},
		{name: "admin", userID: "1", role: "admin", wantStatus: http.StatusNoContent, wantUser: "admin:1"},
		{name: "security upper case", userID: "3", role: "SECURITY", wantStatus: http.StatusNoContent, wantUser: "security:3"},
		{name: "missing", wantStatus: http.StatusUnauthorized},
		{name: "not a number", userID: "abc", wantStatus: http.StatusUnauthorized},
		{name: "negative", userID: "-5", wantStatus: http.StatusUnauthorized},
		{name: "unknown role", userID: "7", role: "root", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.userID != "" {
				req.Header.Set(HeaderUserID, tt.userID)
			}
			if tt.role != "" {
				req.Header.Set(HeaderUserRole, tt.role)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantUser != "" {
				assert.Equal(t, tt.wantUser, rec.Header().Get("X-Test-User"))
			}
		})
	}
}

func TestAuth_JWT(t *testing.T) {
	h := Auth(testSecret)(echoUser(t))

	valid, err := NewToken(testSecret, 42, domain.RoleAdmin, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)

	expired, err := NewToken(testSecret, 42, domain.RoleAdmin, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	require.NoError(t, err)

	foreign, err := NewToken("other-secret", 42, domain.RoleAdmin, jwt.RegisteredClaims{})
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid", header: "Bearer " + valid, wantStatus: http.StatusNoContent},
		{name: "expired", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + foreign, wantStatus: http.StatusUnauthorized},
		{name: "no bearer", header: valid, wantStatus: http.StatusUnauthorized},
		{name: "missing", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			// заголовки gateway игнорируются при включённом JWT
			req.Header.Set(HeaderUserID, "1")
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, "admin:42", rec.Header().Get("X-Test-User"))
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := RequireRole(domain.RoleAdmin, domain.RoleSecurity)(ok)

	for role, want := range map[domain.Role]int{
		domain.RoleAdmin:    http.StatusOK,
		domain.RoleSecurity: http.StatusOK,
		domain.RoleUser:     http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithUser(req.Context(), 1, role))
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code, role)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
