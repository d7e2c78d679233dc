package get_user_bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/bookings"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/bookings/models"
)

type fakeService struct {
	got  *models.GetUserBookingsRequest
	resp *models.BookingListResponse
	err  error
}

func (f *fakeService) GetUserBookings(_ context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRequest(facilityID string, userID int64) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/facilities/"+facilityID+"/bookings/my", nil)
	req = mux.SetURLVars(req, map[string]string{"facility": facilityID})
	if userID != 0 {
		req = req.WithContext(middleware.WithUser(req.Context(), userID, domain.RoleUser))
	}
	return req
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{resp: &models.BookingListResponse{Bookings: []models.BookingResponse{{ID: 1}, {ID: 2}}}}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("swimming-pool", 42))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, int64(42), svc.got.UserID)
	assert.Equal(t, domain.FacilitySwimmingPool, svc.got.Facility)

	var body models.BookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Bookings, 2)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		userID int64
		err    error
		status int
		code   string
	}{
		{"no user", 0, nil, http.StatusUnauthorized, handlers.CodeUnauthorized},
		{"facility", 42, bookings.ErrFacilityNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{"internal", 42, errors.New("db down"), http.StatusInternalServerError, handlers.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest("parking", tt.userID))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
		})
	}
}
