package get_booking

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
	called    bool
	facility  domain.FacilityID
	bookingID int64
	caller    models.Caller
	resp      *models.BookingResponse
	err       error
}

func (f *fakeService) GetByID(_ context.Context, id domain.FacilityID, bookingID int64, caller models.Caller) (*models.BookingResponse, error) {
	f.called = true
	f.facility = id
	f.bookingID = bookingID
	f.caller = caller
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRequest(facilityID, bookingID string, userID int64, role domain.Role) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/facilities/"+facilityID+"/bookings/"+bookingID, nil)
	req = mux.SetURLVars(req, map[string]string{"facility": facilityID, "bookingId": bookingID})
	if userID != 0 {
		req = req.WithContext(middleware.WithUser(req.Context(), userID, role))
	}
	return req
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{resp: &models.BookingResponse{ID: 15, Facility: domain.FacilityMeetingHall, UserID: 42, CanCancel: true}}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("meeting-hall", "15", 42, domain.RoleUser))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.FacilityMeetingHall, svc.facility)
	assert.Equal(t, int64(15), svc.bookingID)
	assert.Equal(t, models.Caller{UserID: 42, Role: domain.RoleUser}, svc.caller)

	var body models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(15), body.ID)
	assert.True(t, body.CanCancel)
}

func TestHandle_StaffRoleIsPassedThrough(t *testing.T) {
	svc := &fakeService{resp: &models.BookingResponse{ID: 15}}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("playground", "15", 1, domain.RoleAdmin))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.RoleAdmin, svc.caller.Role)
}

func TestHandle_RequestErrors(t *testing.T) {
	tests := []struct {
		name      string
		bookingID string
		userID    int64
		status    int
		code      string
	}{
		{"bad booking id", "abc", 42, http.StatusBadRequest, handlers.CodeBadRequest},
		{"no user", "15", 0, http.StatusUnauthorized, handlers.CodeUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			h := NewHandler(svc, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest("playground", tt.bookingID, tt.userID, domain.RoleUser))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
			assert.False(t, svc.called, "service must not be called")
		})
	}
}

func TestHandle_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"facility", bookings.ErrFacilityNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{"booking", bookings.ErrBookingNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{"foreign booking", bookings.ErrAccessDenied, http.StatusForbidden, handlers.CodeForbidden},
		{"internal", errors.New("db down"), http.StatusInternalServerError, handlers.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest("playground", "15", 42, domain.RoleUser))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
		})
	}
}
