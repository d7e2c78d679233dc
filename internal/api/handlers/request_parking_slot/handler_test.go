package request_parking_slot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/facility"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/parking"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/parking/models"
)

type fakeService struct {
	got *models.RequestSlotRequest
	err error
}

func (f *fakeService) RequestSlot(_ context.Context, req *models.RequestSlotRequest) (*models.AllocationResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AllocationResponse{
		ID:            1,
		UserID:        req.UserID,
		SlotID:        req.SlotID,
		VehicleNumber: req.VehicleNumber,
		VehicleType:   req.VehicleType,
		Status:        string(domain.ParkingPending),
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRequest(body string, userID int64) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parking/requests", strings.NewReader(body))
	if userID != 0 {
		req = req.WithContext(middleware.WithUser(req.Context(), userID, domain.RoleUser))
	}
	return req
}

func TestHandle_Created(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(`{"slotId":"P003","vehicleNumber":"ka01ab1234","vehicleType":"Car"}`, 42))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, &models.RequestSlotRequest{
		UserID:        42,
		SlotID:        "P003",
		VehicleNumber: "ka01ab1234",
		VehicleType:   "Car",
	}, svc.got)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestHandle_InvalidBody(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		userID int64
		status int
		code   string
	}{
		{"no user", `{"slotId":"P001","vehicleNumber":"X","vehicleType":"Car"}`, 0, http.StatusUnauthorized, handlers.CodeUnauthorized},
		{"broken json", `{"slotId":`, 42, http.StatusBadRequest, handlers.CodeBadRequest},
		{"missing slot", `{"vehicleNumber":"X","vehicleType":"Car"}`, 42, http.StatusBadRequest, handlers.CodeValidation},
		{"unknown vehicle type", `{"slotId":"P001","vehicleNumber":"X","vehicleType":"Truck"}`, 42, http.StatusBadRequest, handlers.CodeValidation},
		{"long number", `{"slotId":"P001","vehicleNumber":"` + strings.Repeat("9", 21) + `","vehicleType":"SUV"}`, 42, http.StatusBadRequest, handlers.CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			h := NewHandler(svc, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(tt.body, tt.userID))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
			assert.Nil(t, svc.got)
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
		{"slot taken", facility.ErrCapacityExceeded, http.StatusConflict, handlers.CodeCapacityExceeded},
		{"already holds a slot", facility.ErrDuplicateBooking, http.StatusConflict, handlers.CodeDuplicateBooking},
		{"unknown slot", facility.ErrUnknownParkingSlot, http.StatusBadRequest, handlers.CodeValidation},
		{"user not found", parking.ErrUserNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{"directory down", fmt.Errorf("%w: timeout", parking.ErrUpstream), http.StatusInternalServerError, handlers.CodeUpstream},
		{"internal", errors.New("boom"), http.StatusInternalServerError, handlers.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(`{"slotId":"P001","vehicleNumber":"KA01","vehicleType":"Scooter"}`, 42))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
		})
	}
}
