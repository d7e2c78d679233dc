package decide_parking_request

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/facility"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/parking"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/parking/models"
)

type fakeService struct {
	calls []string
	err   error
}

func (f *fakeService) Approve(_ context.Context, id int64) (*models.AllocationResponse, error) {
	return f.decide("approve", id, domain.ParkingApproved)
}

func (f *fakeService) Reject(_ context.Context, id int64) (*models.AllocationResponse, error) {
	return f.decide("reject", id, domain.ParkingRejected)
}

func (f *fakeService) decide(action string, id int64, to domain.ParkingStatus) (*models.AllocationResponse, error) {
	f.calls = append(f.calls, fmt.Sprintf("%s:%d", action, id))
	if f.err != nil {
		return nil, f.err
	}
	return &models.AllocationResponse{ID: id, Status: string(to)}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRequest(requestID, action string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/parking/requests/"+requestID+"/"+action, nil)
	return mux.SetURLVars(req, map[string]string{"requestId": requestID, "action": action})
}

func TestHandle_Actions(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("5", ActionApprove))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"approved"`)

	rec = httptest.NewRecorder()
	h.Handle(rec, newRequest("5", ActionReject))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"rejected"`)

	assert.Equal(t, []string{"approve:5", "reject:5"}, svc.calls)
}

func TestHandle_BadPath(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("x", ActionApprove))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, newRequest("5", "release"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, svc.calls)
}

func TestHandle_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid transition", fmt.Errorf("%w: released -> approved", facility.ErrInvalidTransition), http.StatusConflict, handlers.CodeInvalidTransition},
		{"not found", parking.ErrAllocationNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{"internal", errors.New("boom"), http.StatusInternalServerError, handlers.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest("9", ActionApprove))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
		})
	}
}
