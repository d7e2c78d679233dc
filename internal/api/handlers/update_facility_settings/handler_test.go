package update_facility_settings

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/settings"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/settings/models"
)

type fakeService struct {
	got *models.UpdateSettingsRequest
	err error
}

func (f *fakeService) Update(_ context.Context, req *models.UpdateSettingsRequest) (*models.FacilityResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.FacilityResponse{ID: req.Facility, Capacity: *req.Capacity}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRequest(facilityID, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/facilities/"+facilityID+"/settings", strings.NewReader(body))
	return mux.SetURLVars(req, map[string]string{"facility": facilityID})
}

func TestHandle_Updated(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("swimming-pool", `{"capacity":25,"cancelCutoffMinutes":30}`))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, 25, *svc.got.Capacity)
	assert.Equal(t, 30, *svc.got.CancelCutoffMinutes)
	assert.Nil(t, svc.got.AdvanceNoticeDays)
	assert.Contains(t, rec.Body.String(), `"capacity":25`)
}

func TestHandle_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
		code   string
	}{
		{"broken json", `{"capacity":`, nil, http.StatusBadRequest, handlers.CodeBadRequest},
		{"zero capacity", `{"capacity":0}`, nil, http.StatusBadRequest, handlers.CodeValidation},
		{"negative notice", `{"advanceNoticeDays":-1}`, nil, http.StatusBadRequest, handlers.CodeValidation},
		{"service validation", `{"capacity":5}`, fmt.Errorf("%w: capacity is fixed for party-hall", settings.ErrInvalidInput), http.StatusBadRequest, handlers.CodeValidation},
		{"unknown facility", `{"capacity":5}`, settings.ErrFacilityNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{"internal", `{"capacity":5}`, errors.New("db down"), http.StatusInternalServerError, handlers.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest("party-hall", tt.body))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
		})
	}
}
