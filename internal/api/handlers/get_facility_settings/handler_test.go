package get_facility_settings

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
	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/settings"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/settings/models"
)

type fakeService struct {
	got  domain.FacilityID
	resp *models.FacilityResponse
	err  error
}

func (f *fakeService) Get(_ context.Context, id domain.FacilityID) (*models.FacilityResponse, error) {
	f.got = id
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRequest(facilityID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/facilities/"+facilityID+"/settings", nil)
	return mux.SetURLVars(req, map[string]string{"facility": facilityID})
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{resp: &models.FacilityResponse{
		ID:                 domain.FacilitySwimmingPool,
		Kind:               "time-slot",
		CapacityKind:       "shared",
		Capacity:           30,
		UnitsFromPartySize: true,
		PartySizeField:     "numberOfPeople",
		PartySizeMin:       1,
	}}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("swimming-pool"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.FacilitySwimmingPool, svc.got)

	var body models.FacilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 30, body.Capacity)
	assert.True(t, body.UnitsFromPartySize)
	assert.NotContains(t, rec.Body.String(), "partySizeMax")
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"unknown facility", settings.ErrFacilityNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{"internal", errors.New("db down"), http.StatusInternalServerError, handlers.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest("sauna"))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
		})
	}
}
