package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AmenityBooking/internal/facility"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRespondFacilityError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", &facility.ValidationError{Field: "partySize", Reason: "must be between 1 and 10"}, http.StatusBadRequest, CodeValidation},
		{"capacity", facility.ErrCapacityExceeded, http.StatusConflict, CodeCapacityExceeded},
		{"duplicate", facility.ErrDuplicateBooking, http.StatusConflict, CodeDuplicateBooking},
		{"advance notice", facility.ErrAdvanceNotice, http.StatusBadRequest, CodeAdvanceNotice},
		{"window closed", facility.ErrCancellationWindowClosed, http.StatusBadRequest, CodeWindowClosed},
		{"already cancelled", facility.ErrAlreadyCancelled, http.StatusBadRequest, CodeAlreadyCancelled},
		{"wrapped transition", fmt.Errorf("%w: pending -> released", facility.ErrInvalidTransition), http.StatusConflict, CodeInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			handled := RespondFacilityError(rec, tt.err)

			require.True(t, handled)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestRespondFacilityError_ValidationMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondFacilityError(rec, &facility.ValidationError{Field: "date", Reason: "date is in the past"})

	assert.Equal(t, "date: date is in the past", decodeError(t, rec).Error)
}

func TestRespondFacilityError_NotEngineError(t *testing.T) {
	rec := httptest.NewRecorder()

	handled := RespondFacilityError(rec, errors.New("db down"))

	assert.False(t, handled)
	assert.Empty(t, rec.Body.String())
}

func TestRespondUpstreamError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondUpstreamError(rec, "справочник недоступен")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, CodeUpstream, decodeError(t, rec).Code)
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"pool","extra":1}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "pool", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	assert.ErrorIs(t, DecodeJSON(req, &v), ErrEmptyBody)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Error(t, DecodeJSON(req, &v))
}

func TestValidate(t *testing.T) {
	type payload struct {
		SlotID      string `validate:"required"`
		VehicleType string `validate:"required,oneof=Car SUV"`
		Count       int    `validate:"gte=1,lte=5"`
	}

	assert.NoError(t, Validate(&payload{SlotID: "P001", VehicleType: "Car", Count: 2}))

	err := Validate(&payload{VehicleType: "Truck", Count: 9})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slotID is required")
	assert.Contains(t, err.Error(), "vehicleType must be one of [Car SUV]")
	assert.Contains(t, err.Error(), "count must be at most 5")
}
