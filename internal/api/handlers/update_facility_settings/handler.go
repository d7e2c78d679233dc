package update_facility_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/settings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgFacilityNotFound   = "объект не найден"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/facilities/{facility}/settings
// Доступ только администратору (middleware RequireRole)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := domain.FacilityID(mux.Vars(r)["facility"])

	var req UpdateFacilitySettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /facilities/{facility}/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /facilities/{facility}/settings - Validation failed: %v", err)
		handlers.RespondValidationError(w, err)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(id))
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrFacilityNotFound):
			h.logger.Warn("PUT /facilities/{facility}/settings - Facility not found: facility=%s", id)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /facilities/{facility}/settings - Invalid data: facility=%s, error=%v", id, err)
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("PUT /facilities/{facility}/settings - Failed to update settings: facility=%s, error=%v",
				id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /facilities/{facility}/settings - Settings updated successfully: facility=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
