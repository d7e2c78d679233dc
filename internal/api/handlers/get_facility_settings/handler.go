package get_facility_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/settings"
)

const (
	msgFacilityNotFound = "объект не найден"
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

// Handle GET /api/v1/facilities/{facility}/settings
// Публичный endpoint - без авторизации
// Без переопределений возвращаются встроенные правила объекта
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := domain.FacilityID(mux.Vars(r)["facility"])

	result, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, settings.ErrFacilityNotFound) {
			h.logger.Warn("GET /facilities/{facility}/settings - Facility not found: facility=%s", id)
			handlers.RespondNotFound(w, msgFacilityNotFound)
			return
		}

		h.logger.Error("GET /facilities/{facility}/settings - Failed to get settings: facility=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities/{facility}/settings - Settings retrieved successfully: facility=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
