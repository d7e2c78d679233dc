package release_parking_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/parking"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "одобренное место на парковке не найдено"
)

type Handler struct {
	service ParkingService
	logger  Logger
}

func NewHandler(service ParkingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/parking/release
// Освободить можно только одобренное место
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /parking/release - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Release(r.Context(), userID)
	if err != nil {
		if handlers.RespondFacilityError(w, err) {
			h.logger.Warn("POST /parking/release - Cannot release: user_id=%d, error=%v", userID, err)
			return
		}

		if errors.Is(err, parking.ErrAllocationNotFound) {
			h.logger.Warn("POST /parking/release - No approved slot: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("POST /parking/release - Failed to release slot: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /parking/release - Slot released successfully: allocation_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
