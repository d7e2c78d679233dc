package get_parking_slots

import (
	"net/http"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
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

// Handle GET /api/v1/parking/available-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.AvailableSlots(r.Context())
	if err != nil {
		h.logger.Error("GET /parking/available-slots - Failed to get slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /parking/available-slots - Slots retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
