package get_my_parking_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/parking"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "активная заявка на парковку не найдена"
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

// Handle GET /api/v1/parking/requests/my
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /parking/requests/my - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetMySlot(r.Context(), userID)
	if err != nil {
		if errors.Is(err, parking.ErrAllocationNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /parking/requests/my - Failed to get allocation: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
