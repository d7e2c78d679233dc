package request_parking_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/parking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgUserNotFound       = "пользователь не найден"
	msgUpstream           = "справочник пользователей недоступен"
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

// Handle POST /api/v1/parking/requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /parking/requests - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RequestParkingSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /parking/requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /parking/requests - Validation failed: %v", err)
		handlers.RespondValidationError(w, err)
		return
	}

	result, err := h.service.RequestSlot(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		if handlers.RespondFacilityError(w, err) {
			h.logger.Warn("POST /parking/requests - Rejected: user_id=%d, slot=%s, error=%v", userID, req.SlotID, err)
			return
		}

		switch {
		case errors.Is(err, parking.ErrUserNotFound):
			h.logger.Warn("POST /parking/requests - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, parking.ErrUpstream):
			h.logger.Error("POST /parking/requests - User directory unavailable: %v", err)
			handlers.RespondUpstreamError(w, msgUpstream)

		default:
			h.logger.Error("POST /parking/requests - Failed to request slot: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /parking/requests - Request created successfully: allocation_id=%d, user_id=%d, slot=%s",
		result.ID, userID, result.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
