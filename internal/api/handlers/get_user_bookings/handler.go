package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/bookings"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/bookings/models"
)

const (
	msgMissingUserID    = "отсутствует ID пользователя"
	msgFacilityNotFound = "объект не найден"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facility}/bookings/my
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := domain.FacilityID(mux.Vars(r)["facility"])

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /facilities/{facility}/bookings/my - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), &models.GetUserBookingsRequest{
		UserID:   userID,
		Facility: id,
	})
	if err != nil {
		if errors.Is(err, bookings.ErrFacilityNotFound) {
			h.logger.Warn("GET /facilities/{facility}/bookings/my - Facility not found: facility=%s", id)
			handlers.RespondNotFound(w, msgFacilityNotFound)
			return
		}
		h.logger.Error("GET /facilities/{facility}/bookings/my - Failed to get bookings: user_id=%d, error=%v",
			userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities/{facility}/bookings/my - Bookings retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
