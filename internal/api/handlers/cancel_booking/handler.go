package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "бронирование не найдено"
	msgFacilityNotFound = "объект не найден"
	msgForbidden        = "отменить бронирование может только его владелец"
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

// Handle PATCH /api/v1/facilities/{facility}/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := domain.FacilityID(vars["facility"])

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /facilities/{facility}/bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /facilities/{facility}/bookings/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Cancel(r.Context(), ToServiceRequest(userID, id, bookingID))
	if err != nil {
		if handlers.RespondFacilityError(w, err) {
			h.logger.Warn("PATCH /facilities/{facility}/bookings/{id}/cancel - Cannot cancel: booking_id=%d, error=%v", bookingID, err)
			return
		}

		switch {
		case errors.Is(err, bookings.ErrFacilityNotFound):
			h.logger.Warn("PATCH /facilities/{facility}/bookings/{id}/cancel - Facility not found: facility=%s", id)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /facilities/{facility}/bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /facilities/{facility}/bookings/{id}/cancel - Access denied: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PATCH /facilities/{facility}/bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /facilities/{facility}/bookings/{id}/cancel - Booking cancelled successfully: booking_id=%d, user_id=%d",
		bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
