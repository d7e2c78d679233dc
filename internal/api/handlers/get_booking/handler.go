package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/bookings"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/bookings/models"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgFacilityNotFound = "объект не найден"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgForbidden        = "доступ запрещен"
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

// Handle GET /api/v1/facilities/{facility}/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := domain.FacilityID(vars["facility"])

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{facility}/bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Получаем пользователя из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /facilities/{facility}/bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetRole(r.Context())

	// Получаем бронирование (сервис сам проверит права доступа)
	booking, err := h.service.GetByID(r.Context(), id, bookingID, models.Caller{UserID: userID, Role: role})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{facility}/bookings/{id} - Facility not found: facility=%s", id)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /facilities/{facility}/bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /facilities/{facility}/bookings/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /facilities/{facility}/bookings/{id} - Failed to get booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{facility}/bookings/{id} - Booking retrieved successfully: booking_id=%d, user_id=%d",
		bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
