package get_facility_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/bookings"
)

const (
	msgInvalidParams    = "некорректные параметры запроса"
	msgInvalidStatus    = "некорректный статус, ожидается confirmed или cancelled"
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

// Handle GET /api/v1/admin/facilities/{facility}/bookings
// Query params: date, status, includeCancelled (опционально)
// Доступ только администратору (middleware RequireRole)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := domain.FacilityID(mux.Vars(r)["facility"])
	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(id, query.Get("date"), query.Get("status"), query.Get("includeCancelled"))
	if err != nil {
		h.logger.Warn("GET /admin/facilities/{facility}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetFacilityBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrFacilityNotFound):
			h.logger.Warn("GET /admin/facilities/{facility}/bookings - Facility not found: facility=%s", id)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/facilities/{facility}/bookings - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/facilities/{facility}/bookings - Failed to get bookings: facility=%s, error=%v",
				id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/facilities/{facility}/bookings - Bookings retrieved successfully: facility=%s, count=%d",
		id, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
