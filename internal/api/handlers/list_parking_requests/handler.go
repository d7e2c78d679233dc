package list_parking_requests

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/parking"
)

const (
	msgInvalidStatus = "некорректный статус, ожидается pending, approved, rejected или released"
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

// Handle GET /api/v1/admin/parking/requests
// Query params: status (опционально)
// Доступ администратору и охране (middleware RequireRole)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.ListAll(r.Context(), status)
	if err != nil {
		if errors.Is(err, parking.ErrInvalidInput) {
			h.logger.Warn("GET /admin/parking/requests - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /admin/parking/requests - Failed to list requests: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/parking/requests - Requests retrieved successfully: count=%d", len(result.Requests))
	handlers.RespondJSON(w, http.StatusOK, result)
}
