package decide_parking_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/parking"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

const (
	msgInvalidRequestID = "некорректный ID заявки"
	msgInvalidAction    = "некорректное действие, ожидается approve или reject"
	msgNotFound         = "заявка не найдена"
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

// Handle POST /api/v1/admin/parking/requests/{requestId}/{action}
// action: approve (pending -> approved) или reject (pending|approved -> rejected)
// Доступ только администратору (middleware RequireRole)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	requestID, err := strconv.ParseInt(vars["requestId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/parking/requests/{id}/{action} - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	action := vars["action"]

	var decide func() (interface{}, error)
	switch action {
	case ActionApprove:
		decide = func() (interface{}, error) { return h.service.Approve(r.Context(), requestID) }
	case ActionReject:
		decide = func() (interface{}, error) { return h.service.Reject(r.Context(), requestID) }
	default:
		h.logger.Warn("POST /admin/parking/requests/{id}/{action} - Unknown action: %q", action)
		handlers.RespondBadRequest(w, msgInvalidAction)
		return
	}

	result, err := decide()
	if err != nil {
		if handlers.RespondFacilityError(w, err) {
			h.logger.Warn("POST /admin/parking/requests/{id}/{action} - Rejected transition: request_id=%d, action=%s, error=%v",
				requestID, action, err)
			return
		}

		if errors.Is(err, parking.ErrAllocationNotFound) {
			h.logger.Warn("POST /admin/parking/requests/{id}/{action} - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("POST /admin/parking/requests/{id}/{action} - Failed to %s request: request_id=%d, error=%v",
			action, requestID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/parking/requests/{id}/{action} - Request updated successfully: request_id=%d, action=%s",
		requestID, action)
	handlers.RespondJSON(w, http.StatusOK, result)
}
