package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AmenityBooking/internal/usecase/get_available_slots"
)

const (
	msgMissingDate      = "дата обязательна"
	msgFacilityNotFound = "объект не найден"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facility}/available-slots
// Query params: date (required, YYYY-MM-DD), duration (optional, hours)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := domain.FacilityID(mux.Vars(r)["facility"])
	userID, _ := middleware.GetUserID(r.Context())

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /facilities/{facility}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(userID, id, dateStr, r.URL.Query().Get("duration"))
	if err != nil {
		h.logger.Warn("GET /facilities/{facility}/available-slots - Invalid parameters: %v", err)
		handlers.RespondFacilityError(w, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if handlers.RespondFacilityError(w, err) {
			h.logger.Warn("GET /facilities/{facility}/available-slots - Rejected: facility=%s, error=%v", id, err)
			return
		}

		switch {
		case errors.Is(err, getAvailableSlots.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{facility}/available-slots - Facility not found: facility=%s", id)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		default:
			h.logger.Error("GET /facilities/{facility}/available-slots - Failed to get slots: facility=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{facility}/available-slots - Slots retrieved successfully: facility=%s, date=%s, slots_count=%d",
		id, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
