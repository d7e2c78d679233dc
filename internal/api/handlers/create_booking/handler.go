package create_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-AmenityBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgFacilityNotFound   = "объект не найден"
	msgUserNotFound       = "пользователь не найден"
	msgUpstream           = "справочник пользователей недоступен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/facilities/{facility}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := domain.FacilityID(mux.Vars(r)["facility"])

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /facilities/{facility}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /facilities/{facility}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /facilities/{facility}/bookings - Validation failed: %v", err)
		handlers.RespondValidationError(w, err)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID, id)
	if err != nil {
		h.logger.Warn("POST /facilities/{facility}/bookings - Failed to parse request: %v", err)
		handlers.RespondFacilityError(w, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if handlers.RespondFacilityError(w, err) {
			h.logger.Warn("POST /facilities/{facility}/bookings - Rejected: facility=%s, user_id=%d, error=%v", id, userID, err)
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrFacilityNotFound):
			h.logger.Warn("POST /facilities/{facility}/bookings - Facility not found: facility=%s", id)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /facilities/{facility}/bookings - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrUpstream):
			h.logger.Error("POST /facilities/{facility}/bookings - User directory unavailable: %v", err)
			handlers.RespondUpstreamError(w, msgUpstream)

		default:
			h.logger.Error("POST /facilities/{facility}/bookings - Failed to create booking: facility=%s, user_id=%d, error=%v",
				id, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /facilities/{facility}/bookings - Booking created successfully: booking_id=%d, facility=%s, user_id=%d",
		result.ID, id, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
