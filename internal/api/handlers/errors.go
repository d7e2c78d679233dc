package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AmenityBooking/internal/facility"
)

// RespondFacilityError отвечает на ошибки движка бронирования
// Возвращает false, если err не ошибка движка
func RespondFacilityError(w http.ResponseWriter, err error) bool {
	var validationErr *facility.ValidationError

	switch {
	case errors.As(err, &validationErr):
		RespondError(w, http.StatusBadRequest, CodeValidation, validationErr.Error())
	case errors.Is(err, facility.ErrCapacityExceeded):
		RespondError(w, http.StatusConflict, CodeCapacityExceeded, "выбранный слот заполнен")
	case errors.Is(err, facility.ErrDuplicateBooking):
		RespondError(w, http.StatusConflict, CodeDuplicateBooking, "у вас уже есть активное бронирование")
	case errors.Is(err, facility.ErrAdvanceNotice):
		RespondError(w, http.StatusBadRequest, CodeAdvanceNotice, "бронирование нужно оформить заранее")
	case errors.Is(err, facility.ErrCancellationWindowClosed):
		RespondError(w, http.StatusBadRequest, CodeWindowClosed, "время для отмены бронирования истекло")
	case errors.Is(err, facility.ErrAlreadyCancelled):
		RespondError(w, http.StatusBadRequest, CodeAlreadyCancelled, "бронирование уже отменено")
	case errors.Is(err, facility.ErrInvalidTransition):
		RespondError(w, http.StatusConflict, CodeInvalidTransition, "недопустимое изменение статуса заявки")
	default:
		return false
	}

	return true
}
