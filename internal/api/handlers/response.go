package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Коды ошибок в теле ответа
const (
	CodeBadRequest        = "bad_request"
	CodeValidation        = "validation_error"
	CodeUnauthorized      = "unauthorized"
	CodeForbidden         = "forbidden"
	CodeNotFound          = "not_found"
	CodeCapacityExceeded  = "capacity_exceeded"
	CodeDuplicateBooking  = "duplicate_booking"
	CodeAdvanceNotice     = "advance_notice"
	CodeWindowClosed      = "cancellation_window_closed"
	CodeAlreadyCancelled  = "already_cancelled"
	CodeInvalidTransition = "invalid_transition"
	CodeRateLimited       = "rate_limited"
	CodeUpstream          = "upstream_unavailable"
	CodeInternal          = "internal_error"
)

const msgInternalError = "внутренняя ошибка сервера"

var ErrEmptyBody = errors.New("request body is empty")

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// DecodeJSON декодирует тело запроса в v
// Неизвестные поля игнорируются
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(v)
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError отправляет ошибку в формате {"error": "...", "code": "..."}
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, CodeBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, CodeUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, CodeForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, CodeNotFound, message)
}

// RespondUpstreamError внешний сервис недоступен, отвечаем 500 с отдельным кодом
func RespondUpstreamError(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusInternalServerError, CodeUpstream, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternal, msgInternalError)
}
