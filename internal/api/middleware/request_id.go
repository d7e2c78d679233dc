package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"

	requestIDKey contextKey = "request_id"
)

// RequestID прокидывает X-Request-ID, генерирует новый при отсутствии
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(HeaderRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID)))
	})
}

// GetRequestID возвращает ID запроса из контекста
func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey).(string)
	return requestID
}
