package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// HTTPMetricsRecorder интерфейс записи HTTP метрик (реализуется *metrics.Metrics)
type HTTPMetricsRecorder interface {
	RecordHTTPRequest(method, path, status string, duration time.Duration)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware считает запросы и их длительность
// path - шаблон маршрута, чтобы не плодить метки на каждый ID
func MetricsMiddleware(recorder HTTPMetricsRecorder) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			recorder.RecordHTTPRequest(r.Method, routePath(r), strconv.Itoa(rec.status), time.Since(start))
		})
	}
}

func routePath(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
