package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBConnections   *prometheus.GaugeVec

	BookingsTotal      *prometheus.CounterVec
	CancellationsTotal *prometheus.CounterVec
	ParkingTransitions *prometheus.CounterVec
}

// New регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer регистрирует метрики в переданном регистре (используется в тестах)
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"method", "path"},
		),
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "db_query_duration_seconds",
				Help:        "Database query duration in seconds",
				Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
				ConstLabels: constLabels,
			},
			[]string{"operation"},
		),
		DBQueryErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "db_query_errors_total",
				Help:        "Total number of failed database queries",
				ConstLabels: constLabels,
			},
			[]string{"operation"},
		),
		DBConnections: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "db_connections",
				Help:        "Database connection pool state",
				ConstLabels: constLabels,
			},
			[]string{"state"},
		),
		BookingsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "facility_bookings_total",
				Help:        "Booking attempts by facility and outcome",
				ConstLabels: constLabels,
			},
			[]string{"facility", "outcome"},
		),
		CancellationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "facility_cancellations_total",
				Help:        "Cancellation attempts by facility and outcome",
				ConstLabels: constLabels,
			},
			[]string{"facility", "outcome"},
		),
		ParkingTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "parking_transitions_total",
				Help:        "Parking allocation state transitions",
				ConstLabels: constLabels,
			},
			[]string{"to"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordDBQuery(operation string, duration time.Duration, err error) {
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetDBStats обновляет состояние пула соединений
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	m.DBConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
	m.DBConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
	m.DBConnections.WithLabelValues("idle").Set(float64(stats.Idle))
}

func (m *Metrics) RecordBooking(facility, outcome string) {
	m.BookingsTotal.WithLabelValues(facility, outcome).Inc()
}

func (m *Metrics) RecordCancellation(facility, outcome string) {
	m.CancellationsTotal.WithLabelValues(facility, outcome).Inc()
}

func (m *Metrics) RecordParkingTransition(to string) {
	m.ParkingTransitions.WithLabelValues(to).Inc()
}

// Noop реализация рекордера для выключенных метрик
type Noop struct{}

func (Noop) RecordBooking(string, string)      {}
func (Noop) RecordCancellation(string, string) {}
func (Noop) RecordParkingTransition(string)    {}
