package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestMetrics() *Metrics {
	return NewWithRegisterer(prometheus.NewRegistry(), "test")
}

func TestRecordHTTPRequest(t *testing.T) {
	m := newTestMetrics()

	m.RecordHTTPRequest("GET", "/api/v1/facilities", "200", 50*time.Millisecond)
	m.RecordHTTPRequest("GET", "/api/v1/facilities", "200", 20*time.Millisecond)
	m.RecordHTTPRequest("GET", "/api/v1/facilities", "500", 10*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/facilities", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/facilities", "500")))
}

func TestRecordDBQuery(t *testing.T) {
	m := newTestMetrics()

	m.RecordDBQuery("query", time.Millisecond, nil)
	m.RecordDBQuery("exec", time.Millisecond, errors.New("boom"))

	assert.Equal(t, float64(0), testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("query")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("exec")))
}

func TestSetDBStats(t *testing.T) {
	m := newTestMetrics()

	m.SetDBStats(sql.DBStats{OpenConnections: 5, InUse: 2, Idle: 3})

	assert.Equal(t, float64(5), testutil.ToFloat64(m.DBConnections.WithLabelValues("open")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.DBConnections.WithLabelValues("in_use")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.DBConnections.WithLabelValues("idle")))
}

func TestBookingCounters(t *testing.T) {
	m := newTestMetrics()

	m.RecordBooking("playground", "created")
	m.RecordBooking("playground", "capacity_exceeded")
	m.RecordCancellation("swimming_pool", "window_closed")
	m.RecordParkingTransition("approved")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.BookingsTotal.WithLabelValues("playground", "created")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.BookingsTotal.WithLabelValues("playground", "capacity_exceeded")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CancellationsTotal.WithLabelValues("swimming_pool", "window_closed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ParkingTransitions.WithLabelValues("approved")))
}
