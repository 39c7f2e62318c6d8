package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewWithRegistry("dental-booking", prometheus.NewRegistry())

	m.ObserveHTTP(http.MethodGet, "/api/v1/admin/bookings", http.StatusOK, 15*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/api/v1/admin/bookings", http.StatusOK, 5*time.Millisecond)
	m.ObserveTransition("pending", "confirmed")
	m.ObserveBookingCreated("self_service", "villasis")
	m.ObserveContactCreated()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/admin/bookings", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingTransitions.WithLabelValues("pending", "confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsCreated.WithLabelValues("self_service", "villasis")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContactsCreated))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveTransition("pending", "cancelled")
		m.ObserveBookingCreated("admin", "carmen")
		m.ObserveContactCreated()
	})
}
