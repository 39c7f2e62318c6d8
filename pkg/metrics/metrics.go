package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingTransitions *prometheus.CounterVec
	BookingsCreated    *prometheus.CounterVec
	ContactsCreated    prometheus.Counter

	DBQueryDuration     *prometheus.HistogramVec
	DBQueryErrors       *prometheus.CounterVec
	DBOpenConnections   prometheus.Gauge
	DBInUseConnections  prometheus.Gauge
	DBIdleConnections   prometheus.Gauge
	DBWaitCount         prometheus.Gauge
	DBWaitDurationTotal prometheus.Gauge
}

// New регистрирует метрики в DefaultRegisterer (их отдает promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в указанном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),

		BookingTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_status_transitions_total",
			Help:        "Booking status transitions applied",
			ConstLabels: constLabels,
		}, []string{"from", "to"}),
		BookingsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings created by origin",
			ConstLabels: constLabels,
		}, []string{"origin", "branch"}),
		ContactsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name:        "contacts_created_total",
			Help:        "Contact inquiries received",
			ConstLabels: constLabels,
		}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: constLabels,
		}, []string{"operation"}),
		DBQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Database query errors",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		DBOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open database connections",
			ConstLabels: constLabels,
		}),
		DBInUseConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Database connections in use",
			ConstLabels: constLabels,
		}),
		DBIdleConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle database connections",
			ConstLabels: constLabels,
		}),
		DBWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),
		DBWaitDurationTotal: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_duration_seconds_total",
			Help:        "Total time blocked waiting for a new connection",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTP записывает результат обработки HTTP запроса
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveTransition увеличивает счетчик переходов статуса бронирования
func (m *Metrics) ObserveTransition(from, to string) {
	if m == nil {
		return
	}
	m.BookingTransitions.WithLabelValues(from, to).Inc()
}

// ObserveBookingCreated увеличивает счетчик созданных бронирований
func (m *Metrics) ObserveBookingCreated(origin, branch string) {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(origin, branch).Inc()
}

// ObserveContactCreated увеличивает счетчик обращений
func (m *Metrics) ObserveContactCreated() {
	if m == nil {
		return
	}
	m.ContactsCreated.Inc()
}
