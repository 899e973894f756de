package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Authentication metrics
	authAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"operation", "status"},
	)

	// Scheduling metrics
	appointmentConflictsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "appointment_conflicts_total",
			Help: "Total number of appointment requests rejected for slot conflicts",
		},
	)

	// Inventory metrics
	stockAdjustmentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_adjustments_total",
			Help: "Total number of stock adjustment operations",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		authAttemptsTotal,
		appointmentConflictsTotal,
		stockAdjustmentsTotal,
	)
}

// RecordHTTPRequest records an HTTP request observation
func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordAuthAttempt records an authentication attempt
func RecordAuthAttempt(operation string, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	authAttemptsTotal.WithLabelValues(operation, status).Inc()
}

// RecordAppointmentConflict records a rejected scheduling conflict
func RecordAppointmentConflict() {
	appointmentConflictsTotal.Inc()
}

// RecordStockAdjustment records a stock adjustment outcome
func RecordStockAdjustment(success bool) {
	status := "success"
	if !success {
		status = "rejected"
	}
	stockAdjustmentsTotal.WithLabelValues(status).Inc()
}

// MetricsHandler returns the Prometheus metrics HTTP handler
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
