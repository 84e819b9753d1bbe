// Package metrics provides Prometheus metrics collection for the resolver service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// ResolutionsTotal counts answered names by kind and source.
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mvr_resolutions_total",
			Help: "Total number of resolved names by kind and source",
		},
		[]string{"kind", "source"},
	)

	// ResolutionErrorsTotal counts failed resolutions by kind and error kind.
	ResolutionErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mvr_resolution_errors_total",
			Help: "Total number of failed resolutions",
		},
		[]string{"kind", "error"},
	)

	// RegistryFetchDuration tracks registry round trips.
	RegistryFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mvr_registry_fetch_duration_seconds",
			Help:    "Registry fetch duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation", "outcome"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mvr_cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheEntries tracks the current number of resident cache entries.
	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mvr_cache_entries",
			Help: "Current number of cache entries",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mvr_cache_capacity",
			Help: "Cache capacity",
		},
	)

	// AdmissionInFlight tracks registry fetches currently holding a permit.
	AdmissionInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mvr_admission_in_flight",
			Help: "Registry fetches currently in flight",
		},
	)

	// AdmissionWaitDuration tracks time spent waiting for a permit.
	AdmissionWaitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mvr_admission_wait_seconds",
			Help:    "Time spent waiting for an admission permit",
			Buckets: []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	// CircuitBreakerState tracks circuit breaker state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"name"},
	)

	// AuditEntriesTotal counts audit entries by outcome.
	AuditEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mvr_audit_entries_total",
			Help: "Audit entries by outcome (enqueued, dropped, written, failed)",
		},
		[]string{"result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordResolution records n names answered from the given source.
func RecordResolution(kind, source string, n int) {
	if n <= 0 {
		return
	}
	ResolutionsTotal.WithLabelValues(kind, source).Add(float64(n))
}

// RecordResolutionError records a failed resolution.
func RecordResolutionError(kind, errKind string) {
	ResolutionErrorsTotal.WithLabelValues(kind, errKind).Inc()
}

// ObserveRegistryFetch records the duration and outcome of a registry fetch.
func ObserveRegistryFetch(operation, outcome string, duration time.Duration) {
	RegistryFetchDuration.WithLabelValues(operation, outcome).Observe(duration.Seconds())
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheEntries.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// ObserveAdmissionWait records how long a fetch waited for a permit.
func ObserveAdmissionWait(d time.Duration) {
	AdmissionWaitDuration.Observe(d.Seconds())
}

// SetCircuitBreakerState publishes a circuit breaker state.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordAuditEntries records n audit entries with the given outcome.
func RecordAuditEntries(result string, n int) {
	if n <= 0 {
		return
	}
	AuditEntriesTotal.WithLabelValues(result).Add(float64(n))
}
