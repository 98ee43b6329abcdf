package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics manages the Prometheus metrics.
type Metrics struct {
	HTTPRequests  *prometheus.CounterVec
	HTTPLatency   *prometheus.HistogramVec
	LoginAttempts *prometheus.CounterVec
	RateLimitHits *prometheus.CounterVec
	PhotosStored  prometheus.Counter
}

// NewMetrics creates and registers the Prometheus metrics on the given
// registerer. Pass prometheus.DefaultRegisterer in production; tests use a
// fresh registry to avoid duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "home4paws_http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "home4paws_http_request_duration_seconds",
				Help:    "Latency of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		LoginAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "home4paws_login_attempts_total",
				Help: "Total number of login attempts.",
			},
			[]string{"endpoint", "result"},
		),
		RateLimitHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "home4paws_rate_limit_hits_total",
				Help: "Total number of requests rejected by the rate limiter.",
			},
			[]string{"endpoint"},
		),
		PhotosStored: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "home4paws_photos_stored_total",
				Help: "Total number of uploaded photos written to disk.",
			},
		),
	}
}

// RecordRequest records counters and latency for a completed HTTP request.
func (m *Metrics) RecordRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordLogin records the outcome of a login attempt.
func (m *Metrics) RecordLogin(endpoint, result string) {
	m.LoginAttempts.WithLabelValues(endpoint, result).Inc()
}

// RecordRateLimitHit records a rejected request.
func (m *Metrics) RecordRateLimitHit(endpoint string) {
	m.RateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordPhotosStored records uploaded photos written to disk.
func (m *Metrics) RecordPhotosStored(n int) {
	m.PhotosStored.Add(float64(n))
}
