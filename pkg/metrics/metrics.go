package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the service's Prometheus metrics on a private registry.
type Collector struct {
	registry *prometheus.Registry

	httpRequests       *prometheus.CounterVec
	httpLatency        *prometheus.HistogramVec
	withdrawalsCreated prometheus.Counter
	uploadsStaged      *prometheus.CounterVec
}

// NewCollector creates and registers all service metrics.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests per route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency per route",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~2s
			},
			[]string{"method", "route"},
		),
		withdrawalsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "withdrawals_created_total",
				Help:      "Total number of withdrawal requests created",
			},
		),
		uploadsStaged: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "uploads_staged_total",
				Help:      "Total number of staged uploads per attachment type",
			},
			[]string{"type"},
		),
	}

	c.registry.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.withdrawalsCreated,
		c.uploadsStaged,
	)

	return c
}

// RecordRequest records one completed HTTP request.
func (c *Collector) RecordRequest(method, route, status string, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, status).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordWithdrawalCreated records one successful create.
func (c *Collector) RecordWithdrawalCreated() {
	c.withdrawalsCreated.Inc()
}

// RecordUploadStaged records one staged upload.
func (c *Collector) RecordUploadStaged(attachmentType string) {
	c.uploadsStaged.WithLabelValues(attachmentType).Inc()
}

// Handler returns the HTTP handler exposing the registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
