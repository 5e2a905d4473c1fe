// Package observability exposes Prometheus metrics for the HTTP surface and
// the document store.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/devjourney/journey-go/internal/config"
)

// Metrics holds the application's Prometheus collectors.
type Metrics struct {
	cfg      *config.MetricsConfig
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	storeOpsTotal   *prometheus.CounterVec
	storeUp         prometheus.Gauge
}

// NewMetrics creates and registers the application collectors.
func NewMetrics(cfg *config.MetricsConfig, logger *zap.Logger) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		cfg:      cfg,
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "journey_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "journey_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		storeOpsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "journey_store_operations_total",
			Help: "Total number of document store operations",
		}, []string{"operation", "result"}),
		storeUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "journey_store_up",
			Help: "Whether the document store answered the last liveness probe",
		}),
	}

	registry.MustRegister(m.requestsTotal, m.requestDuration, m.storeOpsTotal, m.storeUp)

	if cfg.Enabled {
		logger.Info("Prometheus metrics enabled", zap.String("path", cfg.Path))
	}

	return m
}

// Handler returns the scrape endpoint handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Enabled reports whether the scrape endpoint should be registered.
func (m *Metrics) Enabled() bool {
	return m.cfg.Enabled
}

// Path returns the scrape endpoint path.
func (m *Metrics) Path() string {
	return m.cfg.Path
}

// ObserveStoreOp counts a store operation by name and outcome.
func (m *Metrics) ObserveStoreOp(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.storeOpsTotal.WithLabelValues(operation, result).Inc()
}

// SetStoreUp records the latest liveness probe result.
func (m *Metrics) SetStoreUp(up bool) {
	if up {
		m.storeUp.Set(1)
		return
	}
	m.storeUp.Set(0)
}

// GinMiddleware records per-request counters and latency, labeled by the
// registered route so raw paths cannot blow up cardinality.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.requestsTotal.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}
