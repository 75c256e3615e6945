// Package middleware provides observability hooks for flashbar servers:
// Prometheus metrics and OpenTelemetry tracing around notification
// delivery.
package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/flashbar-dev/flashbar/pkg/banner"
	"github.com/flashbar-dev/flashbar/pkg/status"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "flashbar").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "flashbar",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors for a flashbar server.
type Metrics struct {
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	notificationsShown *prometheus.CounterVec
	dismissalsTotal    *prometheus.CounterVec
	toastsEmitted      prometheus.Counter
	connectedClients   prometheus.Gauge
}

var (
	globalMetrics     *Metrics
	globalMetricsOnce sync.Once
)

// NewMetrics registers and returns the collectors. Registering the same
// names twice on one registry panics, so most callers want Prometheus()
// instead.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return initMetrics(config)
}

// Prometheus returns the process-wide metrics instance, creating it on
// first call with the given options. Options are ignored on subsequent
// calls.
func Prometheus(opts ...MetricsOption) *Metrics {
	globalMetricsOnce.Do(func() {
		globalMetrics = NewMetrics(opts...)
	})
	return globalMetrics
}

func initMetrics(config MetricsConfig) *Metrics {
	factory := promauto.With(config.Registry)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "requests_total",
			Help:        "Total number of HTTP requests served",
			ConstLabels: config.ConstLabels,
		}, []string{"path", "code"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"path"}),

		notificationsShown: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "notifications_shown_total",
			Help:        "Banners that transitioned from hidden to visible",
			ConstLabels: config.ConstLabels,
		}, []string{"severity"}),

		dismissalsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "notifications_dismissed_total",
			Help:        "Banners that transitioned from visible to hidden",
			ConstLabels: config.ConstLabels,
		}, []string{"reason"}),

		toastsEmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_emitted_total",
			Help:        "Toast events pushed to connected clients",
			ConstLabels: config.ConstLabels,
		}),

		connectedClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "connected_clients",
			Help:        "Currently connected WebSocket clients",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// BannerShown implements banner.Observer.
func (m *Metrics) BannerShown(severity status.Severity) {
	m.notificationsShown.WithLabelValues(string(severity)).Inc()
}

// BannerDismissed implements banner.Observer.
func (m *Metrics) BannerDismissed(reason banner.CloseReason) {
	m.dismissalsTotal.WithLabelValues(string(reason)).Inc()
}

// ToastEmitted records a pushed toast event.
func (m *Metrics) ToastEmitted() {
	m.toastsEmitted.Inc()
}

// ClientConnected records a WebSocket client attaching.
func (m *Metrics) ClientConnected() {
	m.connectedClients.Inc()
}

// ClientDisconnected records a WebSocket client detaching.
func (m *Metrics) ClientDisconnected() {
	m.connectedClients.Dec()
}

var _ banner.Observer = (*Metrics)(nil)

// Handler wraps an http.Handler, recording request counts and duration
// labeled by path.
func (m *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}

		next.ServeHTTP(sw, r)

		m.requestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(sw.code)).Inc()
		m.requestDuration.WithLabelValues(r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

// statusWriter captures the response status code.
type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
