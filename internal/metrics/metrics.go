package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "logdash"

// Result labels for refresh cycles.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics holds the dashboard's collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiDuration *prometheus.HistogramVec
	refreshes   *prometheus.CounterVec
	logsLoaded  prometheus.Gauge
	logsVisible prometheus.Gauge
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Requests issued to the log service, by operation and status code (0 = no response).",
		}, []string{"op", "code"}),
		apiDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Latency of requests to the log service.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_total",
			Help:      "Dashboard load cycles, by result.",
		}, []string{"result"}),
		logsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "logs_loaded",
			Help:      "Entries currently held in memory.",
		}),
		logsVisible: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "logs_visible",
			Help:      "Entries matching the current filters.",
		}),
	}
	m.registry.MustRegister(m.apiRequests, m.apiDuration, m.refreshes, m.logsLoaded, m.logsVisible)
	return m
}

// ObserveRequest records one upstream call.
func (m *Metrics) ObserveRequest(op string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.apiRequests.WithLabelValues(op, strconv.Itoa(code)).Inc()
	m.apiDuration.WithLabelValues(op).Observe(d.Seconds())
}

// RefreshResult counts a finished load cycle.
func (m *Metrics) RefreshResult(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.refreshes.WithLabelValues(ResultError).Inc()
		return
	}
	m.refreshes.WithLabelValues(ResultOK).Inc()
}

// SetLogCounts updates the loaded/visible gauges.
func (m *Metrics) SetLogCounts(loaded, visible int) {
	if m == nil {
		return
	}
	m.logsLoaded.Set(float64(loaded))
	m.logsVisible.Set(float64(visible))
}

// Registry exposes the underlying registry (tests, extra collectors).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
