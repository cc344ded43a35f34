// Package metrics holds the Prometheus collectors of the service. Collectors
// live on their own registry so tests can build independent instances.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shiptrack"

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests  *prometheus.CounterVec
	HTTPLatencyMS *prometheus.HistogramVec

	// OrderOperations counts lifecycle operations by operation and outcome.
	OrderOperations *prometheus.CounterVec

	Notifications      *prometheus.CounterVec
	NotificationsQueue prometheus.Gauge

	OverdueOrders prometheus.Gauge
}

// New registers every collector plus the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"route", "method", "status"}),
		HTTPLatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"route"}),
		OrderOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "operations_total",
			Help:      "Order lifecycle operations by outcome.",
		}, []string{"operation", "outcome"}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "total",
			Help:      "Notifications by kind and result (sent, failed, dropped).",
		}, []string{"kind", "result"}),
		NotificationsQueue: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "queue_length",
			Help:      "Notifications waiting for a worker.",
		}),
		OverdueOrders: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "overdue",
			Help:      "Non-terminal orders past their estimated delivery at the last scan.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPLatencyMS,
		m.OrderOperations,
		m.Notifications,
		m.NotificationsQueue,
		m.OverdueOrders,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
