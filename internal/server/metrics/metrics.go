// Package metrics собирает Prometheus метрики сервера синхронизации.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gophtext"

// Metrics хранит метрики сервера в собственном реестре,
// чтобы несколько экземпляров (например, в тестах) не конфликтовали
type Metrics struct {
	registry *prometheus.Registry

	OperationsReceived *prometheus.CounterVec
	OperationsStored   prometheus.Counter
	OperationsSent     prometheus.Counter
	SyncDuration       *prometheus.HistogramVec
	Watchers           prometheus.Gauge
	Notifications      *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
}

// New создает и регистрирует метрики
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		OperationsReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "operations_received_total",
			Help:      "Operations received from sites, including duplicates.",
		}, []string{"kind"}),

		OperationsStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "operations_stored_total",
			Help:      "Operations accepted for the first time.",
		}),

		OperationsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "operations_sent_total",
			Help:      "Operations returned to sites in sync responses.",
		}),

		SyncDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "duration_seconds",
			Help:      "Sync request handling time.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"result"}),

		Watchers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "watch",
			Name:      "connections",
			Help:      "Open watch connections.",
		}),

		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "watch",
			Name:      "notifications_total",
			Help:      "Document notifications by outcome.",
		}, []string{"result"}),

		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route template, method and status code.",
		}, []string{"route", "method", "code"}),
	}

	m.registry.MustRegister(
		m.OperationsReceived,
		m.OperationsStored,
		m.OperationsSent,
		m.SyncDuration,
		m.Watchers,
		m.Notifications,
		m.HTTPRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveSync записывает время обработки синхронизации
func (m *Metrics) ObserveSync(start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.SyncDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
}

// Handler возвращает HTTP handler для /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
