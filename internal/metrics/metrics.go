// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups every collector the application updates.
// A nil *Metrics is valid and records nothing, so packages can be used in
// tests without a registry.
type Metrics struct {
	HTTPLatency         *prometheus.HistogramVec
	TripMutations       *prometheus.CounterVec
	ItemMutations       *prometheus.CounterVec
	StorageFallbacks    *prometheus.CounterVec
	StorageWriteFailure *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them with reg.
// Pass prometheus.NewRegistry() in tests to keep them isolated.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_requests_latency_seconds",
				Help:    "Latency of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		TripMutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trip_mutations_total",
				Help: "Trips created or deleted.",
			},
			[]string{"action"}, // add|remove
		),
		ItemMutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trip_item_mutations_total",
				Help: "Line items added to or removed from a trip.",
			},
			[]string{"kind", "action"},
		),
		StorageFallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storage_fallbacks_total",
				Help: "Reads that fell back to a default because the stored JSON was malformed.",
			},
			[]string{"key"},
		),
		StorageWriteFailure: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storage_write_failures_total",
				Help: "Writes rejected by the key-value store.",
			},
			[]string{"key"},
		),
		gatherer: reg,
	}
	reg.MustRegister(m.HTTPLatency, m.TripMutations, m.ItemMutations, m.StorageFallbacks, m.StorageWriteFailure)
	return m
}

// Handler serves the registry this Metrics was created with.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// TripMutation counts a trip add or remove.
func (m *Metrics) TripMutation(action string) {
	if m == nil {
		return
	}
	m.TripMutations.WithLabelValues(action).Inc()
}

// ItemMutation counts a line-item add or remove.
func (m *Metrics) ItemMutation(kind, action string) {
	if m == nil {
		return
	}
	m.ItemMutations.WithLabelValues(kind, action).Inc()
}

// StorageFallback counts a fail-soft read.
func (m *Metrics) StorageFallback(key string) {
	if m == nil {
		return
	}
	m.StorageFallbacks.WithLabelValues(key).Inc()
}

// StorageWriteFailed counts a rejected write.
func (m *Metrics) StorageWriteFailed(key string) {
	if m == nil {
		return
	}
	m.StorageWriteFailure.WithLabelValues(key).Inc()
}

// ObserveRequest records one served request. route is the matched route
// pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPLatency.WithLabelValues(method, route, strconv.Itoa(status)).Observe(seconds)
}
