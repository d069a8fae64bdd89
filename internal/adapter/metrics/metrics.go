// Package metrics defines the Prometheus collectors for index operations and
// adapts them to the duration hook the index and use case accept.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors and the registry they are registered with.
type Metrics struct {
	registry          *prometheus.Registry
	OperationDuration *prometheus.HistogramVec
	OperationsTotal   *prometheus.CounterVec
	WordsIndexed      prometheus.Gauge
	StemBuckets       prometheus.Gauge
}

// New creates the collectors on a dedicated registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		OperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "poorcene_operation_duration_seconds",
				Help:    "Latency of index operations in seconds.",
				Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
			},
			[]string{"op"},
		),
		OperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "poorcene_operations_total",
				Help: "Total index operations by name.",
			},
			[]string{"op"},
		),
		WordsIndexed: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "poorcene_words",
				Help: "Number of words in the word log.",
			},
		),
		StemBuckets: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "poorcene_stems",
				Help: "Number of distinct stems.",
			},
		),
	}

	m.registry.MustRegister(
		m.OperationDuration,
		m.OperationsTotal,
		m.WordsIndexed,
		m.StemBuckets,
	)

	return m
}

// Observe records one operation. It satisfies port.ObserveFunc.
func (m *Metrics) Observe(op string, d time.Duration) {
	m.OperationDuration.WithLabelValues(op).Observe(d.Seconds())
	m.OperationsTotal.WithLabelValues(op).Inc()
}

// SetSize updates the index size gauges.
func (m *Metrics) SetSize(words, stems int) {
	m.WordsIndexed.Set(float64(words))
	m.StemBuckets.Set(float64(stems))
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the scrape handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
