package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "adcraft"

// Copy attempt outcomes.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics exposes the Prometheus collectors describing generation activity.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	copyAttempts     *prometheus.CounterVec
	generations      *prometheus.CounterVec
	imageLookups     *prometheus.CounterVec
	generateDuration prometheus.Histogram
}

// NewRegistry returns a registry preloaded with the Go runtime and process
// collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the exposition format for the given gatherer.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// MustNewMetrics registers the collectors with reg, reusing any that are
// already registered. Other registration errors panic.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		copyAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "copy_attempts_total",
			Help:      "Provider attempts by outcome.",
		}, []string{"provider", "outcome"}),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Completed generations by the provider that supplied the copy.",
		}, []string{"provider"}),
		imageLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "image_lookups_total",
			Help:      "Stock-photo searches by source and outcome.",
		}, []string{"source", "outcome"}),
		generateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generate_duration_seconds",
			Help:      "End-to-end time spent producing a generation result.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
	}
	m.copyAttempts = register(reg, m.copyAttempts)
	m.generations = register(reg, m.generations)
	m.imageLookups = register(reg, m.imageLookups)
	m.generateDuration = register(reg, m.generateDuration)
	return m
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (m *Metrics) RecordCopyAttempt(provider, outcome string) {
	if m == nil {
		return
	}
	m.copyAttempts.WithLabelValues(provider, outcome).Inc()
}

func (m *Metrics) RecordGeneration(provider string) {
	if m == nil {
		return
	}
	m.generations.WithLabelValues(provider).Inc()
}

// RecordImageLookup satisfies image.LookupRecorder.
func (m *Metrics) RecordImageLookup(source, outcome string) {
	if m == nil {
		return
	}
	m.imageLookups.WithLabelValues(source, outcome).Inc()
}

func (m *Metrics) ObserveGenerate(d time.Duration) {
	if m == nil {
		return
	}
	m.generateDuration.Observe(d.Seconds())
}
