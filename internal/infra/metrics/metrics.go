// Package metrics holds the prometheus collectors of the agent.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics groups the agent collectors. A nil *Metrics is a valid no-op recorder.
type Metrics struct {
	registry *prometheus.Registry

	registrations *prometheus.CounterVec
	enqueued      *prometheus.CounterVec
	evicted       *prometheus.CounterVec
	flushes       *prometheus.CounterVec
	sentEvents    *prometheus.CounterVec
	flushDuration *prometheus.HistogramVec
	pendingGauge  *prometheus.GaugeVec
}

// NewRegistry creates the registry served on /metrics
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// New creates and registers the agent collectors
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		registrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pushkit_registrations_total",
				Help: "Registration attempts by outcome",
			},
			[]string{"outcome"},
		),
		enqueued: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pushkit_events_enqueued_total",
				Help: "Events accepted into the queue",
			},
			[]string{"stream"},
		),
		evicted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pushkit_events_evicted_total",
				Help: "Events dropped because the queue cap was reached",
			},
			[]string{"stream"},
		),
		flushes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pushkit_flushes_total",
				Help: "Flush attempts by stream and outcome",
			},
			[]string{"stream", "outcome"},
		),
		sentEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pushkit_events_sent_total",
				Help: "Events acknowledged by the collector",
			},
			[]string{"stream"},
		),
		flushDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pushkit_flush_duration_seconds",
				Help:    "Duration of flushes that reached the collector",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stream"},
		),
		pendingGauge: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pushkit_events_pending",
				Help: "Events queued after the last flush",
			},
			[]string{"stream"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.registrations, m.enqueued, m.evicted, m.flushes, m.sentEvents, m.flushDuration, m.pendingGauge)
	}

	return m
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}

	return m.registry
}

func (m *Metrics) Registration(outcome string) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Enqueued(stream string) {
	if m == nil {
		return
	}
	m.enqueued.WithLabelValues(stream).Inc()
}

func (m *Metrics) Evicted(stream string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.evicted.WithLabelValues(stream).Add(float64(n))
}

// Flushed records a flush outcome; sent is counted only on success
func (m *Metrics) Flushed(stream, outcome string, sent int, took time.Duration) {
	if m == nil {
		return
	}
	m.flushes.WithLabelValues(stream, outcome).Inc()
	if took > 0 {
		m.flushDuration.WithLabelValues(stream).Observe(took.Seconds())
	}
	if sent > 0 {
		m.sentEvents.WithLabelValues(stream).Add(float64(sent))
	}
}

func (m *Metrics) Pending(stream string, n int64) {
	if m == nil {
		return
	}
	m.pendingGauge.WithLabelValues(stream).Set(float64(n))
}
