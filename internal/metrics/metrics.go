// Package metrics holds the Prometheus collectors for gameplay and storage.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "scoretracker"

// Storage tiers used as label values
const (
	TierFile    = "file"
	TierChunked = "chunked"
	TierExport  = "export"
	TierImport  = "import"
)

// Outcomes used as label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
)

// Metrics groups every collector the tracker exports
type Metrics struct {
	actions      *prometheus.CounterVec
	saves        *prometheus.CounterVec
	saveDuration *prometheus.HistogramVec
	saveBytes    *prometheus.HistogramVec
	loads        *prometheus.CounterVec
	recoveries   *prometheus.CounterVec
	historySize  prometheus.Gauge
}

// New creates the collectors and registers them with reg. A nil registerer
// returns nil, which disables metrics.
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, nil
	}

	m := &Metrics{
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Game actions applied, by action type.",
		}, []string{"action"}),
		saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "saves_total",
			Help:      "Save attempts by tier and outcome.",
		}, []string{"tier", "outcome"}),
		saveDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "save_duration_seconds",
			Help:      "Time spent writing a save, by tier.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"tier"}),
		saveBytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "save_bytes",
			Help:      "Size of written documents, by tier.",
			Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
		}, []string{"tier"}),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "loads_total",
			Help:      "Load attempts by tier and outcome.",
		}, []string{"tier", "outcome"}),
		recoveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "quota_recoveries_total",
			Help:      "Quota recoveries by how far cleanup had to go.",
		}, []string{"level"}),
		historySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "history_entries",
			Help:      "History entries held by the current game.",
		}),
	}

	collectors := []prometheus.Collector{m.actions, m.saves, m.saveDuration, m.saveBytes, m.loads, m.recoveries, m.historySize}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RecordAction counts an applied game action
func (m *Metrics) RecordAction(action string) {
	if m == nil {
		return
	}
	m.actions.WithLabelValues(action).Inc()
}

// RecordSave counts a save and, when it succeeded, its duration and size
func (m *Metrics) RecordSave(tier, outcome string, took time.Duration, size int) {
	if m == nil {
		return
	}
	m.saves.WithLabelValues(tier, outcome).Inc()
	if outcome == OutcomeSuccess {
		m.saveDuration.WithLabelValues(tier).Observe(took.Seconds())
		m.saveBytes.WithLabelValues(tier).Observe(float64(size))
	}
}

// RecordLoad counts a load attempt
func (m *Metrics) RecordLoad(tier, outcome string) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues(tier, outcome).Inc()
}

// RecordRecovery counts a quota recovery step
func (m *Metrics) RecordRecovery(level string) {
	if m == nil {
		return
	}
	m.recoveries.WithLabelValues(level).Inc()
}

// SetHistorySize reports the current history length
func (m *Metrics) SetHistorySize(n int) {
	if m == nil {
		return
	}
	m.historySize.Set(float64(n))
}
