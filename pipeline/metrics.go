// SPDX-License-Identifier: MIT

package pipeline

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stage and outcome label values.
const (
	stageAugment       = "augment"
	stageReduce        = "reduce"
	stageOriginal      = "homology_original"
	stageReconstructed = "homology_reconstructed"

	outcomeOK                = "ok"
	outcomeInvalidSpec       = "invalid_spec"
	outcomeReducer           = "reducer"
	outcomeDimensionMismatch = "dimension_mismatch"
	outcomeHomology          = "homology"
)

// Metrics holds the pipeline's Prometheus collectors.
type Metrics struct {
	// RunsTotal counts finished runs by reducer kind and outcome.
	RunsTotal *prometheus.CounterVec
	// StageDuration observes the wall time of every completed stage.
	StageDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// Registering twice on the same registry panics, as with promauto.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		RunsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pershom",
				Subsystem: "pipeline",
				Name:      "runs_total",
				Help:      "The total number of reconstruction runs",
			},
			[]string{"kind", "outcome"},
		),
		StageDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "pershom",
				Subsystem: "pipeline",
				Name:      "stage_duration_seconds",
				Help:      "The duration of pipeline stages in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12), // 100µs to ~7min
			},
			[]string{"stage"},
		),
	}
}

func (m *Metrics) observeStage(stage string, start time.Time) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

func (m *Metrics) countRun(kind, outcome string) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(kind, outcome).Inc()
}
