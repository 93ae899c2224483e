// Package metrics provides Prometheus metrics for the grading pipeline.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// PipelineMetrics collects and exposes grading pipeline Prometheus metrics.
type PipelineMetrics struct {
	registry *prometheus.Registry

	// Extraction metrics
	MessagesTotal  *prometheus.CounterVec
	PicksExtracted *prometheus.CounterVec

	// Resolution metrics
	ResolutionTotal *prometheus.CounterVec
	MatchScore      *prometheus.HistogramVec

	// Grading metrics
	GradesTotal       *prometheus.CounterVec
	UngradeableTotal  *prometheus.CounterVec
	NetUnits          *prometheus.GaugeVec
	StakedVolumeUnits *prometheus.CounterVec

	// Run metrics
	RunsTotal   *prometheus.CounterVec
	RunDuration prometheus.Histogram
}

// New creates a pipeline metrics collector backed by its own registry.
func New() *PipelineMetrics {
	registry := prometheus.NewRegistry()

	pm := &PipelineMetrics{
		registry: registry,

		MessagesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gradebook_messages_total",
				Help: "Transcript messages processed",
			},
			[]string{"role"},
		),
		PicksExtracted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gradebook_picks_extracted_total",
				Help: "Confirmed picks extracted from transcripts",
			},
			[]string{"league", "bet_type"},
		),
		ResolutionTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gradebook_team_resolutions_total",
				Help: "Team reference resolution attempts",
			},
			[]string{"outcome"},
		),
		MatchScore: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gradebook_match_score",
				Help:    "Winning game-match confidence score",
				Buckets: []float64{40, 50, 60, 70, 80, 90, 100},
			},
			[]string{"league"},
		),

		GradesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gradebook_grades_total",
				Help: "Picks graded, by outcome",
			},
			[]string{"league", "status"},
		),
		UngradeableTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gradebook_ungradeable_total",
				Help: "Picks left ungradeable, by reason",
			},
			[]string{"reason"},
		),
		NetUnits: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "gradebook_net_units",
				Help: "Net profit and loss in config units",
			},
			[]string{"league"},
		),
		StakedVolumeUnits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gradebook_staked_volume_units",
				Help: "Total stake volume in config units",
			},
			[]string{"league"},
		),

		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gradebook_runs_total",
				Help: "Pipeline runs, by status",
			},
			[]string{"status"},
		),
		RunDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gradebook_run_duration_seconds",
				Help:    "Wall time of a full pipeline run",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
			},
		),
	}

	pm.registerAll()
	return pm
}

func (pm *PipelineMetrics) registerAll() {
	pm.registry.MustRegister(
		pm.MessagesTotal,
		pm.PicksExtracted,
		pm.ResolutionTotal,
		pm.MatchScore,
		pm.GradesTotal,
		pm.UngradeableTotal,
		pm.NetUnits,
		pm.StakedVolumeUnits,
		pm.RunsTotal,
		pm.RunDuration,
	)
}

// Registry returns the underlying Prometheus registry for HTTP exposure.
func (pm *PipelineMetrics) Registry() *prometheus.Registry {
	return pm.registry
}

// RecordMessage counts one processed transcript message.
func (pm *PipelineMetrics) RecordMessage(role string) {
	pm.MessagesTotal.WithLabelValues(role).Inc()
}

// RecordPick counts one confirmed pick.
func (pm *PipelineMetrics) RecordPick(league, betType string) {
	pm.PicksExtracted.WithLabelValues(league, betType).Inc()
}

// RecordResolution counts one team resolution attempt.
func (pm *PipelineMetrics) RecordResolution(outcome string) {
	pm.ResolutionTotal.WithLabelValues(outcome).Inc()
}

// RecordMatch observes the winning match score for a pick.
func (pm *PipelineMetrics) RecordMatch(league string, score int) {
	pm.MatchScore.WithLabelValues(league).Observe(float64(score))
}

// RecordGrade counts one graded pick and its stake volume.
func (pm *PipelineMetrics) RecordGrade(league, status string, stakeUnits float64) {
	pm.GradesTotal.WithLabelValues(league, status).Inc()
	pm.StakedVolumeUnits.WithLabelValues(league).Add(stakeUnits)
}

// RecordUngradeable counts one ungradeable pick by reason.
func (pm *PipelineMetrics) RecordUngradeable(reason string) {
	pm.UngradeableTotal.WithLabelValues(reason).Inc()
}

// UpdateNetUnits sets the running P&L gauge for a league.
func (pm *PipelineMetrics) UpdateNetUnits(league string, units float64) {
	pm.NetUnits.WithLabelValues(league).Set(units)
}

// RecordRun counts one pipeline run and its duration.
func (pm *PipelineMetrics) RecordRun(status string, durationSec float64) {
	pm.RunsTotal.WithLabelValues(status).Inc()
	pm.RunDuration.Observe(durationSec)
}

// DecimalToFloat64 safely converts decimal.Decimal to float64 for metrics.
func DecimalToFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

var (
	defaultMetrics *PipelineMetrics
	defaultOnce    sync.Once
)

// Default returns the process-wide metrics collector.
func Default() *PipelineMetrics {
	defaultOnce.Do(func() {
		defaultMetrics = New()
	})
	return defaultMetrics
}
