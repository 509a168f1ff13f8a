package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncCycleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync",
		Name:      "cycles_total",
		Help:      "Count of sync cycles by source and final status.",
	}, []string{"source", "cycle_status"})

	syncCycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "sync",
		Name:      "cycle_duration_seconds",
		Help:      "Duration of sync cycles.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source", "cycle_status"})

	syncImportedBlocks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync",
		Name:      "imported_blocks_total",
		Help:      "Number of blocks submitted to the local node.",
	}, []string{"source"})

	syncSkippedTriggers = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync",
		Name:      "skipped_triggers_total",
		Help:      "Triggers dropped because a cycle for the source was still in flight.",
	}, []string{"source"})
)

// SyncCycle tracks sync orchestrator and scheduler activity.
type SyncCycle struct{}

// NewSyncCycle constructs a SyncCycle collector.
func NewSyncCycle() *SyncCycle {
	return &SyncCycle{}
}

// ObserveCycle records the result of one cycle.
func (m SyncCycle) ObserveCycle(source, status string, imported int, started time.Time) {
	syncCycleTotal.WithLabelValues(source, status).Inc()
	syncCycleDuration.WithLabelValues(source, status).Observe(time.Since(started).Seconds())
	if imported > 0 {
		syncImportedBlocks.WithLabelValues(source).Add(float64(imported))
	}
}

// ObserveSkippedTrigger records a trigger dropped by the no-overlap rule.
func (m SyncCycle) ObserveSkippedTrigger(source string) {
	syncSkippedTriggers.WithLabelValues(source).Inc()
}
