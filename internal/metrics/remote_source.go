package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	remoteFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "remote_source",
		Name:      "fetch_total",
		Help:      "Count of page requests to redundant sources by outcome.",
	}, []string{"source", "outcome", "status"})

	remoteFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "remote_source",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of page requests to redundant sources.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source", "status"})

	remoteFetchBlocks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "remote_source",
		Name:      "fetched_blocks_total",
		Help:      "Number of serialized blocks received from redundant sources.",
	}, []string{"source"})
)

// RemoteSource tracks page requests against redundant sources.
type RemoteSource struct{}

// NewRemoteSource constructs a RemoteSource collector.
func NewRemoteSource() *RemoteSource {
	return &RemoteSource{}
}

// ObserveFetch records one page request. outcome is empty when the request failed.
func (m RemoteSource) ObserveFetch(source, outcome string, blocks int, err error, started time.Time) {
	status := statusLabel(err)
	if outcome == "" {
		outcome = "none"
	}
	remoteFetchTotal.WithLabelValues(source, outcome, status).Inc()
	remoteFetchDuration.WithLabelValues(source, status).Observe(time.Since(started).Seconds())
	if blocks > 0 {
		remoteFetchBlocks.WithLabelValues(source).Add(float64(blocks))
	}
}
