package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the preference and matching services.
type Metrics struct {
	MatchRequests    *prometheus.CounterVec
	CandidatePool    prometheus.Histogram
	RankDuration     prometheus.Histogram
	ProfileMutations *prometheus.CounterVec
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		MatchRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coliving",
			Subsystem: "matching",
			Name:      "requests_total",
			Help:      "Total number of top-matches queries by outcome.",
		}, []string{"outcome"}), // outcome: ok, no_profile, error
		CandidatePool: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "coliving",
			Subsystem: "matching",
			Name:      "candidate_pool_size",
			Help:      "Number of candidate profiles scored per query.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		RankDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "coliving",
			Subsystem: "matching",
			Name:      "rank_duration_seconds",
			Help:      "Time spent scoring and sorting a candidate pool.",
			Buckets:   prometheus.DefBuckets,
		}),
		ProfileMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coliving",
			Subsystem: "preferences",
			Name:      "mutations_total",
			Help:      "Total number of preference profile writes by operation and outcome.",
		}, []string{"operation", "outcome"}), // operation: create, update, delete
	}
}

// Outcome labels
const (
	OutcomeOK        = "ok"
	OutcomeNoProfile = "no_profile"
	OutcomeInvalid   = "invalid"
	OutcomeConflict  = "conflict"
	OutcomeNotFound  = "not_found"
	OutcomeError     = "error"
)
