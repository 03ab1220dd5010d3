package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// CallbacksTotal counts provider callbacks by processing outcome:
	// matched, created, unresolvable, malformed, error.
	CallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mpesa_reconciler",
			Subsystem: "callbacks",
			Name:      "processed_total",
			Help:      "Total number of M-Pesa callbacks by processing outcome",
		},
		[]string{"outcome"},
	)

	// MatchesTotal counts resolved callbacks by match method.
	MatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mpesa_reconciler",
			Subsystem: "callbacks",
			Name:      "matches_total",
			Help:      "Total number of resolved callbacks by match method",
		},
		[]string{"method"},
	)
)

func init() {
	Registry.MustRegister(CallbacksTotal, MatchesTotal)
}
