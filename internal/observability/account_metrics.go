package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BalanceMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "accounts_service",
			Name:      "balance_mutations_total",
			Help:      "Balance mutations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	BalanceMutationLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "accounts_service",
			Name:      "balance_mutation_duration_seconds",
			Help:      "Time spent inside the atomic read-modify-write of a balance mutation",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	EventsPublishFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "accounts_service",
			Name:      "events_publish_failed_total",
			Help:      "Account events that could not be delivered",
		},
		[]string{"type"},
	)
)
