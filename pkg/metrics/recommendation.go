package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	EmptyReasonNoMatch    = "no_match"
	EmptyReasonNotFound   = "not_found"
	EmptyReasonStoreFault = "store_fault"
)

var (
	// Latency of the recommendation HTTP handlers
	RecommendDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommendation_request_duration_seconds",
		Help:    "Latency of recommendation endpoints",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation requests served
	RecommendTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommendation_requests_total",
		Help: "Total number of recommendation requests",
	})

	// Empty recommendation responses by reason. The external contract
	// collapses not-found and store faults into an empty list; this counter
	// keeps the distinction visible to operators.
	RecommendEmpty = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommendation_empty_results_total",
		Help: "Empty recommendation responses by reason",
	}, []string{"reason"})

	CatalogSearchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_search_duration_seconds",
		Help:    "Latency of catalog listing queries",
		Buckets: prometheus.DefBuckets,
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendDuration,
		RecommendTotal,
		RecommendEmpty,
		CatalogSearchDuration,
	)
}
