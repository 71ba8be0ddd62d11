package metrics

import "github.com/prometheus/client_golang/prometheus"

// Engine Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vivu",
			Name:      "searches_total",
			Help:      "Total number of search queries executed",
		},
	)

	SuggestionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vivu",
			Name:      "suggestions_total",
			Help:      "Total number of suggestion lookups executed",
		},
	)

	ResultCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vivu",
			Name:      "result_cache_total",
			Help:      "Result cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	CatalogItems = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "vivu",
			Name:      "catalog_items",
			Help:      "Number of items in the current catalog snapshot",
		},
	)
)

func init() {
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SuggestionsTotal)
	prometheus.MustRegister(ResultCacheTotal)
	prometheus.MustRegister(CatalogItems)
}
