package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "swifttrip_searches_total",
		Help: "The total number of trip searches started",
	})

	SourceFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swifttrip_source_fallbacks_total",
		Help: "Searches served from static fallback data after the upstream failed",
	}, []string{"kind"})

	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "swifttrip_upstream_request_duration_seconds",
		Help:    "Time taken by upstream calls, including retries",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"source", "operation"})

	ResultsReturned = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "swifttrip_results_returned",
		Help:    "Number of offers in each returned list",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
	}, []string{"kind"})
)
