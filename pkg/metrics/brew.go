package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the brew HTTP handlers
	BrewRequestLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "potion_brew_request_latency_seconds",
		Help:    "Latency of potion brew handlers",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of brew requests received
	BrewRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "potion_brew_requests_total",
		Help: "Total number of potion brew requests",
	})
)

func Init() {
	prometheus.MustRegister(
		BrewRequestLatency,
		BrewRequests,
	)
}
