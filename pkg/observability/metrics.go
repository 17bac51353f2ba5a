// Package observability provides Prometheus metrics and HTTP middleware
// for monitoring the RAGFIN1 gateway.
package observability

import "github.com/prometheus/client_golang/prometheus"

// LatencyBuckets covers both the static endpoints (sub-millisecond) and
// AI-backed queries (up to the 120s backend timeout).
var LatencyBuckets = []float64{0.001, 0.005, 0.025, 0.1, 0.5, 1, 2, 5, 10, 30, 60, 120}

var (
	// RequestsTotal counts all HTTP requests by method, path, and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ragfin_requests_total",
			Help: "Total requests",
		},
		[]string{"method", "path", "status"},
	)

	// RequestDuration records HTTP request duration in seconds by method and path.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ragfin_request_duration_seconds",
			Help:    "Request duration",
			Buckets: LatencyBuckets,
		},
		[]string{"method", "path"},
	)

	// InFlightRequests tracks the number of requests currently being handled.
	InFlightRequests = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ragfin_inflight_requests",
			Help: "Requests in flight",
		},
	)

	// ProviderRequestsTotal counts calls sent to the AI backend.
	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ragfin_provider_requests_total",
			Help: "AI backend requests",
		},
		[]string{"provider", "model", "status"},
	)

	// ProviderLatency records AI backend latency in seconds.
	ProviderLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ragfin_provider_latency_seconds",
			Help:    "AI backend latency",
			Buckets: LatencyBuckets,
		},
		[]string{"provider", "model"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		InFlightRequests,
		ProviderRequestsTotal,
		ProviderLatency,
	)
}
