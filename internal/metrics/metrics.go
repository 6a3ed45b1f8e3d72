package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values for DirectoryRequestsTotal.
const (
	OutcomeSuccess      = "success"
	OutcomeStatusError  = "status_error"
	OutcomeNetworkError = "network_error"
	OutcomeDecodeError  = "decode_error"
	OutcomeCircuitOpen  = "circuit_open"
)

// Directory service (TVmaze) client metrics
var (
	DirectoryRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_requests_total",
			Help: "Total number of requests sent to the show directory service.",
		},
		[]string{"endpoint", "outcome"},
	)

	DirectoryRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "directory_request_duration_seconds",
			Help:    "Latency of show directory service requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	CircuitBreakerOpenTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "directory_circuit_breaker_open_total",
			Help: "Number of times the directory circuit breaker opened.",
		},
	)
)

// Web front-end metrics
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served, by route pattern and status code.",
		},
		[]string{"route", "code"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency of HTTP requests served, by route pattern.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

func init() {
	prometheus.MustRegister(
		DirectoryRequestsTotal,
		DirectoryRequestDuration,
		CircuitBreakerOpenTotal,
		HTTPRequestsTotal,
		HTTPRequestDuration,
	)
}
