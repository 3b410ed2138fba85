// Package metrics holds the Prometheus collectors for the API.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "HTTP requests by method, matched route and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request latency by method and matched route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	MediaOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_media_operations_total",
			Help: "Object store operations by kind and outcome",
		},
		[]string{"operation", "outcome"},
	)

	MediaUploadBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_media_upload_bytes_total",
			Help: "Bytes written to the object store",
		},
	)
)

// RecordRequest records one finished HTTP request.
func RecordRequest(method, route, status string, d time.Duration) {
	HTTPRequests.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordMedia records an object store call. err == nil counts as success.
func RecordMedia(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	MediaOperations.WithLabelValues(operation, outcome).Inc()
}
