package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EntriesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clipboard_entries_created_total",
		Help: "Number of clipboard entries created.",
	})

	EntriesNotFound = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clipboard_entries_not_found_total",
		Help: "Number of lookups for unknown identifiers.",
	})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "clipboard_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func ObserveRequest(method, route string, status int, latency time.Duration) {
	requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(latency.Seconds())
}
