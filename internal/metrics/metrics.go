package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "photobooth"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})
)

var (
	// SessionResolutions is labelled by result: ok, not_found, invalid.
	SessionResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "session",
		Name:      "resolutions_total",
		Help:      "Session code resolutions by result.",
	}, []string{"result"})

	ImagesIndexed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "gallery",
		Name:      "images_indexed_total",
		Help:      "Still images admitted into a gallery listing.",
	})

	ImagesSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "gallery",
		Name:      "images_skipped_total",
		Help:      "Still images excluded because they could not be decoded.",
	})

	CompanionMissing = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "gallery",
		Name:      "companion_missing_total",
		Help:      "Animated companions not yet produced by the capture pipeline.",
	})
)

const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid"
)
