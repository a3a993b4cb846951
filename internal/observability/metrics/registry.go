package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)
)

// Ingestion metrics.
var (
	ItemsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "items_total",
			Help: "Number of items currently held in the item store",
		},
	)

	SummariesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "summaries_total",
			Help: "Number of summaries currently held in the summary store",
		},
	)

	SourcesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sources_total",
			Help: "Number of registered feed sources",
		},
	)

	FeedItemsFetchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_items_fetched_total",
			Help: "Feed entries considered after applying the per-feed limit",
		},
		[]string{"source"},
	)

	ItemsIngestedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "items_ingested_total",
			Help: "Items stored, by source and result (inserted, duplicate, skipped)",
		},
		[]string{"source", "result"},
	)

	FeedCrawlDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feed_crawl_duration_seconds",
			Help:    "Time taken to crawl a feed source",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
		[]string{"source"},
	)

	FeedCrawlErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_crawl_errors_total",
			Help: "Total number of feed crawl errors",
		},
		[]string{"source", "error_type"},
	)

	IngestionCyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingestion_cycles_total",
			Help: "Ingestion cycles run, by kind (cycle, refresh) and status",
		},
		[]string{"kind", "status"},
	)

	IngestionCycleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ingestion_cycle_duration_seconds",
			Help:    "End-to-end duration of an ingestion cycle",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"kind"},
	)

	SummariesSavedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "summaries_saved_total",
			Help: "Summaries persisted after a successful summarizer call",
		},
	)
)

// RecordHTTPRequest records one served request. path should already be normalized.
func RecordHTTPRequest(method, path, status string, duration time.Duration, requestSize, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())

	if requestSize > 0 {
		HTTPRequestSize.WithLabelValues(method, path).Observe(float64(requestSize))
	}
	if responseSize > 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}
