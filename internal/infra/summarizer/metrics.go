package summarizer

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Request outcomes used as the status label.
const (
	statusSuccess     = "success"
	statusEmpty       = "empty_body"
	statusHTTPError   = "http_error"
	statusDecodeError = "decode_error"
	statusUnavailable = "unavailable"
	statusCircuitOpen = "circuit_open"
)

// MetricsRecorder receives the outcome of each summarizer call.
type MetricsRecorder interface {
	RecordRequest(status string, duration time.Duration)
	RecordSummaries(n int)
}

// PrometheusMetrics implements MetricsRecorder on the default registry.
type PrometheusMetrics struct {
	requests  *prometheus.CounterVec
	duration  prometheus.Histogram
	summaries prometheus.Counter
}

var (
	prometheusMetricsInstance *PrometheusMetrics
	prometheusMetricsOnce     sync.Once
)

// getOrCreate registers c, or returns the collector already registered under
// the same descriptor so repeated construction in tests does not panic.
func getOrCreate[T prometheus.Collector](c T) T {
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
	}
	return c
}

// NewPrometheusMetrics returns the process-wide recorder.
func NewPrometheusMetrics() *PrometheusMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusMetrics{
			requests: getOrCreate(prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "summarizer_requests_total",
				Help: "Summarizer calls by outcome",
			}, []string{"status"})),
			duration: getOrCreate(prometheus.NewHistogram(prometheus.HistogramOpts{
				Name:    "summarizer_request_duration_seconds",
				Help:    "Time spent waiting on the summarizer",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
			})),
			summaries: getOrCreate(prometheus.NewCounter(prometheus.CounterOpts{
				Name: "summarizer_summaries_received_total",
				Help: "Summaries returned by the summarizer",
			})),
		}
	})
	return prometheusMetricsInstance
}

func (p *PrometheusMetrics) RecordRequest(status string, d time.Duration) {
	p.requests.WithLabelValues(status).Inc()
	p.duration.Observe(d.Seconds())
}

func (p *PrometheusMetrics) RecordSummaries(n int) {
	if n > 0 {
		p.summaries.Add(float64(n))
	}
}

type nopMetrics struct{}

func (nopMetrics) RecordRequest(string, time.Duration) {}
func (nopMetrics) RecordSummaries(int)                 {}
