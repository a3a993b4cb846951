package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/puntadelverde-srpm/srpm/internal/pkg/config"
)

// WorkerMetrics adds scheduled-job metrics to the worker's config metrics.
//
//   - worker_cron_job_runs_total{status}: started, success, failure, skipped
//   - worker_cron_job_duration_seconds
//   - worker_cron_job_summaries_saved_total
//   - worker_cron_job_last_success_timestamp
type WorkerMetrics struct {
	*config.ConfigMetrics

	CronJobRunsTotal            *prometheus.CounterVec
	CronJobDurationSeconds      prometheus.Histogram
	CronJobSummariesSavedTotal  prometheus.Counter
	CronJobLastSuccessTimestamp prometheus.Gauge
}

// NewWorkerMetrics registers the worker metrics on reg.
func NewWorkerMetrics(reg prometheus.Registerer) *WorkerMetrics {
	f := promauto.With(reg)
	return &WorkerMetrics{
		ConfigMetrics: config.NewConfigMetrics(reg, "worker"),

		CronJobRunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_cron_job_runs_total",
			Help: "Total number of scheduled cycle runs by status",
		}, []string{"status"}),

		// 1s, 5s, 30s, 1m, 5m, 15m, 30m
		CronJobDurationSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_cron_job_duration_seconds",
			Help:    "Duration of scheduled cycles in seconds",
			Buckets: []float64{1, 5, 30, 60, 300, 900, 1800},
		}),

		CronJobSummariesSavedTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "worker_cron_job_summaries_saved_total",
			Help: "Summaries saved by scheduled cycles",
		}),

		CronJobLastSuccessTimestamp: f.NewGauge(prometheus.GaugeOpts{
			Name: "worker_cron_job_last_success_timestamp",
			Help: "Unix timestamp of the last successful scheduled cycle",
		}),
	}
}

func (m *WorkerMetrics) RecordJobRun(status string) {
	m.CronJobRunsTotal.WithLabelValues(status).Inc()
}

func (m *WorkerMetrics) RecordJobDuration(seconds float64) {
	m.CronJobDurationSeconds.Observe(seconds)
}

func (m *WorkerMetrics) RecordSummariesSaved(n int) {
	m.CronJobSummariesSavedTotal.Add(float64(n))
}

func (m *WorkerMetrics) RecordLastSuccess() {
	m.CronJobLastSuccessTimestamp.SetToCurrentTime()
}
