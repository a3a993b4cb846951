package worker

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/puntadelverde-srpm/srpm/internal/pkg/config"
)

// WorkerConfig controls the scheduled ingestion cycles.
type WorkerConfig struct {
	// CronSchedule is a five-field cron expression or a descriptor such as "@every 15m".
	CronSchedule string

	// Timezone is the IANA zone the schedule is evaluated in.
	Timezone string

	// CycleTimeout bounds one scheduled cycle, fetch and summarization included.
	CycleTimeout time.Duration

	// RunOnStartup triggers one cycle right after the scheduler starts so the
	// stores are not empty until the first tick.
	RunOnStartup bool
}

func DefaultConfig() WorkerConfig {
	return WorkerConfig{
		CronSchedule: "*/30 * * * *",
		Timezone:     "UTC",
		CycleTimeout: 10 * time.Minute,
		RunOnStartup: true,
	}
}

// Validate collects every invalid field into one error.
func (c *WorkerConfig) Validate() error {
	var errs []error

	if err := config.ValidateCronSchedule(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := validateCycleTimeout(c.CycleTimeout); err != nil {
		errs = append(errs, fmt.Errorf("cycle timeout: %w", err))
	}

	return errors.Join(errs...)
}

func validateCycleTimeout(d time.Duration) error {
	return config.ValidateDuration(d, 30*time.Second, 2*time.Hour)
}

// Location returns the schedule's time zone, UTC if it cannot be loaded.
func (c *WorkerConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LoadConfigFromEnv reads the worker settings. Invalid values fall back to
// their defaults with a warning and a metric, so the returned config is
// always valid.
//
// Environment variables:
//   - CRON_SCHEDULE (default "*/30 * * * *")
//   - WORKER_TIMEZONE (default "UTC")
//   - CYCLE_TIMEOUT, 30s..2h (default "10m")
//   - RUN_ON_STARTUP (default true)
func LoadConfigFromEnv(logger *slog.Logger, metrics *WorkerMetrics) *WorkerConfig {
	def := DefaultConfig()
	var cm *config.ConfigMetrics
	if metrics != nil {
		cm = metrics.ConfigMetrics
		cm.SetFallbackActive(false)
	}

	cfg := &WorkerConfig{
		CronSchedule: config.LoadEnvWithFallback("CRON_SCHEDULE", def.CronSchedule, config.ValidateCronSchedule).
			Resolve(logger, cm, "cron_schedule"),
		Timezone: config.LoadEnvWithFallback("WORKER_TIMEZONE", def.Timezone, config.ValidateTimezone).
			Resolve(logger, cm, "timezone"),
		CycleTimeout: config.LoadEnvDuration("CYCLE_TIMEOUT", def.CycleTimeout, validateCycleTimeout).
			Resolve(logger, cm, "cycle_timeout"),
		RunOnStartup: config.LoadEnvBool("RUN_ON_STARTUP", def.RunOnStartup).
			Resolve(logger, cm, "run_on_startup"),
	}

	if cm != nil {
		cm.RecordLoadTimestamp()
	}
	return cfg
}
