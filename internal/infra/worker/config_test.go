package worker

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "*/30 * * * *", cfg.CronSchedule)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 10*time.Minute, cfg.CycleTimeout)
	assert.True(t, cfg.RunOnStartup)
}

func TestValidate_CollectsErrors(t *testing.T) {
	cfg := WorkerConfig{CronSchedule: "not cron", Timezone: "Mars/Olympus", CycleTimeout: time.Second}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cron schedule")
	assert.Contains(t, err.Error(), "timezone")
	assert.Contains(t, err.Error(), "cycle timeout")
}

func TestLoadConfigFromEnv_Valid(t *testing.T) {
	t.Setenv("CRON_SCHEDULE", "@every 15m")
	t.Setenv("WORKER_TIMEZONE", "Europe/Madrid")
	t.Setenv("CYCLE_TIMEOUT", "5m")
	t.Setenv("RUN_ON_STARTUP", "false")

	m := NewWorkerMetrics(prometheus.NewRegistry())
	cfg := LoadConfigFromEnv(quietLogger(), m)

	assert.Equal(t, "@every 15m", cfg.CronSchedule)
	assert.Equal(t, "Europe/Madrid", cfg.Timezone)
	assert.Equal(t, 5*time.Minute, cfg.CycleTimeout)
	assert.False(t, cfg.RunOnStartup)
	assert.Equal(t, "Europe/Madrid", cfg.Location().String())
	assert.Zero(t, testutil.ToFloat64(m.FallbackActive))
}

func TestLoadConfigFromEnv_FallsBack(t *testing.T) {
	t.Setenv("CRON_SCHEDULE", "every now and then")
	t.Setenv("WORKER_TIMEZONE", "Nowhere/City")
	t.Setenv("CYCLE_TIMEOUT", "5s")
	t.Setenv("RUN_ON_STARTUP", "maybe")

	m := NewWorkerMetrics(prometheus.NewRegistry())
	cfg := LoadConfigFromEnv(quietLogger(), m)

	assert.Equal(t, DefaultConfig(), *cfg)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.FallbackActive))
	for _, field := range []string{"cron_schedule", "timezone", "cycle_timeout", "run_on_startup"} {
		assert.Equal(t, float64(1), testutil.ToFloat64(m.FallbacksTotal.WithLabelValues(field)), field)
	}
}

func TestLoadConfigFromEnv_NilMetrics(t *testing.T) {
	t.Setenv("CRON_SCHEDULE", "bad")
	cfg := LoadConfigFromEnv(quietLogger(), nil)
	assert.Equal(t, DefaultConfig().CronSchedule, cfg.CronSchedule)
}
