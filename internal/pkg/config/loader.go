// Package config provides fail-open helpers for reading settings from the
// environment. Loaders never return errors: an unparsable or invalid value is
// replaced by the default and reported as a warning so the process still starts.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadResult is the outcome of reading one setting.
//
// Value is always usable. FallbackApplied is true when the environment held a
// value that was rejected, in which case Warnings explains why.
type LoadResult[T any] struct {
	Value           T
	Warnings        []string
	FallbackApplied bool
}

// Resolve logs any warnings, records the fallback on metrics (which may be nil)
// and returns the value. It is the usual way callers consume a LoadResult.
func (r LoadResult[T]) Resolve(logger *slog.Logger, metrics *ConfigMetrics, field string) T {
	if !r.FallbackApplied {
		return r.Value
	}
	if logger == nil {
		logger = slog.Default()
	}
	for _, w := range r.Warnings {
		logger.Warn("configuration fallback applied",
			slog.String("field", field),
			slog.String("warning", w))
	}
	if metrics != nil {
		metrics.RecordValidationError(field)
		metrics.RecordFallback(field)
		metrics.SetFallbackActive(true)
	}
	return r.Value
}

func ok[T any](v T) LoadResult[T] {
	return LoadResult[T]{Value: v}
}

func fallback[T any](envKey, raw string, reason any, def T) LoadResult[T] {
	return LoadResult[T]{
		Value:           def,
		Warnings:        []string{fmt.Sprintf("Invalid %s='%s': %v, falling back to default '%v'", envKey, raw, reason, def)},
		FallbackApplied: true,
	}
}

// LoadEnvString returns the variable or the default when it is unset or empty.
func LoadEnvString(envKey, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	return defaultValue
}

// LoadEnvWithFallback reads a string and checks it with validator (nil skips validation).
//
// Example:
//
//	schedule := LoadEnvWithFallback("CRON_SCHEDULE", "*/30 * * * *", ValidateCronSchedule).
//	    Resolve(logger, metrics, "cron_schedule")
func LoadEnvWithFallback(envKey, defaultValue string, validator func(string) error) LoadResult[string] {
	raw := strings.TrimSpace(os.Getenv(envKey))
	if raw == "" {
		return ok(defaultValue)
	}
	if validator != nil {
		if err := validator(raw); err != nil {
			return fallback(envKey, raw, err, defaultValue)
		}
	}
	return ok(raw)
}

// LoadEnvDuration parses a Go duration string ("30s", "10m", "1h30m").
func LoadEnvDuration(envKey string, defaultValue time.Duration, validator func(time.Duration) error) LoadResult[time.Duration] {
	raw := strings.TrimSpace(os.Getenv(envKey))
	if raw == "" {
		return ok(defaultValue)
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback(envKey, raw, err, defaultValue)
	}
	if validator != nil {
		if err := validator(d); err != nil {
			return fallback(envKey, raw, err, defaultValue)
		}
	}
	return ok(d)
}

// LoadEnvInt parses a base-10 integer.
func LoadEnvInt(envKey string, defaultValue int, validator func(int) error) LoadResult[int] {
	raw := strings.TrimSpace(os.Getenv(envKey))
	if raw == "" {
		return ok(defaultValue)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback(envKey, raw, "invalid integer format", defaultValue)
	}
	if validator != nil {
		if err := validator(n); err != nil {
			return fallback(envKey, raw, err, defaultValue)
		}
	}
	return ok(n)
}

// LoadEnvBool accepts the forms understood by strconv.ParseBool.
func LoadEnvBool(envKey string, defaultValue bool) LoadResult[bool] {
	raw := strings.TrimSpace(os.Getenv(envKey))
	if raw == "" {
		return ok(defaultValue)
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback(envKey, raw, "invalid boolean format, expected 'true' or 'false'", defaultValue)
	}
	return ok(b)
}
