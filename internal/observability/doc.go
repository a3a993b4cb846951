// Package observability groups the service's logging, metrics and tracing.
//
// Subpackages:
//   - logging: slog construction and context helpers
//   - metrics: Prometheus collectors for HTTP and ingestion
//   - tracing: OpenTelemetry tracer and HTTP middleware
package observability
