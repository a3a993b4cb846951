// Package tracing provides the OpenTelemetry tracer used across the service and
// an HTTP middleware creating one server span per request.
//
// Spans go to the globally registered TracerProvider; without one they are no-ops.
//
//	ctx, span := tracing.StartSpan(ctx, "digest.RunIngestionCycle")
//	defer span.End()
package tracing
