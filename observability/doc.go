// Package observability wires OpenTelemetry tracing and metrics for the
// gateway. Telemetry is optional: when disabled, the global noop providers
// stay in place and the helpers in this package cost nothing.
package observability
