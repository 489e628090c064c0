// Package middleware holds the inbound HTTP pipeline. The server mounts it
// with Chain in this order, outermost first:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout
//
// Routes that address a single role or category add Aggregate on top, which
// scopes logs and the server span to that aggregate.
package middleware
