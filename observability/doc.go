// Package observability wires OpenTelemetry metrics and traces for services
// mounting the guard pipeline.
//
// InitMeter and InitTracer install global OTLP-backed providers; AuthMetrics
// exposes the instruments the guard middleware records — authentication
// outcomes per scheme and authorization denials.
package observability
