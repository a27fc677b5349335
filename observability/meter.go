package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/telar-labs/authguard/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (development, staging, production).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the global OpenTelemetry meter provider.
// The returned provider should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// AuthMetrics holds the instruments recorded by the guard middleware.
type AuthMetrics struct {
	authTotal   metric.Int64Counter
	authzDenied metric.Int64Counter
}

// NewAuthMetrics creates the guard pipeline instruments on the given meter.
func NewAuthMetrics(meter metric.Meter) (*AuthMetrics, error) {
	authTotal, err := meter.Int64Counter("auth.decisions.total",
		metric.WithDescription("Authentication decisions by scheme and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating auth.decisions.total counter: %w", err)
	}

	authzDenied, err := meter.Int64Counter("authz.denied.total",
		metric.WithDescription("Authorization denials for authenticated callers"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating authz.denied.total counter: %w", err)
	}

	return &AuthMetrics{authTotal: authTotal, authzDenied: authzDenied}, nil
}

// RecordAuthDecision counts one authentication decision.
func (m *AuthMetrics) RecordAuthDecision(ctx context.Context, scheme, outcome string) {
	if m == nil {
		return
	}
	m.authTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("scheme", scheme),
		attribute.String("outcome", outcome),
	))
}

// RecordAuthzDenied counts one authorization denial for the given role.
func (m *AuthMetrics) RecordAuthzDenied(ctx context.Context, role string) {
	if m == nil {
		return
	}
	m.authzDenied.Add(ctx, 1, metric.WithAttributes(
		attribute.String("role", role),
	))
}
