package observability

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/tlskit/tlskit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
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

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
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
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// ClientMetrics holds metric instruments for outbound HTTP requests.
type ClientMetrics struct {
	requestTotal    metric.Int64Counter
	requestDuration metric.Float64Histogram
	handshakeTotal  metric.Int64Counter
	errorTotal      metric.Int64Counter
}

// NewClientMetrics creates metric instruments on the given meter.
func NewClientMetrics(meter metric.Meter) (*ClientMetrics, error) {
	requestTotal, err := meter.Int64Counter("client.request.total",
		metric.WithDescription("Total number of outbound requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating client.request.total counter: %w", err)
	}

	requestDuration, err := meter.Float64Histogram("client.request.duration",
		metric.WithDescription("Duration of outbound requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating client.request.duration histogram: %w", err)
	}

	handshakeTotal, err := meter.Int64Counter("client.tls.handshake.total",
		metric.WithDescription("Total TLS handshakes by verifier kind and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating client.tls.handshake.total counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("client.error.total",
		metric.WithDescription("Total client errors by type"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating client.error.total counter: %w", err)
	}

	return &ClientMetrics{
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		handshakeTotal:  handshakeTotal,
		errorTotal:      errorTotal,
	}, nil
}

// RecordRequest records a completed outbound request.
func (m *ClientMetrics) RecordRequest(ctx context.Context, method string, status int, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("status", strconv.Itoa(status)),
	)
	m.requestTotal.Add(ctx, 1, attrs)
	m.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("method", method),
	))
}

// RecordHandshake records a TLS handshake outcome.
func (m *ClientMetrics) RecordHandshake(ctx context.Context, verifierKind string, ok bool) {
	m.handshakeTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("verifier", verifierKind),
		attribute.Bool("ok", ok),
	))
}

// RecordError records a client error by type.
func (m *ClientMetrics) RecordError(ctx context.Context, errType string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", errType),
	))
}
