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

	"github.com/kbukum/tabkit/logger"
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
		ServiceVersion: "dev",
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

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp, err := NewMeterProvider(config, sdkmetric.NewPeriodicReader(exporter, readerOpts...))
	if err != nil {
		return nil, err
	}

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// NewMeterProvider builds a provider reading through reader, installs it as
// the global provider and returns it. Tests pass sdkmetric.NewManualReader().
func NewMeterProvider(config *MeterConfig, reader sdkmetric.Reader) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metric names.
const (
	MetricRecords       = "tabkit.records"
	MetricStageDuration = "tabkit.stage.duration"
	MetricErrors        = "tabkit.errors"
)

// Metrics holds the instruments recorded per pipeline stage.
type Metrics struct {
	records       metric.Int64Counter
	stageDuration metric.Float64Histogram
	errorTotal    metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	records, err := meter.Int64Counter(MetricRecords,
		metric.WithDescription("Records emitted by a pipeline stage"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricRecords, err)
	}

	stageDuration, err := meter.Float64Histogram(MetricStageDuration,
		metric.WithDescription("Wall time from stage start to exhaustion or close"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricStageDuration, err)
	}

	errorTotal, err := meter.Int64Counter(MetricErrors,
		metric.WithDescription("Stages that ended with an error, by error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricErrors, err)
	}

	return &Metrics{
		records:       records,
		stageDuration: stageDuration,
		errorTotal:    errorTotal,
	}, nil
}

// RecordStage records the outcome of one pipeline stage. code is the
// error code when the stage failed and empty otherwise.
func (m *Metrics) RecordStage(ctx context.Context, demo, stage string, records int, duration time.Duration, code string) {
	attrs := metric.WithAttributes(
		attribute.String("demo", demo),
		attribute.String("stage", stage),
	)
	m.records.Add(ctx, int64(records), attrs)
	m.stageDuration.Record(ctx, duration.Seconds(), attrs)
	if code != "" {
		m.errorTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("demo", demo),
			attribute.String("stage", stage),
			attribute.String("code", code),
		))
	}
}
