// Package otel installs the process-wide OpenTelemetry tracer provider.
package otel

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/teamboost/gratitudewall/internal/platform/config"
)

const (
	// EnvEndpoint names the OTLP/HTTP collector URL.
	EnvEndpoint = "GRATITUDE_OTEL_ENDPOINT"
	// EnvEnabled disables tracing when set to false.
	EnvEnabled = "GRATITUDE_OTEL_ENABLED"
	// EnvSampleRatio sets the fraction of root spans kept.
	EnvSampleRatio = "GRATITUDE_OTEL_SAMPLE_RATIO"
)

// Config selects where spans are exported.
type Config struct {
	Endpoint    string  `env:"GRATITUDE_OTEL_ENDPOINT"`
	Enabled     string  `env:"GRATITUDE_OTEL_ENABLED"`
	SampleRatio float64 `env:"GRATITUDE_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

func (c Config) active() bool {
	if strings.EqualFold(strings.TrimSpace(c.Enabled), "false") {
		return false
	}
	return strings.TrimSpace(c.Endpoint) != ""
}

func (c Config) sampler() sdktrace.Sampler {
	if c.SampleRatio <= 0 || c.SampleRatio >= 1 {
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(c.SampleRatio))
}

// Setup reads Config from the environment and installs a tracer provider for
// serviceName.
//
// Tracing is opt-in. Without an endpoint, or with tracing disabled, Setup
// registers nothing and returns a no-op shutdown; spans then go to the
// default no-op provider.
func Setup(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return noopShutdown, err
	}
	return SetupWithConfig(ctx, serviceName, cfg)
}

// SetupWithConfig is Setup with an explicit configuration.
func SetupWithConfig(ctx context.Context, serviceName string, cfg Config) (func(context.Context) error, error) {
	if !cfg.active() {
		return noopShutdown, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(strings.TrimSpace(cfg.Endpoint)))
	if err != nil {
		return noopShutdown, fmt.Errorf("otlp exporter: %w", err)
	}
	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(serviceName),
		semconv.ServiceNamespace("teamboost"),
	))
	if err != nil {
		return noopShutdown, fmt.Errorf("otel resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(cfg.sampler()),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return provider.Shutdown, nil
}

func noopShutdown(context.Context) error { return nil }
