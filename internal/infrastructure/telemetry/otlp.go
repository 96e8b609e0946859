// Package telemetry installs the OpenTelemetry tracer provider used by the
// layout use cases. Tracing stays on the global no-op provider unless an
// OTLP endpoint is configured.
package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/bnema/dumbed/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Config selects the trace exporter.
type Config struct {
	// Endpoint is host:port (plain HTTP) or a full http(s) URL.
	Endpoint    string
	ServiceName string
	Version     string
}

// ShutdownFunc flushes pending spans and releases the exporter.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup installs a global tracer provider exporting over OTLP/HTTP.
// With an empty endpoint it does nothing and returns a no-op shutdown.
func Setup(ctx context.Context, cfg Config) (ShutdownFunc, error) {
	log := logging.FromContext(ctx)

	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		log.Debug().Msg("tracing disabled, no otlp endpoint")
		return noopShutdown, nil
	}

	var opt otlptracehttp.Option
	if strings.Contains(endpoint, "://") {
		opt = otlptracehttp.WithEndpointURL(endpoint)
	} else {
		opt = otlptracehttp.WithEndpoint(endpoint)
	}
	exporter, err := otlptracehttp.New(ctx, opt, otlptracehttp.WithInsecure())
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	provider := NewTracerProvider(exporter, cfg.ServiceName, cfg.Version)
	otel.SetTracerProvider(provider)

	log.Info().
		Str("endpoint", endpoint).
		Str("service", cfg.ServiceName).
		Msg("tracing enabled")

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown tracer provider: %w", err)
		}
		return nil
	}, nil
}

// NewTracerProvider batches spans into exporter, tagged with the service name.
func NewTracerProvider(exporter sdktrace.SpanExporter, serviceName, version string) *sdktrace.TracerProvider {
	if serviceName == "" {
		serviceName = "dumbed"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(version),
	)
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
}
