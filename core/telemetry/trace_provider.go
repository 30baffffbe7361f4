package telemetry

import (
	"context"
	"fmt"

	"github.com/anoideaopen/reflection/core/config"
	"github.com/anoideaopen/reflection/version"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

// ShutdownFunc flushes and stops an installed provider.
type ShutdownFunc func(ctx context.Context) error

func noopShutdown(context.Context) error { return nil }

// InstallTraceProvider installs the global tracer provider. Without an
// endpoint a noop provider is installed; otherwise spans are batched to an
// OTLP/HTTP collector, over TLS when a CA bundle is configured.
//
// Parameters:
//   - settings: The telemetry section; nil disables export.
//   - serviceName: The service.name resource attribute. Falls back to
//     settings.ServiceName, then to config.DefaultServiceName.
//
// Returns:
//   - ShutdownFunc: Flushes pending spans. Never nil.
//   - error: Exporter or TLS construction failures. The noop
//     provider is installed in that case.
func InstallTraceProvider(settings *config.Telemetry, serviceName string) (ShutdownFunc, error) {
	var tracerProvider trace.TracerProvider = trace.NewNoopTracerProvider()
	shutdown := ShutdownFunc(noopShutdown)

	defer func() {
		otel.SetTracerProvider(tracerProvider)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	}()

	if settings == nil || len(settings.Endpoint) == 0 {
		return shutdown, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(settings.Endpoint)}

	tlsCfg, err := tlsConfig(settings)
	if err != nil {
		return shutdown, fmt.Errorf("configuring TLS: %w", err)
	}
	switch {
	case tlsCfg != nil:
		opts = append(opts, otlptracehttp.WithTLSClientConfig(tlsCfg))
	case settings.Insecure:
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptrace.New(context.Background(), otlptracehttp.NewClient(opts...))
	if err != nil {
		return shutdown, fmt.Errorf("creating OTLP trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(newResource(settings, serviceName)),
	)
	tracerProvider = provider

	return provider.Shutdown, nil
}

func newResource(settings *config.Telemetry, serviceName string) *resource.Resource {
	if serviceName == "" && settings != nil {
		serviceName = settings.ServiceName
	}
	if serviceName == "" {
		serviceName = config.DefaultServiceName
	}

	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(version.Version()),
	)
}
