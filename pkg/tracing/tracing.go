// Package tracing wires OpenTelemetry spans around ledger and refund operations.
// Tracer stays a no-op until Init is called.
package tracing

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "store-credit-ledger"

// Tracer is used by services to open spans.
var Tracer trace.Tracer = noop.Tracer{}

// Init installs an OTLP/HTTP exporter. The endpoint comes from
// OTEL_EXPORTER_OTLP_ENDPOINT, defaulting to localhost:4318.
func Init(ctx context.Context, serviceName string, log zerolog.Logger) (shutdown func(context.Context), err error) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithInsecure())
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(time.Second)),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
	)
	otel.SetTracerProvider(provider)

	Tracer = otel.Tracer(instrumentationName)

	return func(ctx context.Context) {
		if err := provider.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown trace provider")
		}
	}, nil
}

// RecordError marks the span as failed and returns err unchanged.
func RecordError(span trace.Span, err error) error {
	if err == nil {
		return nil
	}
	span.SetStatus(codes.Error, err.Error())
	span.RecordError(err)
	return err
}
