package main

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace/noop"
)

const serviceName = "offboard"

// setupTracing installs the global tracer provider of a run. Spans are exported to the OTLP
// endpoint when one is set, and written to traceOut when it is not nil. The returned function
// flushes the spans and uninstalls the provider.
func setupTracing(ctx context.Context, endpoint string, traceOut io.Writer) (func(context.Context) error, error) {
	noopShutdown := func(context.Context) error { return nil }
	if endpoint == "" && traceOut == nil {
		return noopShutdown, nil
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return noopShutdown, errors.Wrap(err, "failed to create trace resource")
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	}

	if endpoint != "" {
		exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
		if err != nil {
			return noopShutdown, errors.Wrapf(err, "failed to create trace exporter for %s", endpoint)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	if traceOut != nil {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(traceOut))
		if err != nil {
			return noopShutdown, errors.Wrap(err, "failed to create trace writer")
		}
		opts = append(opts, sdktrace.WithSyncer(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	return func(ctx context.Context) error {
		defer otel.SetTracerProvider(noop.NewTracerProvider())
		return tp.Shutdown(ctx)
	}, nil
}
