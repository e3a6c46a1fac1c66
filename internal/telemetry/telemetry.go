// Package telemetry provides OpenTelemetry tracing for game rounds.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const serviceName = "ledmemory"

// Resource attribute keys describing the board a process drives.
const (
	BoardKey = attribute.Key("ledmemory.board")
	InputKey = attribute.Key("ledmemory.input")
)

// Options describe the exporting process.
type Options struct {
	// Endpoint overrides OTEL_EXPORTER_OTLP_ENDPOINT when set.
	Endpoint string
	Version  string
	Board    string
	Input    string
}

// Setup registers a global tracer provider exporting over OTLP/HTTP. The
// remaining settings come from the standard OTEL_EXPORTER_OTLP_* variables.
//
// Returns a shutdown function that flushes pending spans.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	var exportOpts []otlptracehttp.Option
	if opts.Endpoint != "" {
		exportOpts = append(exportOpts, otlptracehttp.WithEndpointURL(opts.Endpoint))
	}

	exporter, err := otlptracehttp.New(ctx, exportOpts...)
	if err != nil {
		return nil, err
	}

	res, err := Resource(ctx, opts)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Resource builds the resource attached to every span. It is not merged
// with resource.Default() to avoid schema URL conflicts.
func Resource(ctx context.Context, opts Options) (*resource.Resource, error) {
	version := opts.Version
	if version == "" {
		version = "dev"
	}

	attrs := []attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", version),
		attribute.String("host.name", hostname()),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("process.runtime.version", runtime.Version()),
	}
	if opts.Board != "" {
		attrs = append(attrs, BoardKey.String(opts.Board))
	}
	if opts.Input != "" {
		attrs = append(attrs, InputKey.String(opts.Input))
	}

	return resource.New(ctx, resource.WithAttributes(attrs...))
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
