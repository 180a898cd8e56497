package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
)

// ErrUnknownExporter indicates an unsupported trace exporter name.
var ErrUnknownExporter = errors.New("unknown trace exporter")

// TracerName is the instrumentation scope for spans this module starts.
const TracerName = "github.com/abhisek/blockhint"

// InitTracer installs a global tracer provider for the named exporter and
// returns its shutdown function. "none" leaves the no-op provider in place.
// The stdout exporter writes to w.
func InitTracer(ctx context.Context, exporter, serviceName, version string, w io.Writer) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	var exp trace.SpanExporter
	switch exporter {
	case "none", "":
		return noop, nil
	case "stdout":
		e, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create exporter: %w", err)
		}
		exp = e
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownExporter, exporter)
	}

	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", serviceName),
		attribute.String("service.version", version),
	)
	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(res),
		trace.WithSampler(trace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
