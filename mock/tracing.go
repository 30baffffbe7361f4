package mock

import (
	"github.com/anoideaopen/reflection/core/telemetry"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// Tracing records the spans of a private tracer provider.
type Tracing struct {
	Recorder *tracetest.SpanRecorder
	Provider *sdktrace.TracerProvider
}

func NewTracing() *Tracing {
	recorder := tracetest.NewSpanRecorder()

	return &Tracing{
		Recorder: recorder,
		Provider: sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)),
	}
}

// Tracer returns the module tracer of the private provider.
func (tr *Tracing) Tracer() trace.Tracer {
	return tr.Provider.Tracer(telemetry.TracerName)
}

// SpanNames lists the names of the ended spans in order.
func (tr *Tracing) SpanNames() []string {
	spans := tr.Recorder.Ended()

	names := make([]string, len(spans))
	for i, s := range spans {
		names[i] = s.Name()
	}

	return names
}
