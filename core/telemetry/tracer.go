package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope of the module.
const TracerName = "github.com/anoideaopen/reflection"

// Tracer returns the module tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// StartSpan starts an internal span named "<operation> <member>" carrying the
// operation and member attributes.
func StartSpan(
	ctx context.Context,
	tracer trace.Tracer,
	op Operation,
	member string,
	attrs ...attribute.KeyValue,
) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	if tracer == nil {
		tracer = Tracer()
	}

	attrs = append([]attribute.KeyValue{OperationAttr(op), Member(member)}, attrs...)

	return tracer.Start(ctx, op.String()+" "+member,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// EndSpan records err, if any, and ends span.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	span.End()
}
