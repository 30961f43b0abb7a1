// Package telemetry wraps the OpenTelemetry tracer for spanning
// Multiply/Divide calls, so a large calculation's time can be attributed to
// schoolbook, FFT, or Newton-divider work in a trace backend. No package in
// deccalc calls StartOperation, so its batch and server paths emit no spans.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies this package's spans in exported traces.
const tracerName = "decimalcore/deccalc"

// Tracer returns the global tracer registered under tracerName.
func Tracer() trace.Tracer { return otel.Tracer(tracerName) }

// StartOperation begins a span for a single decimal.Uint operation
// (op is "add", "mul", "div", ...), tagging it with the operand lengths in
// limbs so a trace backend can correlate latency with size.
func StartOperation(ctx context.Context, op string, operandLimbsA, operandLimbsB int) (context.Context, trace.Span) {
	return Tracer().Start(ctx, op, trace.WithAttributes(
		attribute.String("decimal.op", op),
		attribute.Int("decimal.operand_a_limbs", operandLimbsA),
		attribute.Int("decimal.operand_b_limbs", operandLimbsB),
	))
}
