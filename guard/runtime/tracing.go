package runtime

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	constant "github.com/LerianStudio/lib-guard/guard/constants"
)

// ErrPanic is the base error recorded on spans for recovered panics.
var ErrPanic = errors.New("panic")

// PanicSpanEventName is the span event added for a recovered panic.
const PanicSpanEventName = constant.EventPanicRecovered

// RecordPanicToSpan adds a panic event to the span in ctx and marks the span
// as failed. Stacks are omitted in production. No-op without a recording span.
func RecordPanicToSpan(ctx context.Context, panicValue any, stack []byte, component, name string) {
	if ctx == nil {
		return
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	value := formatPanicValue(panicValue)
	production := IsProductionEnvironment()

	if production {
		value = redactedPanicMsg
	}

	attrs := []attribute.KeyValue{
		attribute.String(constant.AttrPanicValue, value),
		attribute.String(constant.AttrPanicSource, name),
	}

	if component != "" {
		attrs = append(attrs, attribute.String(constant.AttrPanicComponent, component))
	}

	if !production && len(stack) > 0 {
		attrs = append(attrs, attribute.String(constant.AttrPanicStack, string(stack)))
	}

	span.AddEvent(PanicSpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(fmt.Errorf("%w: %s", ErrPanic, value))
	span.SetStatus(codes.Error, "panic recovered in "+name)
}
