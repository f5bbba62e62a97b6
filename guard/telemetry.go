package guard

import (
	"context"
	"runtime/debug"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	constant "github.com/LerianStudio/lib-guard/guard/constants"
	"github.com/LerianStudio/lib-guard/guard/failure"
	"github.com/LerianStudio/lib-guard/guard/log"
	"github.com/LerianStudio/lib-guard/guard/opentelemetry/metrics"
	"github.com/LerianStudio/lib-guard/guard/runtime"
)

// RaisedSpanEventName is the span event added for every raised failure.
const RaisedSpanEventName = constant.EventGuardRaised

var guardRaisedMetric = metrics.Metric{
	Name:        constant.MetricGuardRaisedTotal,
	Unit:        "1",
	Description: "Total number of failures raised by guard chains",
}

// record emits the metric, span event and debug log of a raised failure.
// The raise id ties the span event to the log record.
func (g *Guard) record(ctx context.Context, kind failure.Kind, err error) {
	span := trace.SpanFromContext(ctx)
	recording := g.telemetry && span.IsRecording()
	debugEnabled := g.logger.Enabled(log.LevelDebug)

	var raiseID string
	if recording || debugEnabled {
		raiseID = uuid.NewString()
	}

	if g.telemetry {
		g.recordMetric(ctx, kind)
	}

	if recording {
		g.recordSpan(span, kind, raiseID, err)
	}

	if debugEnabled {
		g.logger.Log(ctx, log.LevelDebug, "guard raised",
			log.String(constant.AttrGuardKind, kind.String()),
			log.String(constant.AttrGuardComponent, g.component),
			log.String(constant.AttrGuardRaiseID, raiseID),
			log.Err(err))
	}
}

func (g *Guard) recordMetric(ctx context.Context, kind failure.Kind) {
	if g.metrics == nil {
		return
	}

	counter, err := g.metrics.Counter(guardRaisedMetric)
	if err != nil {
		g.logger.Log(ctx, log.LevelWarn, "failed to create guard metric counter", log.Err(err))
		return
	}

	err = counter.
		WithLabels(map[string]string{
			"kind":      constant.SanitizeMetricLabel(kind.String()),
			"component": constant.SanitizeMetricLabel(g.component),
		}).
		AddOne(ctx)
	if err != nil {
		g.logger.Log(ctx, log.LevelWarn, "failed to record guard metric", log.Err(err))
	}
}

func (g *Guard) recordSpan(span trace.Span, kind failure.Kind, raiseID string, err error) {
	attrs := []attribute.KeyValue{
		attribute.String(constant.AttrGuardKind, kind.String()),
		attribute.String(constant.AttrGuardMessage, err.Error()),
		attribute.String(constant.AttrGuardRaiseID, raiseID),
		attribute.String(constant.AttrGuardComponent, g.component),
	}

	if g.shouldIncludeStack() {
		attrs = append(attrs, attribute.String(constant.AttrGuardStack, string(debug.Stack())))
	}

	span.AddEvent(RaisedSpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(err)
	span.SetStatus(codes.Error, "guard raised "+kind.String()+" in "+g.component)
}

func (g *Guard) shouldIncludeStack() bool {
	return g.includeStack && !runtime.IsProductionEnvironment()
}
