//go:build unit

package runtime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/LerianStudio/lib-guard/guard/log"
	"github.com/LerianStudio/lib-guard/guard/opentelemetry/metrics"
	guardzap "github.com/LerianStudio/lib-guard/guard/zap"
)

func newObservedLogger() (log.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)

	return guardzap.Wrap(zap.New(core)), logs
}

func newTestTracerProvider(t *testing.T) (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	return provider, recorder
}

func newTestMetricsFactory(t *testing.T) (*metrics.MetricsFactory, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	factory, err := metrics.NewMetricsFactory(provider.Meter("runtime-test"), log.NewNop())
	require.NoError(t, err)

	return factory, reader
}

func collectCounter(t *testing.T, reader *sdkmetric.ManualReader, name string) []metricdata.DataPoint[int64] {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}

			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "expected Sum[int64], got %T", m.Data)

			return sum.DataPoints
		}
	}

	return nil
}

func eventAttributes(event sdktrace.Event) map[string]string {
	attrs := make(map[string]string, len(event.Attributes))
	for _, attr := range event.Attributes {
		attrs[string(attr.Key)] = attr.Value.Emit()
	}

	return attrs
}

// withProductionMode sets production mode for the duration of the test.
func withProductionMode(t *testing.T, enabled bool) {
	t.Helper()

	previous := IsProductionMode()
	SetProductionMode(enabled)
	t.Cleanup(func() { SetProductionMode(previous) })
}

type capturedReport struct {
	err  error
	tags map[string]string
}

type recordingReporter struct {
	reports []capturedReport
}

func (r *recordingReporter) CaptureException(_ context.Context, err error, tags map[string]string) {
	r.reports = append(r.reports, capturedReport{err: err, tags: tags})
}

func withReporter(t *testing.T) *recordingReporter {
	t.Helper()

	reporter := &recordingReporter{}
	previous := GetErrorReporter()
	SetErrorReporter(reporter)
	t.Cleanup(func() { SetErrorReporter(previous) })

	return reporter
}
