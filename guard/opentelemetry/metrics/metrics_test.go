//go:build unit

package metrics

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/LerianStudio/lib-guard/guard/log"
)

// newTestFactory creates a MetricsFactory wired to an in-memory ManualReader so
// we can collect and inspect metric data without any exporter.
func newTestFactory(t *testing.T) (*MetricsFactory, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	factory, err := NewMetricsFactory(mp.Meter("test-lib"), log.NewNop())
	require.NoError(t, err)

	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	return factory, reader
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var rm metricdata.ResourceMetrics

	require.NoError(t, reader.Collect(context.Background(), &rm))

	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}

	return nil
}

func counterDataPoints(t *testing.T, m *metricdata.Metrics) []metricdata.DataPoint[int64] {
	t.Helper()

	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "expected Sum[int64] data, got %T", m.Data)

	return sum.DataPoints
}

func sumCounterValue(t *testing.T, m *metricdata.Metrics) int64 {
	t.Helper()

	var total int64
	for _, dp := range counterDataPoints(t, m) {
		total += dp.Value
	}

	return total
}

func hasAttribute(attrs attribute.Set, key, value string) bool {
	v, ok := attrs.Value(attribute.Key(key))

	return ok && v.AsString() == value
}

func TestNewMetricsFactory(t *testing.T) {
	factory, _ := newTestFactory(t)

	assert.NotNil(t, factory.meter)
	assert.NotNil(t, factory.logger)
}

func TestNewMetricsFactory_NilMeter(t *testing.T) {
	factory, err := NewMetricsFactory(nil, log.NewNop())

	assert.Nil(t, factory)
	assert.ErrorIs(t, err, ErrNilMeter)
}

func TestNewMetricsFactory_NilLogger(t *testing.T) {
	mp := sdkmetric.NewMeterProvider()
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	factory, err := NewMetricsFactory(mp.Meter("test"), nil)
	require.NoError(t, err)
	assert.NotNil(t, factory.logger)
}

func TestCounterBuilder(t *testing.T) {
	factory, reader := newTestFactory(t)
	ctx := context.Background()

	m := Metric{Name: "test_counter", Description: "a test counter", Unit: "1"}

	counter, err := factory.Counter(m)
	require.NoError(t, err)
	assert.Equal(t, "test_counter", counter.Name())

	require.NoError(t, counter.Add(ctx, 5))
	require.NoError(t, counter.AddOne(ctx))

	found := findMetric(collectMetrics(t, reader), "test_counter")
	require.NotNil(t, found, "metric test_counter not found in collected data")

	assert.Equal(t, int64(6), sumCounterValue(t, found))
	assert.Equal(t, "a test counter", found.Description)
	assert.Equal(t, "1", found.Unit)
}

func TestCounterBuilder_WithLabels(t *testing.T) {
	factory, reader := newTestFactory(t)
	ctx := context.Background()

	counter, err := factory.Counter(Metric{Name: "labeled_counter"})
	require.NoError(t, err)

	labels := map[string]string{"kind": "out-of-range", "component": "billing"}
	require.NoError(t, counter.WithLabels(labels).AddOne(ctx))

	found := findMetric(collectMetrics(t, reader), "labeled_counter")
	require.NotNil(t, found)

	dps := counterDataPoints(t, found)
	require.Len(t, dps, 1)
	assert.True(t, hasAttribute(dps[0].Attributes, "kind", "out-of-range"))
	assert.True(t, hasAttribute(dps[0].Attributes, "component", "billing"))
}

func TestCounterBuilder_WithAttributes(t *testing.T) {
	factory, reader := newTestFactory(t)
	ctx := context.Background()

	counter, err := factory.Counter(Metric{Name: "attr_counter"})
	require.NoError(t, err)

	require.NoError(t, counter.WithAttributes(
		attribute.String("service", "guard"),
		attribute.Int("version", 2),
	).AddOne(ctx))

	found := findMetric(collectMetrics(t, reader), "attr_counter")
	require.NotNil(t, found)

	dps := counterDataPoints(t, found)
	require.Len(t, dps, 1)
	assert.True(t, hasAttribute(dps[0].Attributes, "service", "guard"))

	v, ok := dps[0].Attributes.Value(attribute.Key("version"))
	assert.True(t, ok)
	assert.Equal(t, int64(2), v.AsInt64())
}

func TestCounterBuilder_NilCounter(t *testing.T) {
	builder := &CounterBuilder{name: "nil_counter"}
	ctx := context.Background()

	assert.ErrorIs(t, builder.Add(ctx, 10), ErrNilCounter)
	assert.ErrorIs(t, builder.AddOne(ctx), ErrNilCounter)
}

func TestBuilderImmutability(t *testing.T) {
	factory, reader := newTestFactory(t)
	ctx := context.Background()

	base, err := factory.Counter(Metric{Name: "immutable_counter"})
	require.NoError(t, err)

	withA := base.WithLabels(map[string]string{"a": "1"})
	withB := withA.WithLabels(map[string]string{"b": "2"})

	assert.Empty(t, base.attrs)
	assert.Len(t, withA.attrs, 1)
	assert.Len(t, withB.attrs, 2)

	require.NoError(t, base.AddOne(ctx))
	require.NoError(t, withA.AddOne(ctx))
	require.NoError(t, withB.AddOne(ctx))

	found := findMetric(collectMetrics(t, reader), "immutable_counter")
	require.NotNil(t, found)
	assert.Len(t, counterDataPoints(t, found), 3)
}

func TestCounterCaching(t *testing.T) {
	factory, _ := newTestFactory(t)

	m := Metric{Name: "cached_counter"}

	first, err := factory.Counter(m)
	require.NoError(t, err)

	second, err := factory.Counter(m)
	require.NoError(t, err)

	assert.Equal(t, first.counter, second.counter)
}

func TestConcurrentCounterCreation(t *testing.T) {
	factory, reader := newTestFactory(t)
	ctx := context.Background()

	const goroutines = 100

	m := Metric{Name: "concurrent_counter"}

	var wg sync.WaitGroup

	wg.Add(goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()

			counter, err := factory.Counter(m)
			if err != nil {
				return
			}

			_ = counter.AddOne(ctx)
		}()
	}

	wg.Wait()

	found := findMetric(collectMetrics(t, reader), m.Name)
	require.NotNil(t, found)
	assert.Equal(t, int64(goroutines), sumCounterValue(t, found))
}

func TestGetOrCreateCounter_TypeAssertionFailure(t *testing.T) {
	factory, _ := newTestFactory(t)

	factory.counters.Store("corrupted_counter", "not-a-counter")

	builder, err := factory.Counter(Metric{Name: "corrupted_counter"})

	assert.Nil(t, builder)
	assert.Error(t, err)
}

func TestNopFactory(t *testing.T) {
	factory := NewNopFactory()

	counter, err := factory.Counter(Metric{Name: "nop_counter"})
	require.NoError(t, err)
	assert.NoError(t, counter.AddOne(context.Background()))
}
