package constant

// TelemetrySDKName identifies this library as the instrumentation scope of its
// logs, metrics and span events.
const TelemetrySDKName = "lib-guard"

// MaxMetricLabelLength bounds metric label values to keep cardinality in check.
const MaxMetricLabelLength = 64

// Telemetry attribute key prefixes.
const (
	// AttrPrefixGuard is the prefix for guard raise attributes.
	AttrPrefixGuard = "guard."
	// AttrPrefixPanic is the prefix for recovered panic attributes.
	AttrPrefixPanic = "panic."
)

// Guard raise attribute keys, used on span events and as log field names.
const (
	AttrGuardKind      = AttrPrefixGuard + "kind"
	AttrGuardMessage   = AttrPrefixGuard + "message"
	AttrGuardComponent = AttrPrefixGuard + "component"
	AttrGuardRaiseID   = AttrPrefixGuard + "raise_id"
	AttrGuardStack     = AttrPrefixGuard + "stack"
)

// Recovered panic attribute keys.
const (
	AttrPanicValue     = AttrPrefixPanic + "value"
	AttrPanicComponent = AttrPrefixPanic + "component"
	AttrPanicSource    = AttrPrefixPanic + "source"
	AttrPanicStack     = AttrPrefixPanic + "stack"
)

// Telemetry metric names.
const (
	// MetricGuardRaisedTotal counts failures returned by guard raises.
	MetricGuardRaisedTotal = "guard_raised_total"
	// MetricPanicRecoveredTotal counts panics recovered from guard observers.
	MetricPanicRecoveredTotal = "panic_recovered_total"
)

// Telemetry event names.
const (
	// EventGuardRaised is the span event recorded when a guard raise returns a failure.
	EventGuardRaised = "guard.raised"
	// EventPanicRecovered is the span event recorded for a recovered panic.
	EventPanicRecovered = "panic.recovered"
)

// SanitizeMetricLabel truncates value to MaxMetricLabelLength bytes.
func SanitizeMetricLabel(value string) string {
	if len(value) > MaxMetricLabelLength {
		return value[:MaxMetricLabelLength]
	}

	return value
}
