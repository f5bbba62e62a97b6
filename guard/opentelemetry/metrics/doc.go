// Package metrics provides a caching factory for OpenTelemetry counters.
//
// The guard records guard_raised_total and the runtime package records
// panic_recovered_total through it.
package metrics
