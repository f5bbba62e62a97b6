// Package constant holds the telemetry names shared by the guard, runtime and
// metrics packages.
//
// Keep this package free of runtime behavior beyond label sanitization.
package constant
