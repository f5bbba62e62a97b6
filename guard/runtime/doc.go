// Package runtime recovers panics raised by guard observers and records them
// through logging, metrics, tracing and an optional error reporter.
//
// It also owns production mode, which suppresses stack traces and panic
// details everywhere the guard emits them.
package runtime
