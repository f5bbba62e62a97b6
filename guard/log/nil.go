package log

import "context"

// NopLogger discards everything. It is the logger of a guard built without one.
type NopLogger struct{}

// NewNop returns a NopLogger.
func NewNop() Logger {
	return &NopLogger{}
}

// Log drops the event.
func (l *NopLogger) Log(_ context.Context, _ Level, _ string, _ ...Field) {}

// With returns the receiver.
//
//nolint:ireturn
func (l *NopLogger) With(_ ...Field) Logger {
	return l
}

// WithGroup returns the receiver.
//
//nolint:ireturn
func (l *NopLogger) WithGroup(_ string) Logger {
	return l
}

// Enabled is always false.
func (l *NopLogger) Enabled(_ Level) bool {
	return false
}

// Sync does nothing.
func (l *NopLogger) Sync(_ context.Context) error { return nil }
