package runtime

import (
	"context"
	"fmt"
	"sync"
)

// ErrorReporter forwards recovered panics to an external error tracking service.
//
// Implementations must be safe for concurrent use and must not panic.
type ErrorReporter interface {
	CaptureException(ctx context.Context, err error, tags map[string]string)
}

var (
	errorReporterInstance ErrorReporter
	errorReporterMu       sync.RWMutex
)

// SetErrorReporter installs the process-wide reporter. Pass nil to disable reporting.
func SetErrorReporter(reporter ErrorReporter) {
	errorReporterMu.Lock()
	defer errorReporterMu.Unlock()

	errorReporterInstance = reporter
}

// GetErrorReporter returns the installed reporter, or nil.
func GetErrorReporter() ErrorReporter {
	errorReporterMu.RLock()
	defer errorReporterMu.RUnlock()

	return errorReporterInstance
}

const (
	redactedPanicMsg = "panic recovered (details redacted)"
	maxReportedStack = 4096
)

func reportPanicToErrorService(ctx context.Context, panicValue any, stack []byte, component, name string) {
	reporter := GetErrorReporter()
	if reporter == nil {
		return
	}

	production := IsProductionEnvironment()

	tags := map[string]string{
		"component":  component,
		"source":     name,
		"panic_type": "recovered",
	}

	if len(stack) > 0 && !production {
		tags["stack_trace"] = truncateStack(stack)
	}

	reporter.CaptureException(ctx, toPanicError(panicValue, production), tags)
}

func truncateStack(stack []byte) string {
	if len(stack) <= maxReportedStack {
		return string(stack)
	}

	return string(stack[:maxReportedStack]) + "\n...[truncated]"
}

// panicError carries a non-error panic value as an error.
type panicError struct {
	message string
}

func (e *panicError) Error() string {
	return e.message
}

// Unwrap lets errors.Is(err, ErrPanic) identify reported panics.
func (e *panicError) Unwrap() error {
	return ErrPanic
}

func toPanicError(panicValue any, production bool) error {
	if production {
		return &panicError{message: redactedPanicMsg}
	}

	if err, ok := panicValue.(error); ok {
		return err
	}

	return &panicError{message: "panic: " + formatPanicValue(panicValue)}
}

func formatPanicValue(value any) string {
	switch val := value.(type) {
	case nil:
		return "<nil>"
	case string:
		return val
	case error:
		return val.Error()
	default:
		return fmt.Sprintf("%v", value)
	}
}
