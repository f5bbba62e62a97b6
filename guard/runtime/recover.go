package runtime

import (
	"context"
	"runtime/debug"

	constant "github.com/LerianStudio/lib-guard/guard/constants"
	"github.com/LerianStudio/lib-guard/guard/log"
)

// RecoverAndLogWithContext recovers a panic, logs it and records it to every
// configured sink: panic metric, span event and error reporter. Execution
// continues after the deferred call.
//
//	func notify(ctx context.Context) {
//	    defer runtime.RecoverAndLogWithContext(ctx, logger, "billing", "guard_observer")
//	    observer(ctx, err)
//	}
func RecoverAndLogWithContext(ctx context.Context, logger log.Logger, component, name string) {
	if r := recover(); r != nil {
		handlePanic(ctx, logger, r, component, name)
	}
}

// HandlePanicValue runs the same pipeline as RecoverAndLogWithContext for a
// value that was recovered elsewhere. A nil value is ignored.
func HandlePanicValue(ctx context.Context, logger log.Logger, panicValue any, component, name string) {
	if panicValue == nil {
		return
	}

	handlePanic(ctx, logger, panicValue, component, name)
}

func handlePanic(ctx context.Context, logger log.Logger, panicValue any, component, name string) {
	if ctx == nil {
		ctx = context.Background()
	}

	stack := debug.Stack()

	logPanicWithStack(ctx, logger, component, name, panicValue, stack)
	recordPanicMetric(ctx, component, name)
	RecordPanicToSpan(ctx, panicValue, stack, component, name)
	reportPanicToErrorService(ctx, panicValue, stack, component, name)
}

func logPanicWithStack(ctx context.Context, logger log.Logger, component, name string, panicValue any, stack []byte) {
	if logger == nil {
		return
	}

	fields := []log.Field{
		log.String(constant.AttrPanicComponent, component),
		log.String(constant.AttrPanicSource, name),
	}

	if IsProductionEnvironment() {
		fields = append(fields, log.String(constant.AttrPanicValue, redactedPanicMsg))
	} else {
		fields = append(fields,
			log.String(constant.AttrPanicValue, formatPanicValue(panicValue)),
			log.String(constant.AttrPanicStack, string(stack)),
		)
	}

	logger.Log(ctx, log.LevelError, "panic recovered", fields...)
}
