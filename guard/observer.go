package guard

import (
	"context"

	constant "github.com/LerianStudio/lib-guard/guard/constants"
	"github.com/LerianStudio/lib-guard/guard/failure"
	"github.com/LerianStudio/lib-guard/guard/log"
)

// LogObserver returns an observer that logs every raised failure at error level.
// A nil logger yields a no-op observer.
func LogObserver(logger log.Logger) Observer {
	if logger == nil {
		logger = log.NewNop()
	}

	return func(ctx context.Context, err error) {
		fields := []log.Field{log.Err(err)}

		if f, ok := failure.As(err); ok {
			fields = append(fields, log.String(constant.AttrGuardKind, f.Kind.String()))
		}

		logger.Log(ctx, log.LevelError, "guard failure raised", fields...)
	}
}
