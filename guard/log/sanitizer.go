package log

import (
	"context"
	"fmt"
	"strings"
)

// controlCharReplacer escapes characters that could forge extra log lines (CWE-117).
var controlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Sanitize escapes newlines, carriage returns and tabs in s.
// Guard messages embed caller-supplied parameters, so they pass through here before logging.
func Sanitize(s string) string {
	return controlCharReplacer.Replace(s)
}

// SafeError logs err at error level. When production is true only the error's
// type is logged, never its message.
func SafeError(logger Logger, ctx context.Context, msg string, err error, production bool) {
	if logger == nil || err == nil {
		return
	}

	if !logger.Enabled(LevelError) {
		return
	}

	if production {
		logger.Log(ctx, LevelError, msg, String("error_type", fmt.Sprintf("%T", err)))
		return
	}

	logger.Log(ctx, LevelError, msg, Err(err))
}
