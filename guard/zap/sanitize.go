package zap

import (
	logpkg "github.com/LerianStudio/lib-guard/guard/log"
)

// sanitizeValue escapes control characters in string field values.
// Failure messages can embed caller-supplied parameters, and the console
// encoder would otherwise print an embedded newline as a new log line.
// Non-string values pass through unchanged.
func sanitizeValue(value any) any {
	if s, ok := value.(string); ok {
		return logpkg.Sanitize(s)
	}

	return value
}
