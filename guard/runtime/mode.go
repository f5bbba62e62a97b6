package runtime

import (
	"os"
	"strings"
	"sync"
)

var (
	productionMode   bool
	productionModeMu sync.RWMutex
)

// SetProductionMode toggles redaction of stack traces and panic details.
func SetProductionMode(enabled bool) {
	productionModeMu.Lock()
	defer productionModeMu.Unlock()

	productionMode = enabled
}

// IsProductionMode reports the value set through SetProductionMode.
func IsProductionMode() bool {
	productionModeMu.RLock()
	defer productionModeMu.RUnlock()

	return productionMode
}

// IsProductionEnvironment reports whether production mode is on, either
// explicitly or because ENV or GO_ENV is "production".
func IsProductionEnvironment() bool {
	if IsProductionMode() {
		return true
	}

	for _, key := range []string{"ENV", "GO_ENV"} {
		if strings.EqualFold(strings.TrimSpace(os.Getenv(key)), "production") {
			return true
		}
	}

	return false
}
