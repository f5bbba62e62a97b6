package guard

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/LerianStudio/lib-guard/guard/failure"
)

var defaultGuard = sync.OnceValue(func() *Guard {
	cfg, err := LoadConfig()
	if err == nil {
		g, buildErr := NewFromConfig(cfg)
		if buildErr == nil {
			return g
		}

		err = buildErr
	}

	// No logger exists yet to report through.
	fmt.Fprintf(os.Stderr, "lib-guard: falling back to defaults: %v\n", err)

	return New()
})

// Default returns the process-wide Guard, configured from the environment on
// first use.
func Default() *Guard {
	return defaultGuard()
}

// Begin starts an empty chain on the default guard.
func Begin() *Chain {
	return Default().Begin()
}

// Register sets the template for kind on the default guard.
func Register(kind failure.Kind, template string) {
	Default().Register(kind, template)
}

// Deregister removes the template for kind from the default guard.
func Deregister(kind failure.Kind) {
	Default().Deregister(kind)
}

// RegisterKind adds or replaces the constructor for kind on the default guard.
func RegisterKind(kind failure.Kind, constructor failure.Constructor) error {
	return Default().RegisterKind(kind, constructor)
}

// SetObserver replaces the observer of the default guard.
func SetObserver(observer Observer) {
	Default().SetObserver(observer)
}

// Against starts a chain on the default guard. See Chain.Against.
func Against(cond bool, params ...any) *Chain {
	return Default().Against(cond, params...)
}

// AgainstFunc starts a chain on the default guard. See Chain.AgainstFunc.
func AgainstFunc(fn func() bool, params ...any) *Chain {
	return Default().AgainstFunc(fn, params...)
}

// AgainstNull starts a chain on the default guard. See Chain.AgainstNull.
func AgainstNull(v any, params ...any) *Chain {
	return Default().AgainstNull(v, params...)
}

// AgainstNotNull starts a chain on the default guard. See Chain.AgainstNotNull.
func AgainstNotNull(v any, params ...any) *Chain {
	return Default().AgainstNotNull(v, params...)
}

// AgainstNullOrEmpty starts a chain on the default guard. See Chain.AgainstNullOrEmpty.
func AgainstNullOrEmpty(s *string, params ...any) *Chain {
	return Default().AgainstNullOrEmpty(s, params...)
}

// AgainstEmpty starts a chain on the default guard. See Chain.AgainstEmpty.
func AgainstEmpty(s string, params ...any) *Chain {
	return Default().AgainstEmpty(s, params...)
}

// AgainstNullOrWhitespace starts a chain on the default guard. See Chain.AgainstNullOrWhitespace.
func AgainstNullOrWhitespace(s *string, params ...any) *Chain {
	return Default().AgainstNullOrWhitespace(s, params...)
}

// AgainstWhitespace starts a chain on the default guard. See Chain.AgainstWhitespace.
func AgainstWhitespace(s string, params ...any) *Chain {
	return Default().AgainstWhitespace(s, params...)
}

// AgainstNotInRange starts a chain on the default guard. See Chain.AgainstNotInRange.
func AgainstNotInRange(v, minimum, maximum int, params ...any) *Chain {
	return Default().AgainstNotInRange(v, minimum, maximum, params...)
}

// AgainstNotInDateRange starts a chain on the default guard. See Chain.AgainstNotInDateRange.
func AgainstNotInDateRange(v, minimum, maximum time.Time, params ...any) *Chain {
	return Default().AgainstNotInDateRange(v, minimum, maximum, params...)
}

// AgainstNotInDecimalRange starts a chain on the default guard. See Chain.AgainstNotInDecimalRange.
func AgainstNotInDecimalRange(v, minimum, maximum decimal.Decimal, params ...any) *Chain {
	return Default().AgainstNotInDecimalRange(v, minimum, maximum, params...)
}
