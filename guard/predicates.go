package guard

import (
	"time"

	"github.com/shopspring/decimal"
)

// Against starts a chain that trips when cond is true.
func (g *Guard) Against(cond bool, params ...any) *Chain {
	return g.Begin().Against(cond, params...)
}

// AgainstFunc starts a chain that trips when fn returns true.
func (g *Guard) AgainstFunc(fn func() bool, params ...any) *Chain {
	return g.Begin().AgainstFunc(fn, params...)
}

// AgainstNull starts a chain that trips when v is nil.
func (g *Guard) AgainstNull(v any, params ...any) *Chain {
	return g.Begin().AgainstNull(v, params...)
}

// AgainstNotNull starts a chain that trips when v is not nil.
func (g *Guard) AgainstNotNull(v any, params ...any) *Chain {
	return g.Begin().AgainstNotNull(v, params...)
}

// AgainstNullOrEmpty starts a chain that trips when s is nil or empty.
func (g *Guard) AgainstNullOrEmpty(s *string, params ...any) *Chain {
	return g.Begin().AgainstNullOrEmpty(s, params...)
}

// AgainstEmpty starts a chain that trips when s is empty.
func (g *Guard) AgainstEmpty(s string, params ...any) *Chain {
	return g.Begin().AgainstEmpty(s, params...)
}

// AgainstNullOrWhitespace starts a chain that trips when s is nil, empty or blank.
func (g *Guard) AgainstNullOrWhitespace(s *string, params ...any) *Chain {
	return g.Begin().AgainstNullOrWhitespace(s, params...)
}

// AgainstWhitespace starts a chain that trips when s is empty or blank.
func (g *Guard) AgainstWhitespace(s string, params ...any) *Chain {
	return g.Begin().AgainstWhitespace(s, params...)
}

// AgainstNotInRange starts a chain that trips when v is outside [minimum, maximum].
func (g *Guard) AgainstNotInRange(v, minimum, maximum int, params ...any) *Chain {
	return g.Begin().AgainstNotInRange(v, minimum, maximum, params...)
}

// AgainstNotInDateRange starts a chain that trips when v is outside [minimum, maximum].
func (g *Guard) AgainstNotInDateRange(v, minimum, maximum time.Time, params ...any) *Chain {
	return g.Begin().AgainstNotInDateRange(v, minimum, maximum, params...)
}

// AgainstNotInDecimalRange starts a chain that trips when v is outside [minimum, maximum].
func (g *Guard) AgainstNotInDecimalRange(v, minimum, maximum decimal.Decimal, params ...any) *Chain {
	return g.Begin().AgainstNotInDecimalRange(v, minimum, maximum, params...)
}
