package guard

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/LerianStudio/lib-guard/guard/failure"
)

// Chain records the first predicate that trips and raises it as a failure.
//
// Once a kind is pending every later predicate is inert, whatever it evaluates
// to. Raise and its variants reset the chain, so it can be reused afterwards.
// A Chain must not be shared between goroutines.
type Chain struct {
	guard *Guard
	ctx   context.Context

	kind       failure.Kind
	message    string
	hasMessage bool
	custom     bool
	params     []any
}

func newChain(g *Guard) *Chain {
	return &Chain{guard: g, ctx: context.Background()}
}

// WithContext sets the context passed to the observer and used for telemetry.
func (c *Chain) WithContext(ctx context.Context) *Chain {
	if ctx != nil {
		c.ctx = ctx
	}

	return c
}

// WithMessage replaces the kind's template with text for this chain. It applies
// whether or not a predicate has tripped yet.
func (c *Chain) WithMessage(text string) *Chain {
	c.message = text
	c.hasMessage = true
	c.custom = true

	return c
}

// WithParameters replaces the parameters bound by the last predicate.
func (c *Chain) WithParameters(args ...any) *Chain {
	c.params = args

	return c
}

// And returns c. It only makes chains read naturally.
func (c *Chain) And() *Chain {
	return c
}

// Tripped reports whether a predicate has tripped.
func (c *Chain) Tripped() bool {
	return c.kind != ""
}

// Kind returns the pending kind, or "" when nothing tripped.
func (c *Chain) Kind() failure.Kind {
	return c.kind
}

// Against trips when cond is true.
func (c *Chain) Against(cond bool, params ...any) *Chain {
	return c.check(failure.AssertionFailed, params, func() bool { return cond })
}

// AgainstFunc trips when fn returns true. fn runs at most once and only while
// nothing is pending. A nil fn never trips.
func (c *Chain) AgainstFunc(fn func() bool, params ...any) *Chain {
	return c.check(failure.AssertionFailed, params, func() bool { return fn != nil && fn() })
}

// AgainstNull trips when v is nil, including a typed nil inside the interface.
func (c *Chain) AgainstNull(v any, params ...any) *Chain {
	return c.check(failure.RequiredNonNull, params, func() bool { return isNil(v) })
}

// AgainstNotNull trips when v is not nil.
func (c *Chain) AgainstNotNull(v any, params ...any) *Chain {
	return c.check(failure.MustBeNull, params, func() bool { return !isNil(v) })
}

// AgainstNullOrEmpty trips when s is nil or points to "".
func (c *Chain) AgainstNullOrEmpty(s *string, params ...any) *Chain {
	return c.check(failure.NullOrEmpty, params, func() bool { return s == nil || *s == "" })
}

// AgainstEmpty trips when s is "".
func (c *Chain) AgainstEmpty(s string, params ...any) *Chain {
	return c.check(failure.NullOrEmpty, params, func() bool { return s == "" })
}

// AgainstNullOrWhitespace trips when s is nil, empty or only Unicode whitespace.
func (c *Chain) AgainstNullOrWhitespace(s *string, params ...any) *Chain {
	return c.check(failure.NullOrWhitespace, params, func() bool { return s == nil || isBlank(*s) })
}

// AgainstWhitespace trips when s is empty or only Unicode whitespace.
func (c *Chain) AgainstWhitespace(s string, params ...any) *Chain {
	return c.check(failure.NullOrWhitespace, params, func() bool { return isBlank(s) })
}

// AgainstNotInRange trips when v is outside the inclusive range [minimum, maximum].
// A single parameter is taken as the subject name and the bounds are appended to it.
func (c *Chain) AgainstNotInRange(v, minimum, maximum int, params ...any) *Chain {
	return c.check(failure.OutOfRange, withBounds(params, minimum, maximum), func() bool {
		return v < minimum || v > maximum
	})
}

// AgainstNotInDateRange trips when v is before minimum or after maximum.
// A single parameter is taken as the subject name and the bounds are appended to it.
func (c *Chain) AgainstNotInDateRange(v, minimum, maximum time.Time, params ...any) *Chain {
	return c.check(failure.MinMaxRange, withBounds(params, minimum, maximum), func() bool {
		return v.Before(minimum) || v.After(maximum)
	})
}

// AgainstNotInDecimalRange trips when v is outside the inclusive range [minimum, maximum].
// A single parameter is taken as the subject name and the bounds are appended to it.
func (c *Chain) AgainstNotInDecimalRange(v, minimum, maximum decimal.Decimal, params ...any) *Chain {
	return c.check(failure.OutOfRange, withBounds(params, minimum, maximum), func() bool {
		return v.LessThan(minimum) || v.GreaterThan(maximum)
	})
}

// MustBeOfType trips c when v does not hold a T. A nil v never matches. A single
// parameter is taken as the subject name and the expected type name is appended.
func MustBeOfType[T any](c *Chain, v any, params ...any) *Chain {
	if len(params) == 1 {
		params = []any{params[0], reflect.TypeFor[T]().String()}
	}

	return c.check(failure.WrongType, params, func() bool {
		_, ok := v.(T)
		return !ok
	})
}

// check binds params and trips kind when tripped reports true. It does nothing
// once a kind is pending.
func (c *Chain) check(kind failure.Kind, params []any, tripped func() bool) *Chain {
	if c.kind != "" {
		return c
	}

	c.params = params

	if tripped() {
		c.assign(kind)
	}

	return c
}

// assign sets the pending kind and resolves its template unless a custom
// message is set. A kind without a template leaves no message, so the failure
// is built from the parameters.
func (c *Chain) assign(kind failure.Kind) {
	c.kind = kind

	if c.custom {
		return
	}

	c.message, c.hasMessage = c.guard.registry.Lookup(kind)
}

func (c *Chain) reset() {
	c.ctx = context.Background()
	c.kind = ""
	c.message = ""
	c.hasMessage = false
	c.custom = false
	c.params = nil
}

func withBounds(params []any, minimum, maximum any) []any {
	if len(params) != 1 {
		return params
	}

	return []any{params[0], minimum, maximum}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// isNil reports whether v is nil, including typed nils held in the interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
