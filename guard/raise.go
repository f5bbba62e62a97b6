package guard

import (
	"context"
	"fmt"
	"slices"

	constant "github.com/LerianStudio/lib-guard/guard/constants"
	"github.com/LerianStudio/lib-guard/guard/failure"
	"github.com/LerianStudio/lib-guard/guard/log"
	"github.com/LerianStudio/lib-guard/guard/placeholder"
	"github.com/LerianStudio/lib-guard/guard/runtime"
)

const observerSource = "guard_observer"

// Raise returns the failure of the pending kind, or nil when nothing tripped.
//
// The error is a *failure.Failure unless a custom constructor is registered for
// the kind. A message whose placeholders do not match the parameters yields a
// *failure.ParameterCountError instead. The chain is reset on every path.
func (c *Chain) Raise() error {
	return c.RaiseWith(nil)
}

// RaiseWith is Raise with cause attached to the failure.
func (c *Chain) RaiseWith(cause error) error {
	defer c.reset()

	if c.kind == "" {
		return nil
	}

	return c.guard.raise(c.ctx, pending{
		kind:       c.kind,
		message:    c.message,
		hasMessage: c.hasMessage,
		params:     c.params,
	}, cause)
}

// RaiseAs raises the pending failure as kind instead. The template of kind
// replaces the resolved one, but a message set with WithMessage is kept.
// Without a pending kind it is a no-op, like Raise.
func (c *Chain) RaiseAs(kind failure.Kind) error {
	return c.RaiseAsWith(kind, nil)
}

// RaiseAsWith is RaiseAs with cause attached to the failure.
func (c *Chain) RaiseAsWith(kind failure.Kind, cause error) error {
	if c.kind != "" && kind != "" {
		c.assign(kind)
	}

	return c.RaiseWith(cause)
}

// pending is a snapshot of a tripped chain.
type pending struct {
	kind       failure.Kind
	message    string
	hasMessage bool
	params     []any
}

func (g *Guard) raise(ctx context.Context, p pending, cause error) error {
	var message string

	if p.hasMessage {
		formatted, err := formatMessage(p.message, p.params)
		if err != nil {
			g.logger.Log(ctx, log.LevelWarn, "guard message does not match its parameters",
				log.String(constant.AttrGuardKind, p.kind.String()),
				log.String(constant.AttrGuardComponent, g.component),
				log.Err(err))

			return err
		}

		message = formatted
	}

	raised, err := g.construct(p, message, cause)
	if err != nil {
		logger := g.logger.With(
			log.String(constant.AttrGuardKind, p.kind.String()),
			log.String(constant.AttrGuardComponent, g.component))
		log.SafeError(logger, ctx, "guard failure could not be constructed", err, runtime.IsProductionEnvironment())

		return err
	}

	g.notify(ctx, raised)
	g.record(ctx, p.kind, raised)

	return raised
}

// formatMessage substitutes params into template. A template without
// placeholders is returned verbatim whatever params holds.
func formatMessage(template string, params []any) (string, error) {
	expected := placeholder.Count(template)
	if expected == 0 {
		return template, nil
	}

	if expected != len(params) {
		return "", &failure.ParameterCountError{
			Template: template,
			Expected: expected,
			Actual:   len(params),
		}
	}

	return placeholder.Format(template, params), nil
}

// construct builds the domain failure for p. err reports a kind that cannot be
// built for the path taken.
func (g *Guard) construct(p pending, message string, cause error) (raised, err error) {
	constructor, ok := g.registry.Constructor(p.kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", failure.ErrNoConstructor, p.kind)
	}

	switch {
	case p.hasMessage && constructor.FromMessage != nil:
		raised = constructor.FromMessage(message, cause)
	case !p.hasMessage && constructor.FromParameters != nil:
		raised = constructor.FromParameters(slices.Clone(p.params), cause)
	case p.hasMessage:
		return nil, fmt.Errorf("%w: %s has no message constructor", failure.ErrNoConstructor, p.kind)
	default:
		return nil, fmt.Errorf("%w: %s has no parameter constructor", failure.ErrNoConstructor, p.kind)
	}

	if raised == nil {
		return nil, fmt.Errorf("%w: %s constructor returned nil", failure.ErrNoConstructor, p.kind)
	}

	return raised, nil
}

// notify hands err to the observer. A panicking observer is recovered and
// reported; it never changes what the raise returns.
func (g *Guard) notify(ctx context.Context, err error) {
	observer := g.registry.Observer()
	if observer == nil {
		return
	}

	defer runtime.RecoverAndLogWithContext(ctx, g.logger, g.component, observerSource)

	observer(ctx, err)
}
