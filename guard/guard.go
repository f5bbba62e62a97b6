package guard

import (
	"github.com/LerianStudio/lib-guard/guard/failure"
	"github.com/LerianStudio/lib-guard/guard/log"
	"github.com/LerianStudio/lib-guard/guard/opentelemetry/metrics"
	"github.com/LerianStudio/lib-guard/guard/registry"
	"github.com/LerianStudio/lib-guard/guard/runtime"
)

// DefaultComponent is the component label used when none is configured.
const DefaultComponent = "guard"

// Observer is notified with every failure a chain raises, before it is returned.
type Observer = registry.Observer

// Guard starts assertion chains and raises the failures they record.
//
// A Guard is safe for concurrent use. The chains it starts are not: each
// *Chain belongs to the goroutine that started it.
type Guard struct {
	registry     *registry.Registry
	logger       log.Logger
	metrics      *metrics.MetricsFactory
	component    string
	telemetry    bool
	includeStack bool
}

// Option configures a Guard.
type Option func(*options)

type options struct {
	logger    log.Logger
	metrics   *metrics.MetricsFactory
	component string
	registry  *registry.Registry
	observer  Observer
	telemetry bool
}

// WithLogger sets the logger used for diagnostics and debug records of raises.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetricsFactory enables guard_raised_total and panic_recovered_total.
func WithMetricsFactory(factory *metrics.MetricsFactory) Option {
	return func(o *options) {
		o.metrics = factory
	}
}

// WithComponent sets the component label attached to metrics, span events and logs.
func WithComponent(component string) Option {
	return func(o *options) {
		if component != "" {
			o.component = component
		}
	}
}

// WithRegistry shares reg between guards instead of seeding a fresh default registry.
func WithRegistry(reg *registry.Registry) Option {
	return func(o *options) {
		if reg != nil {
			o.registry = reg
		}
	}
}

// WithObserver installs observer in the guard's registry.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// WithTelemetry toggles metric and span recording. Enabled by default.
func WithTelemetry(enabled bool) Option {
	return func(o *options) {
		o.telemetry = enabled
	}
}

// New returns a Guard with its own registry seeded with the built-in templates,
// unless WithRegistry supplies one.
func New(opts ...Option) *Guard {
	o := options{
		logger:    log.NewNop(),
		component: DefaultComponent,
		telemetry: true,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if o.registry == nil {
		o.registry = registry.NewDefault()
	}

	if o.observer != nil {
		o.registry.SetObserver(o.observer)
	}

	if o.metrics != nil {
		runtime.InitPanicMetrics(o.metrics, o.logger)
	}

	return &Guard{
		registry:     o.registry,
		logger:       o.logger,
		metrics:      o.metrics,
		component:    o.component,
		telemetry:    o.telemetry,
		includeStack: true,
	}
}

// Registry returns the registry backing g.
func (g *Guard) Registry() *registry.Registry {
	return g.registry
}

// Component returns the component label of g.
func (g *Guard) Component() string {
	return g.component
}

// Register sets the message template for kind.
func (g *Guard) Register(kind failure.Kind, template string) {
	g.registry.Register(kind, template)
}

// Deregister removes the message template for kind. Raises of kind then
// construct their failure from the raw parameters.
func (g *Guard) Deregister(kind failure.Kind) {
	g.registry.Deregister(kind)
}

// RegisterKind adds or replaces the constructor for kind.
func (g *Guard) RegisterKind(kind failure.Kind, constructor failure.Constructor) error {
	return g.registry.RegisterKind(kind, constructor)
}

// SetObserver replaces the observer. Pass nil to remove it.
func (g *Guard) SetObserver(observer Observer) {
	g.registry.SetObserver(observer)
}

// Begin starts an empty chain.
func (g *Guard) Begin() *Chain {
	return newChain(g)
}
