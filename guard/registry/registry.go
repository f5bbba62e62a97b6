package registry

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/LerianStudio/lib-guard/guard/failure"
)

var (
	// ErrEmptyKind is returned when registering a constructor under an empty kind.
	ErrEmptyKind = errors.New("failure kind is empty")
	// ErrEmptyConstructor is returned when a constructor has no construction function.
	ErrEmptyConstructor = errors.New("constructor has no construction function")
)

// Observer is notified with every constructed failure immediately before it is returned.
type Observer func(ctx context.Context, err error)

// DefaultTemplates returns the built-in kind to template mapping.
func DefaultTemplates() map[failure.Kind]string {
	return map[failure.Kind]string{
		failure.RequiredNonNull:  "The variable '{0}' cannot be null.",
		failure.MustBeNull:       "The variable '{0}' must be null.",
		failure.OutOfRange:       "'{0}' is out of range between {1} and {2}",
		failure.AssertionFailed:  "The expression to guard against was evaluated to true.",
		failure.NullOrEmpty:      "The variable '{0}' cannot be null or empty.",
		failure.NullOrWhitespace: "The variable '{0}' cannot be null or whitespace.",
		failure.MinMaxRange:      "The value for '{0}' falls outside the required minimum and maximum range (min={1}, max={2}).",
		failure.WrongType:        "The object '{0}' is not of the specified type {1}.",
	}
}

// Registry holds message templates, failure constructors and the observer slot.
// All methods are safe for concurrent use.
type Registry struct {
	mu           sync.RWMutex
	templates    map[failure.Kind]string
	constructors map[failure.Kind]failure.Constructor
	observer     Observer
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		templates:    make(map[failure.Kind]string),
		constructors: make(map[failure.Kind]failure.Constructor),
	}
}

// NewDefault returns a registry seeded with the built-in templates and constructors.
func NewDefault() *Registry {
	r := New()

	for kind, template := range DefaultTemplates() {
		r.templates[kind] = template
	}

	for _, kind := range failure.BuiltinKinds() {
		r.constructors[kind] = failure.For(kind)
	}

	return r
}

// Register sets the template for kind, replacing any previous one.
func (r *Registry) Register(kind failure.Kind, template string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.templates[kind] = template
}

// Deregister removes the template for kind. The constructor is kept, so raising
// kind afterwards constructs the failure from its parameters.
func (r *Registry) Deregister(kind failure.Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.templates, kind)
}

// Lookup returns the template for kind.
func (r *Registry) Lookup(kind failure.Kind) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	template, ok := r.templates[kind]

	return template, ok
}

// Kinds returns the kinds that currently have a template, sorted.
func (r *Registry) Kinds() []failure.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]failure.Kind, 0, len(r.templates))
	for kind := range r.templates {
		kinds = append(kinds, kind)
	}

	slices.Sort(kinds)

	return kinds
}

// RegisterKind sets the constructor for kind, adding kind to the catalog if it is new.
func (r *Registry) RegisterKind(kind failure.Kind, constructor failure.Constructor) error {
	if kind == "" {
		return ErrEmptyKind
	}

	if constructor.IsZero() {
		return fmt.Errorf("register kind %q: %w", kind, ErrEmptyConstructor)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.constructors[kind] = constructor

	return nil
}

// Constructor returns the constructor registered for kind.
func (r *Registry) Constructor(kind failure.Kind) (failure.Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	constructor, ok := r.constructors[kind]

	return constructor, ok
}

// SetObserver replaces the observer. Pass nil to remove it.
func (r *Registry) SetObserver(observer Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.observer = observer
}

// Observer returns the current observer, or nil.
func (r *Registry) Observer() Observer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.observer
}
