package submit

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Built-in transport names.
const (
	TransportSimulated = "simulated"
	TransportHTTP      = "http"
)

// Params carries the wiring inputs a transport factory may need. Factories
// ignore what does not apply to them.
type Params struct {
	BaseURL string
	Token   string
	Delay   time.Duration
	Timeout time.Duration
	Logger  zerolog.Logger
}

// Factory builds a Submitter from wiring parameters.
type Factory func(p Params) (Submitter, error)

// Registry stores transport factories by name, providing discovery and
// duplication safeguards for CLI and config driven wiring.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under a name. Duplicate names return an error.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("submit: transport name is required")
	}
	if factory == nil {
		return fmt.Errorf("submit: transport factory is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("submit: transport %q already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// Get retrieves a factory by name.
func (r *Registry) Get(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("submit: transport %q not found", name)
	}
	return factory, nil
}

// Has reports whether a transport is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[name]
	return ok
}

// List returns the registered transport names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuiltinRegistry returns a registry with the simulated and HTTP transports
// pre-registered.
func BuiltinRegistry() *Registry {
	registry := NewRegistry()

	registry.MustRegister(TransportSimulated, func(p Params) (Submitter, error) {
		options := []SimulatedOption{}
		if p.Delay > 0 {
			options = append(options, WithDelay(p.Delay))
		}
		return NewSimulated(options...), nil
	})

	registry.MustRegister(TransportHTTP, func(p Params) (Submitter, error) {
		options := []ClientOption{WithLogger(p.Logger)}
		if p.Timeout > 0 {
			options = append(options, WithTimeout(p.Timeout))
		}
		if p.Token != "" {
			options = append(options, WithBearerToken(p.Token))
		}
		return NewClient(p.BaseURL, options...)
	})

	return registry
}
