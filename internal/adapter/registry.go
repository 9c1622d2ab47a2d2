package adapter

import (
	"fmt"
	"strings"
)

// Registry is the process-wide set of adapters. It is populated once at
// startup and read-only during request handling; iteration order is
// registration order, which fixes the error ordering in responses.
type Registry struct {
	adapters []Adapter
	names    map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Register adds an adapter. Names must be non-blank and unique.
func (r *Registry) Register(a Adapter) error {
	name := a.Name()
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("adapter name must not be blank")
	}
	if _, exists := r.names[name]; exists {
		return fmt.Errorf("adapter %q already registered", name)
	}
	r.names[name] = struct{}{}
	r.adapters = append(r.adapters, a)
	return nil
}

// MustRegister panics on a registration error. Registration happens at
// startup, so a bad registry is a configuration bug.
func (r *Registry) MustRegister(adapters ...Adapter) {
	for _, a := range adapters {
		if err := r.Register(a); err != nil {
			panic(err)
		}
	}
}

// Adapters returns the registered adapters in registration order. The
// returned slice is a copy; the registry itself stays immutable.
func (r *Registry) Adapters() []Adapter {
	out := make([]Adapter, len(r.adapters))
	copy(out, r.adapters)
	return out
}

func (r *Registry) Len() int {
	return len(r.adapters)
}
