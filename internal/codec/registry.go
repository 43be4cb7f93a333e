package codec

import (
	"sort"
	"sync"

	"github.com/go-faster/errors"
)

// Factory builds a Codec from Params.
type Factory func(Params) (Codec, error)

// Registry maps algorithm names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register adds a factory under name. Duplicate names are an error.
func (r *Registry) Register(name string, f Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[name]; ok {
		return errors.Errorf("codec %q already registered", name)
	}
	r.factories[name] = f
	return nil
}

// New builds the named codec with p.
func (r *Registry) New(name string, p Params) (Codec, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.Errorf("unknown codec %q", name)
	}
	c, err := f(p)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return c, nil
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
