package platform

import (
	"fmt"
	"sort"
)

// Factory creates native peers by kind.
type Factory interface {
	CreatePeer(kind string) (Peer, error)
}

// KindFactory creates peers of one kind.
type KindFactory interface {
	// Create creates a new peer instance with the given identifier.
	Create(id int64) (Peer, error)

	// Kind returns the peer kind this factory creates.
	Kind() string
}

// KindFactoryFunc adapts a function into a KindFactory.
type KindFactoryFunc struct {
	Name string
	Func func(id int64) (Peer, error)
}

// Create calls f.Func.
func (f KindFactoryFunc) Create(id int64) (Peer, error) {
	return f.Func(id)
}

// Kind returns f.Name.
func (f KindFactoryFunc) Kind() string {
	return f.Name
}

// Registry manages peer kinds and assigns peer identifiers. It implements
// Factory. Like the rest of the tree it belongs to the UI thread.
type Registry struct {
	factories map[string]KindFactory
	fallback  KindFactory
	nextID    int64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]KindFactory)}
}

// RegisterFactory registers a factory for a peer kind.
func (r *Registry) RegisterFactory(factory KindFactory) {
	r.factories[factory.Kind()] = factory
}

// SetFallback installs the factory used for kinds with no registration.
func (r *Registry) SetFallback(factory KindFactory) {
	r.fallback = factory
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// CreatePeer creates a new peer of the given kind.
func (r *Registry) CreatePeer(kind string) (Peer, error) {
	factory, ok := r.factories[kind]
	if !ok {
		factory = r.fallback
	}

	if factory == nil {
		return nil, fmt.Errorf("%w: %q", ErrKindNotFound, kind)
	}

	r.nextID++
	peer, err := factory.Create(r.nextID)
	if err != nil {
		return nil, fmt.Errorf("failed to create %q peer: %w", kind, err)
	}
	return peer, nil
}
