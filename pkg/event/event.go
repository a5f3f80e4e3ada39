package event

import (
	"fmt"
	"sort"

	"github.com/go-drift/nodeui/pkg/errors"
)

// RoutingStrategy declares how a routed event travels through the tree.
type RoutingStrategy int

const (
	// Direct delivers only to the originating target.
	Direct RoutingStrategy = iota
	// TunnelBubble delivers root to target, then target to root.
	TunnelBubble
)

func (s RoutingStrategy) String() string {
	if s == TunnelBubble {
		return "tunnel-bubble"
	}
	return "direct"
}

// RoutedEvent identifies an event shared across node types.
type RoutedEvent struct {
	name     string
	owner    string
	strategy RoutingStrategy
	index    int
}

// Name returns the event name (e.g., "MouseDown").
func (e *RoutedEvent) Name() string { return e.name }

// Owner returns the name of the type that registered the event.
func (e *RoutedEvent) Owner() string { return e.owner }

// Strategy returns the routing strategy.
func (e *RoutedEvent) Strategy() RoutingStrategy { return e.strategy }

func (e *RoutedEvent) String() string {
	return e.owner + "." + e.name
}

type eventKey struct {
	name  string
	owner string
}

// Registry holds routed event identities and per-class handler tables.
// A Registry is owned by one application and is not safe for concurrent use.
type Registry struct {
	events  map[eventKey]*RoutedEvent
	ordered []*RoutedEvent
	classes map[string]*classTable
}

// classTable holds the class handlers of one node class, allocated on the
// first registration for that class.
type classTable struct {
	handlers map[*RoutedEvent][]entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		events:  make(map[eventKey]*RoutedEvent),
		classes: make(map[string]*classTable),
	}
}

// Register creates the routed event identified by (name, owner). Registering
// the same identity twice is a contract fault.
func (r *Registry) Register(name, owner string, strategy RoutingStrategy) *RoutedEvent {
	key := eventKey{name: name, owner: owner}
	if _, exists := r.events[key]; exists {
		errors.Fault("event.Registry.Register", fmt.Errorf("%w: %s.%s", errors.ErrDuplicateEvent, owner, name))
	}
	ev := &RoutedEvent{name: name, owner: owner, strategy: strategy, index: len(r.ordered)}
	r.events[key] = ev
	r.ordered = append(r.ordered, ev)
	return ev
}

// Lookup returns the event registered as (name, owner).
func (r *Registry) Lookup(name, owner string) (*RoutedEvent, bool) {
	ev, ok := r.events[eventKey{name: name, owner: owner}]
	return ev, ok
}

// Events returns every registered event in registration order.
func (r *Registry) Events() []*RoutedEvent {
	out := make([]*RoutedEvent, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// RegisterClassHandler adds fn to the handlers every node of class runs for
// ev, ahead of the node's instance handlers.
func (r *Registry) RegisterClassHandler(class string, ev *RoutedEvent, fn HandlerFunc, handledEventsToo bool) {
	table, ok := r.classes[class]
	if !ok {
		table = &classTable{handlers: make(map[*RoutedEvent][]entry)}
		r.classes[class] = table
	}
	table.handlers[ev] = append(table.handlers[ev], entry{fn: fn, handledEventsToo: handledEventsToo})
}

// Classes returns the classes that have at least one class handler.
func (r *Registry) Classes() []string {
	out := make([]string, 0, len(r.classes))
	for c := range r.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) classHandlers(class string, ev *RoutedEvent) []entry {
	table, ok := r.classes[class]
	if !ok {
		return nil
	}
	return table.handlers[ev]
}
