package event

import (
	"github.com/go-drift/nodeui/pkg/errors"
)

// MaxRouteLength bounds ancestor walks. A longer chain means the tree has a
// loop.
const MaxRouteLength = 4096

// Target is a node events can be raised on.
type Target interface {
	// EventParent returns the parent target, or nil at the root.
	EventParent() Target
	// EventClass returns the class whose class handlers this target runs.
	EventClass() string
	// EventStore returns the target's instance handlers. It may return nil
	// when the target has never subscribed.
	EventStore() *Store
}

// Ancestors returns target followed by its ancestors up to the root. It
// faults with ErrTreeLoop when the chain exceeds MaxRouteLength.
func Ancestors(target Target) []Target {
	var chain []Target
	for cur := target; cur != nil; cur = cur.EventParent() {
		if len(chain) == MaxRouteLength {
			errors.Fault("event.Ancestors", errors.ErrTreeLoop)
		}
		chain = append(chain, cur)
	}
	return chain
}

type segment struct {
	target  Target
	entries []entry
}

// Route is the ordered list of handlers an event visits, grouped per node
// from the root down to the target.
type Route struct {
	event    *RoutedEvent
	segments []segment
}

// BuildRoute snapshots the handlers ev reaches when raised on target.
// Handlers added or removed during dispatch do not affect the route, except
// that a handler removed before its turn is skipped.
func BuildRoute(reg *Registry, target Target, ev *RoutedEvent) *Route {
	r := &Route{event: ev}
	if ev.strategy == Direct {
		r.segments = []segment{r.segmentFor(reg, target)}
		return r
	}
	chain := Ancestors(target)
	r.segments = make([]segment, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		r.segments = append(r.segments, r.segmentFor(reg, chain[i]))
	}
	return r
}

func (r *Route) segmentFor(reg *Registry, t Target) segment {
	var entries []entry
	if reg != nil {
		class := reg.classHandlers(t.EventClass(), r.event)
		entries = append(entries, class...)
	}
	entries = append(entries, t.EventStore().entries(r.event)...)
	return segment{target: t, entries: entries}
}

// Len returns the number of handler invocations one pass of the route makes.
func (r *Route) Len() int {
	n := 0
	for _, s := range r.segments {
		n += len(s.entries)
	}
	return n
}

// Targets returns the route's nodes from the root down to the target.
func (r *Route) Targets() []Target {
	out := make([]Target, len(r.segments))
	for i, s := range r.segments {
		out[i] = s.target
	}
	return out
}

// Invoke runs the route. TunnelBubble routes run root to target, then
// target to root; each node keeps its own handler order in both phases.
func (r *Route) Invoke(args Args) {
	b := args.Base()
	if r.event.strategy == Direct {
		b.phase = PhaseDirect
		for _, s := range r.segments {
			s.invoke(args)
		}
		return
	}
	b.phase = PhaseTunnel
	for _, s := range r.segments {
		s.invoke(args)
	}
	b.phase = PhaseBubble
	for i := len(r.segments) - 1; i >= 0; i-- {
		r.segments[i].invoke(args)
	}
}

func (s segment) invoke(args Args) {
	b := args.Base()
	for _, e := range s.entries {
		if e.sub != nil && e.sub.removed {
			continue
		}
		if b.Handled && !e.handledEventsToo {
			continue
		}
		e.fn(s.target, args)
	}
}

// Raise dispatches args on target and reports whether it ended up handled.
// args.Base().Event selects the routed event; Source is set to target and
// OriginalSource is set when empty. Handler panics propagate.
func Raise(reg *Registry, target Target, args Args) bool {
	b := args.Base()
	if b.Event == nil {
		errors.Fault("event.Raise", errors.ErrNoEvent)
	}
	b.Source = target
	if b.OriginalSource == nil {
		b.OriginalSource = target
	}
	BuildRoute(reg, target, b.Event).Invoke(args)
	return b.Handled
}

// RaiseGuarded is Raise with panic recovery. A handler panic is reported via
// errors.ReportPanic, then errorEvent is raised on target with ErrorArgs.
// The panic is re-raised as a *errors.PanicError unless a handler cleared
// ErrorArgs.Rethrow. Contract faults are never recovered here.
func RaiseGuarded(reg *Registry, target Target, args Args, errorEvent *RoutedEvent) (handled bool) {
	b := args.Base()
	if b.Event == nil {
		errors.Fault("event.RaiseGuarded", errors.ErrNoEvent)
	}
	defer errors.RecoverWithCallback("event.Raise "+b.Event.String(), func(pe *errors.PanicError) {
		ea := &ErrorArgs{
			BaseArgs: BaseArgs{Event: errorEvent, OriginalSource: b.OriginalSource},
			Err:      pe,
			Failed:   args,
			Rethrow:  true,
		}
		Raise(reg, target, ea)
		if ea.Rethrow {
			panic(pe)
		}
		handled = b.Handled
	})
	return Raise(reg, target, args)
}
