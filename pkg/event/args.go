package event

import "github.com/go-drift/nodeui/pkg/errors"

// Phase is the propagation phase an event is currently in.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseTunnel
	PhaseBubble
	PhaseDirect
)

func (p Phase) String() string {
	switch p {
	case PhaseTunnel:
		return "tunnel"
	case PhaseBubble:
		return "bubble"
	case PhaseDirect:
		return "direct"
	default:
		return "none"
	}
}

// Args is implemented by every routed event payload. Concrete payloads embed
// BaseArgs.
type Args interface {
	Base() *BaseArgs
}

// BaseArgs carries the routing state shared by all event payloads.
type BaseArgs struct {
	// Event is the identity being dispatched.
	Event *RoutedEvent
	// Source is the target the event was raised on.
	Source Target
	// OriginalSource is the target that first produced the event. It is
	// preserved when an event is re-raised elsewhere.
	OriginalSource Target
	// Handled stops delivery to handlers registered without
	// handledEventsToo.
	Handled bool

	phase Phase
}

// NewArgs returns BaseArgs for ev.
func NewArgs(ev *RoutedEvent) *BaseArgs {
	return &BaseArgs{Event: ev}
}

// Base returns a.
func (a *BaseArgs) Base() *BaseArgs { return a }

// Phase returns the phase of the current delivery.
func (a *BaseArgs) Phase() Phase { return a.phase }

// ErrorArgs is the payload of the event raised by RaiseGuarded when a
// handler panics.
type ErrorArgs struct {
	BaseArgs
	// Err is the recovered panic.
	Err *errors.PanicError
	// Failed is the payload whose dispatch panicked.
	Failed Args
	// Rethrow re-panics with Err after the error event completes. It starts
	// true; a handler clears it to swallow the panic.
	Rethrow bool
}
