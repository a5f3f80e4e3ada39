package control

import (
	"github.com/go-drift/nodeui/pkg/event"
	"github.com/go-drift/nodeui/pkg/theme"
)

// AddHandler subscribes fn to ev on this node. With handledEventsToo set
// fn still runs after an earlier handler marked the event handled.
func (n *Node) AddHandler(ev *event.RoutedEvent, fn event.HandlerFunc, handledEventsToo bool) *event.Subscription {
	if n.store == nil {
		n.store = &event.Store{}
	}
	return n.store.Add(ev, fn, handledEventsToo)
}

// RemoveHandler cancels sub, reporting whether it was subscribed here.
func (n *Node) RemoveHandler(sub *event.Subscription) bool {
	return n.store.Remove(sub)
}

// Raise dispatches args on n and reports whether it ended up handled.
// Handler panics propagate to the caller.
func (n *Node) Raise(args event.Args) bool {
	handled := event.Raise(n.app.registry, n, args)
	n.app.observer.EventRaised(n, args.Base().Event)
	return handled
}

// RaiseGuarded dispatches args like Raise but recovers a handler panic: the
// panic is reported, UnhandledError is raised on n with an
// *event.ErrorArgs, and the panic is re-raised as an *errors.PanicError
// unless a handler cleared Rethrow.
func (n *Node) RaiseGuarded(args event.Args) bool {
	handled := event.RaiseGuarded(n.app.registry, n, args, n.app.events.UnhandledError)
	n.app.observer.EventRaised(n, args.Base().Event)
	return handled
}

// RaiseMouseDown dispatches MouseDown, then the button-specific down event
// with its own handled state. The result is the generic handled state; the
// specific one is left in args.ButtonHandled.
func (n *Node) RaiseMouseDown(args *MouseButtonArgs) bool {
	args.Event = n.app.events.MouseDown
	if args.Button == ButtonLeft {
		n.pressed = true
		n.updateVisualState()
	}
	n.Raise(args)
	n.crack(args, true)
	return args.Handled
}

// RaiseMouseUp is RaiseMouseDown for button release.
func (n *Node) RaiseMouseUp(args *MouseButtonArgs) bool {
	args.Event = n.app.events.MouseUp
	if args.Button == ButtonLeft {
		n.pressed = false
		n.updateVisualState()
	}
	n.Raise(args)
	n.crack(args, false)
	return args.Handled
}

// crack re-raises args under the left or right button event. The generic
// identity and handled state are restored afterwards, even when a handler
// panics.
func (n *Node) crack(args *MouseButtonArgs, down bool) {
	specific := n.app.events.buttonEvent(args.Button, down)
	if specific == nil {
		return
	}
	generic, genericHandled := args.Event, args.Handled
	args.Event = specific
	args.Handled = false
	defer func() {
		args.ButtonHandled = args.Handled
		args.Event = generic
		args.Handled = genericHandled
	}()
	n.Raise(args)
}

// RaiseMouseMove dispatches MouseMove.
func (n *Node) RaiseMouseMove(args *MouseArgs) bool {
	args.Event = n.app.events.MouseMove
	return n.Raise(args)
}

// RaiseMouseWheel dispatches MouseWheel.
func (n *Node) RaiseMouseWheel(args *MouseWheelArgs) bool {
	args.Event = n.app.events.MouseWheel
	return n.Raise(args)
}

// RaiseKeyDown dispatches KeyDown.
func (n *Node) RaiseKeyDown(args *KeyArgs) bool {
	args.Event = n.app.events.KeyDown
	return n.Raise(args)
}

// RaiseKeyUp dispatches KeyUp.
func (n *Node) RaiseKeyUp(args *KeyArgs) bool {
	args.Event = n.app.events.KeyUp
	return n.Raise(args)
}

// RaiseTextInput dispatches TextInput.
func (n *Node) RaiseTextInput(args *TextInputArgs) bool {
	args.Event = n.app.events.TextInput
	return n.Raise(args)
}

// VisualState derives the state used for styling. Disabled wins over
// pressed, pressed over focused, focused over hovered.
func (n *Node) VisualState() theme.VisualState {
	switch {
	case !n.enabled:
		return theme.StateDisabled
	case n.pressed:
		return theme.StatePressed
	case n.focused:
		return theme.StateFocused
	case n.hovered:
		return theme.StateHovered
	default:
		return theme.StateNormal
	}
}

// Resolver returns the style resolver: the one set with SetResolver, else
// the App theme entry for the node class, else nil.
func (n *Node) Resolver() theme.Resolver {
	if n.resolver != nil {
		return n.resolver
	}
	return n.app.sheet.For(n.class)
}

// SetResolver overrides the theme for this node and restyles its peer.
func (n *Node) SetResolver(r theme.Resolver) {
	n.resolver = r
	if h := n.handler; h != nil && h.peer != nil {
		h.applyStyle()
	}
}

func (n *Node) updateVisualState() {
	next := n.VisualState()
	if next == n.state {
		return
	}
	old := n.state
	n.state = next
	if h := n.handler; h != nil && h.peer != nil {
		h.applyStyle()
	}
	n.Raise(&VisualStateArgs{
		BaseArgs: event.BaseArgs{Event: n.app.events.VisualStateChanged},
		Old:      old,
		New:      next,
	})
}
