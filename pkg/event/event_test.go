package event

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/nodeui/pkg/errors"
)

type node struct {
	name   string
	class  string
	parent *node
	store  Store
}

func (n *node) EventParent() Target {
	if n.parent == nil {
		return nil
	}
	return n.parent
}
func (n *node) EventClass() string { return n.class }
func (n *node) EventStore() *Store { return &n.store }

func chain(names ...string) []*node {
	nodes := make([]*node, len(names))
	for i, name := range names {
		nodes[i] = &node{name: name, class: "Panel"}
		if i > 0 {
			nodes[i].parent = nodes[i-1]
		}
	}
	return nodes
}

type recorder struct {
	calls []string
}

func (r *recorder) handler(label string) HandlerFunc {
	return func(sender Target, args Args) {
		r.calls = append(r.calls, fmt.Sprintf("%s:%s@%s", label, args.Base().Phase(), sender.(*node).name))
	}
}

func TestRegisterDuplicateFaults(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Click", "Node", TunnelBubble)

	defer func() {
		r := recover()
		assert.True(t, errors.IsFault(r, errors.ErrDuplicateEvent), "recovered %v", r)
	}()
	reg.Register("Click", "Node", Direct)
}

func TestLookupAndEvents(t *testing.T) {
	reg := NewRegistry()
	a := reg.Register("A", "Node", Direct)
	b := reg.Register("B", "Node", TunnelBubble)

	got, ok := reg.Lookup("B", "Node")
	require.True(t, ok)
	assert.Same(t, b, got)
	_, ok = reg.Lookup("B", "Other")
	assert.False(t, ok)
	assert.Equal(t, []*RoutedEvent{a, b}, reg.Events())
	assert.Equal(t, "Node.B", b.String())
}

func TestTunnelThenBubbleOrder(t *testing.T) {
	reg := NewRegistry()
	ev := reg.Register("Press", "Node", TunnelBubble)
	nodes := chain("root", "mid", "leaf")
	rec := &recorder{}

	reg.RegisterClassHandler("Panel", ev, rec.handler("class"), false)
	for _, n := range nodes {
		n.store.Add(ev, rec.handler("inst1"), false)
		n.store.Add(ev, rec.handler("inst2"), false)
	}

	Raise(reg, nodes[2], NewArgs(ev))

	want := []string{
		"class:tunnel@root", "inst1:tunnel@root", "inst2:tunnel@root",
		"class:tunnel@mid", "inst1:tunnel@mid", "inst2:tunnel@mid",
		"class:tunnel@leaf", "inst1:tunnel@leaf", "inst2:tunnel@leaf",
		"class:bubble@leaf", "inst1:bubble@leaf", "inst2:bubble@leaf",
		"class:bubble@mid", "inst1:bubble@mid", "inst2:bubble@mid",
		"class:bubble@root", "inst1:bubble@root", "inst2:bubble@root",
	}
	assert.Equal(t, want, rec.calls)
}

func TestDirectDeliversOnceToTarget(t *testing.T) {
	reg := NewRegistry()
	ev := reg.Register("SizeChanged", "Node", Direct)
	nodes := chain("root", "leaf")
	rec := &recorder{}
	nodes[0].store.Add(ev, rec.handler("root"), true)
	nodes[1].store.Add(ev, rec.handler("leaf"), false)

	args := NewArgs(ev)
	Raise(reg, nodes[1], args)

	assert.Equal(t, []string{"leaf:direct@leaf"}, rec.calls)
	assert.Same(t, nodes[1], args.Source)
	assert.Same(t, nodes[1], args.OriginalSource)
}

func TestHandledEventsToo(t *testing.T) {
	reg := NewRegistry()
	ev := reg.Register("Press", "Node", TunnelBubble)
	nodes := chain("root", "leaf")

	var normal, eager int
	nodes[1].store.Add(ev, func(Target, Args) {}, false)
	nodes[0].store.Add(ev, func(_ Target, a Args) {
		if a.Base().Phase() == PhaseTunnel {
			a.Base().Handled = true
		}
	}, false)
	nodes[1].store.Add(ev, func(Target, Args) { normal++ }, false)
	nodes[1].store.Add(ev, func(Target, Args) { eager++ }, true)

	handled := Raise(reg, nodes[1], NewArgs(ev))

	assert.True(t, handled)
	assert.Equal(t, 0, normal, "normal handler must not see a handled event")
	assert.Equal(t, 2, eager, "handledEventsToo handler sees tunnel and bubble")
}

func TestOriginalSourceIsPreserved(t *testing.T) {
	reg := NewRegistry()
	ev := reg.Register("Press", "Node", Direct)
	nodes := chain("root", "leaf")
	args := NewArgs(ev)
	args.OriginalSource = nodes[1]

	Raise(reg, nodes[0], args)

	assert.Same(t, nodes[0], args.Source)
	assert.Same(t, nodes[1], args.OriginalSource)
}

func TestRouteSnapshotsHandlers(t *testing.T) {
	reg := NewRegistry()
	ev := reg.Register("Press", "Node", Direct)
	n := &node{name: "n"}
	var late, removed int
	var victim *Subscription
	n.store.Add(ev, func(Target, Args) {
		n.store.Add(ev, func(Target, Args) { late++ }, false)
		victim.Cancel()
	}, false)
	victim = n.store.Add(ev, func(Target, Args) { removed++ }, false)

	Raise(reg, n, NewArgs(ev))

	assert.Equal(t, 0, late, "handler added during dispatch runs next time")
	assert.Equal(t, 0, removed, "handler removed before its turn is skipped")
	assert.Equal(t, 2, n.store.Count(ev))
}

func TestStoreRemove(t *testing.T) {
	reg := NewRegistry()
	ev := reg.Register("Press", "Node", Direct)
	var s Store
	a := s.Add(ev, func(Target, Args) {}, false)
	b := s.Add(ev, func(Target, Args) {}, false)

	assert.True(t, s.Remove(a))
	assert.False(t, s.Remove(a))
	assert.Equal(t, 1, s.Len())
	b.Cancel()
	b.Cancel()
	assert.Equal(t, 0, s.Len())

	var other Store
	c := other.Add(ev, func(Target, Args) {}, false)
	assert.False(t, s.Remove(c), "subscription belongs to another store")
}

func TestRaiseWithoutEventFaults(t *testing.T) {
	defer func() {
		assert.True(t, errors.IsFault(recover(), errors.ErrNoEvent))
	}()
	Raise(NewRegistry(), &node{}, &BaseArgs{})
}

type loopNode struct{ store Store }

func (n *loopNode) EventParent() Target { return n }
func (n *loopNode) EventClass() string  { return "Loop" }
func (n *loopNode) EventStore() *Store  { return &n.store }

func TestLoopGuardFaults(t *testing.T) {
	reg := NewRegistry()
	ev := reg.Register("Press", "Node", TunnelBubble)

	defer func() {
		assert.True(t, errors.IsFault(recover(), errors.ErrTreeLoop))
	}()
	Raise(reg, &loopNode{}, NewArgs(ev))
}

func TestAncestorsAtLimit(t *testing.T) {
	names := make([]string, MaxRouteLength)
	for i := range names {
		names[i] = fmt.Sprint(i)
	}
	nodes := chain(names...)
	assert.Len(t, Ancestors(nodes[len(nodes)-1]), MaxRouteLength)
}

func TestHandlerPanicPropagates(t *testing.T) {
	reg := NewRegistry()
	ev := reg.Register("Press", "Node", TunnelBubble)
	n := &node{name: "n"}
	after := 0
	n.store.Add(ev, func(Target, Args) { panic("boom") }, false)
	n.store.Add(ev, func(Target, Args) { after++ }, false)

	assert.PanicsWithValue(t, "boom", func() { Raise(reg, n, NewArgs(ev)) })
	assert.Equal(t, 0, after, "a panic aborts the rest of the route")
}

type captureHandler struct {
	panics []*errors.PanicError
}

func (h *captureHandler) HandleError(*errors.UIError)        {}
func (h *captureHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }

func TestRaiseGuarded(t *testing.T) {
	capture := &captureHandler{}
	old := errors.DefaultHandler
	errors.SetHandler(capture)
	defer errors.SetHandler(old)

	reg := NewRegistry()
	ev := reg.Register("Press", "Node", TunnelBubble)
	errEv := reg.Register("UnhandledError", "Node", Direct)
	n := &node{name: "n"}
	n.store.Add(ev, func(Target, Args) { panic("boom") }, false)

	var seen *ErrorArgs
	sub := n.store.Add(errEv, func(_ Target, a Args) { seen = a.(*ErrorArgs) }, false)

	t.Run("rethrows by default", func(t *testing.T) {
		defer func() {
			r := recover()
			pe, ok := r.(*errors.PanicError)
			require.True(t, ok, "recovered %T", r)
			assert.Equal(t, "boom", pe.Value)
			assert.True(t, strings.Contains(pe.Op, "Node.Press"))
		}()
		RaiseGuarded(reg, n, NewArgs(ev), errEv)
	})
	require.NotNil(t, seen)
	assert.Equal(t, ev, seen.Failed.Base().Event)
	assert.Len(t, capture.panics, 1)

	sub.Cancel()
	n.store.Add(errEv, func(_ Target, a Args) { a.(*ErrorArgs).Rethrow = false }, false)

	t.Run("swallowed when rethrow cleared", func(t *testing.T) {
		assert.NotPanics(t, func() { RaiseGuarded(reg, n, NewArgs(ev), errEv) })
	})
	assert.Len(t, capture.panics, 2)
}

func TestRaiseGuardedLetsFaultsThrough(t *testing.T) {
	reg := NewRegistry()
	ev := reg.Register("Press", "Node", Direct)
	errEv := reg.Register("UnhandledError", "Node", Direct)
	n := &node{name: "n"}
	n.store.Add(ev, func(Target, Args) { errors.Fault("test", errors.ErrDisposed) }, false)
	raised := false
	n.store.Add(errEv, func(_ Target, a Args) { raised = true; a.(*ErrorArgs).Rethrow = false }, false)

	func() {
		defer func() { assert.True(t, errors.IsFault(recover(), errors.ErrDisposed)) }()
		RaiseGuarded(reg, n, NewArgs(ev), errEv)
	}()
	assert.False(t, raised)
}

func TestRouteTargets(t *testing.T) {
	reg := NewRegistry()
	ev := reg.Register("Press", "Node", TunnelBubble)
	nodes := chain("root", "mid", "leaf")
	nodes[1].store.Add(ev, func(Target, Args) {}, false)

	r := BuildRoute(reg, nodes[2], ev)
	targets := r.Targets()
	require.Len(t, targets, 3)
	assert.Same(t, nodes[0], targets[0])
	assert.Same(t, nodes[2], targets[2])
	assert.Equal(t, 1, r.Len())
}
