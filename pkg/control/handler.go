package control

import (
	"time"

	"github.com/go-drift/nodeui/pkg/errors"
	"github.com/go-drift/nodeui/pkg/event"
	"github.com/go-drift/nodeui/pkg/graphics"
	"github.com/go-drift/nodeui/pkg/platform"
)

// Lifecycle holds optional hooks run by a Handler.
type Lifecycle struct {
	// OnAttach runs once per Attach, after the handler is bound.
	OnAttach func(h *Handler)
	// OnDetach runs first in Detach, while the peer and its callbacks are
	// still in place.
	OnDetach func(h *Handler)
}

// Handler binds one node to a native peer. The peer is created on first
// access, not at attach time. A handler with an empty kind never creates a
// peer; its node is lightweight and its peered descendants wire into the
// closest peered ancestor.
type Handler struct {
	kind  string
	hooks *Lifecycle
	node  *Node

	peer    platform.Peer
	slots   []platform.Slot
	wiredTo platform.Peer
}

// NewHandler returns a detached handler creating peers of kind.
func NewHandler(kind string, hooks *Lifecycle) *Handler {
	return &Handler{kind: kind, hooks: hooks}
}

// HandlerOf returns the handler that owns p, or nil.
func HandlerOf(p platform.Peer) *Handler {
	if p == nil {
		return nil
	}
	h, _ := p.Owner().(*Handler)
	return h
}

// Kind returns the peer kind; empty for lightweight handlers.
func (h *Handler) Kind() string { return h.kind }

// Node returns the attached node, or nil.
func (h *Handler) Node() *Node { return h.node }

// IsAttached reports whether the handler is bound to a node.
func (h *Handler) IsAttached() bool { return h.node != nil }

// IsRealized reports whether the peer exists.
func (h *Handler) IsRealized() bool { return h.peer != nil }

// IsWired reports whether the peer is parented under an ancestor's peer.
func (h *Handler) IsWired() bool { return h.wiredTo != nil }

// Attach binds h to n, detaching the handler n had before. When h is
// lightweight, realized peers below n move to the closest peered ancestor;
// otherwise they move to h's peer once it is created. Attaching an attached
// handler is a contract fault.
func (h *Handler) Attach(n *Node) {
	const op = "control.Handler.Attach"
	if h.node != nil {
		errors.Fault(op, errors.ErrAlreadyAttached)
	}
	n.checkAlive(op)
	if old := n.handler; old != nil {
		old.detach(false)
	}
	h.node = n
	n.handler = h
	if h.kind == "" {
		wireDescendants(n)
	}
	if h.hooks != nil && h.hooks.OnAttach != nil {
		h.hooks.OnAttach(h)
	}
}

// Detach unbinds h from its node. OnDetach runs first, then every callback
// slot is unregistered and the peer is unwired and released. A peer that
// still owns a native window is destroyed and disposed when the platform
// reports the window gone. Detaching an unattached handler is a contract
// fault. Realized peers below the node are rewired into the closest peered
// ancestor.
func (h *Handler) Detach() { h.detach(true) }

func (h *Handler) detach(rewire bool) {
	n := h.node
	if n == nil {
		errors.Fault("control.Handler.Detach", errors.ErrNotAttached)
	}
	if h.hooks != nil && h.hooks.OnDetach != nil {
		h.hooks.OnDetach(h)
	}
	if p := h.peer; p != nil {
		for _, slot := range h.slots {
			p.Unregister(slot)
		}
		h.slots = nil
		unwireChildren(n, p)
		h.unwire()
		h.peer = nil
		h.release(n, p)
	}
	h.node = nil
	if n.handler == h {
		n.handler = nil
	}
	if rewire {
		wireDescendants(n)
	}
}

func (h *Handler) release(n *Node, p platform.Peer) {
	a := n.app
	if p.HasWindow() {
		p.Register(platform.SlotHandleDestroyed, func(any) {
			p.Unregister(platform.SlotHandleDestroyed)
			p.SetOwner(nil)
			p.Dispose()
			a.logger.Debug("peer disposed", "node", n.String(), "peer", p.ID(), "deferred", true)
			a.observer.PeerDisposed(n, true)
			n.Raise(event.NewArgs(a.events.HandleDestroyed))
		})
		p.Destroy()
		return
	}
	p.SetOwner(nil)
	p.Dispose()
	a.logger.Debug("peer disposed", "node", n.String(), "peer", p.ID(), "deferred", false)
	a.observer.PeerDisposed(n, false)
	n.Raise(event.NewArgs(a.events.HandleDestroyed))
}

// Peer returns the peer, creating it on first access. Creation failures
// are reported through errors.Report and yield nil.
func (h *Handler) Peer() platform.Peer {
	p, err := h.EnsureRealized()
	if err != nil {
		var ue *errors.UIError
		if errors.As(err, &ue) {
			errors.Report(ue)
		}
		return nil
	}
	return p
}

// EnsureRealized creates the peer on first call: the peer gets a
// back-reference to h, every callback slot is registered, the node state
// is pushed, and the peer is wired into the closest peered ancestor. Any
// descendant peers created earlier are wired into it. Lightweight handlers
// return a nil peer.
func (h *Handler) EnsureRealized() (platform.Peer, error) {
	const op = "control.Handler.EnsureRealized"
	n := h.node
	if n == nil {
		errors.Fault(op, errors.ErrNotAttached)
	}
	if h.peer != nil || h.kind == "" {
		return h.peer, nil
	}
	n.checkAlive(op)
	p, err := n.app.backend.CreatePeer(h.kind)
	if err != nil {
		return nil, &errors.UIError{
			Op:        op,
			Kind:      errors.KindPeer,
			Err:       err,
			Timestamp: time.Now(),
		}
	}
	h.peer = p
	p.SetOwner(h)
	h.registerThunks(p)
	h.pushState(p)
	h.tryWire()
	wireDescendants(n)
	n.app.logger.Debug("peer realized", "node", n.String(), "kind", h.kind, "peer", p.ID())
	n.app.observer.PeerRealized(n)
	if n.parent != nil {
		n.parent.PerformLayout(false)
	}
	return p, nil
}

// NativePreferredSize returns the peer's native size, or zero before the
// peer exists.
func (h *Handler) NativePreferredSize(available graphics.Size) graphics.Size {
	if h.peer == nil {
		return graphics.Size{}
	}
	return h.peer.PreferredSize(available)
}

func (h *Handler) pushState(p platform.Peer) {
	n := h.node
	p.SetBounds(n.bounds)
	p.SetVisible(n.visible)
	p.SetEnabled(n.enabled)
	if t, ok := p.(platform.Texter); ok && n.text != "" {
		t.SetText(n.text)
	}
	if n.updateCount > 0 {
		p.BeginUpdate()
	}
	h.applyStyle()
}

// applyStyle pushes the colors of the node's current visual state to
// peers that accept them.
func (h *Handler) applyStyle() {
	s, ok := h.peer.(platform.Styler)
	if !ok {
		return
	}
	n := h.node
	r := n.Resolver()
	if r == nil {
		return
	}
	state := n.VisualState()
	if c, ok := r.Background(state); ok {
		s.SetBackground(c)
	}
	if c, ok := r.Foreground(state); ok {
		s.SetForeground(c)
	}
	if b, ok := r.BorderSettings(state); ok {
		s.SetBorder(b.Width, b.Color)
	}
}

// peerHost returns the closest ancestor of n that can own a peer.
func peerHost(n *Node) *Node {
	for a := n.parent; a != nil; a = a.parent {
		if a.handler != nil && a.handler.kind != "" {
			return a
		}
	}
	return nil
}

// tryWire parents h's peer under the host peer when both exist, moving it
// from a farther host it was wired to earlier.
func (h *Handler) tryWire() {
	if h.peer == nil {
		return
	}
	host := peerHost(h.node)
	if host == nil || host.handler.peer == nil {
		return
	}
	hostPeer := host.handler.peer
	if h.wiredTo == hostPeer {
		return
	}
	h.unwire()
	hostPeer.AddChild(h.peer)
	h.wiredTo = hostPeer
	h.node.app.logger.Debug("peer wired", "node", h.node.String(), "host", host.String())
}

func (h *Handler) unwire() {
	if h.wiredTo == nil {
		return
	}
	h.wiredTo.RemoveChild(h.peer)
	h.wiredTo = nil
}

// wireDescendants wires the already-realized peers below n, looking
// through lightweight children.
func wireDescendants(n *Node) {
	for _, c := range n.children {
		wireSubtree(c)
	}
}

// wireSubtree wires n's peer, or, when n is lightweight, the peers below
// it.
func wireSubtree(n *Node) {
	h := n.handler
	if h != nil && h.kind != "" {
		h.tryWire()
		return
	}
	wireDescendants(n)
}

// unwireSubtree undoes wireSubtree.
func unwireSubtree(n *Node) {
	h := n.handler
	if h != nil && h.kind != "" {
		h.unwire()
		return
	}
	for _, c := range n.children {
		unwireSubtree(c)
	}
}

// unwireChildren unwires the descendants wired into host.
func unwireChildren(n *Node, host platform.Peer) {
	for _, c := range n.children {
		h := c.handler
		if h != nil && h.kind != "" {
			if h.wiredTo == host {
				h.unwire()
			}
			continue
		}
		unwireChildren(c, host)
	}
}
