package control

import (
	"strconv"

	"github.com/go-drift/nodeui/pkg/errors"
	"github.com/go-drift/nodeui/pkg/event"
	"github.com/go-drift/nodeui/pkg/graphics"
	"github.com/go-drift/nodeui/pkg/layout"
	"github.com/go-drift/nodeui/pkg/platform"
	"github.com/go-drift/nodeui/pkg/theme"
)

// NodeID identifies a node within its App.
type NodeID uint64

// Node is a logical element of the control tree. It owns its children and
// its handler; the parent pointer is a non-owning back-reference.
type Node struct {
	app      *App
	id       NodeID
	class    string
	name     string
	parent   *Node
	children []*Node
	handler  *Handler
	behavior any

	bounds    graphics.Rect
	margin    graphics.Thickness
	padding   graphics.Thickness
	suggested graphics.Size
	minSize   graphics.Size
	maxSize   graphics.Size
	visible   bool
	ignored   bool
	enabled   bool
	hAlign    layout.Alignment
	vAlign    layout.Alignment
	dock      layout.Dock
	strategy  layout.Strategy
	text      string

	layoutSuspend int
	updateCount   int
	inLayout      bool
	layoutPasses  int
	disposed      bool

	hovered  bool
	pressed  bool
	focused  bool
	state    theme.VisualState
	resolver theme.Resolver

	store *event.Store
}

var (
	_ layout.Item  = (*Node)(nil)
	_ event.Target = (*Node)(nil)
)

func newNode(a *App, class string) *Node {
	a.nextID++
	return &Node{
		app:       a,
		id:        NodeID(a.nextID),
		class:     class,
		suggested: graphics.AutoSize(),
		maxSize:   graphics.AutoSize(),
		visible:   true,
		enabled:   true,
	}
}

// ID returns the node identifier.
func (n *Node) ID() NodeID { return n.id }

// Class returns the class used for class handlers and theme lookup.
func (n *Node) Class() string { return n.class }

// Name returns the optional node name.
func (n *Node) Name() string { return n.name }

// SetName sets the node name.
func (n *Node) SetName(name string) { n.name = name }

// App returns the application the node belongs to.
func (n *Node) App() *App { return n.app }

func (n *Node) String() string {
	if n.name != "" {
		return n.name
	}
	return n.class + "#" + strconv.FormatUint(uint64(n.id), 10)
}

// Handler returns the attached handler, or nil after it was detached.
func (n *Node) Handler() *Handler { return n.handler }

// Behavior returns the value set with SetBehavior.
func (n *Node) Behavior() any { return n.behavior }

// SetBehavior installs the value whose optional capability interfaces
// (Paintable, Focusable, DragTarget, Scrollable) receive native
// notifications the routed events left unhandled.
func (n *Node) SetBehavior(b any) { n.behavior = b }

// IsDisposed reports whether Dispose completed.
func (n *Node) IsDisposed() bool { return n.disposed }

func (n *Node) checkAlive(op string) {
	if n.disposed {
		errors.Fault(op, errors.ErrDisposed)
	}
}

// Tree

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the child at index i.
func (n *Node) Child(i int) *Node { return n.children[i] }

// IndexOf returns the position of child, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Root returns the topmost ancestor.
func (n *Node) Root() *Node {
	chain := event.Ancestors(n)
	return chain[len(chain)-1].(*Node)
}

// AddChild appends child. A child that already has a parent is moved.
func (n *Node) AddChild(child *Node) {
	n.InsertChild(len(n.children), child)
}

// InsertChild inserts child at index, clamped to the child count. A child
// that already has a parent is moved. Inserting a node into its own subtree
// is a contract fault.
func (n *Node) InsertChild(index int, child *Node) {
	const op = "control.Node.InsertChild"
	n.checkAlive(op)
	child.checkAlive(op)
	for _, a := range event.Ancestors(n) {
		if a == event.Target(child) {
			errors.Fault(op, errors.ErrCycle)
		}
	}
	if old := child.parent; old != nil {
		old.detachChild(child)
		if old != n {
			old.PerformLayout(false)
		}
	}
	if index < 0 {
		index = 0
	}
	if index > len(n.children) {
		index = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n
	wireSubtree(child)
	n.PerformLayout(false)
}

// RemoveChild removes child, reporting whether it was a child of n. The
// child keeps its handler and peer; its peer is unwired from n's.
func (n *Node) RemoveChild(child *Node) bool {
	if child == nil || child.parent != n {
		return false
	}
	n.detachChild(child)
	n.PerformLayout(false)
	return true
}

func (n *Node) detachChild(child *Node) {
	i := n.IndexOf(child)
	if i < 0 {
		return
	}
	unwireSubtree(child)
	n.children = append(n.children[:i], n.children[i+1:]...)
	child.parent = nil
}

// Dispose tears the subtree down post-order: children are disposed and
// cleared, the handler is detached and the node leaves its parent.
// Disposing twice is a no-op.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.layoutSuspend++
	for len(n.children) > 0 {
		n.children[len(n.children)-1].Dispose()
	}
	if n.handler != nil {
		n.handler.Detach()
	}
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
	n.disposed = true
}

// RecreateHandler replaces the handler with a fresh one of the same kind
// and hooks. The next peer access creates a new peer, which picks up the
// current theme and rewires the children.
func (n *Node) RecreateHandler() *Handler {
	n.checkAlive("control.Node.RecreateHandler")
	old := n.handler
	if old == nil {
		errors.Fault("control.Node.RecreateHandler", errors.ErrNotAttached)
	}
	realized := old.IsRealized()
	fresh := NewHandler(old.kind, old.hooks)
	fresh.Attach(n)
	if realized {
		fresh.Peer()
	}
	return fresh
}

// Realize creates the peers of the whole subtree, parents first.
func (n *Node) Realize() {
	if n.handler != nil {
		n.handler.Peer()
	}
	for _, c := range n.children {
		c.Realize()
	}
}

// Peer returns the node's peer, creating it on first access. Lightweight
// nodes and nodes whose peer cannot be created return nil.
func (n *Node) Peer() platform.Peer {
	if n.handler == nil {
		return nil
	}
	return n.handler.Peer()
}

func (n *Node) realizedPeer() platform.Peer {
	if n.handler == nil {
		return nil
	}
	return n.handler.peer
}

// Geometry

// Bounds returns the node rectangle in parent client coordinates.
func (n *Node) Bounds() graphics.Rect { return n.bounds }

// SetBounds moves and resizes the node. A size change lays out the
// children.
func (n *Node) SetBounds(r graphics.Rect) { n.setBounds(r, true) }

func (n *Node) setBounds(r graphics.Rect, push bool) {
	old := n.bounds
	if old.Equal(r) {
		return
	}
	n.bounds = r
	if push {
		if p := n.realizedPeer(); p != nil {
			p.SetBounds(r)
		}
	}
	if old.Location() != r.Location() {
		n.Raise(&BoundsChangedArgs{BaseArgs: event.BaseArgs{Event: n.app.events.LocationChanged}, Old: old, New: r})
	}
	if !old.Size().Equal(r.Size()) {
		n.Raise(&BoundsChangedArgs{BaseArgs: event.BaseArgs{Event: n.app.events.SizeChanged}, Old: old, New: r})
		n.PerformLayout(false)
	}
}

// Location returns the bounds origin.
func (n *Node) Location() graphics.Point { return n.bounds.Location() }

// SetLocation moves the node.
func (n *Node) SetLocation(p graphics.Point) {
	n.SetBounds(graphics.RectFromPointSize(p, n.bounds.Size()))
}

// Size returns the bounds size.
func (n *Node) Size() graphics.Size { return n.bounds.Size() }

// ClientSize returns the size of the client area.
func (n *Node) ClientSize() graphics.Size { return n.bounds.Size() }

// SetClientSize resizes the node so its client area has size s.
func (n *Node) SetClientSize(s graphics.Size) {
	n.SetBounds(graphics.RectFromPointSize(n.bounds.Location(), s))
}

// ClientRect returns the client area in client coordinates.
func (n *Node) ClientRect() graphics.Rect {
	return graphics.RectFromPointSize(graphics.Point{}, n.ClientSize())
}

// ContentRect returns the client area minus padding.
func (n *Node) ContentRect() graphics.Rect {
	return n.ClientRect().Deflate(n.padding)
}

// Margin returns the space kept around the node by its parent's layout.
func (n *Node) Margin() graphics.Thickness { return n.margin }

func (n *Node) SetMargin(m graphics.Thickness) {
	if n.margin == m {
		return
	}
	n.margin = m
	n.relayoutParent()
}

// Padding returns the space kept between the client edge and the children.
func (n *Node) Padding() graphics.Thickness { return n.padding }

func (n *Node) SetPadding(p graphics.Thickness) {
	if n.padding == p {
		return
	}
	n.padding = p
	n.PerformLayout(false)
	n.relayoutParent()
}

// SuggestedSize returns the explicit size. NaN axes are sized by layout.
func (n *Node) SuggestedSize() graphics.Size { return n.suggested }

func (n *Node) SetSuggestedSize(s graphics.Size) {
	if n.suggested.Equal(s) {
		return
	}
	n.suggested = s
	n.relayoutParent()
}

// SetWidth sets the suggested width.
func (n *Node) SetWidth(w float64) {
	n.SetSuggestedSize(graphics.Size{Width: w, Height: n.suggested.Height})
}

// SetHeight sets the suggested height.
func (n *Node) SetHeight(h float64) {
	n.SetSuggestedSize(graphics.Size{Width: n.suggested.Width, Height: h})
}

func (n *Node) MinimumSize() graphics.Size { return n.minSize }

func (n *Node) SetMinimumSize(s graphics.Size) {
	if n.minSize.Equal(s) {
		return
	}
	n.minSize = s
	n.relayoutParent()
}

// MaximumSize returns the upper size limit. NaN axes are unlimited.
func (n *Node) MaximumSize() graphics.Size { return n.maxSize }

func (n *Node) SetMaximumSize(s graphics.Size) {
	if n.maxSize.Equal(s) {
		return
	}
	n.maxSize = s
	n.relayoutParent()
}

func (n *Node) HorizontalAlignment() layout.Alignment { return n.hAlign }

func (n *Node) SetHorizontalAlignment(a layout.Alignment) {
	if n.hAlign == a {
		return
	}
	n.hAlign = a
	n.relayoutParent()
}

func (n *Node) VerticalAlignment() layout.Alignment { return n.vAlign }

func (n *Node) SetVerticalAlignment(a layout.Alignment) {
	if n.vAlign == a {
		return
	}
	n.vAlign = a
	n.relayoutParent()
}

// Dock returns the edge the node is docked to in its parent.
func (n *Node) Dock() layout.Dock { return n.dock }

func (n *Node) SetDock(d layout.Dock) {
	if n.dock == d {
		return
	}
	n.dock = d
	n.relayoutParent()
}

// Strategy returns the strategy used to arrange the children.
func (n *Node) Strategy() layout.Strategy { return n.strategy }

func (n *Node) SetStrategy(s layout.Strategy) {
	if n.strategy == s {
		return
	}
	n.strategy = s
	n.PerformLayout(false)
	n.relayoutParent()
}

func (n *Node) relayoutParent() {
	if n.parent != nil && !n.ignored {
		n.parent.PerformLayout(false)
	}
}

// Flags and text

func (n *Node) Visible() bool { return n.visible }

// SetVisible shows or hides the node. Hidden children take no part in
// layout.
func (n *Node) SetVisible(v bool) {
	if n.visible == v {
		return
	}
	n.visible = v
	if p := n.realizedPeer(); p != nil {
		p.SetVisible(v)
	}
	n.Raise(&ValueChangedArgs{BaseArgs: event.BaseArgs{Event: n.app.events.VisibleChanged}, Value: v})
	n.relayoutParent()
}

// IgnoreLayout reports whether the parent's layout leaves the node alone.
func (n *Node) IgnoreLayout() bool { return n.ignored }

// SetIgnoreLayout takes the node out of its parent's layout, or puts it
// back. An ignored node keeps whatever bounds it was given and does not
// count towards the parent's preferred size.
func (n *Node) SetIgnoreLayout(v bool) {
	if n.ignored == v {
		return
	}
	n.ignored = v
	if n.parent != nil {
		n.parent.PerformLayout(false)
	}
}

func (n *Node) Enabled() bool { return n.enabled }

func (n *Node) SetEnabled(e bool) {
	if n.enabled == e {
		return
	}
	n.enabled = e
	if p := n.realizedPeer(); p != nil {
		p.SetEnabled(e)
	}
	n.Raise(&ValueChangedArgs{BaseArgs: event.BaseArgs{Event: n.app.events.EnabledChanged}, Value: e})
	n.updateVisualState()
}

func (n *Node) Text() string { return n.text }

// SetText sets the text shown by peers that display text.
func (n *Node) SetText(text string) {
	if n.text == text {
		return
	}
	n.text = text
	if t, ok := n.realizedPeer().(platform.Texter); ok {
		t.SetText(text)
	}
	n.relayoutParent()
}

// Update batching

// BeginUpdate suspends native redraw. Only the outermost call reaches the
// peer.
func (n *Node) BeginUpdate() {
	n.updateCount++
	if n.updateCount == 1 {
		if p := n.realizedPeer(); p != nil {
			p.BeginUpdate()
		}
	}
}

// EndUpdate ends a BeginUpdate. Calling it more often than BeginUpdate is a
// contract fault.
func (n *Node) EndUpdate() {
	if n.updateCount == 0 {
		errors.Fault("control.Node.EndUpdate", errors.ErrNegativeCount)
	}
	n.updateCount--
	if n.updateCount == 0 {
		if p := n.realizedPeer(); p != nil {
			p.EndUpdate()
		}
	}
}

// UpdateCount returns the BeginUpdate nesting depth.
func (n *Node) UpdateCount() int { return n.updateCount }

// Peer queries with neutral defaults

// DPI returns the peer resolution, or platform.DefaultDPI without a peer.
func (n *Node) DPI() graphics.Size {
	if p := n.realizedPeer(); p != nil {
		return p.DPI()
	}
	return platform.DefaultDPI
}

// ScreenToClient converts p to client coordinates. Without a peer the point
// is returned unchanged.
func (n *Node) ScreenToClient(p graphics.Point) graphics.Point {
	if peer := n.realizedPeer(); peer != nil {
		return peer.ScreenToClient(p)
	}
	return p
}

// ClientToScreen converts p to screen coordinates. Without a peer the point
// is returned unchanged.
func (n *Node) ClientToScreen(p graphics.Point) graphics.Point {
	if peer := n.realizedPeer(); peer != nil {
		return peer.ClientToScreen(p)
	}
	return p
}

// EventParent implements event.Target.
func (n *Node) EventParent() event.Target {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// EventClass implements event.Target.
func (n *Node) EventClass() string { return n.class }

// EventStore implements event.Target.
func (n *Node) EventStore() *event.Store { return n.store }
