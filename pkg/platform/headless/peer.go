package headless

import (
	"fmt"

	"golang.org/x/image/font"

	"github.com/go-drift/nodeui/pkg/graphics"
	"github.com/go-drift/nodeui/pkg/platform"
)

// buttonChrome is the space a button peer adds around its text.
var buttonChrome = graphics.Symmetric(8, 4)

// Peer is an in-memory native peer.
type Peer struct {
	backend *Backend
	id      int64
	kind    string

	window    bool
	destroyed bool
	disposed  bool

	bounds  graphics.Rect
	visible bool
	enabled bool
	text    string

	background  graphics.Color
	foreground  graphics.Color
	borderColor graphics.Color
	borderWidth float64

	callbacks map[platform.Slot]platform.Callback
	parent    *Peer
	children  []*Peer
	owner     any

	updateDepth  int
	updateCycles int
	registered   int
	unregistered int
}

var (
	_ platform.Peer   = (*Peer)(nil)
	_ platform.Styler = (*Peer)(nil)
	_ platform.Texter = (*Peer)(nil)
)

func (p *Peer) check(op string) {
	if p.disposed {
		panic(fmt.Sprintf("headless: %s on disposed peer %d", op, p.id))
	}
}

// ID returns the peer identifier.
func (p *Peer) ID() int64 { return p.id }

// Kind returns the peer kind.
func (p *Peer) Kind() string { return p.kind }

// HasWindow reports whether the peer still owns a native window.
func (p *Peer) HasWindow() bool { return p.window }

// Destroy tears down the window. The handle-destroyed callback is queued and
// delivered by the next Backend.Pump.
func (p *Peer) Destroy() {
	p.check("Destroy")
	if !p.window {
		return
	}
	p.window = false
	p.destroyed = true
	if p.parent != nil {
		p.parent.RemoveChild(p)
	}
	p.backend.BeginInvoke(func() { p.deliver(platform.SlotHandleDestroyed, nil) })
}

// Dispose releases the peer.
func (p *Peer) Dispose() {
	p.check("Dispose")
	if p.parent != nil {
		p.parent.RemoveChild(p)
	}
	for _, c := range p.children {
		c.parent = nil
	}
	p.children = nil
	p.disposed = true
	delete(p.backend.live, p.id)
}

func (p *Peer) Bounds() graphics.Rect { return p.bounds }

func (p *Peer) SetBounds(r graphics.Rect) {
	p.check("SetBounds")
	p.bounds = r
}

func (p *Peer) Visible() bool { return p.visible }

func (p *Peer) SetVisible(visible bool) {
	p.check("SetVisible")
	p.visible = visible
}

func (p *Peer) Enabled() bool { return p.enabled }

func (p *Peer) SetEnabled(enabled bool) {
	p.check("SetEnabled")
	p.enabled = enabled
}

// PreferredSize measures the peer's text with the backend font. Panels and
// plain peers have no natural size.
func (p *Peer) PreferredSize(available graphics.Size) graphics.Size {
	if p.text == "" {
		return graphics.Size{}
	}
	face := p.backend.face
	width := float64(font.MeasureString(face, p.text).Ceil())
	height := float64(face.Metrics().Height.Ceil())
	size := graphics.Size{Width: width, Height: height}
	if p.kind == KindButton {
		size = size.Grow(buttonChrome)
	}
	return size
}

// Register installs cb on slot.
func (p *Peer) Register(slot platform.Slot, cb platform.Callback) {
	p.check("Register")
	p.callbacks[slot] = cb
	p.registered++
}

// Unregister removes the callback on slot.
func (p *Peer) Unregister(slot platform.Slot) {
	if _, ok := p.callbacks[slot]; ok {
		delete(p.callbacks, slot)
		p.unregistered++
	}
}

// AddChild parents child under p.
func (p *Peer) AddChild(child platform.Peer) {
	p.check("AddChild")
	c := child.(*Peer)
	if c.parent == p {
		return
	}
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = p
	p.children = append(p.children, c)
}

// RemoveChild detaches child from p.
func (p *Peer) RemoveChild(child platform.Peer) {
	c := child.(*Peer)
	for i, existing := range p.children {
		if existing == c {
			p.children = append(p.children[:i], p.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

// screenOrigin is the screen position of the client origin.
func (p *Peer) screenOrigin() graphics.Point {
	var origin graphics.Point
	for cur := p; cur != nil; cur = cur.parent {
		origin = origin.Add(cur.bounds.Location())
	}
	return origin
}

func (p *Peer) ScreenToClient(pt graphics.Point) graphics.Point {
	return pt.Sub(p.screenOrigin())
}

func (p *Peer) ClientToScreen(pt graphics.Point) graphics.Point {
	return pt.Add(p.screenOrigin())
}

func (p *Peer) BeginUpdate() {
	p.check("BeginUpdate")
	p.updateDepth++
}

func (p *Peer) EndUpdate() {
	p.check("EndUpdate")
	if p.updateDepth == 0 {
		panic("headless: EndUpdate without BeginUpdate")
	}
	p.updateDepth--
	if p.updateDepth == 0 {
		p.updateCycles++
	}
}

func (p *Peer) DPI() graphics.Size { return p.backend.dpi }

func (p *Peer) SetOwner(owner any) { p.owner = owner }

func (p *Peer) Owner() any { return p.owner }

func (p *Peer) SetText(text string) {
	p.check("SetText")
	p.text = text
}

func (p *Peer) SetBackground(c graphics.Color) { p.background = c }

func (p *Peer) SetForeground(c graphics.Color) { p.foreground = c }

func (p *Peer) SetBorder(width float64, c graphics.Color) {
	p.borderWidth = width
	p.borderColor = c
}

// Fire delivers payload to the callback on slot, reporting whether one was
// registered.
func (p *Peer) Fire(slot platform.Slot, payload any) bool {
	p.check("Fire " + slot.String())
	return p.deliver(slot, payload)
}

func (p *Peer) deliver(slot platform.Slot, payload any) bool {
	if p.disposed {
		return false
	}
	cb, ok := p.callbacks[slot]
	if !ok {
		return false
	}
	cb(payload)
	return true
}

// Resize simulates a native resize: the bounds change and size-changed fires.
func (p *Peer) Resize(r graphics.Rect) {
	p.SetBounds(r)
	p.Fire(platform.SlotSizeChanged, nil)
}

// Callbacks returns the number of currently registered callbacks.
func (p *Peer) Callbacks() int { return len(p.callbacks) }

// HasCallback reports whether a callback is registered on slot.
func (p *Peer) HasCallback(slot platform.Slot) bool {
	_, ok := p.callbacks[slot]
	return ok
}

// Registrations returns the total Register and Unregister calls seen.
func (p *Peer) Registrations() (registered, unregistered int) {
	return p.registered, p.unregistered
}

// Parent returns the native parent, or nil.
func (p *Peer) Parent() *Peer { return p.parent }

// Children returns the native children in insertion order.
func (p *Peer) Children() []*Peer { return p.children }

// Destroyed reports whether Destroy was called.
func (p *Peer) Destroyed() bool { return p.destroyed }

// Disposed reports whether Dispose was called.
func (p *Peer) Disposed() bool { return p.disposed }

// Text returns the text last set.
func (p *Peer) Text() string { return p.text }

// Background returns the last background color set.
func (p *Peer) Background() graphics.Color { return p.background }

// Foreground returns the last foreground color set.
func (p *Peer) Foreground() graphics.Color { return p.foreground }

// Border returns the last border width and color set.
func (p *Peer) Border() (float64, graphics.Color) { return p.borderWidth, p.borderColor }

// UpdateDepth returns the current BeginUpdate nesting.
func (p *Peer) UpdateDepth() int { return p.updateDepth }

// UpdateCycles returns how many times the update depth returned to zero.
func (p *Peer) UpdateCycles() int { return p.updateCycles }
