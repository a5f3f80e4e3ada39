package platform

import "github.com/go-drift/nodeui/pkg/graphics"

// Peer is a native widget instance owned by a control handler.
type Peer interface {
	// ID returns the backend-assigned identifier for this peer.
	ID() int64

	// Kind returns the peer kind it was created for (e.g., "panel").
	Kind() string

	// HasWindow reports whether the native window behind the peer exists.
	// A peer with a window must be destroyed and disposed only after the
	// SlotHandleDestroyed callback arrives.
	HasWindow() bool

	// Destroy asks the platform to tear down the native window. The
	// SlotHandleDestroyed callback fires when the window is gone, which may
	// be later on the owner thread.
	Destroy()

	// Dispose releases the peer. The peer must not be used afterwards.
	Dispose()

	Bounds() graphics.Rect
	SetBounds(r graphics.Rect)
	Visible() bool
	SetVisible(visible bool)
	Enabled() bool
	SetEnabled(enabled bool)

	// PreferredSize returns the native size for the given available size.
	PreferredSize(available graphics.Size) graphics.Size

	// Register installs cb on slot, replacing any previous callback.
	Register(slot Slot, cb Callback)

	// Unregister removes the callback installed on slot, if any.
	Unregister(slot Slot)

	// AddChild parents child's native window under this peer.
	AddChild(child Peer)

	// RemoveChild detaches child's native window from this peer.
	RemoveChild(child Peer)

	ScreenToClient(p graphics.Point) graphics.Point
	ClientToScreen(p graphics.Point) graphics.Point

	// BeginUpdate suspends native redraw until the matching EndUpdate.
	BeginUpdate()
	EndUpdate()

	// DPI returns the horizontal and vertical resolution.
	DPI() graphics.Size

	// SetOwner installs a non-owning back-reference to the managed object
	// that owns this peer. Native callbacks use it for inverse lookup.
	SetOwner(owner any)
	Owner() any
}

// Styler is implemented by peers that accept visual-state colors.
type Styler interface {
	SetBackground(c graphics.Color)
	SetForeground(c graphics.Color)
	SetBorder(width float64, c graphics.Color)
}

// Texter is implemented by peers that display text.
type Texter interface {
	SetText(text string)
}

// DefaultDPI is the resolution reported when no peer is available.
var DefaultDPI = graphics.Size{Width: 96, Height: 96}
