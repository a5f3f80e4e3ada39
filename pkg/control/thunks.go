package control

import (
	"github.com/go-drift/nodeui/pkg/event"
	"github.com/go-drift/nodeui/pkg/platform"
)

// registerThunks installs a callback on every slot the handler serves.
// Each callback finds its handler through the peer back-reference, so a
// callback replayed after the handler let go of the peer does nothing.
func (h *Handler) registerThunks(p platform.Peer) {
	thunks := []struct {
		slot platform.Slot
		fn   func(n *Node, p platform.Peer, payload any)
	}{
		{platform.SlotHandleCreated, onHandleCreated},
		{platform.SlotSizeChanged, onSizeChanged},
		{platform.SlotPaint, onPaint},
		{platform.SlotGotFocus, onFocus(true)},
		{platform.SlotLostFocus, onFocus(false)},
		{platform.SlotMouseEnter, onMouseEnter},
		{platform.SlotMouseLeave, onMouseLeave},
		{platform.SlotMouseCaptureLost, onMouseCaptureLost},
		{platform.SlotDragEnter, onDrag(platform.SlotDragEnter)},
		{platform.SlotDragOver, onDrag(platform.SlotDragOver)},
		{platform.SlotDragLeave, onDrag(platform.SlotDragLeave)},
		{platform.SlotDragDrop, onDrag(platform.SlotDragDrop)},
		{platform.SlotScrollbarValueChanged, onScroll},
		{platform.SlotIdle, onIdle},
	}
	h.slots = h.slots[:0]
	for _, t := range thunks {
		slot, fn := t.slot, t.fn
		p.Register(slot, func(payload any) {
			owner := HandlerOf(p)
			if owner == nil || owner.node == nil || owner.peer != p {
				return
			}
			fn(owner.node, p, payload)
		})
		h.slots = append(h.slots, slot)
	}
}

func onHandleCreated(n *Node, _ platform.Peer, _ any) {
	n.Raise(event.NewArgs(n.app.events.HandleCreated))
}

func onSizeChanged(n *Node, p platform.Peer, _ any) {
	n.setBounds(p.Bounds(), false)
}

func onPaint(n *Node, _ platform.Peer, payload any) {
	args := &PaintArgs{BaseArgs: event.BaseArgs{Event: n.app.events.Paint}}
	if d, ok := payload.(*platform.PaintData); ok {
		args.Clip = d.Clip
	} else {
		args.Clip = n.ClientRect()
	}
	if n.Raise(args) {
		return
	}
	if pt, ok := n.behavior.(Paintable); ok {
		pt.Paint(n, args.Clip)
	}
}

func onFocus(focused bool) func(*Node, platform.Peer, any) {
	return func(n *Node, _ platform.Peer, _ any) {
		n.focused = focused
		n.updateVisualState()
		ev := n.app.events.LostFocus
		if focused {
			ev = n.app.events.GotFocus
		}
		if n.Raise(&FocusArgs{BaseArgs: event.BaseArgs{Event: ev}}) {
			return
		}
		if f, ok := n.behavior.(Focusable); ok {
			f.FocusChanged(n, focused)
		}
	}
}

func onMouseEnter(n *Node, _ platform.Peer, _ any) {
	n.hovered = true
	n.updateVisualState()
	n.Raise(&MouseArgs{BaseArgs: event.BaseArgs{Event: n.app.events.MouseEnter}})
}

func onMouseLeave(n *Node, _ platform.Peer, _ any) {
	n.hovered = false
	n.updateVisualState()
	n.Raise(&MouseArgs{BaseArgs: event.BaseArgs{Event: n.app.events.MouseLeave}})
}

func onMouseCaptureLost(n *Node, _ platform.Peer, _ any) {
	n.pressed = false
	n.updateVisualState()
	n.Raise(event.NewArgs(n.app.events.MouseCaptureLost))
}

// onDrag raises the drag event for slot and writes the accepted effect,
// limited to the allowed ones, back into the payload.
func onDrag(slot platform.Slot) func(*Node, platform.Peer, any) {
	return func(n *Node, _ platform.Peer, payload any) {
		d, _ := payload.(*platform.DragData)
		if d == nil {
			d = &platform.DragData{}
		}
		e := n.app.events
		var ev *event.RoutedEvent
		switch slot {
		case platform.SlotDragEnter:
			ev = e.DragEnter
		case platform.SlotDragOver:
			ev = e.DragOver
		case platform.SlotDragLeave:
			ev = e.DragLeave
		default:
			ev = e.DragDrop
		}
		args := &DragArgs{
			BaseArgs: event.BaseArgs{Event: ev},
			Position: d.Position,
			Data:     d.Data,
			Allowed:  d.Allowed,
			Effect:   d.Effect,
		}
		if !n.Raise(args) {
			if t, ok := n.behavior.(DragTarget); ok {
				switch slot {
				case platform.SlotDragEnter:
					t.DragEnter(n, args)
				case platform.SlotDragOver:
					t.DragOver(n, args)
				case platform.SlotDragLeave:
					t.DragLeave(n)
				default:
					t.Drop(n, args)
				}
			}
		}
		d.Effect = args.Effect & d.Allowed
	}
}

func onScroll(n *Node, _ platform.Peer, payload any) {
	d, ok := payload.(*platform.ScrollData)
	if !ok {
		return
	}
	args := &ScrollArgs{
		BaseArgs:    event.BaseArgs{Event: n.app.events.Scroll},
		Orientation: d.Orientation,
		OldValue:    d.OldValue,
		NewValue:    d.NewValue,
	}
	if n.Raise(args) {
		return
	}
	if s, ok := n.behavior.(Scrollable); ok {
		s.Scrolled(n, args)
	}
}

func onIdle(n *Node, _ platform.Peer, _ any) {
	n.Raise(event.NewArgs(n.app.events.Idle))
}
