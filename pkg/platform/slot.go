package platform

import "github.com/go-drift/nodeui/pkg/graphics"

// Slot names a native callback a peer can deliver.
type Slot int

const (
	SlotHandleCreated Slot = iota
	SlotHandleDestroyed
	SlotSizeChanged
	SlotPaint
	SlotMouseEnter
	SlotMouseLeave
	SlotMouseCaptureLost
	SlotDragEnter
	SlotDragOver
	SlotDragLeave
	SlotDragDrop
	SlotGotFocus
	SlotLostFocus
	SlotScrollbarValueChanged
	SlotIdle

	slotCount
)

var slotNames = [...]string{
	SlotHandleCreated:         "handle-created",
	SlotHandleDestroyed:       "handle-destroyed",
	SlotSizeChanged:           "size-changed",
	SlotPaint:                 "paint",
	SlotMouseEnter:            "mouse-enter",
	SlotMouseLeave:            "mouse-leave",
	SlotMouseCaptureLost:      "mouse-capture-lost",
	SlotDragEnter:             "drag-enter",
	SlotDragOver:              "drag-over",
	SlotDragLeave:             "drag-leave",
	SlotDragDrop:              "drag-drop",
	SlotGotFocus:              "got-focus",
	SlotLostFocus:             "lost-focus",
	SlotScrollbarValueChanged: "scrollbar-value-changed",
	SlotIdle:                  "idle",
}

func (s Slot) String() string {
	if s >= 0 && s < slotCount {
		return slotNames[s]
	}
	return "unknown"
}

// Slots returns every slot in declaration order.
func Slots() []Slot {
	out := make([]Slot, 0, slotCount)
	for s := Slot(0); s < slotCount; s++ {
		out = append(out, s)
	}
	return out
}

// Callback receives a native notification. The payload type depends on the
// slot: *PaintData for SlotPaint, *DragData for the drag slots, *ScrollData
// for SlotScrollbarValueChanged, nil otherwise. Callbacks may write results
// back into the payload.
type Callback func(payload any)

// PaintData is the payload of SlotPaint.
type PaintData struct {
	Clip graphics.Rect
}

// DragEffect is a bit set of drag-and-drop operations.
type DragEffect int

// DragNone refuses the drop.
const DragNone DragEffect = 0

const (
	DragCopy DragEffect = 1 << iota
	DragMove
	DragLink
)

// DragData is the payload of the drag slots. Effect is written back by the
// receiver to accept or refuse the drop.
type DragData struct {
	Position graphics.Point
	Data     any
	Allowed  DragEffect
	Effect   DragEffect
}

// Orientation is the axis of a scrollbar.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ScrollData is the payload of SlotScrollbarValueChanged.
type ScrollData struct {
	Orientation Orientation
	OldValue    int
	NewValue    int
}
