package control

import (
	"github.com/go-drift/nodeui/pkg/event"
	"github.com/go-drift/nodeui/pkg/graphics"
	"github.com/go-drift/nodeui/pkg/platform"
	"github.com/go-drift/nodeui/pkg/theme"
)

// eventOwner is the owner name of the standard routed events.
const eventOwner = "Node"

// Events holds the standard routed events of an App.
type Events struct {
	MouseDown            *event.RoutedEvent
	MouseUp              *event.RoutedEvent
	MouseLeftButtonDown  *event.RoutedEvent
	MouseLeftButtonUp    *event.RoutedEvent
	MouseRightButtonDown *event.RoutedEvent
	MouseRightButtonUp   *event.RoutedEvent
	MouseMove            *event.RoutedEvent
	MouseWheel           *event.RoutedEvent
	MouseEnter           *event.RoutedEvent
	MouseLeave           *event.RoutedEvent
	MouseCaptureLost     *event.RoutedEvent
	KeyDown              *event.RoutedEvent
	KeyUp                *event.RoutedEvent
	TextInput            *event.RoutedEvent
	GotFocus             *event.RoutedEvent
	LostFocus            *event.RoutedEvent
	DragEnter            *event.RoutedEvent
	DragOver             *event.RoutedEvent
	DragLeave            *event.RoutedEvent
	DragDrop             *event.RoutedEvent
	Paint                *event.RoutedEvent
	Scroll               *event.RoutedEvent
	SizeChanged          *event.RoutedEvent
	LocationChanged      *event.RoutedEvent
	VisibleChanged       *event.RoutedEvent
	EnabledChanged       *event.RoutedEvent
	VisualStateChanged   *event.RoutedEvent
	HandleCreated        *event.RoutedEvent
	HandleDestroyed      *event.RoutedEvent
	Idle                 *event.RoutedEvent
	UnhandledError       *event.RoutedEvent
}

func registerEvents(r *event.Registry) *Events {
	tb := func(name string) *event.RoutedEvent { return r.Register(name, eventOwner, event.TunnelBubble) }
	direct := func(name string) *event.RoutedEvent { return r.Register(name, eventOwner, event.Direct) }
	return &Events{
		MouseDown:            tb("MouseDown"),
		MouseUp:              tb("MouseUp"),
		MouseLeftButtonDown:  tb("MouseLeftButtonDown"),
		MouseLeftButtonUp:    tb("MouseLeftButtonUp"),
		MouseRightButtonDown: tb("MouseRightButtonDown"),
		MouseRightButtonUp:   tb("MouseRightButtonUp"),
		MouseMove:            tb("MouseMove"),
		MouseWheel:           tb("MouseWheel"),
		MouseEnter:           direct("MouseEnter"),
		MouseLeave:           direct("MouseLeave"),
		MouseCaptureLost:     direct("MouseCaptureLost"),
		KeyDown:              tb("KeyDown"),
		KeyUp:                tb("KeyUp"),
		TextInput:            tb("TextInput"),
		GotFocus:             tb("GotFocus"),
		LostFocus:            tb("LostFocus"),
		DragEnter:            tb("DragEnter"),
		DragOver:             tb("DragOver"),
		DragLeave:            tb("DragLeave"),
		DragDrop:             tb("DragDrop"),
		Paint:                direct("Paint"),
		Scroll:               direct("Scroll"),
		SizeChanged:          direct("SizeChanged"),
		LocationChanged:      direct("LocationChanged"),
		VisibleChanged:       direct("VisibleChanged"),
		EnabledChanged:       direct("EnabledChanged"),
		VisualStateChanged:   direct("VisualStateChanged"),
		HandleCreated:        direct("HandleCreated"),
		HandleDestroyed:      direct("HandleDestroyed"),
		Idle:                 direct("Idle"),
		UnhandledError:       direct("UnhandledError"),
	}
}

// buttonEvent returns the button-specific event a generic down or up event
// cracks into, or nil.
func (e *Events) buttonEvent(b MouseButton, down bool) *event.RoutedEvent {
	switch {
	case b == ButtonLeft && down:
		return e.MouseLeftButtonDown
	case b == ButtonLeft:
		return e.MouseLeftButtonUp
	case b == ButtonRight && down:
		return e.MouseRightButtonDown
	case b == ButtonRight:
		return e.MouseRightButtonUp
	default:
		return nil
	}
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "none"
	}
}

// MouseArgs is the payload of pointer events.
type MouseArgs struct {
	event.BaseArgs
	// Position is in the client coordinates of the node the event was
	// raised on.
	Position graphics.Point
}

// MouseButtonArgs is the payload of pointer down and up events.
type MouseButtonArgs struct {
	MouseArgs
	Button     MouseButton
	ClickCount int
	// ButtonHandled records whether the button-specific event cracked from
	// this one was handled. It is independent of Handled.
	ButtonHandled bool
}

// MouseWheelArgs is the payload of MouseWheel.
type MouseWheelArgs struct {
	MouseArgs
	Delta int
}

// KeyArgs is the payload of KeyDown and KeyUp.
type KeyArgs struct {
	event.BaseArgs
	Key    string
	Repeat bool
}

// TextInputArgs is the payload of TextInput.
type TextInputArgs struct {
	event.BaseArgs
	Text string
}

// FocusArgs is the payload of GotFocus and LostFocus.
type FocusArgs struct {
	event.BaseArgs
}

// PaintArgs is the payload of Paint.
type PaintArgs struct {
	event.BaseArgs
	Clip graphics.Rect
}

// DragArgs is the payload of the drag events. Handlers set Effect to accept
// the drag; the value is returned to the platform.
type DragArgs struct {
	event.BaseArgs
	Position graphics.Point
	Data     any
	Allowed  platform.DragEffect
	Effect   platform.DragEffect
}

// ScrollArgs is the payload of Scroll.
type ScrollArgs struct {
	event.BaseArgs
	Orientation platform.Orientation
	OldValue    int
	NewValue    int
}

// BoundsChangedArgs is the payload of SizeChanged and LocationChanged.
type BoundsChangedArgs struct {
	event.BaseArgs
	Old graphics.Rect
	New graphics.Rect
}

// ValueChangedArgs is the payload of VisibleChanged and EnabledChanged.
type ValueChangedArgs struct {
	event.BaseArgs
	Value bool
}

// VisualStateArgs is the payload of VisualStateChanged.
type VisualStateArgs struct {
	event.BaseArgs
	Old theme.VisualState
	New theme.VisualState
}
