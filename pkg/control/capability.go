package control

import "github.com/go-drift/nodeui/pkg/graphics"

// Paintable draws a node when its Paint event is left unhandled.
type Paintable interface {
	Paint(n *Node, clip graphics.Rect)
}

// Focusable is told about focus changes the focus events left unhandled.
type Focusable interface {
	FocusChanged(n *Node, focused bool)
}

// DragTarget takes part in drag and drop. Implementations accept a drop by
// setting args.Effect.
type DragTarget interface {
	DragEnter(n *Node, args *DragArgs)
	DragOver(n *Node, args *DragArgs)
	DragLeave(n *Node)
	Drop(n *Node, args *DragArgs)
}

// Scrollable is told about scrollbar movement.
type Scrollable interface {
	Scrolled(n *Node, args *ScrollArgs)
}
