package control

import (
	"math"

	"github.com/go-drift/nodeui/pkg/errors"
	"github.com/go-drift/nodeui/pkg/graphics"
	"github.com/go-drift/nodeui/pkg/layout"
)

// SuspendLayout suppresses layout passes until the matching ResumeLayout.
// Calls nest.
func (n *Node) SuspendLayout() {
	n.layoutSuspend++
}

// ResumeLayout ends a SuspendLayout. When the count returns to zero and
// performNow is set, the children are laid out once. Resuming more often
// than suspending is a contract fault.
func (n *Node) ResumeLayout(performNow bool) {
	if n.layoutSuspend == 0 {
		errors.Fault("control.Node.ResumeLayout", errors.ErrNegativeCount)
	}
	n.layoutSuspend--
	if n.layoutSuspend == 0 && performNow {
		n.PerformLayout(false)
	}
}

// LayoutSuspended reports whether layout passes are suppressed.
func (n *Node) LayoutSuspended() bool { return n.layoutSuspend > 0 }

// LayoutPasses returns the number of arrange passes run on this node.
func (n *Node) LayoutPasses() int { return n.layoutPasses }

// PerformLayout arranges the children. With layoutParent set the parent is
// laid out first, so the node never arranges against a stale content
// rectangle. The call is a no-op while suspended or already in progress on
// this node. Laying out a disposed node is a contract fault.
func (n *Node) PerformLayout(layoutParent bool) {
	n.checkAlive("control.Node.PerformLayout")
	if n.layoutSuspend > 0 || n.inLayout {
		return
	}
	n.inLayout = true
	defer func() { n.inLayout = false }()
	if layoutParent && n.parent != nil {
		n.parent.PerformLayout(true)
	}
	n.onLayout()
}

func (n *Node) onLayout() {
	layout.Arrange(n.strategy, n.ContentRect(), n.layoutItems())
	n.layoutPasses++
	n.app.observer.LayoutPerformed(n)
}

// layoutItems returns the visible children that take part in layout, in
// order.
func (n *Node) layoutItems() []layout.Item {
	items := make([]layout.Item, 0, len(n.children))
	for _, c := range n.children {
		if c.visible && !c.ignored {
			items = append(items, c)
		}
	}
	return items
}

// GetPreferredSize returns the size the node would like for the given
// available size, including padding and excluding margin. Set axes of the
// suggested size win. A node without visible children falls back to its
// peer's native size. The result is not clamped; see PreferredSizeLimited.
func (n *Node) GetPreferredSize(available graphics.Size) graphics.Size {
	items := n.layoutItems()
	size := layout.PreferredSize(n.strategy, available, n.suggested, n.padding, items)
	if len(items) > 0 || n.handler == nil {
		return size
	}
	native := n.handler.NativePreferredSize(available.Shrink(n.padding)).Grow(n.padding)
	if !graphics.IsSet(n.suggested.Width) {
		size.Width = math.Max(size.Width, native.Width)
	}
	if !graphics.IsSet(n.suggested.Height) {
		size.Height = math.Max(size.Height, native.Height)
	}
	return size
}

// PreferredSizeLimited returns GetPreferredSize clamped to
// [MinimumSize, MaximumSize].
func (n *Node) PreferredSizeLimited(available graphics.Size) graphics.Size {
	return n.GetPreferredSize(available).Clamp(n.minSize, n.maxSize)
}

// PreferredSize implements layout.Item.
func (n *Node) PreferredSize(available graphics.Size) graphics.Size {
	return n.PreferredSizeLimited(available)
}
