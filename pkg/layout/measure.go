package layout

import (
	"math"

	"github.com/go-drift/nodeui/pkg/graphics"
)

// PreferredSize computes a container's preferred size, including padding.
// Axes of suggested that are set (not NaN) are returned unchanged and also
// bound the space offered to the children. The caller clamps the result to
// the container's minimum and maximum size.
func PreferredSize(s Strategy, available, suggested graphics.Size, padding graphics.Thickness, items []Item) graphics.Size {
	if graphics.IsSet(suggested.Width) && graphics.IsSet(suggested.Height) {
		return suggested
	}
	inner := available
	if graphics.IsSet(suggested.Width) {
		inner.Width = suggested.Width
	}
	if graphics.IsSet(suggested.Height) {
		inner.Height = suggested.Height
	}
	result := ContentSize(s, inner.Shrink(padding), items).Grow(padding)
	if graphics.IsSet(suggested.Width) {
		result.Width = suggested.Width
	}
	if graphics.IsSet(suggested.Height) {
		result.Height = suggested.Height
	}
	return result
}

// ContentSize returns the natural size of items laid out with s inside the
// available content size, excluding the container's padding.
func ContentSize(s Strategy, available graphics.Size, items []Item) graphics.Size {
	docked, leftover := splitDocked(items)
	if len(docked) == 0 {
		return leftoverSize(s, available, leftover)
	}

	space := available
	claims := make([]graphics.Size, len(docked))
	for i, it := range docked {
		m := it.Margin()
		claims[i] = it.PreferredSize(space.Shrink(m)).Grow(m)
		switch it.Dock() {
		case DockLeft, DockRight:
			space.Width = remainingAxis(space.Width, claims[i].Width)
		case DockTop, DockBottom:
			space.Height = remainingAxis(space.Height, claims[i].Height)
		}
	}

	size := leftoverSize(s, space, leftover)
	// Docked items wrap the leftover content from the inside out: the last
	// registered claim is innermost.
	for i := len(docked) - 1; i >= 0; i-- {
		c := claims[i]
		switch docked[i].Dock() {
		case DockLeft, DockRight:
			size.Width += c.Width
			size.Height = math.Max(size.Height, c.Height)
		case DockTop, DockBottom:
			size.Height += c.Height
			size.Width = math.Max(size.Width, c.Width)
		case DockFill:
			size.Width = math.Max(size.Width, c.Width)
			size.Height = math.Max(size.Height, c.Height)
		}
	}
	return size
}

func leftoverSize(s Strategy, available graphics.Size, items []Item) graphics.Size {
	switch s {
	case StrategyVertical:
		return stackSize(axisVertical, available, items)
	case StrategyHorizontal:
		return stackSize(axisHorizontal, available, items)
	default:
		return basicSize(available, items)
	}
}

func basicSize(available graphics.Size, items []Item) graphics.Size {
	var size graphics.Size
	for _, it := range items {
		m := it.Margin()
		outer := it.PreferredSize(available.Shrink(m)).Grow(m)
		size.Width = math.Max(size.Width, outer.Width)
		size.Height = math.Max(size.Height, outer.Height)
	}
	return size
}

func stackSize(a axis, available graphics.Size, items []Item) graphics.Size {
	var used, cross float64
	for _, it := range items {
		m := it.Margin()
		avail := available.Shrink(m)
		avail = a.makeSize(remainingAxis(a.main(avail), used), a.cross(avail))
		outer := it.PreferredSize(avail).Grow(m)
		used += a.main(outer)
		cross = math.Max(cross, a.cross(outer))
	}
	return a.makeSize(used, cross)
}

func splitDocked(items []Item) (docked, leftover []Item) {
	for _, it := range items {
		if it.Dock() == DockNone {
			leftover = append(leftover, it)
		} else {
			docked = append(docked, it)
		}
	}
	return docked, leftover
}
