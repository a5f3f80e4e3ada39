package layout

import (
	"math"

	"github.com/go-drift/nodeui/pkg/graphics"
)

// axis is the main axis of a stack.
type axis int

const (
	axisHorizontal axis = iota
	axisVertical
)

func (a axis) main(s graphics.Size) float64 {
	if a == axisVertical {
		return s.Height
	}
	return s.Width
}

func (a axis) cross(s graphics.Size) float64 {
	if a == axisVertical {
		return s.Width
	}
	return s.Height
}

func (a axis) makeSize(main, cross float64) graphics.Size {
	if a == axisVertical {
		return graphics.Size{Width: cross, Height: main}
	}
	return graphics.Size{Width: main, Height: cross}
}

func (a axis) makeRect(mainPos, crossPos, mainSize, crossSize float64) graphics.Rect {
	if a == axisVertical {
		return graphics.Rect{X: crossPos, Y: mainPos, Width: crossSize, Height: mainSize}
	}
	return graphics.Rect{X: mainPos, Y: crossPos, Width: mainSize, Height: crossSize}
}

// origin returns the main and cross coordinates of r's origin.
func (a axis) origin(r graphics.Rect) (main, cross float64) {
	if a == axisVertical {
		return r.Y, r.X
	}
	return r.X, r.Y
}

// margins splits t into main-axis and cross-axis leading and trailing edges.
func (a axis) margins(t graphics.Thickness) (mainStart, mainEnd, crossStart, crossEnd float64) {
	if a == axisVertical {
		return t.Top, t.Bottom, t.Left, t.Right
	}
	return t.Left, t.Right, t.Top, t.Bottom
}

func (a axis) alignments(it Item) (main, cross Alignment) {
	if a == axisVertical {
		return it.VerticalAlignment(), it.HorizontalAlignment()
	}
	return it.HorizontalAlignment(), it.VerticalAlignment()
}

// AlignAxis positions an item of the given preferred extent inside a slot
// starting at origin with the given extent. The margins are excluded from
// the returned position and size. An item never exceeds the slot.
func AlignAxis(origin, extent, preferred, marginStart, marginEnd float64, a Alignment) (pos, size float64) {
	avail := math.Max(0, extent-marginStart-marginEnd)
	size = preferred
	if math.IsNaN(size) || size < 0 {
		size = 0
	}
	size = math.Min(size, avail)
	switch a {
	case AlignStretch:
		return origin + marginStart, avail
	case AlignCenter:
		return origin + marginStart + math.Floor((avail-size)/2), size
	case AlignEnd:
		return origin + extent - marginEnd - size, size
	default:
		return origin + marginStart, size
	}
}

// AlignRect positions an item of the given preferred size inside slot.
func AlignRect(slot graphics.Rect, preferred graphics.Size, margin graphics.Thickness, h, v Alignment) graphics.Rect {
	x, w := AlignAxis(slot.X, slot.Width, preferred.Width, margin.Left, margin.Right, h)
	y, hgt := AlignAxis(slot.Y, slot.Height, preferred.Height, margin.Top, margin.Bottom, v)
	return graphics.Rect{X: x, Y: y, Width: w, Height: hgt}
}

// remainingAxis subtracts used from an available extent, keeping an
// unconstrained extent unconstrained and a concrete one non-negative.
func remainingAxis(avail, used float64) float64 {
	if graphics.IsUnconstrained(avail) {
		return avail
	}
	return math.Max(0, avail-used)
}
