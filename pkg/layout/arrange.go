package layout

import (
	"math"

	"github.com/go-drift/nodeui/pkg/graphics"
)

// Arrange positions items inside the content rectangle. Docked items are
// placed first in registration order; the rest are placed with s inside the
// rectangle the docked items leave. Arrange returns that rectangle.
func Arrange(s Strategy, content graphics.Rect, items []Item) graphics.Rect {
	remaining, leftover := ArrangeDocked(content, items)
	switch s {
	case StrategyVertical:
		arrangeStack(axisVertical, remaining, leftover)
	case StrategyHorizontal:
		arrangeStack(axisHorizontal, remaining, leftover)
	case StrategyNone:
	default:
		arrangeBasic(remaining, leftover)
	}
	return remaining
}

// ArrangeDocked places the docked items in registration order and returns
// the remaining rectangle together with the items that are not docked.
// Left, Top, Right and Bottom claims shrink the remaining rectangle; Fill
// occupies it as it stands.
func ArrangeDocked(content graphics.Rect, items []Item) (graphics.Rect, []Item) {
	space := content
	var leftover []Item
	for _, it := range items {
		d := it.Dock()
		if d == DockNone {
			leftover = append(leftover, it)
			continue
		}
		m := it.Margin()
		inner := space.Deflate(m)
		if d == DockFill {
			it.SetBounds(inner)
			continue
		}
		pref := it.PreferredSize(inner.Size())
		switch d {
		case DockLeft, DockRight:
			w := math.Min(nonNegative(pref.Width), inner.Width)
			claim := math.Min(w+m.Horizontal(), space.Width)
			x := inner.X
			if d == DockRight {
				x = space.Right() - m.Right - w
			}
			it.SetBounds(graphics.Rect{X: x, Y: inner.Y, Width: w, Height: inner.Height})
			if d == DockLeft {
				space.X += claim
			}
			space.Width -= claim
		case DockTop, DockBottom:
			h := math.Min(nonNegative(pref.Height), inner.Height)
			claim := math.Min(h+m.Vertical(), space.Height)
			y := inner.Y
			if d == DockBottom {
				y = space.Bottom() - m.Bottom - h
			}
			it.SetBounds(graphics.Rect{X: inner.X, Y: y, Width: inner.Width, Height: h})
			if d == DockTop {
				space.Y += claim
			}
			space.Height -= claim
		}
	}
	return space, leftover
}

func arrangeBasic(rect graphics.Rect, items []Item) {
	for _, it := range items {
		m := it.Margin()
		pref := it.PreferredSize(rect.Size().Shrink(m))
		it.SetBounds(AlignRect(rect, pref, m, it.HorizontalAlignment(), it.VerticalAlignment()))
	}
}

// arrangeStack packs Start and Stretch items from the leading edge and End
// items from the trailing edge. Center items are centered as a group in the
// gap between the two, in registration order. Stretch items share whatever
// main-axis space the others leave, in equal parts.
func arrangeStack(a axis, rect graphics.Rect, items []Item) {
	extent := a.main(rect.Size())
	prefs := make([]graphics.Size, len(items))
	used := 0.0
	stretched := 0
	for i, it := range items {
		mainAlign, _ := a.alignments(it)
		if mainAlign == AlignStretch {
			stretched++
			continue
		}
		m := it.Margin()
		mainStart, mainEnd, _, _ := a.margins(m)
		avail := rect.Size().Shrink(m)
		avail = a.makeSize(math.Max(0, extent-used-mainStart-mainEnd), a.cross(avail))
		prefs[i] = it.PreferredSize(avail)
		used += nonNegative(a.main(prefs[i])) + mainStart + mainEnd
	}

	share := 0.0
	if stretched > 0 {
		share = math.Max(0, extent-used) / float64(stretched)
	}
	for i, it := range items {
		if mainAlign, _ := a.alignments(it); mainAlign == AlignStretch {
			m := it.Margin()
			mainStart, mainEnd, _, _ := a.margins(m)
			mainSize := math.Max(0, share-mainStart-mainEnd)
			avail := rect.Size().Shrink(m)
			prefs[i] = it.PreferredSize(a.makeSize(mainSize, a.cross(avail)))
			prefs[i] = a.makeSize(mainSize, a.cross(prefs[i]))
		}
	}

	mainOrigin, crossOrigin := a.origin(rect)
	crossExtent := a.cross(rect.Size())
	place := func(it Item, pref graphics.Size, mainPos float64) {
		_, crossAlign := a.alignments(it)
		_, _, crossStart, crossEnd := a.margins(it.Margin())
		crossPos, crossSize := AlignAxis(crossOrigin, crossExtent, a.cross(pref), crossStart, crossEnd, crossAlign)
		it.SetBounds(a.makeRect(mainPos, crossPos, nonNegative(a.main(pref)), crossSize))
	}

	lead := mainOrigin
	var centered []int
	for i, it := range items {
		mainAlign, _ := a.alignments(it)
		if mainAlign == AlignCenter {
			centered = append(centered, i)
		}
		if mainAlign == AlignEnd || mainAlign == AlignCenter {
			continue
		}
		mainStart, mainEnd, _, _ := a.margins(it.Margin())
		place(it, prefs[i], lead+mainStart)
		lead += mainStart + nonNegative(a.main(prefs[i])) + mainEnd
	}

	trail := mainOrigin + extent
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		if mainAlign, _ := a.alignments(it); mainAlign != AlignEnd {
			continue
		}
		mainStart, mainEnd, _, _ := a.margins(it.Margin())
		size := nonNegative(a.main(prefs[i]))
		place(it, prefs[i], trail-mainEnd-size)
		trail -= mainStart + size + mainEnd
	}

	if len(centered) == 0 {
		return
	}
	group := 0.0
	for _, i := range centered {
		mainStart, mainEnd, _, _ := a.margins(items[i].Margin())
		group += mainStart + nonNegative(a.main(prefs[i])) + mainEnd
	}
	pos := lead + math.Max(0, math.Floor((trail-lead-group)/2))
	for _, i := range centered {
		mainStart, mainEnd, _, _ := a.margins(items[i].Margin())
		place(items[i], prefs[i], pos+mainStart)
		pos += mainStart + nonNegative(a.main(prefs[i])) + mainEnd
	}
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
