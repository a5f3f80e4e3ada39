package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/nodeui/pkg/graphics"
)

// box is a fixed-size Item. NaN axes in size follow the available space.
type box struct {
	size   graphics.Size
	margin graphics.Thickness
	h, v   Alignment
	dock   Dock
	bounds graphics.Rect
	asked  []graphics.Size
}

func (b *box) Margin() graphics.Thickness     { return b.margin }
func (b *box) HorizontalAlignment() Alignment { return b.h }
func (b *box) VerticalAlignment() Alignment   { return b.v }
func (b *box) Dock() Dock                     { return b.dock }
func (b *box) SetBounds(r graphics.Rect)      { b.bounds = r }

func (b *box) PreferredSize(available graphics.Size) graphics.Size {
	b.asked = append(b.asked, available)
	s := b.size
	if math.IsNaN(s.Width) {
		s.Width = 0
	}
	if math.IsNaN(s.Height) {
		s.Height = 0
	}
	return s
}

func items(boxes ...*box) []Item {
	out := make([]Item, len(boxes))
	for i, b := range boxes {
		out[i] = b
	}
	return out
}

func TestDockConsumesInRegistrationOrder(t *testing.T) {
	top := &box{size: graphics.Size{Width: math.NaN(), Height: 20}, dock: DockTop}
	left := &box{size: graphics.Size{Width: 30, Height: math.NaN()}, dock: DockLeft}
	fill := &box{dock: DockFill}
	content := graphics.Rect{Width: 200, Height: 100}

	remaining, leftover := ArrangeDocked(content, items(top, left, fill))

	assert.Empty(t, leftover)
	assert.Equal(t, graphics.Rect{X: 30, Y: 20, Width: 170, Height: 80}, remaining)
	assert.Equal(t, graphics.Rect{X: 0, Y: 0, Width: 200, Height: 20}, top.bounds)
	assert.Equal(t, graphics.Rect{X: 0, Y: 20, Width: 30, Height: 80}, left.bounds)
	assert.Equal(t, remaining, fill.bounds, "fill occupies exactly the remaining rect")
}

func TestDockTopThenFill(t *testing.T) {
	a := &box{size: graphics.Size{Height: 20}, dock: DockTop}
	b := &box{dock: DockFill}

	Arrange(StrategyDock, graphics.Rect{Width: 200, Height: 100}, items(a, b))

	assert.Equal(t, graphics.Rect{X: 0, Y: 0, Width: 200, Height: 20}, a.bounds)
	assert.Equal(t, graphics.Rect{X: 0, Y: 20, Width: 200, Height: 80}, b.bounds)
}

func TestDockRightAndBottomWithMargins(t *testing.T) {
	right := &box{size: graphics.Size{Width: 40}, dock: DockRight, margin: graphics.Uniform(5)}
	bottom := &box{size: graphics.Size{Height: 10}, dock: DockBottom}
	content := graphics.Rect{X: 10, Y: 10, Width: 200, Height: 100}

	remaining, _ := ArrangeDocked(content, items(right, bottom))

	assert.Equal(t, graphics.Rect{X: 165, Y: 15, Width: 40, Height: 90}, right.bounds)
	assert.Equal(t, graphics.Rect{X: 10, Y: 100, Width: 150, Height: 10}, bottom.bounds)
	assert.Equal(t, graphics.Rect{X: 10, Y: 10, Width: 150, Height: 90}, remaining)
}

func TestDockClaimNeverExceedsSpace(t *testing.T) {
	wide := &box{size: graphics.Size{Width: 500}, dock: DockLeft}
	after := &box{size: graphics.Size{Width: 10}, dock: DockLeft}

	remaining, _ := ArrangeDocked(graphics.Rect{Width: 100, Height: 50}, items(wide, after))

	assert.Equal(t, 100.0, wide.bounds.Width)
	assert.Equal(t, 0.0, after.bounds.Width)
	assert.Equal(t, 0.0, remaining.Width)
}

func TestDockLeftoversUseStrategy(t *testing.T) {
	top := &box{size: graphics.Size{Height: 10}, dock: DockTop}
	a := &box{size: graphics.Size{Width: 20, Height: 20}, h: AlignStart, v: AlignStart}
	b := &box{size: graphics.Size{Width: 20, Height: 30}, h: AlignStart, v: AlignStart}

	Arrange(StrategyVertical, graphics.Rect{Width: 100, Height: 100}, items(top, a, b))

	assert.Equal(t, graphics.Rect{X: 0, Y: 10, Width: 20, Height: 20}, a.bounds)
	assert.Equal(t, graphics.Rect{X: 0, Y: 30, Width: 20, Height: 30}, b.bounds)
}

func TestAlignment(t *testing.T) {
	slot := graphics.Rect{Width: 100, Height: 100}
	tests := []struct {
		name string
		h, v Alignment
		pref graphics.Size
		want graphics.Rect
	}{
		{"stretch", AlignStretch, AlignStretch, graphics.Size{Width: 20, Height: 20}, graphics.Rect{Width: 100, Height: 100}},
		{"center", AlignCenter, AlignCenter, graphics.Size{Width: 20, Height: 20}, graphics.Rect{X: 40, Y: 40, Width: 20, Height: 20}},
		{"start", AlignStart, AlignStart, graphics.Size{Width: 20, Height: 20}, graphics.Rect{Width: 20, Height: 20}},
		{"end", AlignEnd, AlignEnd, graphics.Size{Width: 20, Height: 20}, graphics.Rect{X: 80, Y: 80, Width: 20, Height: 20}},
		{"oversized is clipped", AlignStart, AlignEnd, graphics.Size{Width: 150, Height: 150}, graphics.Rect{Width: 100, Height: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AlignRect(slot, tt.pref, graphics.Thickness{}, tt.h, tt.v)
			if got != tt.want {
				t.Errorf("AlignRect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCenterOddSlackRoundsDown(t *testing.T) {
	// slack 79: offset floor(39.5) = 39, the spare pixel trails.
	pos, size := AlignAxis(0, 100, 21, 0, 0, AlignCenter)
	assert.Equal(t, 39.0, pos)
	assert.Equal(t, 21.0, size)

	// slack 3 with a leading margin: 5 + floor(1.5) = 6.
	pos, _ = AlignAxis(0, 10, 2, 5, 0, AlignCenter)
	assert.Equal(t, 6.0, pos)
}

func TestAlignAxisHonorsMargins(t *testing.T) {
	pos, size := AlignAxis(10, 100, 0, 5, 15, AlignStretch)
	assert.Equal(t, 15.0, pos)
	assert.Equal(t, 80.0, size)

	pos, size = AlignAxis(10, 100, 30, 5, 15, AlignEnd)
	assert.Equal(t, 65.0, pos)
	assert.Equal(t, 30.0, size)
}

func TestVerticalStackPacksStartAndEnd(t *testing.T) {
	a := &box{size: graphics.Size{Width: 10, Height: 10}, v: AlignStart, h: AlignStart}
	end1 := &box{size: graphics.Size{Width: 10, Height: 20}, v: AlignEnd, h: AlignEnd}
	end2 := &box{size: graphics.Size{Width: 10, Height: 5}, v: AlignEnd, h: AlignCenter}

	Arrange(StrategyVertical, graphics.Rect{Width: 50, Height: 100}, items(a, end1, end2))

	assert.Equal(t, graphics.Rect{X: 0, Y: 0, Width: 10, Height: 10}, a.bounds)
	// End items stack up from the bottom in reverse registration order.
	assert.Equal(t, graphics.Rect{X: 20, Y: 95, Width: 10, Height: 5}, end2.bounds)
	assert.Equal(t, graphics.Rect{X: 40, Y: 75, Width: 10, Height: 20}, end1.bounds)
}

func TestVerticalStackCentersGroupInGap(t *testing.T) {
	top := &box{size: graphics.Size{Width: 10, Height: 10}, v: AlignStart}
	c1 := &box{size: graphics.Size{Width: 10, Height: 20}, v: AlignCenter}
	bottom := &box{size: graphics.Size{Width: 10, Height: 30}, v: AlignEnd}
	c2 := &box{size: graphics.Size{Width: 10, Height: 5}, margin: graphics.Thickness{Top: 2, Bottom: 2}, v: AlignCenter}

	Arrange(StrategyVertical, graphics.Rect{Width: 50, Height: 100}, items(top, c1, bottom, c2))

	// The gap runs from 10 to 70; the group is 29 tall, so it starts at
	// 10 + floor(31/2).
	assert.Equal(t, 25.0, c1.bounds.Y)
	assert.Equal(t, 47.0, c2.bounds.Y)
	assert.Equal(t, 70.0, bottom.bounds.Y)
}

func TestHorizontalStackCentersSingleItem(t *testing.T) {
	c := &box{size: graphics.Size{Width: 20, Height: 10}, h: AlignCenter, v: AlignStart}

	Arrange(StrategyHorizontal, graphics.Rect{X: 5, Width: 100, Height: 30}, items(c))

	assert.Equal(t, graphics.Rect{X: 45, Width: 20, Height: 10}, c.bounds)
}

func TestStackCenterGroupNeverStartsBeforeGap(t *testing.T) {
	a := &box{size: graphics.Size{Width: 10, Height: 60}, v: AlignStart}
	c := &box{size: graphics.Size{Width: 10, Height: 60}, v: AlignCenter}

	Arrange(StrategyVertical, graphics.Rect{Width: 10, Height: 100}, items(a, c))

	assert.Equal(t, 60.0, c.bounds.Y)
}

func TestStrategyNoneOnlyDocks(t *testing.T) {
	top := &box{size: graphics.Size{Width: 5, Height: 20}, dock: DockTop}
	free := &box{size: graphics.Size{Width: 5, Height: 5}, bounds: graphics.Rect{X: 7, Y: 8, Width: 9, Height: 10}}

	remaining := Arrange(StrategyNone, graphics.Rect{Width: 100, Height: 100}, items(top, free))

	assert.Equal(t, graphics.Rect{Width: 100, Height: 20}, top.bounds)
	assert.Equal(t, graphics.Rect{Y: 20, Width: 100, Height: 80}, remaining)
	assert.Equal(t, graphics.Rect{X: 7, Y: 8, Width: 9, Height: 10}, free.bounds)
	assert.Empty(t, free.asked)
}

func TestStackStretchSharesRemainder(t *testing.T) {
	fixed := &box{size: graphics.Size{Width: 20, Height: 10}, h: AlignStart}
	s1 := &box{size: graphics.Size{Width: 5, Height: 5}}
	s2 := &box{size: graphics.Size{Width: 5, Height: 5}}

	Arrange(StrategyHorizontal, graphics.Rect{Width: 100, Height: 30}, items(s1, fixed, s2))

	assert.Equal(t, graphics.Rect{X: 0, Y: 0, Width: 40, Height: 30}, s1.bounds)
	assert.Equal(t, graphics.Rect{X: 40, Y: 0, Width: 20, Height: 30}, fixed.bounds)
	assert.Equal(t, graphics.Rect{X: 60, Y: 0, Width: 40, Height: 30}, s2.bounds)
}

func TestPreferredSizeStrategies(t *testing.T) {
	mk := func() []Item {
		return items(
			&box{size: graphics.Size{Width: 30, Height: 10}, margin: graphics.Uniform(1)},
			&box{size: graphics.Size{Width: 20, Height: 40}},
		)
	}
	pad := graphics.Uniform(5)
	unbounded := graphics.UnboundedSize()
	tests := []struct {
		s    Strategy
		want graphics.Size
	}{
		{StrategyBasic, graphics.Size{Width: 42, Height: 50}},
		{StrategyVertical, graphics.Size{Width: 42, Height: 62}},
		{StrategyHorizontal, graphics.Size{Width: 62, Height: 50}},
		{StrategyDock, graphics.Size{Width: 42, Height: 50}},
		{StrategyNone, graphics.Size{Width: 42, Height: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.s.String(), func(t *testing.T) {
			got := PreferredSize(tt.s, unbounded, graphics.AutoSize(), pad, mk())
			if !got.Equal(tt.want) {
				t.Errorf("PreferredSize(%v) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestPreferredSizeDocked(t *testing.T) {
	top := &box{size: graphics.Size{Width: 50, Height: 20}, dock: DockTop}
	left := &box{size: graphics.Size{Width: 30, Height: 10}, dock: DockLeft}
	fill := &box{size: graphics.Size{Width: 40, Height: 40}, dock: DockFill}

	got := PreferredSize(StrategyDock, graphics.UnboundedSize(), graphics.AutoSize(), graphics.Thickness{}, items(top, left, fill))

	// fill 40x40, wrapped by left (+30 wide), wrapped by top (+20 tall).
	assert.Equal(t, graphics.Size{Width: 70, Height: 60}, got)
}

func TestPreferredSizeUnconstrainedAxisIsNatural(t *testing.T) {
	child := &box{size: graphics.Size{Width: 25, Height: 35}}
	for _, avail := range []graphics.Size{
		{Width: math.NaN(), Height: math.NaN()},
		{Width: math.Inf(1), Height: math.Inf(1)},
		{Width: math.NaN(), Height: 10},
	} {
		for _, s := range []Strategy{StrategyBasic, StrategyVertical, StrategyHorizontal, StrategyDock} {
			got := PreferredSize(s, avail, graphics.AutoSize(), graphics.Thickness{}, items(child))
			if got.Width != 25 || got.Height != 35 {
				t.Errorf("PreferredSize(%v, %v) = %v, want (25,35)", s, avail, got)
			}
		}
	}
	for _, asked := range child.asked {
		if asked.Width == 0 {
			t.Errorf("child was offered a zero width for an unconstrained axis: %v", asked)
		}
	}
}

func TestPreferredSizeSuggestedAxesWin(t *testing.T) {
	child := &box{size: graphics.Size{Width: 25, Height: 35}}
	got := PreferredSize(StrategyBasic, graphics.UnboundedSize(), graphics.Size{Width: 100, Height: math.NaN()}, graphics.Uniform(2), items(child))
	assert.Equal(t, graphics.Size{Width: 100, Height: 39}, got)
	assert.Equal(t, 96.0, child.asked[0].Width, "children see the suggested width minus padding")

	got = PreferredSize(StrategyBasic, graphics.UnboundedSize(), graphics.Size{Width: 7, Height: 8}, graphics.Thickness{}, items(child))
	assert.Equal(t, graphics.Size{Width: 7, Height: 8}, got)
}

func TestParseNames(t *testing.T) {
	s, err := ParseStrategy("Vertical")
	assert.NoError(t, err)
	assert.Equal(t, StrategyVertical, s)
	s, err = ParseStrategy("none")
	assert.NoError(t, err)
	assert.Equal(t, StrategyNone, s)
	_, err = ParseStrategy("grid")
	assert.Error(t, err)

	a, err := ParseAlignment("bottom")
	assert.NoError(t, err)
	assert.Equal(t, AlignEnd, a)

	d, err := ParseDock("")
	assert.NoError(t, err)
	assert.Equal(t, DockNone, d)
	d, err = ParseDock("fill")
	assert.NoError(t, err)
	assert.Equal(t, DockFill, d)
}
