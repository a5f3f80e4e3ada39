package graphics

import (
	"fmt"
	"math"
)

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Point represents a 2D point or vector in pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of p and o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference of p and o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// AutoSize is a size with both axes unset. Suggested sizes use NaN per axis
// to mean "computed from content".
func AutoSize() Size {
	return Size{Width: math.NaN(), Height: math.NaN()}
}

// UnboundedSize is an available size with no constraint on either axis.
func UnboundedSize() Size {
	return Size{Width: math.Inf(1), Height: math.Inf(1)}
}

// IsUnconstrained reports whether v leaves an axis unconstrained.
func IsUnconstrained(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 1)
}

// IsSet reports whether v holds a concrete dimension (not NaN).
func IsSet(v float64) bool {
	return !math.IsNaN(v)
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Equal compares sizes with a small tolerance. NaN equals NaN.
func (s Size) Equal(o Size) bool {
	return floatEqual(s.Width, o.Width) && floatEqual(s.Height, o.Height)
}

// Shrink returns s reduced by t on each side. Unconstrained axes stay
// unconstrained and concrete axes never go below zero.
func (s Size) Shrink(t Thickness) Size {
	return Size{
		Width:  shrinkAxis(s.Width, t.Horizontal()),
		Height: shrinkAxis(s.Height, t.Vertical()),
	}
}

// Grow returns s enlarged by t on each side.
func (s Size) Grow(t Thickness) Size {
	return Size{Width: s.Width + t.Horizontal(), Height: s.Height + t.Vertical()}
}

// Clamp limits s to [min, max] per axis. NaN bounds are ignored.
func (s Size) Clamp(min, max Size) Size {
	return Size{
		Width:  clampAxis(s.Width, min.Width, max.Width),
		Height: clampAxis(s.Height, min.Height, max.Height),
	}
}

func (s Size) String() string {
	return fmt.Sprintf("(%g,%g)", s.Width, s.Height)
}

// Rect is an axis-aligned rectangle given by origin and extent.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectFromPointSize constructs a Rect at p with extent s.
func RectFromPointSize(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Location returns the origin of the rectangle.
func (r Rect) Location() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the extent of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Deflate returns the rectangle shrunk by t. Width and height never go
// below zero.
func (r Rect) Deflate(t Thickness) Rect {
	return Rect{
		X:      r.X + t.Left,
		Y:      r.Y + t.Top,
		Width:  math.Max(0, r.Width-t.Horizontal()),
		Height: math.Max(0, r.Height-t.Vertical()),
	}
}

// Equal compares rectangles with a small tolerance.
func (r Rect) Equal(o Rect) bool {
	return floatEqual(r.X, o.X) && floatEqual(r.Y, o.Y) &&
		floatEqual(r.Width, o.Width) && floatEqual(r.Height, o.Height)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g,%g,%g)", r.X, r.Y, r.Width, r.Height)
}

// Thickness describes the four edge widths of a margin, padding or border.
type Thickness struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Uniform returns a Thickness with the same value on every edge.
func Uniform(v float64) Thickness {
	return Thickness{Left: v, Top: v, Right: v, Bottom: v}
}

// Symmetric returns a Thickness with h on the left and right and v on the
// top and bottom.
func Symmetric(h, v float64) Thickness {
	return Thickness{Left: h, Top: v, Right: h, Bottom: v}
}

// Horizontal returns Left + Right.
func (t Thickness) Horizontal() float64 {
	return t.Left + t.Right
}

// Vertical returns Top + Bottom.
func (t Thickness) Vertical() float64 {
	return t.Top + t.Bottom
}

// Add returns the edge-wise sum of t and o.
func (t Thickness) Add(o Thickness) Thickness {
	return Thickness{
		Left:   t.Left + o.Left,
		Top:    t.Top + o.Top,
		Right:  t.Right + o.Right,
		Bottom: t.Bottom + o.Bottom,
	}
}

// IsZero reports whether all edges are zero.
func (t Thickness) IsZero() bool {
	return t == Thickness{}
}

func shrinkAxis(v, by float64) float64 {
	if IsUnconstrained(v) {
		return v
	}
	return math.Max(0, v-by)
}

func clampAxis(v, lo, hi float64) float64 {
	if IsSet(hi) && v > hi {
		v = hi
	}
	if IsSet(lo) && v < lo {
		v = lo
	}
	return v
}

// floatEqual compares two floats with epsilon tolerance. NaN equals NaN.
func floatEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) < epsilon
}
