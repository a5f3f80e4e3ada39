package layout

import (
	"fmt"
	"strings"

	"github.com/go-drift/nodeui/pkg/graphics"
)

// Strategy selects how leftover (non-docked) children are measured and
// arranged.
type Strategy int

const (
	// StrategyBasic overlays children, each aligned within the whole rectangle.
	StrategyBasic Strategy = iota
	// StrategyVertical stacks children top to bottom.
	StrategyVertical
	// StrategyHorizontal stacks children left to right.
	StrategyHorizontal
	// StrategyDock docks children; leftovers are laid out as with StrategyBasic.
	StrategyDock
	// StrategyNone places docked children only. Leftovers keep the bounds
	// they were given and are measured as with StrategyBasic.
	StrategyNone
)

var strategyNames = map[Strategy]string{
	StrategyBasic:      "basic",
	StrategyVertical:   "vertical",
	StrategyHorizontal: "horizontal",
	StrategyDock:       "dock",
	StrategyNone:       "none",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy parses a strategy name as produced by String.
func ParseStrategy(s string) (Strategy, error) {
	for k, name := range strategyNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown layout strategy %q", s)
}

// Alignment positions an item along one axis of its slot.
// Stretch is the zero value.
type Alignment int

const (
	// AlignStretch fills the whole extent. On a stack's main axis, stretched
	// items share the space left by the others equally.
	AlignStretch Alignment = iota
	// AlignStart places the item at the left or top edge.
	AlignStart
	// AlignCenter centers the item. The offset is floor(slack/2), so an odd
	// remainder goes to the trailing side.
	AlignCenter
	// AlignEnd places the item at the right or bottom edge.
	AlignEnd
)

var alignmentNames = map[Alignment]string{
	AlignStretch: "stretch",
	AlignStart:   "start",
	AlignCenter:  "center",
	AlignEnd:     "end",
}

var alignmentAliases = map[string]Alignment{
	"left":   AlignStart,
	"top":    AlignStart,
	"right":  AlignEnd,
	"bottom": AlignEnd,
	"fill":   AlignStretch,
}

func (a Alignment) String() string {
	if name, ok := alignmentNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// ParseAlignment parses an alignment name. Edge names (left, top, right,
// bottom) and "fill" are accepted as aliases.
func ParseAlignment(s string) (Alignment, error) {
	s = strings.ToLower(s)
	for k, name := range alignmentNames {
		if s == name {
			return k, nil
		}
	}
	if a, ok := alignmentAliases[s]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("unknown alignment %q", s)
}

// Dock assigns an item to an edge of the remaining rectangle.
type Dock int

const (
	DockNone Dock = iota
	DockLeft
	DockTop
	DockRight
	DockBottom
	// DockFill occupies the whole remaining rectangle without shrinking it.
	DockFill
)

var dockNames = map[Dock]string{
	DockNone:   "none",
	DockLeft:   "left",
	DockTop:    "top",
	DockRight:  "right",
	DockBottom: "bottom",
	DockFill:   "fill",
}

func (d Dock) String() string {
	if name, ok := dockNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Dock(%d)", int(d))
}

// ParseDock parses a dock name. The empty string is DockNone.
func ParseDock(s string) (Dock, error) {
	if s == "" {
		return DockNone, nil
	}
	for k, name := range dockNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown dock %q", s)
}

// Item is a child taking part in layout.
type Item interface {
	Margin() graphics.Thickness
	HorizontalAlignment() Alignment
	VerticalAlignment() Alignment
	Dock() Dock

	// PreferredSize returns the item's size, already clamped to its own
	// limits, for an available size that excludes the item's margin.
	PreferredSize(available graphics.Size) graphics.Size

	// SetBounds positions the item. The rectangle excludes the margin.
	SetBounds(r graphics.Rect)
}
