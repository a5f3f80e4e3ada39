package theme

import (
	"fmt"
	"strings"

	"github.com/go-drift/nodeui/pkg/graphics"
)

// VisualState is the interaction state a node is drawn in.
type VisualState int

const (
	StateNormal VisualState = iota
	StateHovered
	StatePressed
	StateFocused
	StateDisabled
)

var stateNames = [...]string{
	StateNormal:   "normal",
	StateHovered:  "hovered",
	StatePressed:  "pressed",
	StateFocused:  "focused",
	StateDisabled: "disabled",
}

func (s VisualState) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("VisualState(%d)", int(s))
}

// ParseVisualState parses a state name as produced by String.
func ParseVisualState(s string) (VisualState, error) {
	for i, name := range stateNames {
		if strings.EqualFold(s, name) {
			return VisualState(i), nil
		}
	}
	return 0, fmt.Errorf("unknown visual state %q", s)
}

// BorderSettings describes a node border.
type BorderSettings struct {
	Width  float64
	Color  graphics.Color
	Radius float64
}

// Resolver supplies per-state overrides. The boolean result reports whether
// the property is set for the state (or its fallback).
type Resolver interface {
	Background(state VisualState) (graphics.Color, bool)
	BorderSettings(state VisualState) (BorderSettings, bool)
	Foreground(state VisualState) (graphics.Color, bool)
}

// Style is one state's overrides. Nil fields are unset.
type Style struct {
	Background *graphics.Color
	Foreground *graphics.Color
	Border     *BorderSettings
}

// StateStyles is a Resolver backed by a map of per-state styles. Unset
// properties fall back to StateNormal.
type StateStyles map[VisualState]Style

func (s StateStyles) lookup(state VisualState, get func(Style) bool) bool {
	if st, ok := s[state]; ok && get(st) {
		return true
	}
	if state == StateNormal {
		return false
	}
	st, ok := s[StateNormal]
	return ok && get(st)
}

// Background returns the background for state.
func (s StateStyles) Background(state VisualState) (graphics.Color, bool) {
	var c graphics.Color
	ok := s.lookup(state, func(st Style) bool {
		if st.Background == nil {
			return false
		}
		c = *st.Background
		return true
	})
	return c, ok
}

// Foreground returns the foreground for state.
func (s StateStyles) Foreground(state VisualState) (graphics.Color, bool) {
	var c graphics.Color
	ok := s.lookup(state, func(st Style) bool {
		if st.Foreground == nil {
			return false
		}
		c = *st.Foreground
		return true
	})
	return c, ok
}

// BorderSettings returns the border for state.
func (s StateStyles) BorderSettings(state VisualState) (BorderSettings, bool) {
	var b BorderSettings
	ok := s.lookup(state, func(st Style) bool {
		if st.Border == nil {
			return false
		}
		b = *st.Border
		return true
	})
	return b, ok
}

// Sheet maps node classes to their state styles.
type Sheet struct {
	Classes map[string]StateStyles
}

// For returns the resolver for class, or nil when the sheet has none.
func (s *Sheet) For(class string) Resolver {
	if s == nil {
		return nil
	}
	styles, ok := s.Classes[class]
	if !ok {
		return nil
	}
	return styles
}
