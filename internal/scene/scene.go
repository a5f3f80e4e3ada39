// Package scene loads YAML descriptions of a control tree and builds them
// onto a control.App.
package scene

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/nodeui/pkg/control"
	"github.com/go-drift/nodeui/pkg/errors"
	"github.com/go-drift/nodeui/pkg/graphics"
	"github.com/go-drift/nodeui/pkg/layout"
)

// Node describes one control node and its children.
type Node struct {
	Name  string `yaml:"name,omitempty"`
	Class string `yaml:"class,omitempty"`
	// Kind is the peer kind. Empty makes a lightweight node.
	Kind   string `yaml:"kind,omitempty"`
	Layout string `yaml:"layout,omitempty"`
	Dock   string `yaml:"dock,omitempty"`

	Width   *float64  `yaml:"width,omitempty"`
	Height  *float64  `yaml:"height,omitempty"`
	Min     *Pair     `yaml:"min,omitempty"`
	Max     *Pair     `yaml:"max,omitempty"`
	Margin  Thickness `yaml:"margin,omitempty"`
	Padding Thickness `yaml:"padding,omitempty"`
	HAlign  string    `yaml:"halign,omitempty"`
	VAlign  string    `yaml:"valign,omitempty"`

	Visible *bool  `yaml:"visible,omitempty"`
	Enabled *bool  `yaml:"enabled,omitempty"`
	Text    string `yaml:"text,omitempty"`

	// IgnoreLayout keeps the parent's layout from placing the node. Bounds
	// then gives its rectangle as [x, y, w, h].
	IgnoreLayout bool        `yaml:"ignoreLayout,omitempty"`
	Bounds       *[4]float64 `yaml:"bounds,omitempty"`

	Children []Node `yaml:"children,omitempty"`
}

// Pair is a width and height written as [w, h].
type Pair struct {
	Width  float64
	Height float64
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Pair) UnmarshalYAML(value *yaml.Node) error {
	var vals []float64
	if err := value.Decode(&vals); err != nil {
		return err
	}
	if len(vals) != 2 {
		return fmt.Errorf("line %d: size needs 2 values, got %d", value.Line, len(vals))
	}
	p.Width, p.Height = vals[0], vals[1]
	return nil
}

// Thickness is a scalar (all sides), [h, v], or [left, top, right, bottom].
type Thickness graphics.Thickness

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Thickness) UnmarshalYAML(value *yaml.Node) error {
	var vals []float64
	if value.Kind == yaml.ScalarNode {
		var v float64
		if err := value.Decode(&v); err != nil {
			return err
		}
		vals = []float64{v}
	} else if err := value.Decode(&vals); err != nil {
		return err
	}
	switch len(vals) {
	case 1:
		*t = Thickness(graphics.Uniform(vals[0]))
	case 2:
		*t = Thickness(graphics.Symmetric(vals[0], vals[1]))
	case 4:
		*t = Thickness{Left: vals[0], Top: vals[1], Right: vals[2], Bottom: vals[3]}
	default:
		return fmt.Errorf("line %d: thickness needs 1, 2 or 4 values, got %d", value.Line, len(vals))
	}
	return nil
}

// Parse decodes a scene document. Errors are config-kind UIErrors.
func Parse(data []byte) (*Node, error) {
	var root Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap("scene.Parse", errors.KindConfig, fmt.Errorf("failed to parse scene: %w", err))
	}
	return &root, nil
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap("scene.Load", errors.KindConfig, fmt.Errorf("failed to read scene: %w", err))
	}
	return Parse(data)
}

// ClassName returns the node class, defaulting to the capitalized kind, or
// "Group" for lightweight nodes.
func (n *Node) ClassName() string {
	if n.Class != "" {
		return n.Class
	}
	if n.Kind == "" {
		return "Group"
	}
	return strings.ToUpper(n.Kind[:1]) + n.Kind[1:]
}

// Build creates the control tree described by n. Layout is suspended on
// each node while it is assembled and no pass runs; call Arrange to lay the
// tree out.
func Build(app *control.App, n *Node) (*control.Node, error) {
	root, err := build(app, n, "root")
	if err != nil {
		return nil, errors.Wrap("scene.Build", errors.KindConfig, err)
	}
	return root, nil
}

// Arrange sizes root to size and lays the tree out. Unconstrained axes of
// size take the root's preferred size.
func Arrange(root *control.Node, size graphics.Size) {
	if graphics.IsUnconstrained(size.Width) || graphics.IsUnconstrained(size.Height) {
		pref := root.PreferredSizeLimited(size)
		if graphics.IsUnconstrained(size.Width) {
			size.Width = pref.Width
		}
		if graphics.IsUnconstrained(size.Height) {
			size.Height = pref.Height
		}
	}
	root.SetClientSize(size)
	root.PerformLayout(false)
}

func build(app *control.App, d *Node, path string) (*control.Node, error) {
	if d.Name != "" {
		path = d.Name
	}
	n := app.NewNode(d.ClassName(), d.Kind)
	n.SuspendLayout()
	if err := apply(n, d); err != nil {
		n.Dispose()
		return nil, fmt.Errorf("failed to build node %q: %w", path, err)
	}
	for i := range d.Children {
		c, err := build(app, &d.Children[i], fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			n.Dispose()
			return nil, err
		}
		n.AddChild(c)
	}
	n.ResumeLayout(false)
	return n, nil
}

func apply(n *control.Node, d *Node) error {
	n.SetName(d.Name)
	var errs []error
	if d.Layout != "" {
		s, err := layout.ParseStrategy(d.Layout)
		errs = append(errs, err)
		n.SetStrategy(s)
	}
	dock, err := layout.ParseDock(d.Dock)
	errs = append(errs, err)
	n.SetDock(dock)
	if d.HAlign != "" {
		a, err := layout.ParseAlignment(d.HAlign)
		errs = append(errs, err)
		n.SetHorizontalAlignment(a)
	}
	if d.VAlign != "" {
		a, err := layout.ParseAlignment(d.VAlign)
		errs = append(errs, err)
		n.SetVerticalAlignment(a)
	}
	if err := stderrors.Join(errs...); err != nil {
		return err
	}

	suggested := graphics.AutoSize()
	if d.Width != nil {
		suggested.Width = *d.Width
	}
	if d.Height != nil {
		suggested.Height = *d.Height
	}
	n.SetSuggestedSize(suggested)
	if d.Min != nil {
		n.SetMinimumSize(graphics.Size{Width: d.Min.Width, Height: d.Min.Height})
	}
	if d.Max != nil {
		n.SetMaximumSize(graphics.Size{Width: d.Max.Width, Height: d.Max.Height})
	}
	n.SetMargin(graphics.Thickness(d.Margin))
	n.SetPadding(graphics.Thickness(d.Padding))
	if d.Visible != nil {
		n.SetVisible(*d.Visible)
	}
	if d.Enabled != nil {
		n.SetEnabled(*d.Enabled)
	}
	n.SetIgnoreLayout(d.IgnoreLayout)
	if b := d.Bounds; b != nil {
		n.SetBounds(graphics.Rect{X: b[0], Y: b[1], Width: b[2], Height: b[3]})
	}
	n.SetText(d.Text)
	return nil
}

// Walk calls fn for n and its descendants in pre-order with their depth.
func Walk(n *control.Node, fn func(n *control.Node, depth int)) {
	walk(n, 0, fn)
}

func walk(n *control.Node, depth int, fn func(*control.Node, int)) {
	fn(n, depth)
	for _, c := range n.Children() {
		walk(c, depth+1, fn)
	}
}
