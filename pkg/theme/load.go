package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/nodeui/pkg/graphics"
)

type sheetDoc struct {
	Classes map[string]map[string]styleDoc `yaml:"classes" toml:"classes"`
}

type styleDoc struct {
	Background string     `yaml:"background" toml:"background"`
	Foreground string     `yaml:"foreground" toml:"foreground"`
	Border     *borderDoc `yaml:"border" toml:"border"`
}

type borderDoc struct {
	Width  float64 `yaml:"width" toml:"width"`
	Color  string  `yaml:"color" toml:"color"`
	Radius float64 `yaml:"radius" toml:"radius"`
}

// ParseYAML parses a YAML sheet.
func ParseYAML(data []byte) (*Sheet, error) {
	var doc sheetDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse theme yaml: %w", err)
	}
	return doc.sheet()
}

// ParseTOML parses a TOML sheet.
func ParseTOML(data []byte) (*Sheet, error) {
	var doc sheetDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse theme toml: %w", err)
	}
	return doc.sheet()
}

// LoadFile reads a sheet, choosing the format from the file extension
// (.yaml, .yml or .toml).
func LoadFile(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, fmt.Errorf("unsupported theme format %q", filepath.Ext(path))
	}
}

func (d sheetDoc) sheet() (*Sheet, error) {
	s := &Sheet{Classes: make(map[string]StateStyles, len(d.Classes))}
	for class, states := range d.Classes {
		styles := make(StateStyles, len(states))
		for name, sd := range states {
			state, err := ParseVisualState(name)
			if err != nil {
				return nil, fmt.Errorf("class %s: %w", class, err)
			}
			st, err := sd.style()
			if err != nil {
				return nil, fmt.Errorf("class %s, state %s: %w", class, name, err)
			}
			styles[state] = st
		}
		s.Classes[class] = styles
	}
	return s, nil
}

func (d styleDoc) style() (Style, error) {
	var st Style
	var err error
	if st.Background, err = optionalColor(d.Background); err != nil {
		return st, fmt.Errorf("background: %w", err)
	}
	if st.Foreground, err = optionalColor(d.Foreground); err != nil {
		return st, fmt.Errorf("foreground: %w", err)
	}
	if d.Border != nil {
		b := BorderSettings{Width: d.Border.Width, Radius: d.Border.Radius}
		if d.Border.Color != "" {
			if b.Color, err = graphics.ParseColor(d.Border.Color); err != nil {
				return st, fmt.Errorf("border: %w", err)
			}
		}
		st.Border = &b
	}
	return st, nil
}

func optionalColor(s string) (*graphics.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := graphics.ParseColor(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
