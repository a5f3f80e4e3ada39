// Package config loads the optional nodeui.yaml used by the nodeui CLI.
package config

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/nodeui/pkg/errors"
	"github.com/go-drift/nodeui/pkg/graphics"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "nodeui.yaml"

// Config represents the optional nodeui.yaml configuration.
type Config struct {
	Theme             string    `yaml:"theme,omitempty"`
	LogLevel          string    `yaml:"log_level,omitempty"`
	ClientSize        []float64 `yaml:"client_size,omitempty"`
	BackendMinVersion string    `yaml:"backend_min_version,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root string
	// ThemePath is absolute, or empty when no theme is configured.
	ThemePath string
	LogLevel  slog.Level
	// ClientSize axes left NaN are sized to the scene's preferred size.
	ClientSize        graphics.Size
	BackendMinVersion string
}

// LoadOptional reads nodeui.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, errors.Wrap("config.LoadOptional", errors.KindConfig, fmt.Errorf("failed to read %s: %w", FileName, err))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap("config.LoadOptional", errors.KindConfig, fmt.Errorf("failed to parse %s: %w", FileName, err))
	}

	return &cfg, nil
}

// Resolve loads nodeui.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if s := strings.TrimSpace(cfg.LogLevel); s != "" {
		if err := level.UnmarshalText([]byte(s)); err != nil {
			return nil, errors.Wrap("config.Resolve", errors.KindConfig, fmt.Errorf("log_level: %w", err))
		}
	}

	size, err := clientSize(cfg.ClientSize)
	if err != nil {
		return nil, errors.Wrap("config.Resolve", errors.KindConfig, err)
	}

	themePath := strings.TrimSpace(cfg.Theme)
	if themePath != "" && !filepath.IsAbs(themePath) {
		themePath = filepath.Join(dir, themePath)
	}

	return &Resolved{
		Root:              dir,
		ThemePath:         themePath,
		LogLevel:          level,
		ClientSize:        size,
		BackendMinVersion: strings.TrimSpace(cfg.BackendMinVersion),
	}, nil
}

// FindProjectRoot walks up from the current directory to find nodeui.yaml.
// It returns the current directory when no ancestor has one.
func FindProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := wd; ; {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return wd, nil
		}
		dir = parent
	}
}

func clientSize(vals []float64) (graphics.Size, error) {
	switch len(vals) {
	case 0:
		return graphics.AutoSize(), nil
	case 2:
		if vals[0] < 0 || vals[1] < 0 {
			return graphics.Size{}, fmt.Errorf("client_size cannot be negative (got %v)", vals)
		}
		return graphics.Size{Width: vals[0], Height: vals[1]}, nil
	default:
		return graphics.Size{}, fmt.Errorf("client_size needs [width, height] (got %d values)", len(vals))
	}
}
