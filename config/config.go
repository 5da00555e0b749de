// Package config loads the kvmap settings: logging, the marking palette, the
// defaults for new sessions and the exporter parameters.
package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/katalvlaran/karnaugh/kmap"
	"github.com/katalvlaran/karnaugh/logging"
)

// Config is the root configuration.
type Config struct {
	Log      logging.Config `mapstructure:"log"`
	Palette  []Color        `mapstructure:"palette"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Render   RenderConfig   `mapstructure:"render"`
	Latex    LatexConfig    `mapstructure:"latex"`
}

// Color names one palette entry. Hex is "#RRGGBB".
type Color struct {
	Name string `mapstructure:"name"`
	Hex  string `mapstructure:"hex"`
}

// DefaultsConfig seeds sessions that do not set these themselves.
type DefaultsConfig struct {
	Title  string   `mapstructure:"title"`
	Vars   []string `mapstructure:"vars"`
	Values string   `mapstructure:"values"`
}

// RenderConfig holds the PNG renderer parameters.
type RenderConfig struct {
	CellSize          int     `mapstructure:"cell_size"`
	LineWidth         float64 `mapstructure:"line_width"`
	SelectedLineWidth float64 `mapstructure:"selected_line_width"`
	Inset             float64 `mapstructure:"inset"`
}

// LatexConfig holds the LaTeX exporter parameters.
type LatexConfig struct {
	OvalShrink float64 `mapstructure:"oval_shrink"`
}

// PaletteNames returns the palette colour names in order.
func (c *Config) PaletteNames() []string {
	names := make([]string, len(c.Palette))
	for i, col := range c.Palette {
		names[i] = col.Name
	}
	return names
}

// PaletteHex returns the palette as a name → hex map.
func (c *Config) PaletteHex() map[string]string {
	m := make(map[string]string, len(c.Palette))
	for _, col := range c.Palette {
		m[col.Name] = col.Hex
	}
	return m
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected console|json", c.Log.Format)
	}

	if len(c.Palette) == 0 {
		return fmt.Errorf("config: palette must contain at least one colour")
	}
	seen := make(map[string]bool, len(c.Palette))
	for i, col := range c.Palette {
		if col.Name == "" {
			return fmt.Errorf("config: palette[%d].name is required", i)
		}
		if seen[col.Name] {
			return fmt.Errorf("config: palette[%d].name %q is duplicated", i, col.Name)
		}
		seen[col.Name] = true
		if !hexColor.MatchString(col.Hex) {
			return fmt.Errorf("config: palette[%d].hex %q is not #RRGGBB", i, col.Hex)
		}
	}

	if n := len(c.Defaults.Vars); n < 1 || n > kmap.MaxVars {
		return fmt.Errorf("config: defaults.vars has %d names; expected 1..%d", n, kmap.MaxVars)
	}
	if n := len([]rune(c.Defaults.Values)); n > 1<<len(c.Defaults.Vars) {
		return fmt.Errorf("config: defaults.values has %d characters; the map has %d cells", n, 1<<len(c.Defaults.Vars))
	}

	if c.Render.CellSize < 8 {
		return fmt.Errorf("config: render.cell_size must be ≥ 8, got %d", c.Render.CellSize)
	}
	if c.Render.LineWidth <= 0 || c.Render.SelectedLineWidth <= 0 {
		return fmt.Errorf("config: render line widths must be > 0, got %g and %g",
			c.Render.LineWidth, c.Render.SelectedLineWidth)
	}
	if c.Render.Inset < 0 || c.Render.Inset >= 0.5 {
		return fmt.Errorf("config: render.inset %g is out of range [0, 0.5)", c.Render.Inset)
	}
	if c.Latex.OvalShrink < 0 || c.Latex.OvalShrink >= 1 {
		return fmt.Errorf("config: latex.oval_shrink %g is out of range [0, 1)", c.Latex.OvalShrink)
	}
	return nil
}
