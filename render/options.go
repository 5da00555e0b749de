package render

import (
	"fmt"
	"maps"
)

// DefaultColors maps the default palette names to RGB hex values.
var DefaultColors = map[string]string{
	"red":    "#FF0000",
	"green":  "#00FF00",
	"blue":   "#0000FF",
	"yellow": "#FFFF00",
	"purple": "#800080",
	"cyan":   "#00FFFF",
	"orange": "#FFA500",
	"pink":   "#FFC0CB",
	"brown":  "#A52A2A",
	"gray":   "#808080",
}

// fallbackColor is used for colour names missing from the colour table.
const fallbackColor = "#808080"

// Defaults for the drawing options.
const (
	DefaultCellSize          = 60
	DefaultLineWidth         = 2.0
	DefaultSelectedLineWidth = 4.0
	DefaultInset             = 0.1
)

type config struct {
	cell     float64
	colors   map[string]string
	line     float64
	selected float64
	inset    float64
}

func defaultConfig() config {
	return config{
		cell:     DefaultCellSize,
		colors:   DefaultColors,
		line:     DefaultLineWidth,
		selected: DefaultSelectedLineWidth,
		inset:    DefaultInset,
	}
}

// Option customizes PNG and Size.
type Option func(*config)

// WithCellSize sets the cell edge in pixels. Panics below 8.
func WithCellSize(px int) Option {
	if px < 8 {
		panic(fmt.Sprintf("render: WithCellSize(%d) below 8", px))
	}
	return func(c *config) { c.cell = float64(px) }
}

// WithColors adds or overrides colour name → hex entries.
func WithColors(colors map[string]string) Option {
	extra := maps.Clone(colors)
	return func(c *config) {
		merged := maps.Clone(c.colors)
		maps.Copy(merged, extra)
		c.colors = merged
	}
}

// WithLineWidths sets the marking line width and the width used for the
// selected marking. Panics unless both are positive.
func WithLineWidths(normal, selected float64) Option {
	if normal <= 0 || selected <= 0 {
		panic(fmt.Sprintf("render: WithLineWidths(%g, %g)", normal, selected))
	}
	return func(c *config) { c.line, c.selected = normal, selected }
}

// WithInset sets how far marking lines sit inside their cells, as a fraction
// of the cell size. Panics unless 0 ≤ f < 0.5.
func WithInset(f float64) Option {
	if f < 0 || f >= 0.5 {
		panic(fmt.Sprintf("render: WithInset(%g) outside [0,0.5)", f))
	}
	return func(c *config) { c.inset = f }
}
