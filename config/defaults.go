package config

import (
	"github.com/katalvlaran/karnaugh/latex"
	"github.com/katalvlaran/karnaugh/render"
	"github.com/katalvlaran/karnaugh/session"
)

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	DefaultTitle  = "f"
	DefaultValues = ""

	DefaultCellSize          = render.DefaultCellSize
	DefaultLineWidth         = render.DefaultLineWidth
	DefaultSelectedLineWidth = render.DefaultSelectedLineWidth
	DefaultInset             = render.DefaultInset

	DefaultOvalShrink = latex.DefaultOvalShrink
)

// DefaultVars are the variable names of a fresh session.
var DefaultVars = session.DefaultVars

// DefaultPalette is the session colour cycle paired with the renderer's hex
// values.
var DefaultPalette = defaultPalette()

func defaultPalette() []Color {
	out := make([]Color, len(session.DefaultPalette))
	for i, name := range session.DefaultPalette {
		out[i] = Color{Name: name, Hex: render.DefaultColors[name]}
	}
	return out
}

// ApplyDefaults fills zero-value fields. Inset and OvalShrink are left
// alone since zero is a meaningful value for both; the loader seeds them
// through viper defaults instead.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = append([]Color(nil), DefaultPalette...)
	}
	if cfg.Defaults.Title == "" {
		cfg.Defaults.Title = DefaultTitle
	}
	if len(cfg.Defaults.Vars) == 0 {
		cfg.Defaults.Vars = append([]string(nil), DefaultVars...)
	}
	if cfg.Render.CellSize == 0 {
		cfg.Render.CellSize = DefaultCellSize
	}
	if cfg.Render.LineWidth == 0 {
		cfg.Render.LineWidth = DefaultLineWidth
	}
	if cfg.Render.SelectedLineWidth == 0 {
		cfg.Render.SelectedLineWidth = DefaultSelectedLineWidth
	}
}

// Default returns a fully defaulted configuration.
func Default() *Config {
	cfg := &Config{
		Render: RenderConfig{Inset: DefaultInset},
		Latex:  LatexConfig{OvalShrink: DefaultOvalShrink},
	}
	ApplyDefaults(cfg)
	return cfg
}
