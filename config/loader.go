package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix of every setting.
const envPrefix = "KVMAP"

// newViper returns a viper with YAML input, KVMAP_ env overrides and "."
// mapped to "_", so "render.cell_size" reads KVMAP_RENDER_CELL_SIZE. Scalar
// keys get defaults so AutomaticEnv can see them during Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("defaults.title", DefaultTitle)
	v.SetDefault("defaults.vars", DefaultVars)
	v.SetDefault("defaults.values", DefaultValues)
	v.SetDefault("render.cell_size", DefaultCellSize)
	v.SetDefault("render.line_width", DefaultLineWidth)
	v.SetDefault("render.selected_line_width", DefaultSelectedLineWidth)
	v.SetDefault("render.inset", DefaultInset)
	v.SetDefault("latex.oval_shrink", DefaultOvalShrink)
	return v
}

// Load reads the YAML file at path, merges KVMAP_* overrides, applies
// defaults and validates.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", path, err)
	}
	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config from KVMAP_* variables and defaults only.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

// Watch calls onChange with the reloaded configuration each time the file
// at path changes. A change that fails to parse or validate is passed to
// onError, when non-nil, and the previous configuration stays in effect.
// Watch returns after the initial read; viper owns the watching goroutine.
func Watch(path string, onChange func(*Config), onError func(error)) error {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: failed to read config file %q: %w", path, err)
	}

	v.OnConfigChange(func(ev fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("config: reload after %s: %w", ev.Op, err))
			}
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
	return nil
}
