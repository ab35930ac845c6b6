// Package config holds the tunables of the layout engine.
//
// A [Config] is passed explicitly to every engine component; there is no
// process-wide margin. The zero value is not useful, start from [Default]
// or [Load]:
//
//	cfg, err := config.Load("scout.toml")
//
// The TOML file may set any subset of the fields; missing fields keep their
// defaults:
//
//	margin = 8
//
//	[group]
//	min_size = 4
//	min_fill = 0.5
//	min_viability = 0.4
//	max_widgets = 100
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/scout/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultMargin is the spacing used by pack, expand and wrap.
	DefaultMargin = 8

	// DefaultMinGroupSize is the fewest widgets a table candidate may hold.
	DefaultMinGroupSize = 4

	// DefaultMinFill is the minimum widget-area to candidate-area ratio.
	DefaultMinFill = 0.5

	// DefaultMinViability is the occupied fraction (widgets plus unobstructed
	// gaps) a candidate must exceed before it is scored.
	DefaultMinViability = 0.40

	// DefaultMaxWidgets caps group inference. A jittered 10x10 form costs
	// about 1.4e7 containment checks and 7e6 redundancy comparisons; at 200
	// widgets both grow to about 1.2e8.
	DefaultMaxWidgets = 100
)

// Config configures the engine.
type Config struct {
	Margin int   `toml:"margin" json:"margin"`
	Group  Group `toml:"group" json:"group"`
}

// Group configures table-group inference.
type Group struct {
	MinSize      int     `toml:"min_size" json:"min_size"`
	MinFill      float64 `toml:"min_fill" json:"min_fill"`
	MinViability float64 `toml:"min_viability" json:"min_viability"`
	MaxWidgets   int     `toml:"max_widgets" json:"max_widgets"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Margin: DefaultMargin,
		Group: Group{
			MinSize:      DefaultMinGroupSize,
			MinFill:      DefaultMinFill,
			MinViability: DefaultMinViability,
			MaxWidgets:   DefaultMaxWidgets,
		},
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.Margin < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "margin must be >= 0, got %d", c.Margin)
	case c.Group.MinSize < 1:
		return errors.New(errors.ErrCodeInvalidConfig, "group.min_size must be >= 1, got %d", c.Group.MinSize)
	case c.Group.MinFill < 0 || c.Group.MinFill > 1:
		return errors.New(errors.ErrCodeInvalidConfig, "group.min_fill must be in [0,1], got %v", c.Group.MinFill)
	case c.Group.MinViability < 0 || c.Group.MinViability > 1:
		return errors.New(errors.ErrCodeInvalidConfig, "group.min_viability must be in [0,1], got %v", c.Group.MinViability)
	case c.Group.MaxWidgets < 1:
		return errors.New(errors.ErrCodeInvalidConfig, "group.max_widgets must be >= 1, got %d", c.Group.MaxWidgets)
	}
	return nil
}

// Parse decodes TOML on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads a TOML file. An empty path returns [Default].
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}
