// Package config loads techfolio settings from YAML and TECHFOLIO_ environment overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/lixenwraith/techfolio/engine"
	"github.com/lixenwraith/techfolio/render"
)

// EnvPrefix starts every environment override; "__" separates nested keys
const EnvPrefix = "TECHFOLIO_"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Load reads configuration from the given YAML file, then overlays
// environment overrides (TECHFOLIO_EFFECTS__RAIN=true sets effects.rain)
// A missing file yields the defaults
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// envKey maps TECHFOLIO_PAGE__SCROLL_STEP to page.scroll_step
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validColors = map[ColorMode]bool{
	ColorAuto:      true,
	ColorTrueColor: true,
	Color256:       true,
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	switch {
	case c.FrameRate <= 0 || c.FrameRate > 240:
		return fmt.Errorf("%w: frame_rate %d must be in 1..240", ErrInvalid, c.FrameRate)
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return fmt.Errorf("%w: cell_width and cell_height must be positive", ErrInvalid)
	case c.SpatialThreshold < 0:
		return fmt.Errorf("%w: spatial_threshold must be non-negative", ErrInvalid)
	case c.Page.ScrolledThreshold < 0:
		return fmt.Errorf("%w: page.scrolled_threshold must be non-negative", ErrInvalid)
	case c.Page.MobileBreakpoint < 0:
		return fmt.Errorf("%w: page.mobile_breakpoint must be non-negative", ErrInvalid)
	case c.Page.SmoothScrollMS < 0:
		return fmt.Errorf("%w: page.smooth_scroll_ms must be non-negative", ErrInvalid)
	case c.Page.ScrollStep <= 0:
		return fmt.Errorf("%w: page.scroll_step must be positive", ErrInvalid)
	case c.Sound.Volume < 0 || c.Sound.Volume > 1:
		return fmt.Errorf("%w: sound.volume %.2f must be in 0..1", ErrInvalid, c.Sound.Volume)
	case !validColors[c.Color]:
		return fmt.Errorf("%w: color %q must be one of auto, truecolor, 256", ErrInvalid, c.Color)
	case !validLevels[strings.ToLower(c.Log.Level)]:
		return fmt.Errorf("%w: log.level %q must be one of debug, info, warn, error", ErrInvalid, c.Log.Level)
	}

	p := c.Population
	if p.Nodes < 0 || p.Rain < 0 || p.Snippets < 0 || p.GridPairs < 0 || p.Pulses < 0 {
		return fmt.Errorf("%w: population counts must be non-negative", ErrInvalid)
	}
	return nil
}

// World returns the simulation settings
func (c *Config) World() engine.WorldConfig {
	return engine.WorldConfig{
		Effects:          c.Effects,
		Population:       c.Population,
		SpatialThreshold: c.SpatialThreshold,
	}
}

// Surface returns the cell to surface unit mapping
func (c *Config) Surface() render.Surface {
	return render.Surface{CellWidth: float64(c.CellWidth), CellHeight: float64(c.CellHeight)}
}

// FrameInterval returns the frame driver period
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// SmoothScroll returns the anchor scroll duration
func (c *Config) SmoothScroll() time.Duration {
	return time.Duration(c.Page.SmoothScrollMS) * time.Millisecond
}
