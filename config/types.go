package config

import (
	"github.com/lixenwraith/techfolio/engine"
)

// ColorMode selects how colors are sent to the terminal
type ColorMode string

const (
	ColorAuto      ColorMode = "auto"
	ColorTrueColor ColorMode = "truecolor"
	Color256       ColorMode = "256"
)

// Config is the top-level techfolio configuration, corresponding to techfolio.yml
type Config struct {
	FrameRate        int               `yaml:"frame_rate" koanf:"frame_rate"`
	CellWidth        int               `yaml:"cell_width" koanf:"cell_width"`
	CellHeight       int               `yaml:"cell_height" koanf:"cell_height"`
	Effects          engine.Effects    `yaml:"effects" koanf:"effects"`
	Population       engine.Population `yaml:"population" koanf:"population"`
	SpatialThreshold int               `yaml:"spatial_threshold" koanf:"spatial_threshold"`
	Page             PageConfig        `yaml:"page" koanf:"page"`
	Contact          ContactConfig     `yaml:"contact" koanf:"contact"`
	ContentDir       string            `yaml:"content_dir" koanf:"content_dir"`
	OutboxPath       string            `yaml:"outbox_path" koanf:"outbox_path"`
	Sound            SoundConfig       `yaml:"sound" koanf:"sound"`
	Color            ColorMode         `yaml:"color" koanf:"color"`
	Log              LogConfig         `yaml:"log" koanf:"log"`
}

// PageConfig holds scroll and navigation tunables, distances in surface units
type PageConfig struct {
	ScrolledThreshold float64 `yaml:"scrolled_threshold" koanf:"scrolled_threshold"`
	MobileBreakpoint  int     `yaml:"mobile_breakpoint" koanf:"mobile_breakpoint"`
	SmoothScrollMS    int     `yaml:"smooth_scroll_ms" koanf:"smooth_scroll_ms"`
	ScrollStep        float64 `yaml:"scroll_step" koanf:"scroll_step"`
}

// ContactConfig controls the contact form
type ContactConfig struct {
	// Recipient overrides the profile email
	Recipient string `yaml:"recipient" koanf:"recipient"`
	// Opener is the command that receives the mailto link; "none" disables launching
	Opener string `yaml:"opener" koanf:"opener"`
}

// SoundConfig controls interface cues
type SoundConfig struct {
	Enabled bool    `yaml:"enabled" koanf:"enabled"`
	Volume  float64 `yaml:"volume" koanf:"volume"`
}

// LogConfig controls the debug log file
type LogConfig struct {
	Level string `yaml:"level" koanf:"level"`
	Dir   string `yaml:"dir" koanf:"dir"`
}
