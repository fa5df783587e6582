package config

import (
	"github.com/lixenwraith/techfolio/engine"
	"github.com/lixenwraith/techfolio/parameter"
)

const (
	DefaultPath       = "techfolio.yml"
	DefaultOutboxPath = ".techfolio/outbox.db"
	DefaultLogDir     = "logs"
	OpenerNone        = "none"
)

// DefaultConfig returns a Config with the stock page behavior
func DefaultConfig() *Config {
	return &Config{
		FrameRate:        parameter.FrameRate,
		CellWidth:        parameter.CellWidth,
		CellHeight:       parameter.CellHeight,
		Effects:          engine.DefaultEffects(),
		Population:       engine.DefaultPopulation(),
		SpatialThreshold: parameter.SpatialThreshold,
		Page: PageConfig{
			ScrolledThreshold: parameter.NavScrolledThreshold,
			MobileBreakpoint:  parameter.MobileBreakpoint,
			SmoothScrollMS:    int(parameter.SmoothScrollDuration.Milliseconds()),
			ScrollStep:        parameter.ScrollStep,
		},
		OutboxPath: DefaultOutboxPath,
		Sound: SoundConfig{
			Enabled: false,
			Volume:  0.5,
		},
		Color: ColorAuto,
		Log: LogConfig{
			Level: "info",
			Dir:   DefaultLogDir,
		},
	}
}
