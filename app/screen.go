package app

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/techfolio/config"
	"github.com/lixenwraith/techfolio/core"
	"github.com/lixenwraith/techfolio/parameter/visual"
	"github.com/lixenwraith/techfolio/render"
)

// NewScreen opens the terminal in the configured color mode with mouse reporting
// and registers it with the crash handler
func NewScreen(mode config.ColorMode) (tcell.Screen, error) {
	switch mode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		if os.Getenv("COLORTERM") == "" {
			os.Setenv("COLORTERM", "truecolor")
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	InitScreen(screen)
	return screen, nil
}

// InitScreen applies the page style and input modes to an initialized screen
func InitScreen(screen tcell.Screen) {
	bg := render.RGBToTcell(visual.RgbBackground)
	screen.SetStyle(tcell.StyleDefault.Background(bg).Foreground(render.RGBToTcell(visual.RgbText)))
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()
	core.SetCrashTerminal(screen)
}
