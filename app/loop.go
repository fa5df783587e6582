package app

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/techfolio/core"
)

// eventBuffer bounds terminal events queued between frames
const eventBuffer = 256

// Run drives the page on screen until the user quits or the context ends
// The screen must already be initialized; it is not finalized here
func (a *App) Run(screen tcell.Screen) error {
	events := make(chan tcell.Event, eventBuffer)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.ctx.Done():
				return
			}
		}
	})

	a.Resize(screen.Size())
	a.Start()
	a.Frame()

	ticker := time.NewTicker(a.cfg.FrameInterval())
	defer ticker.Stop()

	for {
		select {
		case <-a.ctx.Done():
			return nil
		case ev := <-events:
			if !a.HandleEvent(ev) {
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
		case <-ticker.C:
			a.Frame()
		}
	}
}
