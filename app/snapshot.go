package app

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/lixenwraith/techfolio/config"
	"github.com/lixenwraith/techfolio/content"
	"github.com/lixenwraith/techfolio/engine"
)

// SnapshotOptions controls a headless render
type SnapshotOptions struct {
	Cols, Rows int
	// Frames is the number of frames stepped before the dump
	Frames int
	// Section scrolls to the named anchor before stepping when set
	Section string
	// ANSI adds 24-bit color escapes to the dump
	ANSI bool
	// Seed fixes the background layout
	Seed int64
	// Start is the simulated wall time of the first frame
	Start time.Time
}

// Snapshot renders the page without a terminal on a simulated clock and writes the last frame to w
func Snapshot(cfg *config.Config, doc *content.Document, opts SnapshotOptions, w io.Writer) error {
	if opts.Cols <= 0 || opts.Rows <= 0 {
		return fmt.Errorf("snapshot size %dx%d: dimensions must be positive", opts.Cols, opts.Rows)
	}
	if opts.Start.IsZero() {
		opts.Start = time.Now()
	}

	clock := engine.NewMockTimeProvider(opts.Start)
	a := New(context.Background(), cfg, doc, nil, Services{
		Clock: clock,
		Rand:  rand.New(rand.NewSource(opts.Seed)),
	})
	a.Resize(opts.Cols, opts.Rows)
	a.Start()

	if opts.Section != "" {
		i := a.page.SectionIndex(opts.Section)
		if i < 0 {
			return fmt.Errorf("snapshot section %q: not found", opts.Section)
		}
		a.page.NavigateTo(i)
	}

	interval := cfg.FrameInterval()
	for i := 0; i < max(opts.Frames, 1); i++ {
		clock.Advance(interval)
		a.Frame()
	}

	if err := a.orch.Frame().Dump(w, opts.ANSI); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
