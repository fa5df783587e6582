// Package app wires configuration, content, simulation and page state into the frame driver
package app

import (
	"context"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/techfolio/audio"
	"github.com/lixenwraith/techfolio/config"
	"github.com/lixenwraith/techfolio/contact"
	"github.com/lixenwraith/techfolio/content"
	"github.com/lixenwraith/techfolio/engine"
	"github.com/lixenwraith/techfolio/outbox"
	"github.com/lixenwraith/techfolio/page"
	"github.com/lixenwraith/techfolio/parameter/visual"
	"github.com/lixenwraith/techfolio/render"
	"github.com/lixenwraith/techfolio/status"
	"github.com/lixenwraith/techfolio/typewriter"
)

// frameMsWeight smooths the frame time gauge over roughly the last twenty frames
const frameMsWeight = 0.05

// Services are the optional collaborators of an App; zero values get defaults
type Services struct {
	// Clock defaults to the monotonic wall clock
	Clock engine.TimeProvider
	// Rand defaults to a time-seeded source
	Rand *rand.Rand
	// Opener defaults to NopOpener
	Opener contact.Opener
	// Outbox records every delivered message when set
	Outbox *outbox.Store
	// Player plays interface cues when set
	Player *audio.Player
	// Stats defaults to a fresh registry
	Stats *status.Registry
}

// App owns every piece of frame state; all methods run on the frame loop goroutine
type App struct {
	cfg *config.Config
	doc *content.Document
	ctx context.Context

	clock   engine.TimeProvider
	sched   *engine.Scheduler
	world   *engine.World
	typer   *typewriter.Typewriter
	form    *contact.Form
	page    *page.Page
	orch    *render.RenderOrchestrator
	surface render.Surface

	opener contact.Opener
	store  *outbox.Store
	player *audio.Player

	stats       *status.Registry
	statFrames  *atomic.Int64
	statResizes *atomic.Int64
	statFrameMs *status.AtomicFloat

	cols, rows int
	frame      uint64
	buttons    tcell.ButtonMask
}

// New builds an App drawing finished frames to out; out may be nil for headless use
func New(ctx context.Context, cfg *config.Config, doc *content.Document, out render.Flusher, svc Services) *App {
	if svc.Clock == nil {
		svc.Clock = engine.NewMonotonicTimeProvider()
	}
	if svc.Rand == nil {
		svc.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if svc.Opener == nil {
		svc.Opener = contact.NopOpener{}
	}
	if svc.Stats == nil {
		svc.Stats = status.NewRegistry()
	}

	a := &App{
		cfg:     cfg,
		doc:     doc,
		ctx:     ctx,
		clock:   svc.Clock,
		surface: cfg.Surface(),
		opener:  svc.Opener,
		store:   svc.Outbox,
		player:  svc.Player,
		stats:   svc.Stats,
	}
	a.statFrames = a.stats.Ints.Get(status.Frames)
	a.statResizes = a.stats.Ints.Get(status.Resizes)
	a.statFrameMs = a.stats.Floats.Get(status.FrameMillis)

	a.sched = engine.NewScheduler(a.clock)
	a.world = engine.NewWorld(cfg.World(), svc.Rand)
	a.typer = typewriter.New(doc.Profile.Roles)

	recipient := cfg.Contact.Recipient
	if recipient == "" {
		recipient = doc.Profile.Email
	}
	a.form = contact.NewForm(ctx, recipient, a.sched, a.clock, contact.DelivererFunc(a.deliver))
	a.form.OnSent = func(contact.Message) { a.play(audio.CueSent) }

	opts := page.Options{
		ScrolledThreshold: cfg.Page.ScrolledThreshold,
		MobileBreakpoint:  cfg.Page.MobileBreakpoint,
		SmoothScroll:      cfg.SmoothScroll(),
		ScrollStep:        cfg.Page.ScrollStep,
	}
	a.page = page.New(doc, opts, a.surface, a.clock, a.sched, a.form, a.typer)

	a.orch = render.NewRenderOrchestrator(out, 0, 0, visual.RgbBackground)
	for _, def := range rendererList {
		a.orch.Register(def.factory(a), def.priority)
	}
	return a
}

// Page returns the page model
func (a *App) Page() *page.Page { return a.page }

// World returns the background simulation
func (a *App) World() *engine.World { return a.world }

// Form returns the contact form model
func (a *App) Form() *contact.Form { return a.form }

// Scheduler returns the task queue drained every frame
func (a *App) Scheduler() *engine.Scheduler { return a.sched }

// Orchestrator returns the render pipeline
func (a *App) Orchestrator() *render.RenderOrchestrator { return a.orch }

// Stats returns the session counters
func (a *App) Stats() *status.Registry { return a.stats }

// Size returns the viewport in cells
func (a *App) Size() (int, int) { return a.cols, a.rows }

// Start schedules the typewriter and the initial contact animation check
func (a *App) Start() {
	a.page.Start()
	slog.Info("techfolio started",
		"profile", a.doc.Profile.Name,
		"sections", len(a.doc.Sections),
		"effects", a.cfg.Effects)
}

// Resize reinitializes every entity collection for the new surface and relays out the page
func (a *App) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	a.cols, a.rows = cols, rows
	a.world.Reset(a.surface.Extent(cols, rows))
	a.page.Resize(cols, rows)
	a.orch.Resize(cols, rows)
	a.statResizes.Add(1)
	slog.Debug("viewport resized", "cols", cols, "rows", rows)
}

// Frame runs one tick: due timers, world step, scroll animation, render
func (a *App) Frame() {
	start := time.Now()
	a.sched.RunDue()
	a.world.Step()
	a.page.Update()

	a.frame++
	a.orch.RenderFrame(render.RenderContext{
		Time:    a.clock.Now(),
		Frame:   a.frame,
		Width:   a.cols,
		Height:  a.rows,
		Surface: a.surface,
	})
	a.statFrames.Add(1)
	a.statFrameMs.Smooth(float64(time.Since(start).Microseconds())/1000, frameMsWeight)
}

func (a *App) play(c audio.Cue) {
	if a.player != nil {
		a.player.Play(c)
	}
}
