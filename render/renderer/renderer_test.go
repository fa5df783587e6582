package renderer

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/techfolio/contact"
	"github.com/lixenwraith/techfolio/content"
	"github.com/lixenwraith/techfolio/engine"
	"github.com/lixenwraith/techfolio/page"
	"github.com/lixenwraith/techfolio/parameter"
	"github.com/lixenwraith/techfolio/parameter/visual"
	"github.com/lixenwraith/techfolio/render"
	"github.com/lixenwraith/techfolio/typewriter"
)

var testSurface = render.Surface{CellWidth: parameter.CellWidth, CellHeight: parameter.CellHeight}

func testContext(w, h int) render.RenderContext {
	return render.RenderContext{Time: time.Unix(0, 0), Width: w, Height: h, Surface: testSurface}
}

func testWorld(t *testing.T, w, h int) *engine.World {
	t.Helper()
	cfg := engine.DefaultWorldConfig()
	cfg.Population = engine.Population{}
	world := engine.NewWorld(cfg, rand.New(rand.NewSource(1)))
	width, height := testSurface.Extent(w, h)
	world.Reset(width, height)
	return world
}

func TestLineGlyph(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   rune
	}{
		{10, 0, '─'},
		{10, 3, '─'},
		{0, 5, '│'},
		{1, 6, '│'},
		{4, 4, '╲'},
		{-4, -4, '╲'},
		{4, -4, '╱'},
		{-3, 4, '╱'},
	}
	for _, tt := range tests {
		if got := lineGlyph(tt.dx, tt.dy); got != tt.want {
			t.Errorf("lineGlyph(%d, %d) = %q, want %q", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestDashOn(t *testing.T) {
	half := parameter.GridWrap / 2
	tests := []struct {
		pos  float64
		want bool
	}{
		{0, true},
		{half - 1, true},
		{half, false},
		{parameter.GridWrap - 1, false},
		{parameter.GridWrap, true},
		{parameter.GridWrap*3 + 1, true},
	}
	for _, tt := range tests {
		if got := dashOn(tt.pos); got != tt.want {
			t.Errorf("dashOn(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestNodeAndLinkRendering(t *testing.T) {
	world := testWorld(t, 40, 10)
	world.Nodes = []engine.Node{
		{X: 4, Y: 40, Radius: 2},  // cell (0, 2)
		{X: 84, Y: 40, Radius: 2}, // cell (10, 2)
	}
	buf := render.NewRenderBuffer(40, 10, visual.RgbBackground)
	ctx := testContext(40, 10)

	NewLinkRenderer(world).Render(ctx, buf)
	NewNodeRenderer(world).Render(ctx, buf)

	if buf.Get(0, 2).Rune != visual.NodeChar || buf.Get(10, 2).Rune != visual.NodeChar {
		t.Fatalf("node dots missing: %q %q", buf.Get(0, 2).Rune, buf.Get(10, 2).Rune)
	}
	for x := 1; x < 10; x++ {
		if buf.Get(x, 2).Rune != '─' {
			t.Errorf("link cell %d = %q", x, buf.Get(x, 2).Rune)
		}
	}
	if buf.Get(11, 2).Rune != 0 {
		t.Error("link drawn past its endpoint")
	}
}

func TestLinkSkippedBeyondThreshold(t *testing.T) {
	world := testWorld(t, 40, 10)
	world.Nodes = []engine.Node{{X: 4, Y: 40}, {X: 4 + parameter.LinkDistance, Y: 40}}
	buf := render.NewRenderBuffer(40, 10, visual.RgbBackground)
	NewLinkRenderer(world).Render(testContext(40, 10), buf)
	for x := 0; x < 40; x++ {
		if buf.Get(x, 2).Rune != 0 {
			t.Fatalf("unexpected glyph at %d", x)
		}
	}
}

func TestPulseRing(t *testing.T) {
	world := testWorld(t, 40, 20)
	// centered on cell (20, 10)
	world.Pulses = []engine.Pulse{{X: 164, Y: 168, Radius: 64, MaxRadius: 100, Opacity: 0.2}}
	buf := render.NewRenderBuffer(40, 20, visual.RgbBackground)
	NewPulseRenderer(world).Render(testContext(40, 20), buf)

	cx, cy := testSurface.ToCell(164, 168)
	if buf.Get(cx, cy).Rune != 0 {
		t.Error("ring center drawn")
	}
	rx, _ := testSurface.ToCell(164+64, 168)
	if buf.Get(rx, cy).Rune != visual.PulseChar {
		t.Errorf("ring missing at radius, got %q", buf.Get(rx, cy).Rune)
	}
}

func TestFadeLeavesTrail(t *testing.T) {
	buf := render.NewRenderBuffer(2, 1, visual.RgbBackground)
	buf.Set(0, 0, 'x', visual.RgbAccent, visual.RgbBackground, render.BlendReplace, 1, render.AttrNone)
	fade := NewFadeRenderer()

	fade.Render(testContext(2, 1), buf)
	if buf.Get(0, 0).Rune != 'x' {
		t.Fatal("one fade step erased the glyph")
	}
	for i := 0; i < 200; i++ {
		fade.Render(testContext(2, 1), buf)
	}
	if buf.Get(0, 0).Rune != 0 {
		t.Error("glyph never faded out")
	}
}

func TestInputLines(t *testing.T) {
	if got := inputLines("hello world", 8, 1); len(got) != 1 || got[0] != "o world" {
		t.Errorf("single line tail = %q", got)
	}
	got := inputLines("one\ntwo\nthree\nfour\nfive", 20, 3)
	if strings.Join(got, "|") != "three|four|five" {
		t.Errorf("multi line = %q", got)
	}
	if got := inputLines("", 10, 4); len(got) != 1 || got[0] != "" {
		t.Errorf("empty = %q", got)
	}
}

type pageFixture struct {
	page  *page.Page
	form  *contact.Form
	clock *engine.MockTimeProvider
	sched *engine.Scheduler
}

func newPageFixture(t *testing.T, cols, rows int) *pageFixture {
	t.Helper()
	doc, err := content.NewDefaultManager().Load()
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	clock := engine.NewMockTimeProvider(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	sched := engine.NewScheduler(clock)
	form := contact.NewForm(context.Background(), doc.Profile.Email, sched, clock, nil)
	tw := typewriter.New(doc.Profile.Roles)
	p := page.New(doc, page.DefaultOptions(), testSurface, clock, sched, form, tw)
	p.Resize(cols, rows)
	return &pageFixture{page: p, form: form, clock: clock, sched: sched}
}

func renderPage(f *pageFixture, cols, rows int) []string {
	buf := render.NewRenderBuffer(cols, rows, visual.RgbBackground)
	ctx := testContext(cols, rows)
	ctx.Time = f.clock.Now()
	NewSectionRenderer(f.page).Render(ctx, buf)
	NewHeroRenderer(f.page).Render(ctx, buf)
	NewCardRenderer(f.page).Render(ctx, buf)
	if r := NewFormRenderer(f.page); r.IsVisible() {
		r.Render(ctx, buf)
	}
	NewNavRenderer(f.page).Render(ctx, buf)
	if r := NewMenuRenderer(f.page); r.IsVisible() {
		r.Render(ctx, buf)
	}
	return buf.Text()
}

func TestHeroAndNav(t *testing.T) {
	f := newPageFixture(t, 100, 30)
	f.page.Start()
	f.clock.Advance(parameter.TypewriterStartDelay + 3*parameter.TypewriterTypeDelay)
	for f.sched.RunDue() > 0 {
	}

	lines := renderPage(f, 100, 30)
	if !strings.Contains(lines[0], "Pravat Patra") || !strings.Contains(lines[0], "Projects") {
		t.Errorf("navbar = %q", lines[0])
	}
	screen := strings.Join(lines, "\n")
	if !strings.Contains(screen, "PP") {
		t.Error("initials badge missing")
	}
	if !strings.Contains(screen, "Data S") {
		t.Errorf("typed role missing:\n%s", screen)
	}
	if !strings.Contains(screen, "[gh]") {
		t.Error("social icons missing")
	}
}

func TestCardsAndFormAppearOnScroll(t *testing.T) {
	f := newPageFixture(t, 100, 30)
	if screen := strings.Join(renderPage(f, 100, 30), "\n"); strings.Contains(screen, "Churn Forecasting") {
		t.Fatal("card drawn before reveal")
	}

	p := f.page
	p.NavigateTo(p.SectionIndex("projects"))
	f.clock.Advance(parameter.SmoothScrollDuration)
	p.Update()
	f.clock.Advance(parameter.RevealTransition)

	screen := strings.Join(renderPage(f, 100, 30), "\n")
	if !strings.Contains(screen, "Churn Forecasting") {
		t.Errorf("card title missing after scroll:\n%s", screen)
	}

	p.ScrollTo(p.MaxScroll(), false)
	f.clock.Advance(time.Second)
	f.sched.RunDue()
	f.clock.Advance(parameter.RevealTransition)
	screen = strings.Join(renderPage(f, 100, 30), "\n")
	for _, want := range []string{"Name", "Email", "Subject", "Message", parameter.ButtonTextIdle, "2030"} {
		if !strings.Contains(screen, want) {
			t.Errorf("%q missing at page bottom:\n%s", want, screen)
		}
	}
}

func TestMobileMenuOverlay(t *testing.T) {
	f := newPageFixture(t, 50, 20)
	lines := renderPage(f, 50, 20)
	if !strings.ContainsRune(lines[0], visual.HamburgerChar) {
		t.Fatalf("hamburger missing: %q", lines[0])
	}

	f.page.ToggleMenu()
	lines = renderPage(f, 50, 20)
	if !strings.Contains(lines[page.NavRows+1], "About") {
		t.Errorf("menu item missing: %q", lines[page.NavRows+1])
	}
}
