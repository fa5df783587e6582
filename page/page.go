// Package page holds the scroll-reactive state of the portfolio page
package page

import (
	"log/slog"
	"math"
	"time"

	"github.com/lixenwraith/techfolio/contact"
	"github.com/lixenwraith/techfolio/content"
	"github.com/lixenwraith/techfolio/engine"
	"github.com/lixenwraith/techfolio/parameter"
	"github.com/lixenwraith/techfolio/render"
	"github.com/lixenwraith/techfolio/typewriter"
	"github.com/lixenwraith/techfolio/vmath"
)

// Options are the page tunables, distances in surface units
type Options struct {
	ScrolledThreshold float64
	MobileBreakpoint  int
	SmoothScroll      time.Duration
	ScrollStep        float64
}

// DefaultOptions returns the stock page behavior
func DefaultOptions() Options {
	return Options{
		ScrolledThreshold: parameter.NavScrolledThreshold,
		MobileBreakpoint:  parameter.MobileBreakpoint,
		SmoothScroll:      parameter.SmoothScrollDuration,
		ScrollStep:        parameter.ScrollStep,
	}
}

// Viewport used until the first Resize
const (
	defaultCols = 80
	defaultRows = 24
)

type scrollAnim struct {
	from, to float64
	start    time.Time
}

// Page is the portfolio page state; owned by the frame loop goroutine
type Page struct {
	doc     *content.Document
	opts    Options
	surface render.Surface
	clock   engine.TimeProvider
	sched   *engine.Scheduler
	form    *contact.Form
	typer   *typewriter.Typewriter

	layout *Layout
	scroll float64
	anim   *scrollAnim

	navScrolled     bool
	active          int
	menuOpen        bool
	textRevealed    []bool
	cardRevealed    []bool
	cardRevealedAt  []time.Time
	contactAnimated bool
	contactCheck    engine.TaskID
	hover           int
}

// New creates a page over doc; form and typer may be nil
func New(doc *content.Document, opts Options, surface render.Surface, clock engine.TimeProvider,
	sched *engine.Scheduler, form *contact.Form, typer *typewriter.Typewriter) *Page {
	p := &Page{
		doc:     doc,
		opts:    opts,
		surface: surface,
		clock:   clock,
		sched:   sched,
		form:    form,
		typer:   typer,
		hover:   -1,
	}
	p.Resize(defaultCols, defaultRows)
	return p
}

func (p *Page) Document() *content.Document { return p.doc }

func (p *Page) Layout() *Layout { return p.layout }

func (p *Page) Surface() render.Surface { return p.surface }

// Form returns the contact form, nil when the page has no contact section
func (p *Page) Form() *contact.Form {
	if p.layout.ContactSection < 0 {
		return nil
	}
	return p.form
}

func (p *Page) Typewriter() *typewriter.Typewriter { return p.typer }

// Start schedules the typewriter and the first contact animation check
func (p *Page) Start() {
	if p.typer != nil {
		p.typer.Start(p.sched)
	}
	p.sched.After(parameter.InitialContactCheckDelay, func() { p.CheckContactAnimation() })
}

// Resize lays the page out for a new viewport and re-evaluates scroll state
// Reveal state survives when the element counts are unchanged
func (p *Page) Resize(cols, rows int) {
	p.layout = Build(p.doc, cols, rows, p.opts.MobileBreakpoint)
	if !p.layout.Mobile {
		p.menuOpen = false
	}
	if len(p.textRevealed) != len(p.layout.Texts) {
		p.textRevealed = make([]bool, len(p.layout.Texts))
	}
	if len(p.cardRevealed) != len(p.layout.Cards) {
		p.cardRevealed = make([]bool, len(p.layout.Cards))
		p.cardRevealedAt = make([]time.Time, len(p.layout.Cards))
	}
	p.anim = nil
	p.setScroll(p.scroll)
}

// ViewportHeight returns the viewport height in surface units
func (p *Page) ViewportHeight() float64 {
	return p.surface.Units(p.layout.Rows)
}

// MaxScroll returns the largest scroll offset in surface units
func (p *Page) MaxScroll() float64 {
	return p.surface.Units(p.layout.MaxScrollRows())
}

// Scroll returns the scroll offset in surface units
func (p *Page) Scroll() float64 { return p.scroll }

// ScrollRows returns the scroll offset snapped to whole rows
func (p *Page) ScrollRows() int {
	return int(math.Round(p.scroll / p.surface.CellHeight))
}

// ScreenRow maps a document row to a screen row
func (p *Page) ScreenRow(docRow int) int {
	return docRow - p.ScrollRows()
}

// ScrollBy moves the page by delta units, cancelling any smooth scroll
func (p *Page) ScrollBy(delta float64) {
	p.anim = nil
	p.setScroll(p.scroll + delta)
}

// ScrollStep scrolls by n configured steps
func (p *Page) ScrollStep(n int) {
	p.ScrollBy(float64(n) * p.opts.ScrollStep)
}

// ScrollTo moves to y, easing over the smooth scroll duration when smooth is set
func (p *Page) ScrollTo(y float64, smooth bool) {
	y = vmath.Clamp(y, 0, p.MaxScroll())
	if !smooth || p.opts.SmoothScroll <= 0 || y == p.scroll {
		p.anim = nil
		p.setScroll(y)
		return
	}
	p.anim = &scrollAnim{from: p.scroll, to: y, start: p.clock.Now()}
}

// Scrolling reports whether a smooth scroll is in progress
func (p *Page) Scrolling() bool { return p.anim != nil }

// Update advances a smooth scroll to the current time
func (p *Page) Update() {
	if p.anim == nil {
		return
	}
	t := float64(p.clock.Now().Sub(p.anim.start)) / float64(p.opts.SmoothScroll)
	y := vmath.Lerp(p.anim.from, p.anim.to, vmath.EaseOutCubic(t))
	if t >= 1 {
		y = p.anim.to
		p.anim = nil
	}
	p.setScroll(y)
}

func (p *Page) setScroll(y float64) {
	p.scroll = vmath.Clamp(y, 0, p.MaxScroll())
	p.onScroll()
}

// onScroll re-evaluates every scroll-dependent state, like a scroll event handler
func (p *Page) onScroll() {
	p.navScrolled = p.scroll > p.opts.ScrolledThreshold

	p.active = 0
	for i, s := range p.layout.Sections {
		if p.scroll >= p.surface.Units(s.Row)-parameter.NavActiveOffset {
			p.active = i
		}
	}

	limit := p.ViewportHeight() - parameter.RevealMargin
	for i, t := range p.layout.Texts {
		p.textRevealed[i] = p.surface.Units(t.Row)-p.scroll < limit
	}

	now := p.clock.Now()
	for i, c := range p.layout.Cards {
		if p.cardRevealed[i] {
			continue
		}
		if CardVisible(p.surface.Units(c.Row)-p.scroll, p.surface.Units(c.Height), limit) {
			p.cardRevealed[i] = true
			p.cardRevealedAt[i] = now
		}
	}

	p.CheckContactAnimation()
}

// CardVisible reports whether at least CardVisibleFraction of a card spanning
// [top, top+height) relative to the viewport lies inside [0, limit)
func CardVisible(top, height, limit float64) bool {
	if height <= 0 {
		return false
	}
	visible := math.Min(top+height, limit) - math.Max(top, 0)
	return visible >= parameter.CardVisibleFraction*height
}

// NavScrolled reports whether the navbar shows its scrolled style
func (p *Page) NavScrolled() bool { return p.navScrolled }

// ActiveSection returns the index of the highlighted section
func (p *Page) ActiveSection() int { return p.active }

// TextRevealed reports whether text element i is revealed
func (p *Page) TextRevealed(i int) bool {
	return i >= 0 && i < len(p.textRevealed) && p.textRevealed[i]
}

// CardProgress returns the eased reveal progress of card i, 0 while hidden
func (p *Page) CardProgress(i int) float64 {
	if i < 0 || i >= len(p.cardRevealed) || !p.cardRevealed[i] {
		return 0
	}
	t := float64(p.clock.Now().Sub(p.cardRevealedAt[i])) / float64(parameter.RevealTransition)
	return vmath.EaseOutCubic(t)
}

// CheckContactAnimation starts the form field cascade the first time the contact
// section top clears the reveal margin. Returns true only on the call that starts it
func (p *Page) CheckContactAnimation() bool {
	if p.contactAnimated || p.form == nil || p.layout.ContactSection < 0 {
		return false
	}
	top := p.surface.Units(p.layout.Sections[p.layout.ContactSection].Row) - p.scroll
	if top >= p.ViewportHeight()-parameter.RevealMargin {
		return false
	}
	p.contactAnimated = true
	slog.Debug("animating contact form", "scroll", p.scroll)
	p.form.RevealCascade()
	return true
}

// ContactAnimated reports whether the form cascade has been started
func (p *Page) ContactAnimated() bool { return p.contactAnimated }

// MenuOpen reports whether the mobile menu is expanded
func (p *Page) MenuOpen() bool { return p.menuOpen }

// ToggleMenu opens or closes the mobile menu; no-op on wide layouts
func (p *Page) ToggleMenu() {
	if !p.layout.Mobile {
		p.menuOpen = false
		return
	}
	p.menuOpen = !p.menuOpen
}

func (p *Page) CloseMenu() { p.menuOpen = false }

// NavigateTo closes the menu and smooth-scrolls to section i
// Navigating to the contact section re-checks the form animation once the scroll settles
func (p *Page) NavigateTo(i int) {
	if i < 0 || i >= len(p.layout.Sections) {
		return
	}
	p.menuOpen = false
	p.ScrollTo(p.surface.Units(p.layout.Sections[i].Row), true)

	if i == p.layout.ContactSection {
		p.sched.Cancel(p.contactCheck)
		p.contactCheck = p.sched.After(parameter.ContactLinkCheckDelay, func() { p.CheckContactAnimation() })
	}
}

// SectionIndex returns the index of the section with the given anchor
func (p *Page) SectionIndex(id string) int {
	for i, s := range p.layout.Sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// HoveredSocial returns the social icon under the pointer, -1 for none
func (p *Page) HoveredSocial() int { return p.hover }

// Hover tracks the pointer for social icon lift; returns true when the hovered icon changed
func (p *Page) Hover(col, row int) bool {
	next := -1
	if t := p.HitTest(col, row); t.Kind == TargetSocial {
		next = t.Index
	}
	changed := next != p.hover
	p.hover = next
	return changed
}

// FooterText returns the footer with the current year
func (p *Page) FooterText() string {
	return p.doc.Profile.FooterText(p.clock.Now().Year())
}
