package page

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/techfolio/contact"
	"github.com/lixenwraith/techfolio/content"
	"github.com/lixenwraith/techfolio/engine"
	"github.com/lixenwraith/techfolio/parameter"
	"github.com/lixenwraith/techfolio/render"
)

var testSurface = render.Surface{CellWidth: parameter.CellWidth, CellHeight: parameter.CellHeight}

func testDocument(withContact bool) *content.Document {
	para := content.Block{Kind: content.BlockParagraph, Lines: []string{strings.Repeat("lorem ipsum dolor ", 12)}}
	card := func(title string) content.Block {
		return content.Block{Kind: content.BlockCard, Title: title, Lines: []string{"A short description of the work."}}
	}

	doc := &content.Document{
		Profile: content.Profile{
			Name:    "Test User",
			Roles:   []string{"Scientist"},
			Footer:  "© 2025 Test User",
			Socials: []content.Social{{Label: "GitHub", Icon: "gh"}, {Label: "Mail", Icon: "@"}},
		},
		Sections: []content.Section{
			{ID: "about", Title: "About", Blocks: []content.Block{para, para, para, para}},
			{ID: "projects", Title: "Projects", Blocks: []content.Block{card("One"), card("Two"), card("Three"), card("Four")}},
			{ID: "blog", Title: "Blog", Blocks: []content.Block{para, card("Post")}},
		},
	}
	if withContact {
		doc.Sections = append(doc.Sections, content.Section{
			ID: "contact", Title: "Contact", Blocks: []content.Block{para},
		})
	}
	return doc
}

type fixture struct {
	page  *Page
	form  *contact.Form
	sched *engine.Scheduler
	clock *engine.MockTimeProvider
}

func newFixture(t *testing.T, cols, rows int, withContact bool) *fixture {
	t.Helper()
	clock := engine.NewMockTimeProvider(time.Date(2031, 6, 1, 12, 0, 0, 0, time.UTC))
	sched := engine.NewScheduler(clock)
	form := contact.NewForm(context.Background(), "me@example.com", sched, clock, nil)
	p := New(testDocument(withContact), DefaultOptions(), testSurface, clock, sched, form, nil)
	p.Resize(cols, rows)
	return &fixture{page: p, form: form, sched: sched, clock: clock}
}

func (f *fixture) advance(d time.Duration) {
	f.clock.Advance(d)
	f.sched.RunDue()
	f.page.Update()
}

func TestLayoutSectionsContiguous(t *testing.T) {
	f := newFixture(t, 100, 24, true)
	l := f.page.Layout()

	if l.Sections[0].ID != HomeID || l.Sections[0].Row != 0 || l.Sections[0].Height < 24 {
		t.Fatalf("hero = %+v", l.Sections[0])
	}
	ids := []string{HomeID, "about", "projects", "blog", "contact"}
	if len(l.Sections) != len(ids) {
		t.Fatalf("sections = %d", len(l.Sections))
	}
	for i := range ids {
		if l.Sections[i].ID != ids[i] {
			t.Errorf("section %d = %q, want %q", i, l.Sections[i].ID, ids[i])
		}
		if i > 0 && l.Sections[i].Row != l.Sections[i-1].Row+l.Sections[i-1].Height {
			t.Errorf("section %d not contiguous", i)
		}
	}
	if l.ContactSection != 4 || l.Form == nil {
		t.Fatalf("contact = %d form = %v", l.ContactSection, l.Form)
	}
	if l.Form.ButtonRow <= l.Form.Fields[contact.FieldMessage].Row {
		t.Error("button above message field")
	}
	if l.Height <= l.FooterRow {
		t.Errorf("height %d does not cover footer row %d", l.Height, l.FooterRow)
	}
}

func TestLayoutCardColumns(t *testing.T) {
	wide := newFixture(t, 100, 24, false).page.Layout()
	if wide.Cards[0].Row != wide.Cards[1].Row || wide.Cards[0].Col == wide.Cards[1].Col {
		t.Errorf("wide layout should pair cards: %+v %+v", wide.Cards[0], wide.Cards[1])
	}
	if wide.Cards[2].Row <= wide.Cards[0].Row {
		t.Error("third card should start a new row")
	}

	narrow := newFixture(t, 50, 24, false).page.Layout()
	if narrow.Cards[1].Row <= narrow.Cards[0].Row {
		t.Error("narrow layout should stack cards")
	}
	for _, c := range narrow.Cards {
		if c.Col+c.Width > 50 {
			t.Errorf("card overflows viewport: %+v", c)
		}
	}
}

func TestLayoutMobileNav(t *testing.T) {
	wide := newFixture(t, 120, 24, true).page.Layout()
	if wide.Mobile || wide.Hamburger != -1 {
		t.Errorf("wide layout collapsed: mobile=%v", wide.Mobile)
	}
	last := wide.Nav[len(wide.Nav)-1]
	if last.Col+last.Width > 120 {
		t.Error("nav overflows")
	}

	narrow := newFixture(t, parameter.MobileBreakpoint-1, 24, true).page.Layout()
	if !narrow.Mobile || narrow.Hamburger < 0 {
		t.Errorf("narrow layout not collapsed")
	}
}

func TestNavScrolledThreshold(t *testing.T) {
	f := newFixture(t, 100, 24, true)
	p := f.page

	p.ScrollTo(parameter.NavScrolledThreshold, false)
	if p.NavScrolled() {
		t.Error("scrolled at exactly the threshold")
	}
	p.ScrollBy(1)
	if !p.NavScrolled() {
		t.Error("not scrolled past the threshold")
	}
	p.ScrollTo(0, false)
	if p.NavScrolled() {
		t.Error("still scrolled at top")
	}
}

func TestActiveSection(t *testing.T) {
	f := newFixture(t, 100, 24, true)
	p := f.page
	l := p.Layout()

	if p.ActiveSection() != 0 {
		t.Fatalf("active at top = %d", p.ActiveSection())
	}
	for i := 1; i < len(l.Sections); i++ {
		edge := testSurface.Units(l.Sections[i].Row) - parameter.NavActiveOffset
		if edge > p.MaxScroll() {
			continue
		}
		p.ScrollTo(edge-1, false)
		if p.ActiveSection() != i-1 {
			t.Errorf("just before section %d: active = %d", i, p.ActiveSection())
		}
		p.ScrollTo(edge, false)
		if p.ActiveSection() != i {
			t.Errorf("at section %d edge: active = %d", i, p.ActiveSection())
		}
	}
}

func TestTextRevealIsTwoWay(t *testing.T) {
	f := newFixture(t, 100, 24, true)
	p := f.page
	l := p.Layout()

	idx := -1
	for i, tb := range l.Texts {
		if testSurface.Units(tb.Row) >= p.ViewportHeight() {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.Fatal("no text below the fold")
	}
	if p.TextRevealed(idx) {
		t.Fatal("below-fold text revealed at top")
	}

	top := testSurface.Units(l.Texts[idx].Row)
	p.ScrollTo(top-p.ViewportHeight()+parameter.RevealMargin+1, false)
	if !p.TextRevealed(idx) {
		t.Error("text not revealed past the margin")
	}
	p.ScrollTo(top-p.ViewportHeight()+parameter.RevealMargin, false)
	if p.TextRevealed(idx) {
		t.Error("text revealed at exactly the margin")
	}
	p.ScrollTo(0, false)
	if p.TextRevealed(idx) {
		t.Error("text still revealed after scrolling back")
	}
}

func TestCardsRevealOnce(t *testing.T) {
	f := newFixture(t, 100, 24, true)
	p := f.page
	card := p.Layout().Cards[0]

	if p.CardProgress(0) != 0 {
		t.Fatal("card revealed at top")
	}
	p.ScrollTo(testSurface.Units(card.Row), false)
	f.advance(parameter.RevealTransition / 2)
	mid := p.CardProgress(0)
	if mid <= 0 || mid >= 1 {
		t.Errorf("mid transition progress = %v", mid)
	}

	p.ScrollTo(0, false)
	f.advance(parameter.RevealTransition)
	if p.CardProgress(0) != 1 {
		t.Errorf("card hidden again after scrolling away: %v", p.CardProgress(0))
	}
}

func TestCardVisible(t *testing.T) {
	tests := []struct {
		name               string
		top, height, limit float64
		want               bool
	}{
		{"fully inside", 10, 100, 300, true},
		{"below limit", 300, 100, 300, false},
		{"ten percent in", 290, 100, 300, true},
		{"under ten percent", 291, 100, 300, false},
		{"above viewport", -200, 100, 300, false},
		{"clipped top", -50, 100, 300, true},
		{"zero height", 10, 0, 300, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CardVisible(tt.top, tt.height, tt.limit); got != tt.want {
				t.Errorf("CardVisible(%v, %v, %v) = %v, want %v", tt.top, tt.height, tt.limit, got, tt.want)
			}
		})
	}
}

func TestContactAnimationLatch(t *testing.T) {
	f := newFixture(t, 100, 24, true)
	p := f.page

	if p.ContactAnimated() || f.sched.Len() != 0 {
		t.Fatalf("animated at top: %v, %d tasks", p.ContactAnimated(), f.sched.Len())
	}

	p.ScrollTo(p.MaxScroll(), false)
	if !p.ContactAnimated() {
		t.Fatal("contact not animated at the bottom")
	}
	pending := f.sched.Len()
	if pending != contact.NumFields+1 {
		t.Fatalf("pending reveals = %d", pending)
	}

	p.ScrollBy(-10)
	p.ScrollBy(10)
	if p.CheckContactAnimation() {
		t.Error("latch fired twice")
	}
	if f.sched.Len() != pending {
		t.Errorf("cascade rescheduled: %d tasks", f.sched.Len())
	}

	f.advance(parameter.FieldRevealStep * time.Duration(contact.NumFields+1))
	for i := 0; i <= contact.NumFields; i++ {
		if !f.form.Revealed(i) {
			t.Errorf("slot %d not revealed", i)
		}
	}
}

func TestInitialContactCheck(t *testing.T) {
	f := newFixture(t, 100, 24, true)
	f.page.Start()
	if f.sched.Len() != 1 {
		t.Fatalf("pending after start = %d, want the contact check", f.sched.Len())
	}
	f.advance(parameter.InitialContactCheckDelay)
	if f.sched.Len() != 0 {
		t.Errorf("contact check still pending")
	}
	if f.page.ContactAnimated() {
		t.Error("initial check animated an off-screen form")
	}
}

func TestNavigateToContact(t *testing.T) {
	f := newFixture(t, 100, 24, true)
	p := f.page
	contactIdx := p.SectionIndex("contact")
	target := testSurface.Units(p.Layout().Sections[contactIdx].Row)
	if target > p.MaxScroll() {
		target = p.MaxScroll()
	}

	p.NavigateTo(contactIdx)
	if !p.Scrolling() || p.Scroll() != 0 {
		t.Fatalf("navigate should start a smooth scroll, scroll = %v", p.Scroll())
	}

	f.advance(parameter.SmoothScrollDuration / 2)
	if s := p.Scroll(); s <= 0 || s >= target {
		t.Errorf("mid scroll = %v, target %v", s, target)
	}
	f.advance(parameter.SmoothScrollDuration / 2)
	if p.Scroll() != target || p.Scrolling() {
		t.Errorf("settled scroll = %v, want %v", p.Scroll(), target)
	}
	if p.ActiveSection() < contactIdx-1 {
		t.Errorf("active = %d", p.ActiveSection())
	}
	if !p.ContactAnimated() {
		t.Error("arriving at contact should animate the form")
	}
}

func TestNavigateFromMobileMenu(t *testing.T) {
	f := newFixture(t, 50, 24, true)
	p := f.page
	l := p.Layout()

	p.ToggleMenu()
	if !p.MenuOpen() {
		t.Fatal("menu did not open")
	}

	target := p.Click(l.MenuCol+2, l.MenuRow(1))
	if target.Kind != TargetNavLink || target.Index != 1 {
		t.Fatalf("menu click hit %+v", target)
	}
	if p.MenuOpen() {
		t.Error("choosing a link should close the menu")
	}
	if !p.Scrolling() {
		t.Error("choosing a link should scroll")
	}

	if got := p.Click(l.Hamburger, 0); got.Kind != TargetHamburger || !p.MenuOpen() {
		t.Errorf("hamburger click = %+v open = %v", got, p.MenuOpen())
	}

	p.Resize(120, 24)
	if p.MenuOpen() {
		t.Error("menu stays open on a wide layout")
	}
	p.ToggleMenu()
	if p.MenuOpen() {
		t.Error("menu toggled on a wide layout")
	}
}

func TestSocialHover(t *testing.T) {
	f := newFixture(t, 100, 24, true)
	p := f.page
	hero := p.Layout().Hero
	s := hero.Socials[1]

	if !p.Hover(s.Col, p.ScreenRow(hero.SocialRow)) || p.HoveredSocial() != 1 {
		t.Fatalf("hover = %d", p.HoveredSocial())
	}
	if p.Hover(s.Col+1, p.ScreenRow(hero.SocialRow)) {
		t.Error("moving within the icon reported a change")
	}
	if !p.Hover(0, 0) || p.HoveredSocial() != -1 {
		t.Errorf("hover after leaving = %d", p.HoveredSocial())
	}
}

func TestFormFieldClick(t *testing.T) {
	f := newFixture(t, 100, 24, true)
	p := f.page
	p.ScrollTo(p.MaxScroll(), false)
	f.advance(parameter.FieldRevealStep * time.Duration(contact.NumFields+1))

	fb := p.Layout().Form
	row := p.ScreenRow(fb.Fields[contact.FieldEmail].Row + 1)
	if got := p.Click(fb.Col+1, row); got.Kind != TargetField || got.Index != int(contact.FieldEmail) {
		t.Fatalf("click = %+v", got)
	}
	if focus, ok := f.form.Focus(); !ok || focus != contact.FieldEmail {
		t.Errorf("focus = %v %v", focus, ok)
	}
	if got := p.Click(fb.Col+1, p.ScreenRow(fb.ButtonRow)); got.Kind != TargetSubmit {
		t.Errorf("button click = %+v", got)
	}
}

func TestNoContactSection(t *testing.T) {
	f := newFixture(t, 100, 24, false)
	p := f.page
	if p.Form() != nil {
		t.Error("form exposed without a contact section")
	}
	p.ScrollTo(p.MaxScroll(), false)
	if p.CheckContactAnimation() || f.sched.Len() != 0 {
		t.Error("contact animation without a contact section")
	}
}

func TestFooterYear(t *testing.T) {
	f := newFixture(t, 100, 24, true)
	if got := f.page.FooterText(); got != "© 2031 Test User" {
		t.Errorf("footer = %q", got)
	}
}

func TestScrollClamps(t *testing.T) {
	f := newFixture(t, 100, 24, true)
	p := f.page
	p.ScrollBy(-100)
	if p.Scroll() != 0 {
		t.Errorf("scroll = %v", p.Scroll())
	}
	p.ScrollBy(1e9)
	if p.Scroll() != p.MaxScroll() {
		t.Errorf("scroll = %v, max %v", p.Scroll(), p.MaxScroll())
	}
}
