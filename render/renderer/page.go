package renderer

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/techfolio/contact"
	"github.com/lixenwraith/techfolio/content"
	"github.com/lixenwraith/techfolio/page"
	"github.com/lixenwraith/techfolio/parameter"
	"github.com/lixenwraith/techfolio/parameter/visual"
	"github.com/lixenwraith/techfolio/render"
)

// cursorBlinkMS is the half period of the typing cursor blink
const cursorBlinkMS = 500

// hiddenRows converts a reveal offset in surface units to whole rows at progress t
func hiddenRows(s render.Surface, offset, t float64) int {
	return int(math.Round(offset * (1 - t) / s.CellHeight))
}

// SectionRenderer draws section titles, text blocks and the footer
type SectionRenderer struct {
	page *page.Page
}

func NewSectionRenderer(p *page.Page) *SectionRenderer {
	return &SectionRenderer{page: p}
}

func (r *SectionRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := r.page
	l := p.Layout()

	for i, tb := range l.Texts {
		if !p.TextRevealed(i) {
			continue
		}
		row := p.ScreenRow(tb.Row)
		if row+len(tb.Lines) < 0 || row >= ctx.Height {
			continue
		}

		if tb.Title {
			w := drawText(buf, l.ContentCol, row, tb.Lines[0], visual.RgbHeading, 1, render.AttrBold)
			drawText(buf, l.ContentCol, row+1, strings.Repeat("━", min(w, 8)), visual.RgbAccent, 0.8, render.AttrNone)
			continue
		}

		fg, attrs := visual.RgbText, render.AttrNone
		switch tb.Kind {
		case content.BlockCode:
			fg = visual.RgbSnippet
		case content.BlockHeading:
			fg, attrs = visual.RgbHeading, render.AttrBold
		}
		for j, line := range tb.Lines {
			drawText(buf, l.ContentCol, row+j, line, fg, 1, attrs)
		}
	}

	if footer := p.FooterText(); footer != "" {
		drawTextCentered(buf, 0, p.ScreenRow(l.FooterRow), ctx.Width, footer, visual.RgbTextDim, 1, render.AttrNone)
	}
}

// HeroRenderer draws the avatar or initials badge, name, typed role, tagline and social icons
type HeroRenderer struct {
	page *page.Page
}

func NewHeroRenderer(p *page.Page) *HeroRenderer {
	return &HeroRenderer{page: p}
}

func (r *HeroRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := r.page
	h := p.Layout().Hero
	doc := p.Document()
	prof := doc.Profile

	r.avatar(buf, h, doc)

	drawTextCentered(buf, 0, p.ScreenRow(h.NameRow), ctx.Width, prof.Name, visual.RgbHeading, 1, render.AttrBold)

	if tw := p.Typewriter(); tw != nil && tw.Enabled() {
		typed := tw.Text()
		line := prof.RolePrefix + typed
		full := runewidth.StringWidth(line) + 1
		x := (ctx.Width - full) / 2
		row := p.ScreenRow(h.RoleRow)
		w := drawText(buf, x, row, prof.RolePrefix, visual.RgbText, 1, render.AttrNone)
		w += drawText(buf, x+w, row, typed, visual.RgbAccent, 1, render.AttrBold)
		if (ctx.Time.UnixMilli()/cursorBlinkMS)%2 == 0 {
			drawText(buf, x+w, row, string(visual.CursorChar), visual.RgbAccent, 1, render.AttrNone)
		}
	}

	drawTextCentered(buf, 0, p.ScreenRow(h.TaglineRow), ctx.Width, prof.Tagline, visual.RgbTextDim, 1, render.AttrNone)

	hover := p.HoveredSocial()
	for i, s := range h.Socials {
		row := p.ScreenRow(h.SocialRow)
		fg := visual.RgbTextDim
		if i == hover {
			// lifted one row while hovered
			row--
			fg = visual.RgbAccent
		}
		drawText(buf, s.Col, row, "["+s.Social.Icon+"]", fg, 1, render.AttrBold)
	}
}

func (r *HeroRenderer) avatar(buf *render.RenderBuffer, h page.HeroBox, doc *content.Document) {
	top := r.page.ScreenRow(h.AvatarRow)

	if a := doc.Avatar; a != nil {
		for y := 0; y < a.Rows; y++ {
			for x := 0; x < a.Cols; x++ {
				t, b := a.At(x, y)
				buf.Set(h.AvatarCol+x, top+y, '▀',
					render.RGB{R: t.R, G: t.G, B: t.B}, render.RGB{R: b.R, G: b.G, B: b.B},
					render.BlendReplace, 1, render.AttrNone)
			}
		}
		return
	}

	clearRect(buf, h.AvatarCol, top, h.AvatarCols, h.AvatarRows, visual.RgbAvatar, 1)
	drawBox(buf, h.AvatarCol, top, h.AvatarCols, h.AvatarRows, visual.RgbAccent, 1)
	drawTextCentered(buf, h.AvatarCol, top+h.AvatarRows/2, h.AvatarCols, doc.Profile.Initials(), visual.RgbAccent, 1, render.AttrBold)
}

// CardRenderer draws project and blog cards sliding up as they reveal
type CardRenderer struct {
	page *page.Page
}

func NewCardRenderer(p *page.Page) *CardRenderer {
	return &CardRenderer{page: p}
}

func (r *CardRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := r.page
	for i, c := range p.Layout().Cards {
		t := p.CardProgress(i)
		if t <= 0 {
			continue
		}
		row := p.ScreenRow(c.Row) + hiddenRows(ctx.Surface, parameter.CardHiddenOffset, t)
		if row+c.Height < 0 || row >= ctx.Height {
			continue
		}

		clearRect(buf, c.Col, row, c.Width, c.Height, visual.RgbCard, 0.9*t)
		drawBox(buf, c.Col, row, c.Width, c.Height, visual.RgbAccent, 0.5*t)
		drawText(buf, c.Col+2, row+1, c.Title, visual.RgbHeading, t, render.AttrBold)
		if c.Link != "" {
			drawText(buf, c.Col+c.Width-3, row+1, "↗", visual.RgbAccent, t, render.AttrNone)
		}
		for j, line := range c.Lines {
			drawText(buf, c.Col+2, row+2+j, line, visual.RgbText, t, render.AttrNone)
		}
	}
}

// FormRenderer draws the contact form inputs and submit button
type FormRenderer struct {
	page *page.Page
}

func NewFormRenderer(p *page.Page) *FormRenderer {
	return &FormRenderer{page: p}
}

func (r *FormRenderer) IsVisible() bool {
	return r.page.Form() != nil
}

func (r *FormRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := r.page
	form := p.Form()
	fb := p.Layout().Form
	focus, focused := form.Focus()

	for i := 0; i < contact.NumFields; i++ {
		if !form.Revealed(i) {
			continue
		}
		t := form.RevealProgress(i)
		box := fb.Fields[i]
		row := p.ScreenRow(box.Row) + hiddenRows(ctx.Surface, parameter.FieldHiddenOffset, t)
		field := contact.Field(i)
		active := focused && focus == field

		drawText(buf, fb.Col, row, field.Label(), visual.RgbTextDim, t, render.AttrNone)

		bg := visual.RgbField
		if active {
			bg = visual.RgbFieldFocus
		}
		clearRect(buf, fb.Col, row+1, fb.Width, box.Height, bg, t)

		lines := inputLines(form.Value(field), fb.Width-2, box.Height)
		for j, line := range lines {
			drawText(buf, fb.Col+1, row+1+j, line, visual.RgbText, t, render.AttrNone)
		}
		if active && form.Editable() {
			last := len(lines) - 1
			x := fb.Col + 1 + runewidth.StringWidth(lines[last])
			drawText(buf, x, row+1+last, string(visual.CursorChar), visual.RgbAccent, 1, render.AttrNone)
		}
	}

	if !form.Revealed(contact.NumFields) {
		return
	}
	t := form.RevealProgress(contact.NumFields)
	row := p.ScreenRow(fb.ButtonRow) + hiddenRows(ctx.Surface, parameter.FieldHiddenOffset, t)

	bg := visual.RgbButton
	switch form.Status() {
	case contact.StatusSending:
		bg = visual.RgbButtonBusy
	case contact.StatusSent:
		bg = visual.RgbButtonDone
	}
	label := form.ButtonText()
	width := runewidth.StringWidth(label) + 4
	attrs := render.AttrBold
	if focused && focus == contact.FieldSubmit {
		attrs |= render.AttrUnderline
	}
	clearRect(buf, fb.Col, row, width, 1, bg, t)
	drawTextCentered(buf, fb.Col, row, width, label, visual.RgbHeading, t, attrs)

	if err := form.LastError(); err != nil && form.Status() == contact.StatusIdle {
		drawText(buf, fb.Col+width+2, row, page.Fit(err.Error(), fb.Width-width-2), visual.RgbError, 1, render.AttrNone)
	}
}

// inputLines wraps an input value and keeps the last rows that fit
func inputLines(value string, width, rows int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	for _, part := range strings.Split(value, "\n") {
		if rows == 1 {
			lines = append(lines, tail(part, width-1))
			continue
		}
		wrapped := page.Wrap(part, width-1)
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}
		lines = append(lines, wrapped...)
	}
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	return lines
}

// tail returns the rightmost width columns of s
func tail(s string, width int) string {
	rs := []rune(s)
	w := 0
	i := len(rs)
	for i > 0 {
		rw := runewidth.RuneWidth(rs[i-1])
		if w+rw > width {
			break
		}
		w += rw
		i--
	}
	return string(rs[i:])
}

// NavRenderer draws the fixed navbar with the active link highlighted
type NavRenderer struct {
	page *page.Page
}

func NewNavRenderer(p *page.Page) *NavRenderer {
	return &NavRenderer{page: p}
}

func (r *NavRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := r.page
	l := p.Layout()

	bg, alpha := visual.RgbNavBar, 0.6
	if p.NavScrolled() {
		bg, alpha = visual.RgbNavScrolled, 0.95
	}
	clearRect(buf, 0, 0, ctx.Width, page.NavRows, bg, alpha)
	drawText(buf, 2, 0, p.Document().Profile.Name, visual.RgbAccent, 1, render.AttrBold)

	if l.Mobile {
		glyph := string(visual.HamburgerChar)
		fg := visual.RgbText
		if p.MenuOpen() {
			glyph, fg = "✕", visual.RgbAccent
		}
		drawText(buf, l.Hamburger, 0, glyph, fg, 1, render.AttrBold)
		return
	}

	for _, n := range l.Nav {
		fg, attrs := visual.RgbText, render.AttrNone
		if n.Section == p.ActiveSection() {
			fg, attrs = visual.RgbNavActive, render.AttrBold|render.AttrUnderline
		}
		drawText(buf, n.Col, 0, n.Label, fg, 1, attrs)
	}
}

// MenuRenderer draws the expanded mobile menu under the hamburger
type MenuRenderer struct {
	page *page.Page
}

func NewMenuRenderer(p *page.Page) *MenuRenderer {
	return &MenuRenderer{page: p}
}

func (r *MenuRenderer) IsVisible() bool {
	return r.page.MenuOpen()
}

func (r *MenuRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := r.page
	l := p.Layout()

	clearRect(buf, l.MenuCol, page.NavRows, l.MenuWidth, len(l.Nav), visual.RgbNavScrolled, 0.95)
	for i, n := range l.Nav {
		fg, attrs := visual.RgbText, render.AttrNone
		if n.Section == p.ActiveSection() {
			fg, attrs = visual.RgbNavActive, render.AttrBold
		}
		drawText(buf, n.Col, l.MenuRow(i), n.Label, fg, 1, attrs)
	}
}
