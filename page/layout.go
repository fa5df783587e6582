package page

import (
	"github.com/lixenwraith/techfolio/contact"
	"github.com/lixenwraith/techfolio/content"
)

// Layout geometry, in terminal cells
const (
	NavRows         = 1
	MaxContentWidth = 96
	TwoColumnWidth  = 60
	CardGap         = 2
	MessageRows     = 4
	FormMaxWidth    = 64

	sectionPadTop    = 2
	sectionPadBottom = 1
	navLinkGap       = 3
	socialGap        = 2
	heroMinRows      = 20
	initialsRows     = 3
)

// HomeID is the anchor of the synthesized hero section
const HomeID = "home"

// TextBox is a reveal-on-scroll text element: a section title or a content block
type TextBox struct {
	Row   int
	Kind  content.BlockKind
	Lines []string
	Title bool
}

// CardBox is a bordered card that reveals once
type CardBox struct {
	Row, Col      int
	Width, Height int
	Title         string
	Lines         []string
	Link          string
}

// FieldBox places one form input; the label sits on Row and the input below it
type FieldBox struct {
	Row    int
	Height int
}

// FormBox places the contact form
type FormBox struct {
	Col, Width int
	Fields     [contact.NumFields]FieldBox
	ButtonRow  int
}

// SocialBox is one hoverable social icon in the hero
type SocialBox struct {
	Col, Width int
	Social     content.Social
}

// HeroBox places the landing section contents
type HeroBox struct {
	AvatarRow, AvatarCol int
	AvatarCols           int
	AvatarRows           int
	NameRow              int
	RoleRow              int
	TaglineRow           int
	SocialRow            int
	Socials              []SocialBox
}

// SectionBox spans one page section in document rows
type SectionBox struct {
	ID     string
	Title  string
	Row    int
	Height int
}

// NavLink is one navbar entry pointing at Sections[Section]
type NavLink struct {
	Label   string
	Section int
	Col     int
	Width   int
}

// Layout is the document geometry for one viewport width
// Rows are document rows from the page top; columns are screen columns
type Layout struct {
	Cols, Rows   int
	ContentCol   int
	ContentWidth int

	Hero           HeroBox
	Sections       []SectionBox
	Texts          []TextBox
	Cards          []CardBox
	Form           *FormBox
	ContactSection int
	FooterRow      int
	Height         int

	Nav       []NavLink
	Mobile    bool
	Hamburger int
	MenuCol   int
	MenuWidth int
}

// Build lays out doc for a cols x rows viewport
func Build(doc *content.Document, cols, rows, breakpoint int) *Layout {
	l := &Layout{
		Cols:           cols,
		Rows:           rows,
		ContactSection: -1,
		Hamburger:      -1,
	}

	l.ContentWidth = cols - 4
	if l.ContentWidth > MaxContentWidth {
		l.ContentWidth = MaxContentWidth
	}
	if l.ContentWidth < 1 {
		l.ContentWidth = 1
	}
	l.ContentCol = (cols - l.ContentWidth) / 2

	l.buildHero(doc, rows)

	cursor := l.Sections[0].Height
	for _, sec := range doc.Sections {
		start := cursor
		cursor += sectionPadTop

		l.Texts = append(l.Texts, TextBox{Row: cursor, Lines: []string{sec.Title}, Title: true})
		cursor += 2

		for _, b := range sec.Blocks {
			if b.Kind == content.BlockCard {
				continue
			}
			lines := l.wrapBlock(b)
			l.Texts = append(l.Texts, TextBox{Row: cursor, Kind: b.Kind, Lines: lines})
			cursor += len(lines) + 1
		}

		cursor = l.placeCards(sec.Cards(), cursor)

		if sec.ID == "contact" {
			l.ContactSection = len(l.Sections)
			cursor = l.placeForm(cursor)
		}

		cursor += sectionPadBottom
		l.Sections = append(l.Sections, SectionBox{ID: sec.ID, Title: sec.Title, Row: start, Height: cursor - start})
	}

	l.FooterRow = cursor + 1
	l.Height = l.FooterRow + 2
	if l.Height < rows {
		l.Height = rows
	}

	l.buildNav(doc, breakpoint)
	return l
}

func (l *Layout) buildHero(doc *content.Document, rows int) {
	h := &l.Hero
	top := NavRows + 2

	if doc.Avatar != nil {
		h.AvatarCols, h.AvatarRows = doc.Avatar.Cols, doc.Avatar.Rows
	} else {
		h.AvatarCols, h.AvatarRows = Width(doc.Profile.Initials())+6, initialsRows
	}
	h.AvatarRow = top
	h.AvatarCol = (l.Cols - h.AvatarCols) / 2

	h.NameRow = top + h.AvatarRows + 1
	h.RoleRow = h.NameRow + 2
	h.TaglineRow = h.RoleRow + 2
	h.SocialRow = h.TaglineRow + 2

	total := 0
	for i, s := range doc.Profile.Socials {
		if i > 0 {
			total += socialGap
		}
		total += Width(s.Icon) + 2
	}
	col := (l.Cols - total) / 2
	for _, s := range doc.Profile.Socials {
		w := Width(s.Icon) + 2
		h.Socials = append(h.Socials, SocialBox{Col: col, Width: w, Social: s})
		col += w + socialGap
	}

	height := h.SocialRow + 3
	if height < rows {
		height = rows
	}
	if height < heroMinRows {
		height = heroMinRows
	}
	l.Sections = append(l.Sections, SectionBox{ID: HomeID, Title: "Home", Row: 0, Height: height})
}

func (l *Layout) wrapBlock(b content.Block) []string {
	var out []string
	for _, line := range b.Lines {
		if b.Kind == content.BlockCode {
			out = append(out, Fit(line, l.ContentWidth))
			continue
		}
		out = append(out, Wrap(line, l.ContentWidth)...)
	}
	return out
}

// placeCards lays cards in one or two columns and returns the row after them
func (l *Layout) placeCards(cards []content.Block, cursor int) int {
	if len(cards) == 0 {
		return cursor
	}

	perRow := 1
	if l.ContentWidth >= TwoColumnWidth {
		perRow = 2
	}
	width := (l.ContentWidth - CardGap*(perRow-1)) / perRow
	inner := width - 4
	if inner < 1 {
		inner = 1
	}

	rowHeight := 0
	for i, c := range cards {
		slot := i % perRow
		if slot == 0 && i > 0 {
			cursor += rowHeight + 1
			rowHeight = 0
		}

		var lines []string
		for _, line := range c.Lines {
			lines = append(lines, Wrap(line, inner)...)
		}
		height := len(lines) + 3

		l.Cards = append(l.Cards, CardBox{
			Row:    cursor,
			Col:    l.ContentCol + slot*(width+CardGap),
			Width:  width,
			Height: height,
			Title:  Fit(c.Title, inner),
			Lines:  lines,
			Link:   c.Link,
		})
		if height > rowHeight {
			rowHeight = height
		}
	}
	return cursor + rowHeight + 1
}

func (l *Layout) placeForm(cursor int) int {
	f := &FormBox{Col: l.ContentCol, Width: l.ContentWidth}
	if f.Width > FormMaxWidth {
		f.Width = FormMaxWidth
	}
	for i := 0; i < contact.NumFields; i++ {
		h := 1
		if contact.Field(i) == contact.FieldMessage {
			h = MessageRows
		}
		f.Fields[i] = FieldBox{Row: cursor, Height: h}
		cursor += h + 2
	}
	f.ButtonRow = cursor
	l.Form = f
	return cursor + 2
}

func (l *Layout) buildNav(doc *content.Document, breakpoint int) {
	total := 0
	for i, s := range l.Sections {
		if i > 0 {
			total += navLinkGap
		}
		total += Width(s.Title)
	}
	brand := Width(doc.Profile.Name) + 4

	l.Mobile = l.Cols < breakpoint || 2+brand+total+2 > l.Cols

	if l.Mobile {
		l.Hamburger = l.Cols - 3
		width := 0
		for _, s := range l.Sections {
			if w := Width(s.Title); w > width {
				width = w
			}
		}
		l.MenuWidth = width + 4
		l.MenuCol = l.Cols - l.MenuWidth - 1
		if l.MenuCol < 0 {
			l.MenuCol = 0
		}
		for i, s := range l.Sections {
			l.Nav = append(l.Nav, NavLink{Label: s.Title, Section: i, Col: l.MenuCol + 2, Width: Width(s.Title)})
		}
		return
	}

	col := l.Cols - 2 - total
	for i, s := range l.Sections {
		w := Width(s.Title)
		l.Nav = append(l.Nav, NavLink{Label: s.Title, Section: i, Col: col, Width: w})
		col += w + navLinkGap
	}
}

// MenuRow returns the screen row of mobile menu item i
func (l *Layout) MenuRow(i int) int {
	return NavRows + i
}

// MaxScrollRows is the furthest the top of the viewport can be from the page top
func (l *Layout) MaxScrollRows() int {
	if l.Height <= l.Rows {
		return 0
	}
	return l.Height - l.Rows
}
