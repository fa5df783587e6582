package page

import "github.com/lixenwraith/techfolio/contact"

// TargetKind classifies what sits under a screen cell
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetHamburger
	TargetNavLink
	TargetField
	TargetSubmit
	TargetSocial
	TargetCard
)

// Target is the result of a hit test; Index selects the link, field, icon or card
type Target struct {
	Kind  TargetKind
	Index int
}

// HitTest resolves a screen cell to the element drawn there, topmost first
func (p *Page) HitTest(col, row int) Target {
	l := p.layout

	if row < NavRows {
		if l.Mobile {
			if col >= l.Hamburger-1 && col <= l.Hamburger+1 {
				return Target{Kind: TargetHamburger}
			}
			return Target{}
		}
		for i, n := range l.Nav {
			if col >= n.Col && col < n.Col+n.Width {
				return Target{Kind: TargetNavLink, Index: i}
			}
		}
		return Target{}
	}

	if p.menuOpen && l.Mobile {
		i := row - NavRows
		if i >= 0 && i < len(l.Nav) && col >= l.MenuCol && col < l.MenuCol+l.MenuWidth {
			return Target{Kind: TargetNavLink, Index: i}
		}
	}

	docRow := row + p.ScrollRows()

	if f := l.Form; f != nil && p.Form() != nil && col >= f.Col && col < f.Col+f.Width {
		for i, fb := range f.Fields {
			if docRow >= fb.Row && docRow <= fb.Row+fb.Height && p.form.Revealed(i) {
				return Target{Kind: TargetField, Index: i}
			}
		}
		if docRow == f.ButtonRow && p.form.Revealed(contact.NumFields) {
			return Target{Kind: TargetSubmit}
		}
	}

	if docRow == l.Hero.SocialRow {
		for i, s := range l.Hero.Socials {
			if col >= s.Col && col < s.Col+s.Width {
				return Target{Kind: TargetSocial, Index: i}
			}
		}
	}

	for i, c := range l.Cards {
		if docRow >= c.Row && docRow < c.Row+c.Height && col >= c.Col && col < c.Col+c.Width {
			return Target{Kind: TargetCard, Index: i}
		}
	}
	return Target{}
}

// Click applies the page-level effect of a click and returns what was hit
// Submit, social and card targets are left to the caller
func (p *Page) Click(col, row int) Target {
	t := p.HitTest(col, row)
	switch t.Kind {
	case TargetHamburger:
		p.ToggleMenu()
	case TargetNavLink:
		p.NavigateTo(p.layout.Nav[t.Index].Section)
	case TargetField:
		p.form.SetFocus(contact.Field(t.Index))
	case TargetSubmit:
		p.form.SetFocus(contact.FieldSubmit)
	case TargetNone:
		if p.form != nil {
			p.form.Blur()
		}
	}
	return t
}
