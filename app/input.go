package app

import (
	"errors"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/techfolio/audio"
	"github.com/lixenwraith/techfolio/contact"
	"github.com/lixenwraith/techfolio/page"
)

// HandleEvent applies one terminal event; returns false when the user asked to quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		a.Resize(cols, rows)
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if _, focused := a.form.Focus(); focused && a.page.Form() != nil {
		a.handleFormKey(ev)
		return true
	}

	p := a.page
	switch ev.Key() {
	case tcell.KeyEscape:
		if p.MenuOpen() {
			p.CloseMenu()
			return true
		}
		return false
	case tcell.KeyUp:
		p.ScrollStep(-1)
	case tcell.KeyDown:
		p.ScrollStep(1)
	case tcell.KeyPgUp:
		p.ScrollBy(-p.ViewportHeight())
	case tcell.KeyPgDn:
		p.ScrollBy(p.ViewportHeight())
	case tcell.KeyHome:
		p.ScrollTo(0, true)
	case tcell.KeyEnd:
		p.ScrollTo(p.MaxScroll(), true)
	case tcell.KeyTab:
		a.focusForm()
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}
	return true
}

func (a *App) handleRune(r rune) bool {
	p := a.page
	switch {
	case r == 'q':
		return false
	case r == 'k':
		p.ScrollStep(-1)
	case r == 'j', r == ' ':
		p.ScrollStep(1)
	case r == 'g':
		p.ScrollTo(0, true)
	case r == 'G':
		p.ScrollTo(p.MaxScroll(), true)
	case r == 'm':
		p.ToggleMenu()
		a.play(audio.CueClick)
	case r >= '1' && r <= '9':
		p.NavigateTo(int(r - '1'))
	}
	return true
}

// focusForm jumps to the contact section and focuses the first input
func (a *App) focusForm() {
	i := a.page.SectionIndex("contact")
	if i < 0 || a.page.Form() == nil {
		return
	}
	a.page.NavigateTo(i)
	a.form.SetFocus(contact.FieldName)
}

func (a *App) handleFormKey(ev *tcell.EventKey) {
	f := a.form
	switch ev.Key() {
	case tcell.KeyEscape:
		f.Blur()
	case tcell.KeyTab:
		f.FocusNext()
	case tcell.KeyBacktab:
		f.FocusPrev()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		f.Backspace()
	case tcell.KeyEnter:
		if focus, _ := f.Focus(); focus == contact.FieldSubmit {
			a.submit()
			return
		}
		f.Insert('\n')
	case tcell.KeyCtrlS:
		a.submit()
	case tcell.KeyRune:
		if focus, _ := f.Focus(); focus == contact.FieldSubmit && ev.Rune() == ' ' {
			a.submit()
			return
		}
		f.Insert(ev.Rune())
	}
}

func (a *App) submit() {
	err := a.form.Submit()
	switch {
	case err == nil:
		a.play(audio.CueClick)
	case errors.Is(err, contact.ErrBusy):
	default:
		slog.Debug("contact form rejected", "error", err)
		a.play(audio.CueError)
	}
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	buttons := ev.Buttons()
	pressed := buttons &^ a.buttons
	a.buttons = buttons

	p := a.page
	switch {
	case buttons&tcell.WheelUp != 0:
		p.ScrollStep(-1)
		return
	case buttons&tcell.WheelDown != 0:
		p.ScrollStep(1)
		return
	}

	p.Hover(col, row)
	if pressed&tcell.Button1 == 0 {
		return
	}

	t := p.Click(col, row)
	switch t.Kind {
	case page.TargetHamburger, page.TargetNavLink:
		a.play(audio.CueClick)
	case page.TargetSubmit:
		a.submit()
	case page.TargetSocial:
		a.openLink(p.Layout().Hero.Socials[t.Index].Social.URL)
	case page.TargetCard:
		a.openLink(p.Layout().Cards[t.Index].Link)
	}
}
