package app

import (
	"context"
	"log/slog"

	"github.com/lixenwraith/techfolio/audio"
	"github.com/lixenwraith/techfolio/contact"
	"github.com/lixenwraith/techfolio/outbox"
	"github.com/lixenwraith/techfolio/status"
)

// deliver records the message in the outbox, hands the link to the opener and stores the outcome
// An outbox failure is logged and does not block the opener
func (a *App) deliver(ctx context.Context, msg contact.Message, link string) error {
	var id string
	if a.store != nil {
		var err error
		id, err = a.store.Record(ctx, outbox.Entry{
			Recipient:   a.form.Recipient(),
			SenderName:  msg.Name,
			SenderEmail: msg.Email,
			Subject:     msg.Subject,
			Body:        msg.Body,
			Link:        link,
		})
		if err != nil {
			slog.Warn("outbox record failed", "error", err)
		}
	}

	openErr := a.opener.Open(ctx, link)
	if openErr != nil {
		slog.Warn("mail client unavailable", "error", openErr)
		a.stats.Ints.Get(status.DeliveryFailures).Add(1)
	} else {
		a.stats.Ints.Get(status.MessagesSent).Add(1)
		slog.Info("message handed to mail client", "id", id, "subject", msg.Subject)
	}

	if id != "" {
		status, text := outbox.StatusOpened, ""
		if openErr != nil {
			status, text = outbox.StatusFailed, openErr.Error()
		}
		if err := a.store.SetStatus(ctx, id, status, text); err != nil {
			slog.Warn("outbox status update failed", "id", id, "error", err)
		}
	}
	return openErr
}

// openLink launches a card or social link through the opener
func (a *App) openLink(link string) {
	if link == "" {
		return
	}
	if err := a.opener.Open(a.ctx, link); err != nil {
		slog.Warn("open link failed", "link", link, "error", err)
		a.play(audio.CueError)
		return
	}
	a.stats.Ints.Get(status.LinksOpened).Add(1)
	a.play(audio.CueClick)
}
