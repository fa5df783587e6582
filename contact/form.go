package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/lixenwraith/techfolio/engine"
	"github.com/lixenwraith/techfolio/parameter"
	"github.com/lixenwraith/techfolio/vmath"
)

// Field indexes the form inputs; FieldSubmit is the submit button slot
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldSubject
	FieldMessage
	FieldSubmit

	// NumFields is the number of text inputs
	NumFields = int(FieldSubmit)
	numItems  = NumFields + 1
)

var fieldLabels = [NumFields]string{"Name", "Email", "Subject", "Message"}

// Label returns the input label
func (f Field) Label() string {
	if f >= 0 && int(f) < NumFields {
		return fieldLabels[f]
	}
	return ""
}

// Status is the submit button state
type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusSent
)

var (
	ErrBusy       = errors.New("submission in progress")
	ErrIncomplete = errors.New("all fields are required")
	ErrBadEmail   = errors.New("email address is not valid")
)

// Deliverer receives a composed message once the sending delay has passed
type Deliverer interface {
	Deliver(ctx context.Context, msg Message, link string) error
}

// DelivererFunc adapts a function to Deliverer
type DelivererFunc func(ctx context.Context, msg Message, link string) error

func (f DelivererFunc) Deliver(ctx context.Context, msg Message, link string) error {
	return f(ctx, msg, link)
}

// Form is the contact form model; owned by the frame loop goroutine
type Form struct {
	recipient string
	sched     *engine.Scheduler
	clock     engine.TimeProvider
	deliverer Deliverer
	ctx       context.Context

	values     [NumFields][]rune
	focus      Field
	focused    bool
	revealed   [numItems]bool
	revealedAt [numItems]time.Time

	status    Status
	lastLink  string
	lastErr   error
	cascade   []engine.TaskID
	submitJob engine.TaskID

	// OnSent runs after a successful delivery
	OnSent func(Message)
}

// NewForm creates a hidden, empty form addressed to recipient
func NewForm(ctx context.Context, recipient string, sched *engine.Scheduler, clock engine.TimeProvider, d Deliverer) *Form {
	return &Form{
		recipient: recipient,
		sched:     sched,
		clock:     clock,
		deliverer: d,
		ctx:       ctx,
	}
}

func (f *Form) Recipient() string { return f.recipient }

func (f *Form) Status() Status { return f.status }

// ButtonText returns the submit button caption for the current status
func (f *Form) ButtonText() string {
	switch f.status {
	case StatusSending:
		return parameter.ButtonTextSending
	case StatusSent:
		return parameter.ButtonTextSent
	default:
		return parameter.ButtonTextIdle
	}
}

// LastLink returns the most recently composed mailto link
func (f *Form) LastLink() string { return f.lastLink }

// LastError returns the error of the last submit or delivery, nil on success
func (f *Form) LastError() error { return f.lastErr }

func (f *Form) Value(field Field) string {
	if field < 0 || int(field) >= NumFields {
		return ""
	}
	return string(f.values[field])
}

func (f *Form) SetValue(field Field, v string) {
	if field < 0 || int(field) >= NumFields {
		return
	}
	f.values[field] = []rune(v)
}

// Message returns the current field values
func (f *Form) Message() Message {
	return Message{
		Name:    strings.TrimSpace(f.Value(FieldName)),
		Email:   strings.TrimSpace(f.Value(FieldEmail)),
		Subject: strings.TrimSpace(f.Value(FieldSubject)),
		Body:    strings.TrimRight(f.Value(FieldMessage), " \n"),
	}
}

// Focus returns the focused slot and whether the form holds focus at all
func (f *Form) Focus() (Field, bool) { return f.focus, f.focused }

// SetFocus moves focus to field
func (f *Form) SetFocus(field Field) {
	if field < 0 || field > FieldSubmit {
		return
	}
	f.focus = field
	f.focused = true
}

// Blur releases focus
func (f *Form) Blur() { f.focused = false }

// FocusNext cycles focus forward through inputs and the button
func (f *Form) FocusNext() {
	if !f.focused {
		f.SetFocus(FieldName)
		return
	}
	f.focus = (f.focus + 1) % Field(numItems)
}

// FocusPrev cycles focus backward
func (f *Form) FocusPrev() {
	if !f.focused {
		f.SetFocus(FieldSubmit)
		return
	}
	f.focus = (f.focus + Field(numItems) - 1) % Field(numItems)
}

// Editable reports whether typing goes into the form
func (f *Form) Editable() bool {
	return f.focused && f.focus != FieldSubmit && f.status == StatusIdle
}

// Insert types r into the focused input
func (f *Form) Insert(r rune) {
	if !f.Editable() {
		return
	}
	if r == '\n' && f.focus != FieldMessage {
		f.FocusNext()
		return
	}
	f.values[f.focus] = append(f.values[f.focus], r)
}

// Backspace removes the last rune of the focused input
func (f *Form) Backspace() {
	if !f.Editable() {
		return
	}
	v := f.values[f.focus]
	if len(v) > 0 {
		f.values[f.focus] = v[:len(v)-1]
	}
}

// Revealed reports whether slot i has been revealed; i == NumFields is the button
func (f *Form) Revealed(i int) bool {
	if i < 0 || i >= numItems {
		return false
	}
	return f.revealed[i]
}

// RevealProgress returns 0 for hidden slots and eases to 1 over the reveal transition
func (f *Form) RevealProgress(i int) float64 {
	if !f.Revealed(i) {
		return 0
	}
	elapsed := f.clock.Now().Sub(f.revealedAt[i])
	t := vmath.Clamp(float64(elapsed)/float64(parameter.RevealTransition), 0, 1)
	return vmath.EaseOutCubic(t)
}

// RevealCascade hides every slot and schedules their reveals at FieldRevealStep x (i+1)
// A pending cascade is cancelled first
func (f *Form) RevealCascade() {
	f.sched.CancelAll(f.cascade)
	f.cascade = f.cascade[:0]

	for i := 0; i < numItems; i++ {
		f.revealed[i] = false
		i := i
		id := f.sched.After(parameter.FieldRevealStep*time.Duration(i+1), func() { f.reveal(i) })
		f.cascade = append(f.cascade, id)
	}
}

func (f *Form) reveal(i int) {
	f.revealed[i] = true
	f.revealedAt[i] = f.clock.Now()
}

// Validate checks the message before submission
func Validate(msg Message) error {
	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Body == "" {
		return ErrIncomplete
	}
	addr, err := mail.ParseAddress(msg.Email)
	if err != nil || addr.Address != msg.Email {
		return ErrBadEmail
	}
	return nil
}

// Submit starts the send flow: Sending for FormSendingDelay, then delivery and Sent
// for FormSentDelay, then the form resets and fields re-reveal
func (f *Form) Submit() error {
	if f.status != StatusIdle {
		return ErrBusy
	}
	msg := f.Message()
	if err := Validate(msg); err != nil {
		f.lastErr = err
		return err
	}

	link := BuildMailto(f.recipient, msg)
	f.lastLink = link
	f.lastErr = nil
	f.status = StatusSending
	f.Blur()

	f.sched.Cancel(f.submitJob)
	f.submitJob = f.sched.After(parameter.FormSendingDelay, func() { f.deliver(msg, link) })
	return nil
}

func (f *Form) deliver(msg Message, link string) {
	f.status = StatusSent
	if f.deliverer != nil {
		if err := f.deliverer.Deliver(f.ctx, msg, link); err != nil {
			f.lastErr = fmt.Errorf("deliver message: %w", err)
			slog.Warn("contact delivery failed", "error", err)
		}
	}
	if f.lastErr == nil && f.OnSent != nil {
		f.OnSent(msg)
	}
	f.submitJob = f.sched.After(parameter.FormSentDelay, f.reset)
}

// reset clears inputs and button, hides the text inputs and shows them again after FormReRevealDelay
func (f *Form) reset() {
	for i := range f.values {
		f.values[i] = nil
	}
	f.status = StatusIdle
	f.submitJob = 0

	f.sched.CancelAll(f.cascade)
	f.cascade = f.cascade[:0]
	for i := 0; i < NumFields; i++ {
		f.revealed[i] = false
	}
	id := f.sched.After(parameter.FormReRevealDelay, func() {
		for i := 0; i < NumFields; i++ {
			f.reveal(i)
		}
	})
	f.cascade = append(f.cascade, id)
}

// Cancel abandons a submission in flight and returns the form to idle with its values kept
func (f *Form) Cancel() {
	if f.status == StatusIdle {
		return
	}
	f.sched.Cancel(f.submitJob)
	f.submitJob = 0
	f.status = StatusIdle
}
