// Package typewriter cycles a list of words through typed, held and deleted phases
package typewriter

import (
	"time"

	"github.com/lixenwraith/techfolio/engine"
	"github.com/lixenwraith/techfolio/parameter"
)

// State is the typewriter phase
type State int

const (
	Typing State = iota
	Pausing
	Deleting
)

func (s State) String() string {
	switch s {
	case Typing:
		return "typing"
	case Pausing:
		return "pausing"
	case Deleting:
		return "deleting"
	default:
		return "unknown"
	}
}

// Typewriter reveals one word at a time, holds it, erases it and moves on cyclically
// An empty word list disables it: Step is a no-op and Start schedules nothing
type Typewriter struct {
	words [][]rune
	word  int
	shown int
	state State

	sched   *engine.Scheduler
	pending engine.TaskID
}

// New creates a typewriter over words
func New(words []string) *Typewriter {
	t := &Typewriter{}
	for _, w := range words {
		if w == "" {
			continue
		}
		t.words = append(t.words, []rune(w))
	}
	return t
}

// Enabled reports whether there is anything to type
func (t *Typewriter) Enabled() bool {
	return len(t.words) > 0
}

// Text returns the currently visible prefix of the current word
func (t *Typewriter) Text() string {
	if !t.Enabled() {
		return ""
	}
	return string(t.words[t.word][:t.shown])
}

func (t *Typewriter) State() State { return t.state }

func (t *Typewriter) WordIndex() int { return t.word }

// Step advances one phase and returns the delay before the next step
func (t *Typewriter) Step() time.Duration {
	if !t.Enabled() {
		return 0
	}
	current := t.words[t.word]

	switch t.state {
	case Typing:
		if t.shown < len(current) {
			t.shown++
		}
		if t.shown == len(current) {
			t.state = Pausing
			return parameter.TypewriterHoldDelay
		}
		return parameter.TypewriterTypeDelay

	case Pausing:
		t.state = Deleting
		return parameter.TypewriterHoldDelay

	default:
		if t.shown > 0 {
			t.shown--
		}
		if t.shown == 0 {
			t.state = Typing
			t.word = (t.word + 1) % len(t.words)
			return parameter.TypewriterNextDelay
		}
		return parameter.TypewriterDeleteDelay
	}
}

// Start schedules the first step after the start delay; each step schedules the next
func (t *Typewriter) Start(s *engine.Scheduler) {
	if !t.Enabled() {
		return
	}
	t.Stop()
	t.sched = s
	t.pending = s.After(parameter.TypewriterStartDelay, t.tick)
}

// Stop cancels the pending step
func (t *Typewriter) Stop() {
	if t.sched != nil && t.pending != 0 {
		t.sched.Cancel(t.pending)
	}
	t.pending = 0
}

func (t *Typewriter) tick() {
	t.pending = t.sched.After(t.Step(), t.tick)
}
