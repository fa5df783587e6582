package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue names an interface sound
type Cue int

const (
	// CueSent is a rising two-note chime played when a message is handed off
	CueSent Cue = iota
	// CueClick is a short tick for menu toggles and navigation
	CueClick
	// CueError is a low buzz for a rejected submission
	CueError
)

func (c Cue) String() string {
	switch c {
	case CueSent:
		return "sent"
	case CueClick:
		return "click"
	case CueError:
		return "error"
	default:
		return "unknown"
	}
}

const (
	clickDuration = 25 * time.Millisecond
	errorDuration = 160 * time.Millisecond
	noteDuration  = 110 * time.Millisecond
	cueAttack     = 4 * time.Millisecond
)

// NewCue builds a fresh streamer for c at the given rate and volume; nil for unknown cues
func NewCue(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueSent:
		// E5 then B5
		n1 := NewEnvelope(NewOscillator(659.25, noteDuration, WaveSine, rate), noteDuration, cueAttack, 60*time.Millisecond, rate)
		n2 := NewEnvelope(NewOscillator(987.77, noteDuration*2, WaveSine, rate), noteDuration*2, cueAttack, 180*time.Millisecond, rate)
		s = beep.Seq(n1, n2)
	case CueClick:
		s = NewEnvelope(NewOscillator(1200, clickDuration, WaveTriangle, rate), clickDuration, 2*time.Millisecond, 15*time.Millisecond, rate)
	case CueError:
		s = NewEnvelope(NewOscillator(110, errorDuration, WaveSquare, rate), errorDuration, cueAttack, 80*time.Millisecond, rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}

// CueLength returns the sample count of c at rate
func CueLength(c Cue, rate beep.SampleRate) int {
	switch c {
	case CueSent:
		return rate.N(noteDuration) + rate.N(noteDuration*2)
	case CueClick:
		return rate.N(clickDuration)
	case CueError:
		return rate.N(errorDuration)
	default:
		return 0
	}
}
