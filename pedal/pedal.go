// Package pedal implements the hi-hat pedal controller of spec §4.7: a
// single digital input driving the hi-hat's open/closed/pedal note
// selection and coupling with the hi-hat pad's own hit detection. Every
// level change seen on a tick is acted on; no debounce filtering is applied.
package pedal

import (
	"github.com/arlojansen/drumcore/padcfg"
	"github.com/arlojansen/drumcore/voice"
)

// Level is the raw digital reading of the pedal pin. High = released,
// low = pressed, matching the internal-pull-up wiring of spec §6.
type Level bool

const (
	Released Level = true
	Pressed  Level = false
)

// Reader samples the current digital level of the pedal pin.
type Reader interface {
	Read() Level
}

// PedalChickVelocity is the fixed velocity spec §4.7 assigns the
// pedal-chick voice; it is not derived from any sensor reading.
const PedalChickVelocity uint8 = 30

// Controller tracks pedalClosed (spec §3's process-wide mutable state) and
// turns pedal level transitions into hi-hat note events.
type Controller struct {
	closed bool
}

// NewController creates a Controller. The pedal starts released, matching
// the pull-up idle level.
func NewController() *Controller {
	return &Controller{closed: false}
}

// Closed reports whether the pedal is currently held down. It implements
// pad.HiHatState's half of the pedal/hi-hat-pad coupling.
func (c *Controller) Closed() bool { return c.closed }

// Tick reads the current level and, on a transition, emits the events of
// spec §4.7. playing answers whether a given hi-hat voice is currently
// sounding, so a note-off is only emitted when one is actually outstanding.
func (c *Controller) Tick(level Level, playing voice.PlayingQuery, emit voice.EmitFunc) {
	wasClosed := c.closed

	switch level {
	case Pressed:
		if !wasClosed {
			if playing.IsPlaying(padcfg.NoteHiHatOpen) {
				emit(voice.Event{Kind: voice.NoteOff, Note: padcfg.NoteHiHatOpen})
			}
			emit(voice.Event{Kind: voice.NoteOn, Note: padcfg.NoteHiHatPedal, Velocity: PedalChickVelocity})
			c.closed = true
		}
	case Released:
		if wasClosed {
			if playing.IsPlaying(padcfg.NoteHiHatClosed) {
				emit(voice.Event{Kind: voice.NoteOff, Note: padcfg.NoteHiHatClosed})
			}
			c.closed = false
		}
	}
}
