// Package voice turns logical note-on/note-off events into wire bytes and
// tracks which logical voices are currently sounding, centralizing the
// "playing" flags spec §9 calls out as a single map rather than scattering
// them through pad code.
package voice

import "fmt"

// Kind distinguishes a note-on from a note-off event.
type Kind uint8

const (
	NoteOn Kind = iota
	NoteOff
)

// Event is a logical musical event emitted by a pad, pedal, or choke
// resolution. Channel is always 0 per spec §6; it is carried explicitly so
// a future revision could multiplex voices across MIDI channels without
// touching callers.
type Event struct {
	Kind     Kind
	Channel  uint8
	Note     uint8
	Velocity uint8
}

func (e Event) String() string {
	verb := "on"
	if e.Kind == NoteOff {
		verb = "off"
	}
	return fmt.Sprintf("note-%s chan=%d note=%d vel=%d", verb, e.Channel, e.Note, e.Velocity)
}

// Bytes encodes the event as the three-byte wire frame of spec §6:
// status|channel, note, velocity.
func (e Event) Bytes() [3]byte {
	status := byte(0x80)
	if e.Kind == NoteOn {
		status = 0x90
	}
	return [3]byte{status | (e.Channel & 0x0F), e.Note & 0x7F, e.Velocity & 0x7F}
}

// Transport accepts raw wire bytes. Implementations must treat a three-byte
// frame as atomic from the caller's perspective, or otherwise preserve the
// per-pad and cross-pad ordering guarantees of spec §5.
type Transport interface {
	Write(frame [3]byte)
}

// PlayingQuery answers whether a logical voice currently has an outstanding
// note-on (spec §3's "playing" map), without exposing the full Emitter.
type PlayingQuery interface {
	IsPlaying(note uint8) bool
}

// Emitter converts Events into wire frames via a Transport, and maintains
// the playing-voice map. It is the single place spec §3's "at most one
// note-on per voice outstanding" invariant is tracked.
type Emitter struct {
	transport Transport
	playing   map[uint8]bool
}

// NewEmitter creates an Emitter writing to the given Transport.
func NewEmitter(transport Transport) *Emitter {
	return &Emitter{
		transport: transport,
		playing:   make(map[uint8]bool),
	}
}

// Emit writes ev to the transport and updates the playing-voice map. A
// second note-on for an already-playing voice supersedes the first without
// inserting a synthetic note-off (spec §3).
func (e *Emitter) Emit(ev Event) {
	e.transport.Write(ev.Bytes())
	switch ev.Kind {
	case NoteOn:
		e.playing[ev.Note] = true
	case NoteOff:
		e.playing[ev.Note] = false
	}
}

// IsPlaying reports whether note currently has an outstanding note-on.
func (e *Emitter) IsPlaying(note uint8) bool {
	return e.playing[note]
}

// EmitFunc is the narrow callback pad controllers use to emit events,
// avoiding a direct dependency on *Emitter so the pad package can be tested
// without wiring a transport.
type EmitFunc func(Event)
