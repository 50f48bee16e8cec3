// Package drumcore is the tick driver of spec §2/§5: it owns the pad
// fleet, the pedal controller, the crosstalk arbiter and the event
// emitter, and runs them in the fixed order spec §5 requires once per
// call to Tick.
package drumcore

import (
	"log/slog"

	"github.com/arlojansen/drumcore/crosstalk"
	"github.com/arlojansen/drumcore/pad"
	"github.com/arlojansen/drumcore/padcfg"
	"github.com/arlojansen/drumcore/pedal"
	"github.com/arlojansen/drumcore/sensor"
	"github.com/arlojansen/drumcore/voice"
)

// hiHatState adapts the pedal controller and the event emitter into the
// single interface pad.Controller needs for the hi-hat coupling of §4.7,
// without either package depending on the other.
type hiHatState struct {
	pedal   *pedal.Controller
	playing voice.PlayingQuery
}

func (h hiHatState) Closed() bool             { return h.pedal.Closed() }
func (h hiHatState) IsPlaying(note uint8) bool { return h.playing.IsPlaying(note) }

// Module is the root object of a running drum module: it wires together
// every core component spec §2 lists and drives them one tick at a time.
type Module struct {
	sampler     sensor.Sampler
	pedalReader pedal.Reader
	pedalCtl    *pedal.Controller
	arbiter     *crosstalk.Arbiter
	emitter     *voice.Emitter
	pads        []pad.Unit

	tickCount uint64
}

// New builds a Module from a pad roster, the shared tunables table, a
// sensor backend, a pedal backend, and the transport events are written
// to. Pads are kept in roster order, since that order is also the fixed
// tick order spec §5 mandates.
func New(roster []padcfg.PadConfig, tunables padcfg.Tunables, sampler sensor.Sampler, pedalReader pedal.Reader, transport voice.Transport) *Module {
	m := &Module{
		sampler:     sampler,
		pedalReader: pedalReader,
		pedalCtl:    pedal.NewController(),
		arbiter:     crosstalk.New(tunables),
		emitter:     voice.NewEmitter(transport),
	}

	hiHat := hiHatState{pedal: m.pedalCtl, playing: m.emitter}

	for _, cfg := range roster {
		if cfg.IsDualZone {
			m.pads = append(m.pads, pad.NewDualController(cfg, tunables))
			continue
		}
		if cfg.Role == padcfg.RoleHiHat {
			m.pads = append(m.pads, pad.NewController(cfg, tunables, hiHat))
			continue
		}
		m.pads = append(m.pads, pad.NewController(cfg, tunables, nil))
	}

	return m
}

// Tick advances the whole module by one sample: the pedal controller
// first, then every pad in fixed roster order (spec §5, §2 item 8).
func (m *Module) Tick(now uint32) {
	level := m.pedalReader.Read()
	m.pedalCtl.Tick(level, m.emitter, m.emitter.Emit)

	for _, p := range m.pads {
		p.TickChannel(now, m.sampler, m.arbiter, m.emitter.Emit)
	}

	m.tickCount++
	if m.tickCount%10000 == 0 {
		slog.Debug("drumcore tick checkpoint", "ticks", m.tickCount, "now", now)
	}
}

// Pads exposes the live pad units for monitoring/diagnostics purposes.
func (m *Module) Pads() []pad.Unit { return m.pads }

// PlayingQuery exposes the emitter's playing-voice map for diagnostics.
func (m *Module) PlayingQuery() voice.PlayingQuery { return m.emitter }
