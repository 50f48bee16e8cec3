package drumcore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arlojansen/drumcore/padcfg"
	"github.com/arlojansen/drumcore/pedal"
	"github.com/arlojansen/drumcore/sensor"
	"github.com/arlojansen/drumcore/voice"
)

type captureTransport struct {
	frames [][3]byte
}

func (c *captureTransport) Write(frame [3]byte) { c.frames = append(c.frames, frame) }

func TestModuleFiresKickOnThresholdCrossing(t *testing.T) {
	sampler := sensor.NewManual()
	transport := &captureTransport{}
	m := New(padcfg.DefaultRoster(), padcfg.DefaultTunables(), sampler, pedal.Zero{}, transport)

	sampler.Set(padcfg.ChanKick, 400) // well above kick threshold of 120
	for now := uint32(0); now <= 7; now++ {
		m.Tick(now)
	}
	sampler.Set(padcfg.ChanKick, 0)
	for now := uint32(8); now < 60; now++ {
		m.Tick(now)
	}

	if assert.Len(t, transport.frames, 1, "expected one wire frame for the kick hit") {
		assert.Equal(t, padcfg.NoteKick, transport.frames[0][1])
	}
}

func TestModulePedalPressEmitsChick(t *testing.T) {
	sampler := sensor.NewManual()
	transport := &captureTransport{}
	reader := &pedal.Manual{Level: pedal.Released}
	m := New(padcfg.DefaultRoster(), padcfg.DefaultTunables(), sampler, reader, transport)

	reader.Level = pedal.Pressed
	m.Tick(0)

	if assert.Len(t, transport.frames, 1, "expected the pedal-chick frame") {
		assert.Equal(t, padcfg.NoteHiHatPedal, transport.frames[0][1])
	}
}

func TestModuleHiHatHitRespectsPedalState(t *testing.T) {
	sampler := sensor.NewManual()
	transport := &captureTransport{}
	reader := &pedal.Manual{Level: pedal.Pressed}
	m := New(padcfg.DefaultRoster(), padcfg.DefaultTunables(), sampler, reader, transport)

	m.Tick(0) // pedal-chick frame

	sampler.Set(padcfg.ChanHiHat, 300) // above hi-hat threshold of 80
	for now := uint32(1); now <= 8; now++ {
		m.Tick(now)
	}

	found := false
	for _, f := range transport.frames {
		if f[0]&0xF0 == 0x90 && f[1] == padcfg.NoteHiHatClosed {
			found = true
		}
	}
	assert.True(t, found, "expected a closed hi-hat note-on while pedal held, got %v", transport.frames)
}

func TestModulePadCountMatchesRoster(t *testing.T) {
	sampler := sensor.NewManual()
	transport := &captureTransport{}
	m := New(padcfg.DefaultRoster(), padcfg.DefaultTunables(), sampler, pedal.Zero{}, transport)

	roster := padcfg.DefaultRoster()
	assert.Len(t, m.Pads(), len(roster))
}

var _ voice.Transport = (*captureTransport)(nil)
