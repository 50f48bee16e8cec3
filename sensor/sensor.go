// Package sensor provides the Sampler abstraction the tick driver polls for
// raw analog channel readings, plus test/offline backends. The real
// soundcard-backed implementation lives in SoundCardSampler (portaudio.go).
package sensor

// Sampler reads the current 10-bit value of an analog channel. Index
// meaning follows the default channel assignment of spec §6 unless a
// config remaps it.
type Sampler interface {
	Read(channel int) uint16
}

// Zero is a Sampler that always reads 0, useful for channels with no pad
// wired, or as a default before a real backend is attached.
type Zero struct{}

func (Zero) Read(int) uint16 { return 0 }

// Manual is a Sampler a test or a scripted replay drives directly.
type Manual struct {
	values map[int]uint16
}

// NewManual creates a Manual sampler with all channels initially at 0.
func NewManual() *Manual {
	return &Manual{values: make(map[int]uint16)}
}

func (m *Manual) Read(channel int) uint16 { return m.values[channel] }

// Set assigns the next reading a channel will report.
func (m *Manual) Set(channel int, value uint16) { m.values[channel] = value }
