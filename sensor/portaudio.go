package sensor

import (
	"fmt"
	"math"

	"github.com/gordonklaus/portaudio"
)

// SoundCardSampler is a Sampler backed by a multi-channel audio interface:
// each analog drum channel is wired into a line-in, and a raw PCM capture
// stream stands in for the piezo ADC a real microcontroller would sample.
// This turns any USB audio interface into an ad-hoc sensor backend for
// development without dedicated drum-trigger hardware.
type SoundCardSampler struct {
	stream   *portaudio.Stream
	buf      []float32
	channels int
}

// NewSoundCardSampler opens the default input device with the given number
// of input channels, one per analog channel index, and starts capturing.
func NewSoundCardSampler(channels int) (*SoundCardSampler, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("sensor: initializing portaudio: %w", err)
	}

	dev, err := portaudio.DefaultInputDevice()
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("sensor: no default input device: %w", err)
	}

	buf := make([]float32, channels)
	params := portaudio.StreamParameters{
		Input: portaudio.StreamDeviceParameters{
			Device:   dev,
			Channels: channels,
			Latency:  dev.DefaultLowInputLatency,
		},
		SampleRate:      44100,
		FramesPerBuffer: 1,
	}

	stream, err := portaudio.OpenStream(params, buf)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("sensor: opening input stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("sensor: starting input stream: %w", err)
	}

	return &SoundCardSampler{stream: stream, buf: buf, channels: channels}, nil
}

// Read returns the most recently captured sample on channel, rescaled from
// the [-1, 1] float range PortAudio produces to the 10-bit [0, 1023] range
// the pad state machine expects.
func (s *SoundCardSampler) Read(channel int) uint16 {
	if err := s.stream.Read(); err != nil {
		return 0
	}
	if channel < 0 || channel >= len(s.buf) {
		return 0
	}
	v := s.buf[channel]
	if v < 0 {
		v = -v
	}
	return uint16(math.Min(1023, float64(v)*1023))
}

// Close stops capture and releases PortAudio resources.
func (s *SoundCardSampler) Close() error {
	if err := s.stream.Close(); err != nil {
		portaudio.Terminate()
		return fmt.Errorf("sensor: closing stream: %w", err)
	}
	return portaudio.Terminate()
}
