// Package hw holds the real-hardware backends for the core's narrow
// interfaces: a pedal.Reader over a Linux GPIO line, and a voice.Transport
// over a real serial port. Neither type is imported by pad/pedal/crosstalk/
// voice themselves, keeping the core hardware-agnostic (spec §7).
package hw

import (
	"fmt"

	"github.com/pkg/term"
)

// SerialTransport writes wire frames to a real serial device at the fixed
// 31,250 baud 8-N-1 MIDI rate of spec §6.
type SerialTransport struct {
	port *term.Term
}

// MidiBaud is the fixed line rate spec §6 requires.
const MidiBaud = 31250

// NewSerialTransport opens devicePath (e.g. "/dev/ttyUSB0") in raw mode at
// MidiBaud.
func NewSerialTransport(devicePath string) (*SerialTransport, error) {
	t, err := term.Open(devicePath, term.Speed(MidiBaud), term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("hw: opening serial transport %s: %w", devicePath, err)
	}
	return &SerialTransport{port: t}, nil
}

// Write sends the three-byte frame. A failed or short write is ignored and
// not retried, so the tick never blocks on it (spec §7: no blocking delays
// inside a tick).
func (s *SerialTransport) Write(frame [3]byte) {
	_, _ = s.port.Write(frame[:])
}

// Close releases the underlying serial device.
func (s *SerialTransport) Close() error {
	return s.port.Close()
}
