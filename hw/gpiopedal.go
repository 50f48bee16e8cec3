package hw

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"

	"github.com/arlojansen/drumcore/pedal"
)

// GpioPedal is a pedal.Reader backed by a Linux GPIO character-device
// line, configured with an internal pull-up (spec §6: high when released).
type GpioPedal struct {
	line *gpiocdev.Line
}

// NewGpioPedal opens offset on chip (e.g. "gpiochip0") as an input with an
// internal pull-up.
func NewGpioPedal(chip string, offset int) (*GpioPedal, error) {
	line, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		return nil, fmt.Errorf("hw: requesting pedal gpio line %s:%d: %w", chip, offset, err)
	}
	return &GpioPedal{line: line}, nil
}

// Read samples the current pin level. Low reads as pedal.Pressed, high as
// pedal.Released, matching the pull-up idle state.
func (g *GpioPedal) Read() pedal.Level {
	v, err := g.line.Value()
	if err != nil {
		// The core has no recoverable-error path for a sample read (spec
		// §7); treat a transient read fault as "released", the safe idle
		// level.
		return pedal.Released
	}
	if v == 0 {
		return pedal.Pressed
	}
	return pedal.Released
}

// Close releases the GPIO line.
func (g *GpioPedal) Close() error {
	return g.line.Close()
}
