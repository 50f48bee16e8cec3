package pad

import (
	"github.com/arlojansen/drumcore/crosstalk"
	"github.com/arlojansen/drumcore/voice"
)

// ChannelReader samples a single analog channel by index. It is satisfied
// structurally by sensor.Sampler, so this package never imports sensor.
type ChannelReader interface {
	Read(channel int) uint16
}

// Unit is the common shape the tick driver uses to advance any pad,
// regardless of whether it is single- or dual-zone.
type Unit interface {
	TickChannel(now uint32, r ChannelReader, arb *crosstalk.Arbiter, emit voice.EmitFunc)
	State() State
}

// TickChannel reads this pad's one channel and advances it.
func (c *Controller) TickChannel(now uint32, r ChannelReader, arb *crosstalk.Arbiter, emit voice.EmitFunc) {
	c.Tick(now, r.Read(c.cfg.Channel), arb, emit)
}

// TickChannel reads both of this pad's channels and advances it.
func (c *DualController) TickChannel(now uint32, r ChannelReader, arb *crosstalk.Arbiter, emit voice.EmitFunc) {
	c.Tick(now, r.Read(c.cfg.Channel), r.Read(c.cfg.SecondaryChannel), arb, emit)
}
