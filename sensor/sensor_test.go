package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroAlwaysReadsZero(t *testing.T) {
	var z Zero
	assert.Equal(t, uint16(0), z.Read(3))
}

func TestManualReadsBackSetValues(t *testing.T) {
	m := NewManual()
	m.Set(2, 512)
	assert.Equal(t, uint16(512), m.Read(2))
	assert.Equal(t, uint16(0), m.Read(9), "expected unset channel to read 0")
}

func TestReplayHoldsLastFrameUntilNextDue(t *testing.T) {
	r := NewReplay([]Frame{
		{At: 5, Readings: map[int]uint16{0: 300}},
		{At: 10, Readings: map[int]uint16{0: 0, 1: 200}},
	})

	r.Advance(0)
	assert.Equal(t, uint16(0), r.Read(0), "expected 0 before first frame")

	r.Advance(7)
	assert.Equal(t, uint16(300), r.Read(0), "expected 300 held from frame at t=5")
	assert.False(t, r.Done(), "expected one frame remaining")

	r.Advance(10)
	assert.Equal(t, uint16(0), r.Read(0))
	assert.Equal(t, uint16(200), r.Read(1))
	assert.True(t, r.Done(), "expected all frames consumed")
}
