package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElapsedWraparound(t *testing.T) {
	tests := []struct {
		name       string
		now, since uint32
		want       uint32
	}{
		{"ordinary", 150, 100, 50},
		{"zero elapsed", 100, 100, 0},
		{"single wrap", 5, 4294967294, 7}, // since=2^32-2, now=5 -> elapsed 7
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Elapsed(tt.now, tt.since))
		})
	}
}

func TestManualClock(t *testing.T) {
	m := NewManual(10)
	assert.Equal(t, uint32(10), m.Now())

	m.Advance(5)
	assert.Equal(t, uint32(15), m.Now())

	m.Set(4294967295)
	m.Advance(10)
	assert.Equal(t, uint32(9), m.Now(), "expected wraparound to 9")
}
