package pad

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arlojansen/drumcore/padcfg"
)

func TestMapVelocityBoundaries(t *testing.T) {
	tunables := padcfg.DefaultTunables()

	t.Run("peak at threshold+1 yields minVelocity", func(t *testing.T) {
		assert.Equal(t, tunables.MinVelocity, mapVelocity(56, 1, 55, tunables))
	})

	t.Run("peak at 1023 with gain 1 yields maxVelocity", func(t *testing.T) {
		assert.Equal(t, tunables.MaxVelocity, mapVelocity(1023, 1, 55, tunables))
	})

	t.Run("gain pushing adjusted above 1023 clamps to maxVelocity", func(t *testing.T) {
		assert.Equal(t, tunables.MaxVelocity, mapVelocity(900, 7, 35, tunables)) // ride bell: gain 7
	})

	t.Run("result is always within [minVelocity,maxVelocity]", func(t *testing.T) {
		for peak := uint16(0); peak <= 1023; peak += 7 {
			got := mapVelocity(peak, 1.2, 40, tunables)
			assert.GreaterOrEqual(t, got, tunables.MinVelocity)
			assert.LessOrEqual(t, got, tunables.MaxVelocity)
		}
	})
}
