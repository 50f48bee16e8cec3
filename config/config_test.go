package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlojansen/drumcore/padcfg"
)

const sampleYAML = `
pads:
  - channel: 0
    threshold: 120
    retrigger_ceiling: 900
    gain: 1
    note: 36
    role: kick
  - channel: 5
    threshold: 55
    retrigger_ceiling: 550
    gain: 1
    note: 38
    role: snare
    dual_zone: true
    secondary_channel: 6
    secondary_threshold: 40
    secondary_ceiling: 100
    secondary_gain: 1
    secondary_note: 39
tunables:
  peak_window_ms: 7
  silent_debounce_ms: 30
  repique_window_ms: 180
  choke_confirm_ms: 20
  crosstalk_window_ms: 130
  high_velocity: 115
  low_velocity_discard: 29
  min_velocity: 10
  max_velocity: 127
  retrigger_min_multiplier: 1.5
`

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drumcore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadRosterAndTunables(t *testing.T) {
	path := writeTemp(t, sampleYAML)

	roster, tunables, err := Load(path)
	require.NoError(t, err)
	require.Len(t, roster, 2)

	assert.Equal(t, padcfg.RoleKick, roster[0].Role)
	assert.True(t, roster[1].IsDualZone)
	assert.Equal(t, uint8(39), roster[1].SecondaryNote)
	assert.Equal(t, padcfg.DefaultTunables(), tunables, "expected tunables to match the documented defaults")
}

func TestLoadMissingTunablesFallsBackToDefaults(t *testing.T) {
	path := writeTemp(t, `
pads:
  - channel: 2
    threshold: 230
    retrigger_ceiling: 950
    gain: 1
    note: 43
`)
	_, tunables, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, padcfg.DefaultTunables(), tunables)
}

func TestLoadUnknownRole(t *testing.T) {
	path := writeTemp(t, `
pads:
  - channel: 0
    threshold: 10
    note: 1
    role: cowbell
`)
	_, _, err := Load(path)
	assert.Error(t, err, "expected an error for an unknown role")
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err, "expected an error for a missing file")
}

func TestLoadChannelOutOfRange(t *testing.T) {
	path := writeTemp(t, `
pads:
  - channel: 11
    threshold: 10
    note: 1
`)
	_, _, err := Load(path)
	assert.Error(t, err, "expected an error for a channel index above ChanCrashBell")
}

func TestLoadNegativeChannelOutOfRange(t *testing.T) {
	path := writeTemp(t, `
pads:
  - channel: -1
    threshold: 10
    note: 1
`)
	_, _, err := Load(path)
	assert.Error(t, err, "expected an error for a negative channel index")
}

func TestLoadDualZoneSecondaryChannelOutOfRange(t *testing.T) {
	path := writeTemp(t, `
pads:
  - channel: 5
    threshold: 55
    note: 38
    dual_zone: true
    secondary_channel: 11
    secondary_note: 39
`)
	_, _, err := Load(path)
	assert.Error(t, err, "expected an error for a secondary channel index above ChanCrashBell")
}

func TestLoadDualZoneMissingSecondaryNote(t *testing.T) {
	path := writeTemp(t, `
pads:
  - channel: 5
    threshold: 55
    note: 38
    dual_zone: true
    secondary_channel: 6
`)
	_, _, err := Load(path)
	assert.Error(t, err, "expected an error for a dual-zone pad missing its secondary note")
}
