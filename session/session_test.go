package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlojansen/drumcore/padcfg"
	"github.com/arlojansen/drumcore/voice"
)

func TestRecorderWritesEvents(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewRecorder(dir, "session-%Y%m%d.log")
	require.NoError(t, err)

	rec.Record(voice.Event{Kind: voice.NoteOn, Note: padcfg.NoteKick, Velocity: 100})
	rec.Record(voice.Event{Kind: voice.NoteOff, Note: padcfg.NoteKick})

	require.NoError(t, rec.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "expected exactly one log file")

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if assert.Len(t, lines, 2, "expected 2 recorded lines") {
		assert.Contains(t, lines[0], "note-on")
		assert.Contains(t, lines[1], "note-off")
	}
}

func TestRecorderRejectsBadPattern(t *testing.T) {
	_, err := NewRecorder(t.TempDir(), "%Q-invalid")
	assert.Error(t, err, "expected an error for an invalid strftime pattern")
}
