// Package session records every emitted voice.Event to a log file, named
// once with a strftime pattern, for post-hoc analysis of a playing
// session. This is ambient tooling external to the hit-detection core
// (spec §1), mirroring the teacher's optional logging sinks.
package session

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/arlojansen/drumcore/voice"
)

// Option configures a Recorder at construction time.
type Option func(*Recorder)

// WithLogger overrides the slog.Logger used for recorder-internal
// diagnostics (write failures).
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) { r.logger = logger }
}

// Recorder appends every emitted event, one per line, to a file whose
// name is derived from a strftime pattern evaluated at open time (e.g.
// "session-%Y%m%d-%H%M%S.log"). The file is not rotated. Each line is
// written straight to the file without buffering; a mutex serializes
// writers, following the same precedent as the event log's ring buffer.
type Recorder struct {
	mu     sync.Mutex
	file   *os.File
	logger *slog.Logger
}

// NewRecorder opens a new session log file under dir, named by expanding
// pattern (a strftime format string) against the current time.
func NewRecorder(dir, pattern string, opts ...Option) (*Recorder, error) {
	fmtr, err := strftime.New(pattern)
	if err != nil {
		return nil, fmt.Errorf("session: invalid filename pattern %q: %w", pattern, err)
	}

	name := fmtr.FormatString(time.Now())
	path := dir + string(os.PathSeparator) + name

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("session: opening %s: %w", path, err)
	}

	r := &Recorder{file: f, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Record appends ev as a human-readable line. It is separate from Write so
// a caller wiring a Recorder alongside a real Transport (see
// voice.MultiTransport) can feed it logical events directly rather than
// re-deriving them from wire bytes.
func (r *Recorder) Record(ev voice.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := fmt.Sprintf("%d %s\n", time.Now().UnixMilli(), ev.String())
	if _, err := r.file.WriteString(line); err != nil {
		r.logger.Warn("session: write failed", "error", err)
	}
}

// Write implements voice.Transport by decoding the wire frame back into a
// loggable line, for callers that only have a Transport to hand.
func (r *Recorder) Write(frame [3]byte) {
	kind := "note-on"
	if frame[0]&0xF0 == 0x80 {
		kind = "note-off"
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	line := fmt.Sprintf("%d %s note=%d vel=%d\n", time.Now().UnixMilli(), kind, frame[1], frame[2])
	if _, err := r.file.WriteString(line); err != nil {
		r.logger.Warn("session: write failed", "error", err)
	}
}

// Close closes the underlying file.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.file.Close()
}
