// Package monitor is a terminal view of a running module: per-pad state
// and a feed of recently emitted events, rendered with tcell (ambient
// tooling, not part of the hit-detection core).
package monitor

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/arlojansen/drumcore/pad"
)

// PadLabel names a monitored pad alongside its live Unit.
type PadLabel struct {
	Name string
	Unit pad.Unit
}

// View owns the terminal screen and redraws the pad grid plus the recent
// event feed on demand.
type View struct {
	screen tcell.Screen
	log    *EventLog
}

// New initializes a tcell screen for monitoring. The caller must call
// Close when done.
func New(log *EventLog) (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("monitor: creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("monitor: initializing screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()
	return &View{screen: screen, log: log}, nil
}

// Close releases the terminal screen.
func (v *View) Close() {
	v.screen.Fini()
}

// Render draws the current state of every pad and the recent event feed.
func (v *View) Render(pads []PadLabel) {
	v.screen.Clear()

	stateStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	idleStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	for row, p := range pads {
		style := stateStyle
		if p.Unit.State() == pad.StateIdle {
			style = idleStyle
		}
		line := fmt.Sprintf("%-12s %s", p.Name, p.Unit.State())
		drawLine(v.screen, 0, row, line, style)
	}

	feedY := len(pads) + 2
	eventStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	drawLine(v.screen, 0, feedY, "recent events:", tcell.StyleDefault.Foreground(tcell.ColorWhite))
	for i, ev := range v.log.Recent(20) {
		drawLine(v.screen, 2, feedY+1+i, ev.String(), eventStyle)
	}

	v.screen.Show()
}

func drawLine(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
