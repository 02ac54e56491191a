// Package tui provides the Bubble Tea hosts for the flappy engine: a local
// terminal program and an SSH server. Hosts own the frame pump, map keys to
// events and draw snapshots; the simulation itself lives in engine.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds elapsed between two frame signals, capped
// so a stalled terminal does not teleport the entity. The first frame
// (zero prev) counts as one nominal interval.
func frameDelta(prev, now time.Time, tickRate int, maxDelta float64) float64 {
	if tickRate <= 0 {
		tickRate = 60
	}
	if prev.IsZero() {
		return 1 / float64(tickRate)
	}
	dt := now.Sub(prev).Seconds()
	if dt < 0 {
		dt = 0
	}
	if maxDelta > 0 && dt > maxDelta {
		dt = maxDelta
	}
	return dt
}
