// Package tui provides the Bubble Tea integration for the rhythm game.
// It handles the terminal UI loop, input mapping, the chart picker and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the simulated time of one tick after a stall so
// arrows cannot jump past the hit window in a single frame.
const maxFrameDelta = 0.25

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks, clamped to
// [0, maxFrameDelta]. The first tick (zero last) assumes one nominal frame.
func frameDelta(last, now time.Time, tickRate int) float64 {
	if last.IsZero() {
		return 1 / float64(tickRate)
	}
	dt := now.Sub(last).Seconds()
	if dt < 0 {
		return 0
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}
