// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
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

// frameClock turns tick timestamps into elapsed milliseconds.
// The first tick after a reset reports zero.
type frameClock struct {
	last time.Time
}

// Elapsed returns milliseconds since the previous tick and remembers now.
func (c *frameClock) Elapsed(now time.Time) float64 {
	if c.last.IsZero() || now.Before(c.last) {
		c.last = now
		return 0
	}
	dt := float64(now.Sub(c.last)) / float64(time.Millisecond)
	c.last = now
	return dt
}

// Reset forgets the previous tick, e.g. after a pause.
func (c *frameClock) Reset() {
	c.last = time.Time{}
}
