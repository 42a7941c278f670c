// Package tui provides the Bubble Tea integration for the snake game.
// It owns the tick loop, maps keys to steering commands and renders
// session snapshots; the simulation itself lives in internal/snake.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one simulation step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
