// Package tui runs Frogger in a terminal with Bubble Tea, locally or over
// SSH. It maps keys to platform actions, paces the game and draws frames.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one game step.
type TickMsg time.Time

// tickInterval converts a rate in steps per second to an interval.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
