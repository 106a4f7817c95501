// Package tui provides the Bubble Tea front end for the board.
// It runs the tick loop, maps keys and mouse clicks, and drives the menus.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the board clock. Source identifies the model whose loop
// scheduled it; a model drops ticks from any other loop.
type TickMsg struct {
	Source int64
	At     time.Time
}

var tickSources atomic.Int64

// newTickSource returns an id unique within the process.
func newTickSource() int64 {
	return tickSources.Add(1)
}

// tickCmd schedules the next tick for source.
func tickCmd(source int64, tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Source: source, At: t}
	})
}
