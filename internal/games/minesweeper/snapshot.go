package minesweeper

import (
	engine "github.com/vovakirdan/tui-mines/internal/minesweeper"
)

// StateType names the phase a game is in.
type StateType string

const (
	StateWaiting     StateType = "waiting" // no reveal yet, clock stopped
	StatePlaying     StateType = "playing"
	StatePaused      StateType = "paused"
	StateWon         StateType = "won"
	StateLost        StateType = "lost"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	Preset         string
	Cols           int
	Rows           int
	Mines          int
	Cursor         engine.Point
	Revealed       int
	Flags          int
	MinesRemaining int
	Elapsed        int
	Grid           []string // one string per row, using the rendered glyphs
	State          StateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.board.Status() == engine.StatusWon:
		state = StateWon
	case g.board.Status() == engine.StatusLost:
		state = StateLost
	case g.paused:
		state = StatePaused
	case !g.board.MinesPlaced():
		state = StateWaiting
	}

	grid := make([]string, g.size.Rows)
	for y := range g.size.Rows {
		row := make([]rune, g.size.Cols)
		for x := range g.size.Cols {
			st, _ := g.board.State(x, y)
			row[x], _ = glyph(st)
		}
		grid[y] = string(row)
	}

	return Snapshot{
		Tick:           g.tick,
		Preset:         string(g.preset),
		Cols:           g.size.Cols,
		Rows:           g.size.Rows,
		Mines:          g.size.Mines,
		Cursor:         g.cursor,
		Revealed:       g.board.RevealedCount(),
		Flags:          g.board.FlagsPlaced(),
		MinesRemaining: g.board.MinesRemaining(),
		Elapsed:        g.Elapsed(),
		Grid:           grid,
		State:          state,
	}
}
