package minesweeper

// View is the visible appearance of a cell, derived from its flags.
type View int

const (
	ViewCovered View = iota
	ViewFlagged
	ViewEmpty  // revealed, no adjacent mines
	ViewNumber // revealed, CellState.Number holds 1..8
	ViewMine
	ViewExploded
	ViewWrongFlag
)

// String returns a human-readable name for the view.
func (v View) String() string {
	switch v {
	case ViewCovered:
		return "Covered"
	case ViewFlagged:
		return "Flagged"
	case ViewEmpty:
		return "Empty"
	case ViewNumber:
		return "Number"
	case ViewMine:
		return "Mine"
	case ViewExploded:
		return "Exploded"
	case ViewWrongFlag:
		return "WrongFlag"
	default:
		return "Unknown"
	}
}

// CellState is what a presentation layer needs to draw one cell.
type CellState struct {
	View   View
	Number int // 1..8 when View == ViewNumber

	// Hoverable is true for covered, unflagged cells while the game is running.
	Hoverable bool
}

// Change records the new visible state of a cell touched by a command.
type Change struct {
	Point
	State CellState
}

// Result describes what a Reveal or Chord did.
type Result struct {
	Changes []Change
	Status  Status

	// Started is true only on the call that placed the mines.
	Started bool

	// Chorded is true when the call was handled as a chord.
	Chorded bool

	Exploded   bool
	ExplodedAt Point
}

// FlagResult describes what ToggleFlag did.
type FlagResult struct {
	Changed        bool
	Flagged        bool
	MinesRemaining int
}

// State returns the visible state of the cell at (x, y).
func (b *Board) State(x, y int) (CellState, error) {
	if !b.InBounds(x, y) {
		return CellState{}, b.outOfBounds(x, y)
	}
	return b.stateAt(x, y), nil
}

func (b *Board) stateAt(x, y int) CellState {
	c := &b.cells[y][x]
	switch {
	case c.Exploded:
		return CellState{View: ViewExploded}
	case c.Revealed && c.HasMine:
		return CellState{View: ViewMine}
	case c.Revealed && c.Flagged:
		return CellState{View: ViewWrongFlag}
	case c.Flagged:
		return CellState{View: ViewFlagged}
	case c.Revealed && c.Neighbors > 0:
		return CellState{View: ViewNumber, Number: c.Neighbors}
	case c.Revealed:
		return CellState{View: ViewEmpty}
	default:
		return CellState{View: ViewCovered, Hoverable: b.status == StatusPlaying}
	}
}
