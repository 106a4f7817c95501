// Package minesweeper implements the Minesweeper board engine: mine placement,
// adjacency counts, flood reveal, flagging, chording and win/loss decisions.
// It has no rendering or timing code. A presentation layer issues one command
// at a time and uses the returned Result to update its display.
package minesweeper

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	// ErrInvalidConfiguration is returned by New for bad dimensions or mine counts.
	ErrInvalidConfiguration = errors.New("minesweeper: invalid configuration")

	// ErrOutOfBounds is returned when a command targets a cell outside the grid.
	ErrOutOfBounds = errors.New("minesweeper: coordinates out of bounds")
)

// Status is the lifecycle state of a board.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "Playing"
	case StatusWon:
		return "Won"
	case StatusLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Point is a grid coordinate. X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Cell is one grid position.
type Cell struct {
	HasMine   bool
	Neighbors int // -1 on mined cells once mines are placed
	Revealed  bool
	Flagged   bool
	Exploded  bool
}

// Board owns the grid and the game lifecycle.
// It is not safe for concurrent use; one caller owns it.
type Board struct {
	cols      int
	rows      int
	mineCount int
	cells     [][]Cell
	rng       *rand.Rand

	minesPlaced   bool
	revealedCount int
	flagsPlaced   int
	status        Status
}

// New creates a fresh board with every cell covered. Mines are placed on the
// first Reveal. A nil rng is replaced with a time-seeded source.
func New(cols, rows, mines int, rng *rand.Rand) (*Board, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidConfiguration, cols, rows)
	}
	if mines < 1 || mines > cols*rows-1 {
		return nil, fmt.Errorf("%w: %d mines on a %dx%d grid (want 1..%d)",
			ErrInvalidConfiguration, mines, cols, rows, cols*rows-1)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cells := make([][]Cell, rows)
	for y := range cells {
		cells[y] = make([]Cell, cols)
	}

	return &Board{
		cols:      cols,
		rows:      rows,
		mineCount: mines,
		cells:     cells,
		rng:       rng,
		status:    StatusPlaying,
	}, nil
}

// Cols returns the grid width.
func (b *Board) Cols() int { return b.cols }

// Rows returns the grid height.
func (b *Board) Rows() int { return b.rows }

// MineCount returns the configured number of mines.
func (b *Board) MineCount() int { return b.mineCount }

// Status returns the current lifecycle state.
func (b *Board) Status() Status { return b.status }

// GameOver reports whether the board reached a terminal status.
func (b *Board) GameOver() bool { return b.status != StatusPlaying }

// MinesPlaced reports whether the first reveal has happened.
// Presentation layers use it as the timer start signal.
func (b *Board) MinesPlaced() bool { return b.minesPlaced }

// RevealedCount returns the number of safe cells revealed so far.
func (b *Board) RevealedCount() int { return b.revealedCount }

// FlagsPlaced returns the number of flagged cells.
func (b *Board) FlagsPlaced() int { return b.flagsPlaced }

// TotalSafe returns the number of cells without a mine.
func (b *Board) TotalSafe() int { return b.cols*b.rows - b.mineCount }

// MinesRemaining is the informational counter shown to the player.
// It floors at zero and does not stop over-flagging.
func (b *Board) MinesRemaining() int {
	return max(0, b.mineCount-b.flagsPlaced)
}

// InBounds reports whether (x, y) is on the grid.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

// Cell returns a copy of the cell at (x, y).
func (b *Board) Cell(x, y int) (Cell, error) {
	if !b.InBounds(x, y) {
		return Cell{}, b.outOfBounds(x, y)
	}
	return b.cells[y][x], nil
}

// Neighbors returns the in-bounds 8-neighborhood of (x, y).
func (b *Board) Neighbors(x, y int) []Point {
	out := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.InBounds(nx, ny) {
				out = append(out, Point{nx, ny})
			}
		}
	}
	return out
}

func (b *Board) outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) on a %dx%d grid", ErrOutOfBounds, x, y, b.cols, b.rows)
}

// placeMines lays out exactly mineCount mines uniformly over every cell except
// avoid, using a Fisher-Yates shuffle of the candidate indices.
func (b *Board) placeMines(avoid Point) {
	avoidIdx := avoid.Y*b.cols + avoid.X
	candidates := make([]int, 0, b.cols*b.rows-1)
	for i := 0; i < b.cols*b.rows; i++ {
		if i != avoidIdx {
			candidates = append(candidates, i)
		}
	}

	for i := len(candidates) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	for _, idx := range candidates[:b.mineCount] {
		b.cells[idx/b.cols][idx%b.cols].HasMine = true
	}

	b.computeNeighbors()
	b.minesPlaced = true
}

// computeNeighbors fills Neighbors for every cell from the current mine layout.
func (b *Board) computeNeighbors() {
	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.cols; x++ {
			if b.cells[y][x].HasMine {
				b.cells[y][x].Neighbors = -1
				continue
			}
			count := 0
			for _, n := range b.Neighbors(x, y) {
				if b.cells[n.Y][n.X].HasMine {
					count++
				}
			}
			b.cells[y][x].Neighbors = count
		}
	}
}
