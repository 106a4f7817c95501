package minesweeper

import (
	"errors"
	"math/rand"
	"testing"
)

// newBoardWithMines builds a board whose mines are already laid out at pts.
func newBoardWithMines(t *testing.T, cols, rows int, pts ...Point) *Board {
	t.Helper()

	b, err := New(cols, rows, len(pts), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New(%d, %d, %d) failed: %v", cols, rows, len(pts), err)
	}
	for _, p := range pts {
		b.cells[p.Y][p.X].HasMine = true
	}
	b.computeNeighbors()
	b.minesPlaced = true
	return b
}

func countMines(b *Board) int {
	n := 0
	for y := range b.rows {
		for x := range b.cols {
			if b.cells[y][x].HasMine {
				n++
			}
		}
	}
	return n
}

func TestNewInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name             string
		cols, rows, mine int
	}{
		{"zero cols", 0, 9, 1},
		{"zero rows", 9, 0, 1},
		{"negative cols", -3, 9, 1},
		{"no mines", 9, 9, 0},
		{"every cell mined", 3, 3, 9},
		{"more mines than cells", 3, 3, 20},
		{"single cell", 1, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := New(tc.cols, tc.rows, tc.mine, nil)
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("New(%d, %d, %d) error = %v, expected ErrInvalidConfiguration",
					tc.cols, tc.rows, tc.mine, err)
			}
			if b != nil {
				t.Error("New should not return a board on error")
			}
		})
	}
}

func TestNewFreshBoard(t *testing.T) {
	b, err := New(16, 16, 40, nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if b.Status() != StatusPlaying {
		t.Errorf("Status() = %v, expected Playing", b.Status())
	}
	if b.MinesPlaced() {
		t.Error("mines should not be placed before the first reveal")
	}
	if b.RevealedCount() != 0 || b.FlagsPlaced() != 0 {
		t.Errorf("counters = (%d, %d), expected zero", b.RevealedCount(), b.FlagsPlaced())
	}
	if b.MinesRemaining() != 40 {
		t.Errorf("MinesRemaining() = %d, expected 40", b.MinesRemaining())
	}
	if b.TotalSafe() != 216 {
		t.Errorf("TotalSafe() = %d, expected 216", b.TotalSafe())
	}
	if countMines(b) != 0 {
		t.Error("no cell should hold a mine before the first reveal")
	}

	st, _ := b.State(3, 3)
	if st.View != ViewCovered || !st.Hoverable {
		t.Errorf("State(3, 3) = %+v, expected hoverable covered cell", st)
	}
}

func TestNewSmallestBoard(t *testing.T) {
	if _, err := New(2, 1, 1, nil); err != nil {
		t.Errorf("New(2, 1, 1) failed: %v", err)
	}
}

func TestFirstRevealPlacesMines(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		b, err := New(9, 9, 10, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}

		res, err := b.Reveal(4, 4)
		if err != nil {
			t.Fatalf("seed %d: Reveal(4, 4) failed: %v", seed, err)
		}
		if !res.Started {
			t.Errorf("seed %d: first reveal should report Started", seed)
		}
		if !b.MinesPlaced() {
			t.Errorf("seed %d: MinesPlaced() should be true", seed)
		}
		if got := countMines(b); got != 10 {
			t.Errorf("seed %d: %d mines placed, expected 10", seed, got)
		}
		if b.cells[4][4].HasMine {
			t.Errorf("seed %d: first revealed cell holds a mine", seed)
		}
		if res.Exploded {
			t.Errorf("seed %d: first reveal exploded", seed)
		}
	}
}

func TestFirstRevealOnlyPlacesOnce(t *testing.T) {
	b, _ := New(9, 9, 10, rand.New(rand.NewSource(7)))
	b.Reveal(0, 0)

	layout := make([]bool, 0, 81)
	for y := range 9 {
		for x := range 9 {
			layout = append(layout, b.cells[y][x].HasMine)
		}
	}

	revealNextSafe := func() {
		for y := range 9 {
			for x := range 9 {
				c := b.cells[y][x]
				if !c.HasMine && !c.Revealed {
					res, _ := b.Reveal(x, y)
					if res.Started {
						t.Error("only the first reveal should report Started")
					}
					return
				}
			}
		}
	}
	revealNextSafe()

	i := 0
	for y := range 9 {
		for x := range 9 {
			if b.cells[y][x].HasMine != layout[i] {
				t.Fatalf("mine layout changed at (%d, %d)", x, y)
			}
			i++
		}
	}
}

func TestMinePlacementCoversEveryCandidate(t *testing.T) {
	var seen [9][9]bool
	for seed := int64(1); seed <= 300; seed++ {
		b, _ := New(9, 9, 10, rand.New(rand.NewSource(seed)))
		b.Reveal(4, 4)
		for y := range 9 {
			for x := range 9 {
				if b.cells[y][x].HasMine {
					seen[y][x] = true
				}
			}
		}
	}

	for y := range 9 {
		for x := range 9 {
			if x == 4 && y == 4 {
				if seen[y][x] {
					t.Error("excluded cell received a mine")
				}
				continue
			}
			if !seen[y][x] {
				t.Errorf("cell (%d, %d) never received a mine over 300 layouts", x, y)
			}
		}
	}
}

func TestNeighborCounts(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		b, _ := New(12, 7, 25, rand.New(rand.NewSource(seed)))
		b.Reveal(0, 0)

		for y := range b.rows {
			for x := range b.cols {
				c := b.cells[y][x]
				if c.HasMine {
					if c.Neighbors != -1 {
						t.Errorf("mined cell (%d, %d) Neighbors = %d, expected -1", x, y, c.Neighbors)
					}
					continue
				}

				want := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						nx, ny := x+dx, y+dy
						if (dx != 0 || dy != 0) && nx >= 0 && nx < b.cols && ny >= 0 && ny < b.rows &&
							b.cells[ny][nx].HasMine {
							want++
						}
					}
				}
				if c.Neighbors != want {
					t.Errorf("cell (%d, %d) Neighbors = %d, expected %d", x, y, c.Neighbors, want)
				}
			}
		}
	}
}

func TestNeighborsEdges(t *testing.T) {
	b, _ := New(5, 4, 1, nil)

	tests := []struct {
		name     string
		x, y     int
		expected int
	}{
		{"top-left corner", 0, 0, 3},
		{"bottom-right corner", 4, 3, 3},
		{"top edge", 2, 0, 5},
		{"left edge", 0, 2, 5},
		{"interior", 2, 2, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := len(b.Neighbors(tc.x, tc.y)); got != tc.expected {
				t.Errorf("len(Neighbors(%d, %d)) = %d, expected %d", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestOutOfBounds(t *testing.T) {
	b, _ := New(9, 9, 10, nil)

	coords := [][2]int{{-1, 0}, {0, -1}, {9, 0}, {0, 9}}
	for _, c := range coords {
		if _, err := b.Reveal(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Reveal(%d, %d) error = %v, expected ErrOutOfBounds", c[0], c[1], err)
		}
		if _, err := b.ToggleFlag(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("ToggleFlag(%d, %d) error = %v, expected ErrOutOfBounds", c[0], c[1], err)
		}
		if _, err := b.Chord(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Chord(%d, %d) error = %v, expected ErrOutOfBounds", c[0], c[1], err)
		}
		if _, err := b.State(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("State(%d, %d) error = %v, expected ErrOutOfBounds", c[0], c[1], err)
		}
	}

	if b.MinesPlaced() {
		t.Error("an out-of-bounds reveal must not place mines")
	}
}

func TestStatusString(t *testing.T) {
	if StatusPlaying.String() != "Playing" || StatusWon.String() != "Won" || StatusLost.String() != "Lost" {
		t.Error("unexpected Status names")
	}
	if Status(42).String() != "Unknown" {
		t.Error("out-of-range Status should be Unknown")
	}
}
