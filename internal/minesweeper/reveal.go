package minesweeper

// Reveal opens the cell at (x, y).
//
// On an already revealed number it behaves as Chord. The first reveal places
// the mines, never on (x, y), and sets Result.Started. Flagged or revealed
// targets, and any call after the game ended, are no-ops.
func (b *Board) Reveal(x, y int) (Result, error) {
	if !b.InBounds(x, y) {
		return Result{Status: b.status}, b.outOfBounds(x, y)
	}
	if b.status != StatusPlaying {
		return Result{Status: b.status}, nil
	}

	c := &b.cells[y][x]
	if c.Revealed && c.Neighbors > 0 {
		return b.chord(x, y), nil
	}

	var res Result
	if !b.minesPlaced {
		b.placeMines(Point{x, y})
		res.Started = true
	}

	if c.Flagged || c.Revealed {
		res.Status = b.status
		return res, nil
	}

	if c.HasMine {
		b.explode(x, y, &res)
		return res, nil
	}

	b.flood(x, y, &res)
	b.checkWin(&res)
	res.Status = b.status
	return res, nil
}

// Chord reveals every unflagged neighbor of an open number whose flagged
// neighbor count equals the number. Any other situation is a no-op.
func (b *Board) Chord(x, y int) (Result, error) {
	if !b.InBounds(x, y) {
		return Result{Status: b.status}, b.outOfBounds(x, y)
	}
	if b.status != StatusPlaying {
		return Result{Status: b.status}, nil
	}
	c := &b.cells[y][x]
	if !c.Revealed || c.Neighbors <= 0 {
		return Result{Status: b.status}, nil
	}
	return b.chord(x, y), nil
}

func (b *Board) chord(x, y int) Result {
	res := Result{Chorded: true}

	neighbors := b.Neighbors(x, y)
	flags := 0
	for _, n := range neighbors {
		if b.cells[n.Y][n.X].Flagged {
			flags++
		}
	}
	if flags != b.cells[y][x].Neighbors {
		res.Status = b.status
		return res
	}

	for _, n := range neighbors {
		nc := &b.cells[n.Y][n.X]
		if nc.Flagged || nc.Revealed {
			continue
		}
		if nc.HasMine {
			b.explode(n.X, n.Y, &res)
			return res
		}
		b.flood(n.X, n.Y, &res)
	}

	b.checkWin(&res)
	res.Status = b.status
	return res
}

// flood reveals from the seed using an explicit stack. Zero-count cells push
// their covered, unflagged neighbors.
func (b *Board) flood(x, y int, res *Result) {
	stack := []Point{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c := &b.cells[p.Y][p.X]
		if c.Revealed || c.Flagged {
			continue
		}
		c.Revealed = true
		b.revealedCount++
		res.Changes = append(res.Changes, Change{Point: p, State: b.stateAt(p.X, p.Y)})

		if c.Neighbors != 0 {
			continue
		}
		for _, n := range b.Neighbors(p.X, p.Y) {
			nc := &b.cells[n.Y][n.X]
			if !nc.Revealed && !nc.Flagged {
				stack = append(stack, n)
			}
		}
	}
}

// explode runs the loss path for the mine at (x, y).
func (b *Board) explode(x, y int, res *Result) {
	b.cells[y][x].Exploded = true
	b.status = StatusLost
	b.revealAllMines(res)

	res.Exploded = true
	res.ExplodedAt = Point{x, y}
	res.Status = b.status
}

// revealAllMines freezes the terminal display: every mine and every wrong flag
// is forced to Revealed. revealedCount is not touched.
func (b *Board) revealAllMines(res *Result) {
	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.cols; x++ {
			c := &b.cells[y][x]
			if !c.HasMine && !c.Flagged {
				continue
			}
			c.Revealed = true
			res.Changes = append(res.Changes, Change{Point: Point{x, y}, State: b.stateAt(x, y)})
		}
	}
}

// checkWin flips the board to Won once every safe cell is open and flags the
// remaining mines for display.
func (b *Board) checkWin(res *Result) {
	if b.revealedCount < b.TotalSafe() {
		return
	}
	b.status = StatusWon

	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.cols; x++ {
			c := &b.cells[y][x]
			if c.HasMine && !c.Flagged {
				c.Flagged = true
				// Counted so the mines-left readout ends at zero on a win
				b.flagsPlaced++
				res.Changes = append(res.Changes, Change{Point: Point{x, y}, State: b.stateAt(x, y)})
			}
		}
	}
}

// ToggleFlag flips the flag on a covered cell. It is a no-op before the first
// reveal, after the game ended, and on revealed cells.
func (b *Board) ToggleFlag(x, y int) (FlagResult, error) {
	if !b.InBounds(x, y) {
		return FlagResult{MinesRemaining: b.MinesRemaining()}, b.outOfBounds(x, y)
	}

	c := &b.cells[y][x]
	if !b.minesPlaced || b.status != StatusPlaying || c.Revealed {
		return FlagResult{Flagged: c.Flagged, MinesRemaining: b.MinesRemaining()}, nil
	}

	c.Flagged = !c.Flagged
	if c.Flagged {
		b.flagsPlaced++
	} else {
		b.flagsPlaced--
	}

	return FlagResult{
		Changed:        true,
		Flagged:        c.Flagged,
		MinesRemaining: b.MinesRemaining(),
	}, nil
}
