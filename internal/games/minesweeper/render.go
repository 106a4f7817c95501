package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/core"
	engine "github.com/vovakirdan/tui-mines/internal/minesweeper"
)

const (
	cellWidth = 2 // spacer column + glyph column
	hudHeight = 2 // title + status line
	helpLines = 1
	minHUDW   = 32 // fits "Mines 000  Game Over  Time 000"
)

// layout places the board on screen. Each cell takes a spacer column followed
// by its glyph; the cursor brackets sit in the spacers on either side.
type layout struct {
	box     core.Rect // border around the grid
	hud     core.Rect // status line span
	originX int       // first spacer column of row 0
	originY int
	minW    int
	minH    int
}

func newLayout(cols, rows, screenW int) layout {
	boxW := cols*cellWidth + 3
	boxH := rows + 2
	hudW := max(boxW, minHUDW)
	box := core.NewRect(core.CenterIn(screenW, boxW), hudHeight, boxW, boxH)
	grid := box.Inset(1)

	return layout{
		box:     box,
		hud:     core.NewRect(core.CenterIn(screenW, hudW), 1, hudW, 1),
		originX: grid.X,
		originY: grid.Y,
		minW:    hudW,
		minH:    hudHeight + boxH + helpLines,
	}
}

// glyphX returns the screen column of the glyph for board column x.
func (l layout) glyphX(x int) int {
	return l.originX + x*cellWidth + 1
}

// cellAt maps a screen position to a board cell. A spacer column belongs to
// the cell on its right.
func (l layout) cellAt(sx, sy, cols, rows int) (engine.Point, bool) {
	dx := sx - l.originX
	y := sy - l.originY
	if dx < 0 || y < 0 || y >= rows {
		return engine.Point{}, false
	}
	x := dx / cellWidth
	if x >= cols {
		return engine.Point{}, false
	}
	return engine.Point{X: x, Y: y}, true
}

// numberColors is the classic palette, indexed by neighbor count.
var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorGray,
}

// glyph returns the rune and color for a visible cell state.
func glyph(st engine.CellState) (rune, core.Color) {
	switch st.View {
	case engine.ViewFlagged:
		return 'F', core.ColorBrightRed
	case engine.ViewEmpty:
		return ' ', core.ColorDefault
	case engine.ViewNumber:
		return rune('0' + st.Number), numberColors[st.Number]
	case engine.ViewMine:
		return '*', core.ColorBrightWhite
	case engine.ViewExploded:
		return 'X', core.ColorBrightRed
	case engine.ViewWrongFlag:
		return 'x', core.ColorOrange
	default:
		return '■', core.ColorGray
	}
}

// Render draws the board, status line and key help.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(g.layout.box, core.ColorGray)

	if g.paused {
		dst.DrawTextCenteredColored(g.layout.originY+g.size.Rows/2, "PAUSED", core.ColorBrightYellow)
	} else {
		g.renderCells(dst)
	}

	dst.DrawTextCenteredColored(g.layout.box.Bottom(), g.helpText(), core.ColorGray)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", g.layout.minW, g.layout.minH))
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCenteredColored(0, "MINESWEEPER - "+g.Title(), core.ColorBrightWhite)

	hud := g.layout.hud
	mines := fmt.Sprintf("Mines %03d", g.board.MinesRemaining())
	clock := fmt.Sprintf("Time %03d", g.DisplayedTime())
	dst.DrawTextColored(hud.X, hud.Y, mines, core.ColorBrightRed)
	dst.DrawTextColored(hud.Right()-len(clock), hud.Y, clock, core.ColorBrightCyan)

	var msg string
	color := core.ColorDefault
	switch g.board.Status() {
	case engine.StatusWon:
		msg, color = "You Win", core.ColorBrightGreen
	case engine.StatusLost:
		msg, color = "Game Over", core.ColorBrightRed
	}
	if msg != "" {
		dst.DrawTextColored(hud.X+(hud.W-len(msg))/2, hud.Y, msg, color)
	}
}

func (g *Game) renderCells(dst *core.Screen) {
	for y := range g.size.Rows {
		sy := g.layout.originY + y
		for x := range g.size.Cols {
			st, err := g.board.State(x, y)
			if err != nil {
				continue
			}
			r, c := glyph(st)
			dst.SetColored(g.layout.glyphX(x), sy, r, c)
		}
	}

	if g.board.GameOver() {
		return
	}
	cx := g.layout.glyphX(g.cursor.X)
	cy := g.layout.originY + g.cursor.Y
	dst.SetColored(cx-1, cy, '[', core.ColorBrightYellow)
	dst.SetColored(cx+1, cy, ']', core.ColorBrightYellow)
}

func (g *Game) helpText() string {
	if g.board.GameOver() {
		return "R: New board | Q: Quit"
	}
	return "Arrows/hjkl: Move | Space: Reveal | F: Flag | P: Pause | R: Restart"
}
