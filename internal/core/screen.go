package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one screen position: a rune and its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a fixed-size frame buffer. The board adapter draws into it and
// the terminal front end turns it into styled output.
// Writes outside the buffer are dropped; reads outside it return a blank cell.
type Screen struct {
	width  int
	height int
	cells  []Cell // row-major, width*height
}

func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Resize reallocates the buffer. The overlapping top-left region is kept.
func (s *Screen) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	if s.cells != nil && width == s.width && height == s.height {
		return
	}

	next := make([]Cell, width*height)
	for i := range next {
		next[i] = blankCell
	}
	for y := range min(s.height, height) {
		copy(next[y*width:y*width+min(s.width, width)], s.cells[y*s.width:])
	}

	s.width, s.height, s.cells = width, height, next
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if s.inBounds(x, y) {
		s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
	}
}

// Get returns the rune at (x, y).
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[y*s.width+x]
}

// DrawText writes text left to right from (x, y), one rune per column.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawTextCenteredColored(y, text, ColorDefault)
}

func (s *Screen) DrawTextCenteredColored(y int, text string, c Color) {
	s.DrawTextColored(CenterIn(s.width, utf8.RuneCountInString(text)), y, text, c)
}

// DrawBox outlines r with single-line box characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	for x := r.X + 1; x < right; x++ {
		s.SetColored(x, r.Y, '─', c)
		s.SetColored(x, bottom, '─', c)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetColored(r.X, y, '│', c)
		s.SetColored(right, y, '│', c)
	}
	s.SetColored(r.X, r.Y, '┌', c)
	s.SetColored(right, r.Y, '┐', c)
	s.SetColored(r.X, bottom, '└', c)
	s.SetColored(right, bottom, '┘', c)
}

// Row returns row y as plain text. Rows off the buffer read as spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	sb.Grow(s.width)
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the whole buffer as plain text, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
