package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := range 4 {
		if s.Row(y) != strings.Repeat(" ", 12) {
			t.Errorf("Row(%d) = %q, expected blanks", y, s.Row(y))
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColored(3, 2, '■', ColorGray)
	s.Set(4, 2, '3')

	if got := s.GetCell(3, 2); got != (Cell{Rune: '■', Color: ColorGray}) {
		t.Errorf("GetCell(3, 2) = %+v", got)
	}
	if got := s.GetCell(4, 2); got.Color != ColorDefault || got.Rune != '3' {
		t.Errorf("GetCell(4, 2) = %+v", got)
	}

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 0},
		{"top", 0, -1},
		{"right", 10, 0},
		{"bottom", 0, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.SetColored(tc.x, tc.y, 'X', ColorBrightRed) // must not panic
			if s.GetCell(tc.x, tc.y) != blankCell {
				t.Errorf("GetCell(%d, %d) should be blank off the buffer", tc.x, tc.y)
			}
		})
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawTextColored(0, 0, "F*X", ColorBrightRed)
	s.Clear()

	if s.String() != "      \n      " {
		t.Errorf("String() after Clear = %q", s.String())
	}
	if s.GetCell(0, 0).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawText(5, 0, "Mines 010")
	if got := s.Row(0); got != "     Min" {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}

	s.Clear()
	s.DrawText(-2, 0, "Time")
	if got := s.Row(0); got != "me      " {
		t.Errorf("Row(0) = %q, expected left clip", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		text     string
		expected string
	}{
		{"even", 10, "ab", "    ab    "},
		{"odd leftover", 9, "ab", "   ab    "},
		{"multibyte", 7, "[■]", "  [■]  "},
		{"too wide", 4, "PAUSED", "PAUS"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(tc.width, 1)
			s.DrawTextCentered(0, tc.text)
			if got := s.Row(0); got != tc.expected {
				t.Errorf("Row(0) = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 4)
	s.DrawBox(NewRect(1, 0, 5, 4), ColorGray)

	want := []string{
		" ┌───┐ ",
		" │   │ ",
		" │   │ ",
		" └───┘ ",
	}
	for y, w := range want {
		if got := s.Row(y); got != w {
			t.Errorf("Row(%d) = %q, expected %q", y, got, w)
		}
	}
	if s.GetCell(1, 0).Color != ColorGray {
		t.Error("box should use the given color")
	}
}

func TestScreenDrawBoxDegenerate(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawBox(NewRect(0, 0, 1, 4), ColorGray)
	s.DrawBox(NewRect(0, 0, 4, 0), ColorGray)

	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("boxes thinner than 2 cells should draw nothing, got %q", s.String())
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 3, "World")

	s.Resize(3, 2)
	if s.String() != "Hel\n   " {
		t.Errorf("after shrink String() = %q", s.String())
	}

	s.Resize(6, 3)
	if s.Row(0) != "Hel   " || s.Row(2) != "      " {
		t.Errorf("after grow rows = %q / %q", s.Row(0), s.Row(2))
	}
}

func TestScreenResizeNegative(t *testing.T) {
	s := NewScreen(-3, 2)
	if s.Width() != 0 || s.String() != "\n" {
		t.Errorf("negative width should clamp to zero, got %dx%d %q", s.Width(), s.Height(), s.String())
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(4, 1)
	if s.Row(3) != "    " || s.Row(-1) != "    " {
		t.Error("rows off the buffer should read as spaces")
	}
}
