package core

// Color is a foreground color for a screen cell.
type Color uint8

// Board colors. The 1..8 neighbor numbers draw from the basic and bright
// ranges; gray and orange are chrome and wrong flags.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	colorCount
)

var ansi256 = [colorCount]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
}

// ANSI returns the 256-color code for c, or "" for the terminal default.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansi256[c]
}

// Colors returns every non-default color.
func Colors() []Color {
	out := make([]Color, 0, colorCount-1)
	for c := ColorDefault + 1; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}
