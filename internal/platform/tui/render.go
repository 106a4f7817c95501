package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// Palette holds the styles for one output. SSH sessions get their own so
// color support is detected per client terminal.
type Palette struct {
	renderer *lipgloss.Renderer
	styles   map[core.Color]lipgloss.Style
	plain    lipgloss.Style
}

// NewPalette builds styles bound to the given renderer.
func NewPalette(r *lipgloss.Renderer) *Palette {
	p := &Palette{
		renderer: r,
		styles:   make(map[core.Color]lipgloss.Style),
		plain:    r.NewStyle(),
	}
	for _, c := range core.Colors() {
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(c.ANSI()))
	}
	return p
}

// Style returns a fresh style bound to the palette's renderer.
func (p *Palette) Style() lipgloss.Style {
	return p.renderer.NewStyle()
}

var defaultPalette = NewPalette(lipgloss.DefaultRenderer())

// Render converts a Screen buffer to a styled string.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p.styles[color]
			if !ok {
				style = p.plain
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
