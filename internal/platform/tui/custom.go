package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/config"
)

// CustomKeyMap defines the key bindings for the custom board form.
type CustomKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Inc      key.Binding
	Dec      key.Binding
	IncLarge key.Binding
	DecLarge key.Binding
	Confirm  key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k CustomKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Inc, k.Dec, k.Confirm, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k CustomKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Inc, k.Dec, k.IncLarge, k.DecLarge},
		{k.Confirm, k.Back, k.Quit},
	}
}

// DefaultCustomKeyMap returns default key bindings.
func DefaultCustomKeyMap() CustomKeyMap {
	return CustomKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "prev field")),
		Down:     key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("down/j", "next field")),
		Inc:      key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("right/+", "increase")),
		Dec:      key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("left/-", "decrease")),
		IncLarge: key.NewBinding(key.WithKeys("pgup", "L"), key.WithHelp("pgup", "+10")),
		DecLarge: key.NewBinding(key.WithKeys("pgdown", "H"), key.WithHelp("pgdown", "-10")),
		Confirm:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

const (
	fieldCols = iota
	fieldRows
	fieldMines
	fieldCount
)

// CustomModel lets the player pick custom board dimensions.
// Every change is clamped to the configured limits.
type CustomModel struct {
	cfg      config.MinesweeperConfig
	size     config.BoardSize
	field    int
	keys     CustomKeyMap
	help     help.Model
	width    int
	height   int
	done     bool
	back     bool
	quitting bool
}

// NewCustomModel creates the form, starting from the given size.
func NewCustomModel(cfg config.MinesweeperConfig, start config.BoardSize, width, height int) CustomModel {
	h := help.New()
	h.Width = width

	return CustomModel{
		cfg:    cfg,
		size:   cfg.ClampCustom(start.Cols, start.Rows, start.Mines),
		keys:   DefaultCustomKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
}

// Init initializes the model.
func (m CustomModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m CustomModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.field = (m.field + fieldCount - 1) % fieldCount
		case key.Matches(msg, m.keys.Down):
			m.field = (m.field + 1) % fieldCount
		case key.Matches(msg, m.keys.Inc):
			m.adjust(1)
		case key.Matches(msg, m.keys.Dec):
			m.adjust(-1)
		case key.Matches(msg, m.keys.IncLarge):
			m.adjust(10)
		case key.Matches(msg, m.keys.DecLarge):
			m.adjust(-10)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// adjust changes the focused field and re-clamps the whole size, so shrinking
// the grid also pulls the mine count down.
func (m *CustomModel) adjust(delta int) {
	s := m.size
	switch m.field {
	case fieldCols:
		s.Cols += delta
	case fieldRows:
		s.Rows += delta
	case fieldMines:
		s.Mines += delta
	}
	m.size = m.cfg.ClampCustom(s.Cols, s.Rows, s.Mines)
}

// View renders the form.
func (m CustomModel) View() string {
	if m.quitting || m.back || m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("CUSTOM BOARD", m.width))
	b.WriteString("\n\n")

	lim := m.cfg.Custom
	fields := []struct {
		label string
		value int
		hint  string
	}{
		{"Columns", m.size.Cols, fmt.Sprintf("%d-%d", lim.MinCols, lim.MaxCols)},
		{"Rows", m.size.Rows, fmt.Sprintf("%d-%d", lim.MinRows, lim.MaxRows)},
		{"Mines", m.size.Mines, fmt.Sprintf("1-%d", m.size.Cols*m.size.Rows-1)},
	}

	for i, f := range fields {
		cursor := "  "
		if i == m.field {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-8s < %3d >  (%s)", cursor, f.label, f.value, f.hint)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	density := float64(m.size.Mines) / float64(m.size.Cols*m.size.Rows) * 100
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Density %.1f%%", density), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))

	return b.String()
}

// Size returns the chosen, clamped board size.
func (m CustomModel) Size() config.BoardSize {
	return m.size
}

// Confirmed reports whether the player accepted the size.
func (m CustomModel) Confirmed() bool {
	return m.done
}

// IsGoingBack returns true if user wants to go back to menu.
func (m CustomModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m CustomModel) IsQuitting() bool {
	return m.quitting
}

// RunCustom shows the custom board form.
// ok is false when the player backed out or quit.
func RunCustom(cfg config.MinesweeperConfig, start config.BoardSize, width, height int) (size config.BoardSize, ok bool, err error) {
	p := tea.NewProgram(
		NewCustomModel(cfg, start, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return config.BoardSize{}, false, err
	}

	m, isCustom := finalModel.(CustomModel)
	if !isCustom || !m.Confirmed() {
		return config.BoardSize{}, false, nil
	}
	return m.Size(), true, nil
}
