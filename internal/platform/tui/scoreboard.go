package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

const (
	statsCardMinWidth = 84 // below this the stats collapse to one line
	statsCardWidth    = 22
	scoreRowsLimit    = 100
)

// resultsView selects what the results table lists.
type resultsView int

const (
	viewBestTimes resultsView = iota
	viewRecent
)

func (v resultsView) title() string {
	if v == viewRecent {
		return "RECENT GAMES"
	}
	return "BEST TIMES"
}

// ScoreboardKeyMap defines the key bindings for the results screen.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Toggle    key.Binding
	Back      key.Binding
	Quit      key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextLevel, k.PrevLevel, k.Toggle, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextLevel, k.PrevLevel, k.Toggle},
		{k.Back, k.Quit},
	}
}

func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev level"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "best/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows stored results for one difficulty at a time.
type ScoreboardModel struct {
	levels  []registry.GameInfo
	level   int
	view    resultsView
	store   *storage.Store
	results []storage.Result
	stats   *storage.GameStats

	table   table.Model
	help    help.Model
	keys    ScoreboardKeyMap
	palette *Palette

	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens on the first difficulty's best times.
// A nil store shows empty tables; a nil palette uses the local terminal.
func NewScoreboardModel(store *storage.Store, palette *Palette, width, height int) ScoreboardModel {
	if palette == nil {
		palette = defaultPalette
	}

	m := ScoreboardModel{
		levels:  registry.List(),
		store:   store,
		keys:    DefaultScoreboardKeyMap(),
		help:    help.New(),
		palette: palette,
		width:   width,
		height:  height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= statsCardMinWidth
}

func (m ScoreboardModel) columns() []table.Column {
	if m.view == viewRecent {
		return []table.Column{
			{Title: "Date", Width: 13},
			{Title: "Result", Width: 7},
			{Title: "Time", Width: 7},
			{Title: "Board", Width: 10},
		}
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Time", Width: 7},
		{Title: "Board", Width: 10},
		{Title: "Date", Width: 13},
	}
}

func (m ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-11)), // tabs, title, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// current returns the selected difficulty, or false when none are registered.
func (m ScoreboardModel) current() (registry.GameInfo, bool) {
	if len(m.levels) == 0 {
		return registry.GameInfo{}, false
	}
	return m.levels[m.level], true
}

// reload fetches results and stats for the selected difficulty and view.
func (m *ScoreboardModel) reload() {
	m.results, m.stats = nil, nil

	lvl, ok := m.current()
	if ok && m.store != nil {
		var err error
		if m.view == viewRecent {
			m.results, err = m.store.RecentResults(lvl.ID, scoreRowsLimit)
		} else {
			m.results, err = m.store.BestTimes(lvl.ID, scoreRowsLimit)
		}
		if err != nil {
			m.results = nil
		}
		if stats, err := m.store.GetGameStats(lvl.ID); err == nil {
			m.stats = stats
		}
	}

	m.table.SetColumns(m.columns())
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

func (m ScoreboardModel) rows() []table.Row {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		board := fmt.Sprintf("%dx%d/%d", r.Cols, r.Rows, r.Mines)
		date := r.CreatedAt.Local().Format("Jan 02 15:04")

		if m.view == viewRecent {
			outcome := "Lost"
			if r.Won {
				outcome = "Won"
			}
			rows[i] = table.Row{date, outcome, formatSeconds(r.Seconds), board}
			continue
		}
		rows[i] = table.Row{fmt.Sprintf("%d", i+1), formatSeconds(r.Seconds), board, date}
	}
	return rows
}

func (m *ScoreboardModel) shiftLevel(delta int) {
	if len(m.levels) == 0 {
		return
	}
	m.level = (m.level + delta + len(m.levels)) % len(m.levels)
	m.reload()
}

// statsLine is the one-line summary used on narrow terminals.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.Played == 0 {
		return "No games played"
	}
	line := fmt.Sprintf("Played %d  Won %d (%.0f%%)", m.stats.Played, m.stats.Won, m.stats.WinRate()*100)
	if m.stats.Won > 0 {
		line += "  Avg win " + formatSeconds(int(m.stats.AvgWinTime+0.5))
	}
	return line
}

// statsCard lists the same numbers vertically for the wide layout.
func (m ScoreboardModel) statsCard() string {
	lines := []string{"Stats", ""}
	if m.stats == nil || m.stats.Played == 0 {
		lines = append(lines, "No games played")
	} else {
		best, avg := "-", "-"
		if m.stats.Won > 0 {
			best = formatSeconds(m.stats.BestTime)
			avg = formatSeconds(int(m.stats.AvgWinTime + 0.5))
		}
		lines = append(lines,
			fmt.Sprintf("%-9s %d", "Played", m.stats.Played),
			fmt.Sprintf("%-9s %d", "Won", m.stats.Won),
			fmt.Sprintf("%-9s %.0f%%", "Win rate", m.stats.WinRate()*100),
			fmt.Sprintf("%-9s %s", "Best", best),
			fmt.Sprintf("%-9s %s", "Average", avg),
		)
		if !m.stats.LastPlayed.IsZero() {
			lines = append(lines, fmt.Sprintf("%-9s %s", "Last", m.stats.LastPlayed.Local().Format("Jan 02")))
		}
	}

	return m.palette.Style().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(statsCardWidth).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextLevel):
			m.shiftLevel(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevLevel):
			m.shiftLevel(-1)
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			m.view = 1 - m.view
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.table.SetRows(m.rows())
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := m.view.title()
	if lvl, ok := m.current(); ok {
		title += " - " + lvl.Title
	}
	heading := m.palette.Style().Bold(true).Foreground(lipgloss.Color("229"))
	muted := m.palette.Style().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(centerText(heading.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.levelTabs(), m.width))
	b.WriteString("\n\n")

	panel := m.palette.Style().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(m.tableContent())

	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panel, "  ", m.statsCard()))
	} else {
		b.WriteString(centerText(muted.Render(m.statsLine()), m.width))
		b.WriteString("\n")
		b.WriteString(panel)
	}

	b.WriteString("\n")
	b.WriteString(muted.Render(m.help.View(m.keys)))
	return b.String()
}

// levelTabs renders one tab per difficulty, the selected one highlighted.
func (m ScoreboardModel) levelTabs() string {
	active := m.palette.Style().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	idle := m.palette.Style().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)

	tabs := make([]string, len(m.levels))
	for i, lvl := range m.levels {
		if i == m.level {
			tabs[i] = active.Render(lvl.Title)
		} else {
			tabs[i] = idle.Render(lvl.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ScoreboardModel) tableContent() string {
	if len(m.results) > 0 {
		return m.table.View()
	}

	msg := "No wins recorded yet.\nClear a board to set a time!"
	if m.view == viewRecent {
		msg = "No games recorded yet."
	}
	return m.palette.Style().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4).
		Render(msg)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// SelectGame focuses the given difficulty. Unknown IDs are ignored.
func (m *ScoreboardModel) SelectGame(gameID string) {
	for i, lvl := range m.levels {
		if lvl.ID == gameID {
			m.level = i
			m.reload()
			return
		}
	}
}

// RunScoreboard runs the results screen, starting on gameID when set.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, gameID string, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, nil, width, height)
	model.SelectGame(gameID)

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
