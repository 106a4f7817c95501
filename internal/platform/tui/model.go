package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	mines "github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

// boardGame is implemented by games that can report their grid and follow
// terminal resizes without losing the board.
type boardGame interface {
	BoardSize() config.BoardSize
	Resize(w, h int)
}

// snapshotGame is implemented by boards that can summarize their state.
type snapshotGame interface {
	Snapshot() mines.Snapshot
}

// Model is the Bubble Tea model for running a board.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	palette     *Palette
	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
	back        bool // Return to menu instead of exiting
	resultSaved bool // Whether the finished game has been recorded
	tickSource  int64
	screenshots bool        // ctrl+s writes the frame to disk
	logger      *log.Logger // nil discards save errors
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	cfg = cfg.Normalize()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:        game,
		screen:      core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:       store,
		config:      cfg,
		keyMapper:   NewKeyMapper(),
		palette:     defaultPalette,
		inputFrame:  core.NewInputFrame(),
		tickSource:  newTickSource(),
		screenshots: true,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is filled on the first tick (value receiver)

	return tickCmd(m.tickSource, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Source != m.tickSource {
			// Left over from a board this session already closed
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if m.screenshots {
			m.saveScreenshot()
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.back = true
		return m, tea.Quit
	case action == core.ActionRestart:
		m.restart()
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// restart deals a new board with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.resultSaved = false
	m.inputFrame.Clear()
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if bg, ok := m.game.(boardGame); ok {
		bg.Resize(msg.Width, msg.Height)
	} else if !m.gameState.Started {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.tickSource, m.config.TickRate)
}

// saveResult records the finished game. Boards that were never started are skipped.
func (m *Model) saveResult() {
	if m.store == nil || !m.gameState.Started {
		return
	}

	r := storage.Result{
		GameID:  m.game.ID(),
		Seconds: m.gameState.Elapsed,
		Won:     m.gameState.Won,
	}
	if bg, ok := m.game.(boardGame); ok {
		size := bg.BoardSize()
		r.Cols, r.Rows, r.Mines = size.Cols, size.Rows, size.Mines
	}

	id, err := m.store.SaveResult(r)
	if m.logger == nil {
		return
	}
	if err != nil {
		m.logger.Error("saving result", "preset", r.GameID, "error", err)
		return
	}
	m.logger.Info("game finished", "preset", r.GameID, "won", r.Won, "seconds", r.Seconds, "id", id)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".mines", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screenshot()), 0o600)
}

// screenshot is the current frame as text, headed by a state summary for
// boards that can describe themselves.
func (m *Model) screenshot() string {
	m.game.Render(m.screen)
	frame := m.screen.String() + "\n"

	sg, ok := m.game.(snapshotGame)
	if !ok {
		return frame
	}
	snap := sg.Snapshot()
	header := fmt.Sprintf("# %s %dx%d/%d state=%s revealed=%d flags=%d time=%d\n",
		snap.Preset, snap.Cols, snap.Rows, snap.Mines, snap.State, snap.Revealed, snap.Flags, snap.Elapsed)
	return header + frame
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.Render(m.screen)
}

// WantsMenu reports whether the player left with Back rather than Quit.
func (m Model) WantsMenu() bool {
	return m.back
}

// Run plays the game until the player quits or goes back.
// It returns true when the player asked to return to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (back bool, err error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Left click reveals, right click flags
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.WantsMenu(), nil
}
