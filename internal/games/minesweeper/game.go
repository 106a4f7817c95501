// Package minesweeper adapts the board engine to the platform's Game
// interface: cursor movement, mouse mapping, the elapsed-time clock and
// rendering into a screen buffer.
package minesweeper

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	engine "github.com/vovakirdan/tui-mines/internal/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

// Package-level configuration, set once by the CLI before games start.
var (
	settingsMu sync.RWMutex
	settings   = config.DefaultMinesweeperConfig()
)

// SetConfig replaces the preset table used by new games.
func SetConfig(cfg config.MinesweeperConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

// Settings returns the active configuration.
func Settings() config.MinesweeperConfig {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// Game is one playable board at a fixed difficulty.
type Game struct {
	preset     config.DifficultyPreset
	size       config.BoardSize
	customSize *config.BoardSize // overrides the custom default when set

	board *engine.Board
	tick  uint64

	tickRate     int
	elapsedTicks int
	maxDisplay   int

	cursor engine.Point

	screenW  int
	screenH  int
	layout   layout
	paused   bool
	tooSmall bool
}

// New creates a game for the given preset.
func New(preset config.DifficultyPreset) *Game {
	return &Game{preset: preset}
}

func init() {
	for i, p := range config.Presets() {
		registry.Register(string(p), i, func() registry.Game {
			return New(p)
		})
	}
}

// ID returns the preset name, which doubles as the storage key.
func (g *Game) ID() string {
	return string(g.preset)
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.preset {
	case config.PresetBeginner:
		return "Beginner"
	case config.PresetIntermediate:
		return "Intermediate"
	case config.PresetExpert:
		return "Expert"
	case config.PresetCustom:
		return "Custom"
	default:
		return string(g.preset)
	}
}

// SetBoardSize picks the dimensions of a custom board. The values are clamped
// to the configured limits and take effect on the next Reset. Non-custom
// presets ignore it.
func (g *Game) SetBoardSize(cols, rows, mines int) config.BoardSize {
	size := Settings().ClampCustom(cols, rows, mines)
	if g.preset == config.PresetCustom {
		g.customSize = &size
	}
	return size
}

// BoardSize returns the dimensions the next Reset will use.
func (g *Game) BoardSize() config.BoardSize {
	cfg := Settings()
	if g.preset == config.PresetCustom && g.customSize != nil {
		return *g.customSize
	}
	size, err := cfg.Preset(g.preset)
	if err != nil {
		return config.DefaultMinesweeperConfig().Presets[config.PresetBeginner]
	}
	return size
}

// Reset starts a fresh, unmined board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.size = g.BoardSize()
	g.maxDisplay = Settings().Timer.MaxDisplay

	board, err := engine.New(g.size.Cols, g.size.Rows, g.size.Mines, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		// Only reachable with a hand-built config; fall back to beginner
		g.size = config.DefaultMinesweeperConfig().Presets[config.PresetBeginner]
		board, _ = engine.New(g.size.Cols, g.size.Rows, g.size.Mines, rand.New(rand.NewSource(cfg.Seed)))
	}
	g.board = board

	g.tick = 0
	g.tickRate = cfg.Normalize().TickRate
	g.elapsedTicks = 0
	g.cursor = engine.Point{X: g.size.Cols / 2, Y: g.size.Rows / 2}
	g.paused = false

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the layout for a new terminal size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = newLayout(g.size.Cols, g.size.Rows, w)
	g.tooSmall = w < g.layout.minW || h < g.layout.minH
}

// Step applies one tick of input and advances the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, input := range in.Inputs {
		if input.Action == core.ActionPause {
			if !g.board.GameOver() {
				g.paused = !g.paused
			}
			continue
		}
		if g.paused {
			continue
		}
		if input.IsClick() {
			g.click(input.Click)
			continue
		}
		g.apply(input.Action)
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.clockRunning() {
		g.elapsedTicks++
	}

	return core.StepResult{State: g.State()}
}

// apply runs one key action against the cursor.
func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionUp:
		g.moveCursor(0, -1)
	case core.ActionDown:
		g.moveCursor(0, 1)
	case core.ActionLeft:
		g.moveCursor(-1, 0)
	case core.ActionRight:
		g.moveCursor(1, 0)
	case core.ActionReveal:
		g.reveal(g.cursor)
	case core.ActionFlag:
		g.toggleFlag(g.cursor)
	}
}

// click moves the cursor to the pressed cell and acts on it.
func (g *Game) click(c core.Pointer) {
	p, ok := g.layout.cellAt(c.X, c.Y, g.size.Cols, g.size.Rows)
	if !ok {
		return
	}
	g.cursor = p
	switch c.Button {
	case core.PointerPrimary:
		g.reveal(p)
	case core.PointerSecondary:
		g.toggleFlag(p)
	}
}

func (g *Game) moveCursor(dx, dy int) {
	g.cursor.X = core.Clamp(g.cursor.X+dx, 0, g.size.Cols-1)
	g.cursor.Y = core.Clamp(g.cursor.Y+dy, 0, g.size.Rows-1)
}

func (g *Game) reveal(p engine.Point) {
	//nolint:errcheck // p is always on the board here
	g.board.Reveal(p.X, p.Y)
}

func (g *Game) toggleFlag(p engine.Point) {
	//nolint:errcheck // p is always on the board here
	g.board.ToggleFlag(p.X, p.Y)
}

// clockRunning is true between the first reveal and the end of the game.
func (g *Game) clockRunning() bool {
	return g.board.MinesPlaced() && !g.board.GameOver()
}

// Elapsed returns whole seconds since the first reveal.
func (g *Game) Elapsed() int {
	return g.elapsedTicks / g.tickRate
}

// DisplayedTime returns the elapsed time capped for the status line.
func (g *Game) DisplayedTime() int {
	if g.maxDisplay > 0 {
		return min(g.Elapsed(), g.maxDisplay)
	}
	return g.Elapsed()
}

// Board exposes the engine board for inspection.
func (g *Game) Board() *engine.Board {
	return g.board
}

// Cursor returns the keyboard cursor position.
func (g *Game) Cursor() engine.Point {
	return g.cursor
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Started:  g.board.MinesPlaced(),
		GameOver: g.board.GameOver(),
		Won:      g.board.Status() == engine.StatusWon,
		Paused:   g.paused || g.tooSmall,
		Elapsed:  g.Elapsed(),
	}
}
