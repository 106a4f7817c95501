package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	mines "github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.mines/host_key.
	HostKeyPath string

	// DBPath is the path to the results database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate for every session.
	TickRate int

	// Logger receives server and session events. Nil uses a stderr logger.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.mines/results.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    core.DefaultTickRate,
	}
}

// SSHServer serves one independent board per SSH session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int64 // open sessions
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "mines-ssh",
		})
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".mines", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(), // boards need a PTY
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sshSession.Pty()

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	palette := NewPalette(bubbletea.MakeRenderer(sshSession))
	model := NewSessionModel(s.store, cfg, palette)
	model.logger = s.logger.With("user", sshSession.User())

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"active", s.active.Add(1),
		)
		defer func() {
			s.logger.Info("session ended",
				"user", sshSession.User(),
				"duration", time.Since(start).Round(time.Second),
				"active", s.active.Add(-1),
			)
		}()
		next(sshSession)
	}
}

// ListenAndServe starts the SSH server and blocks until interrupted or ctx is done.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		s.closeStore()
		return err
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// ActiveSessions returns the number of connected players.
func (s *SSHServer) ActiveSessions() int64 {
	return s.active.Load()
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenCustom
	screenScores
	screenGame
)

// SessionModel drives one SSH session: menu -> (custom form) -> board -> menu.
// Child models signal exits through flags; their tea.Quit commands are dropped.
type SessionModel struct {
	store   *storage.Store
	config  core.RuntimeConfig
	palette *Palette
	screen  sessionScreen

	menu   MenuModel
	custom CustomModel
	scores ScoreboardModel
	game   Model

	lastCustom config.BoardSize
	quitting   bool
	logger     *log.Logger
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, palette *Palette) SessionModel {
	if palette == nil {
		palette = defaultPalette
	}
	settings := mines.Settings()
	return SessionModel{
		store:      store,
		config:     cfg,
		palette:    palette,
		menu:       NewMenuModel(store, cfg),
		lastCustom: settings.Custom.Default,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenCustom:
		return m.updateCustom(msg)
	case screenScores:
		return m.updateScores(msg)
	case screenGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		return m.quit()

	case m.menu.WantsScoreboard():
		m.screen = screenScores
		m.scores = NewScoreboardModel(m.store, m.palette, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		id := m.menu.Selected().GameID
		if id == string(config.PresetCustom) {
			m.screen = screenCustom
			m.custom = NewCustomModel(mines.Settings(), m.lastCustom, m.config.ScreenW, m.config.ScreenH)
			return m, m.custom.Init()
		}
		return m.startGame(id, nil)
	}

	return m, cmd
}

func (m SessionModel) updateCustom(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.custom.Update(msg)
	m.custom = next.(CustomModel)

	switch {
	case m.custom.IsQuitting():
		return m.quit()
	case m.custom.IsGoingBack():
		return m.toMenu()
	case m.custom.Confirmed():
		size := m.custom.Size()
		m.lastCustom = size
		return m.startGame(string(config.PresetCustom), &size)
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		return m.quit()
	case m.scores.IsGoingBack():
		return m.toMenu()
	}

	return m, cmd
}

// startGame creates the board model. size applies to custom boards only.
func (m SessionModel) startGame(id string, size *config.BoardSize) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		// Menu only lists registered presets
		return m.toMenu()
	}
	if size != nil {
		ApplyBoardSize(game, *size)
	}

	m.config.Seed = time.Now().UnixNano()
	m.game = NewModel(game, m.store, m.config)
	m.game.palette = m.palette
	m.game.logger = m.logger
	m.game.screenshots = false // would land on the server
	m.screen = screenGame

	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(Model)

	switch {
	case m.game.quitting:
		return m.quit()
	case m.game.WantsMenu():
		return m.toMenu()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenCustom:
		return m.custom.View()
	case screenScores:
		return m.scores.View()
	case screenGame:
		return m.game.View()
	default:
		return m.menu.View()
	}
}

// boardSizer is implemented by games whose dimensions can be chosen.
type boardSizer interface {
	SetBoardSize(cols, rows, mines int) config.BoardSize
}

// ApplyBoardSize sets custom dimensions on games that support them and
// returns the size actually applied after clamping.
func ApplyBoardSize(game registry.Game, size config.BoardSize) (config.BoardSize, bool) {
	bs, ok := game.(boardSizer)
	if !ok {
		return config.BoardSize{}, false
	}
	return bs.SetBoardSize(size.Cols, size.Rows, size.Mines), true
}
