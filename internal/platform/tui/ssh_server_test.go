package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/config"
	mines "github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

func sessionStep(m SessionModel, msgs ...tea.Msg) SessionModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}
	return m
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), nil)
	if m.screen != screenMenu {
		t.Fatal("session should open on the menu")
	}

	m = sessionStep(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected game", m.screen)
	}
	if m.game.game.ID() != "beginner" {
		t.Errorf("game = %q, expected beginner", m.game.game.ID())
	}
	if m.game.screenshots {
		t.Error("remote boards must not write screenshots on the server")
	}

	stale := TickMsg{Source: m.game.tickSource, At: time.Now()}
	m = sessionStep(m, stale, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after back", m.screen)
	}

	m = sessionStep(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, expected scores", m.screen)
	}
	m = sessionStep(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after scores", m.screen)
	}

	down := tea.KeyMsg{Type: tea.KeyDown}
	m = sessionStep(m, down, down, down, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenCustom {
		t.Fatalf("screen = %v, expected custom form", m.screen)
	}

	m = sessionStep(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected custom game", m.screen)
	}
	g, ok := m.game.game.(*mines.Game)
	if !ok {
		t.Fatalf("game is %T", m.game.game)
	}
	if g.Board().Cols() != 10 || g.Board().Rows() != 9 {
		t.Errorf("custom board = %dx%d, expected 10x9", g.Board().Cols(), g.Board().Rows())
	}
	if m.lastCustom.Cols != 10 {
		t.Error("session should remember the last custom size")
	}

	m = sessionStep(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting || m.View() != "" {
		t.Error("ctrl+c should end the session")
	}
}

func TestSessionIgnoresStaleTicks(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), nil)
	m = sessionStep(m, tea.KeyMsg{Type: tea.KeyEnter})
	first := m.game.tickSource

	m = sessionStep(m, tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game.tickSource == first {
		t.Fatal("a new board should run its own tick loop")
	}

	_, cmd := m.Update(TickMsg{Source: first, At: time.Now()})
	if cmd != nil {
		t.Error("a tick from the closed board must not schedule another tick")
	}
}

func TestApplyBoardSize(t *testing.T) {
	game := mines.New(config.PresetCustom)
	size, ok := ApplyBoardSize(game, config.BoardSize{Cols: 100, Rows: 10, Mines: 20})
	if !ok {
		t.Fatal("minesweeper games accept a board size")
	}
	if size.Cols != 60 {
		t.Errorf("Cols = %d, expected clamp to 60", size.Cols)
	}
}
