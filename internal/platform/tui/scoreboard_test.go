package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardLoadsBestTimes(t *testing.T) {
	store := openStore(t)
	for _, r := range []storage.Result{
		{GameID: "expert", Seconds: 300, Won: true, Cols: 30, Rows: 16, Mines: 99},
		{GameID: "expert", Seconds: 250, Won: true, Cols: 30, Rows: 16, Mines: 99},
		{GameID: "expert", Seconds: 20, Won: false, Cols: 30, Rows: 16, Mines: 99},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, nil, 100, 30)
	if len(m.levels) < 4 || m.levels[0].ID != "beginner" {
		t.Fatalf("levels = %v, expected presets starting with beginner", m.levels)
	}
	if len(m.results) != 0 {
		t.Errorf("beginner has %d results, expected none", len(m.results))
	}
	if m.statsLine() != "No games played" {
		t.Errorf("statsLine() = %q", m.statsLine())
	}

	m.SelectGame("expert")
	if len(m.results) != 2 || m.results[0].Seconds != 250 {
		t.Fatalf("results = %+v, expected two wins fastest first", m.results)
	}
	if got := m.statsLine(); !strings.Contains(got, "Played 3") || !strings.Contains(got, "Won 2") {
		t.Errorf("statsLine() = %q", got)
	}

	rows := m.table.Rows()
	if len(rows) != 2 || rows[0][1] != "4:10" || rows[0][2] != "30x16/99" {
		t.Errorf("table rows = %v", rows)
	}
	if !strings.Contains(m.View(), "BEST TIMES - Expert") {
		t.Error("view should name the selected difficulty")
	}
}

func TestScoreboardRecentView(t *testing.T) {
	store := openStore(t)
	for _, r := range []storage.Result{
		{GameID: "beginner", Seconds: 12, Won: true, Cols: 9, Rows: 9, Mines: 10},
		{GameID: "beginner", Seconds: 3, Won: false, Cols: 9, Rows: 9, Mines: 10},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, nil, 60, 24)
	if len(m.results) != 1 {
		t.Fatalf("best times = %d rows, expected only the win", len(m.results))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(ScoreboardModel)
	if m.view != viewRecent {
		t.Fatal("r should switch to recent games")
	}

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("recent rows = %v, expected both games", rows)
	}
	if rows[0][1] != "Lost" || rows[0][2] != "0:03" || rows[1][1] != "Won" {
		t.Errorf("recent rows = %v, expected newest first", rows)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if next.(ScoreboardModel).view != viewBestTimes {
		t.Error("r should toggle back to best times")
	}
}

func TestScoreboardStatsLayout(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveResult(storage.Result{GameID: "beginner", Seconds: 61, Won: true, Cols: 9, Rows: 9, Mines: 10}); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	wide := NewScoreboardModel(store, nil, 100, 30)
	if v := wide.View(); !strings.Contains(v, "Win rate") || !strings.Contains(v, "1:01") {
		t.Errorf("wide view should show the stats card:\n%s", v)
	}

	narrow := NewScoreboardModel(store, nil, 60, 30)
	if v := narrow.View(); strings.Contains(v, "Win rate") || !strings.Contains(v, "Played 1  Won 1 (100%)") {
		t.Errorf("narrow view should show the one-line stats:\n%s", v)
	}
}

func TestScoreboardCyclesPresets(t *testing.T) {
	m := NewScoreboardModel(nil, nil, 60, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.levels[m.level].ID != "intermediate" {
		t.Errorf("after tab = %q, expected intermediate", m.levels[m.level].ID)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(ScoreboardModel).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.level != len(m.levels)-1 {
		t.Errorf("shift+tab from first should wrap, level = %d", m.level)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := map[int]string{0: "0:00", 9: "0:09", 75: "1:15", 999: "16:39"}
	for in, want := range tests {
		if got := formatSeconds(in); got != want {
			t.Errorf("formatSeconds(%d) = %q, expected %q", in, got, want)
		}
	}
}
