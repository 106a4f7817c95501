package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"vim down", runeKey("j"), core.ActionDown, false},
		{"vim left", runeKey("h"), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space reveals", tea.KeyMsg{Type: tea.KeySpace}, core.ActionReveal, false},
		{"enter reveals", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionReveal, false},
		{"flag", runeKey("f"), core.ActionFlag, false},
		{"pause", runeKey("p"), core.ActionPause, false},
		{"restart", runeKey("r"), core.ActionRestart, false},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"quit", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestBoardKeysCoverEveryAction(t *testing.T) {
	bound := make(map[core.Action]bool)
	for _, a := range boardKeys {
		bound[a] = true
	}
	for _, a := range []core.Action{
		core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionReveal, core.ActionFlag, core.ActionPause, core.ActionRestart,
		core.ActionBack, core.ActionQuit,
	} {
		if !bound[a] {
			t.Errorf("no key bound to %v", a)
		}
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.MouseMsg
		ok     bool
		button core.PointerButton
	}{
		{"left press", tea.MouseMsg{X: 5, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true, core.PointerPrimary},
		{"right press", tea.MouseMsg{X: 5, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, true, core.PointerSecondary},
		{"left release", tea.MouseMsg{X: 5, Y: 7, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, false, 0},
		{"motion", tea.MouseMsg{X: 5, Y: 7, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, false, 0},
		{"wheel", tea.MouseMsg{X: 5, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			ok := km.MapMouseToFrame(tc.msg, &frame)
			if ok != tc.ok {
				t.Fatalf("MapMouseToFrame() = %v, expected %v", ok, tc.ok)
			}
			if !ok {
				if len(frame.Clicks()) != 0 {
					t.Error("ignored event should not add a click")
				}
				return
			}
			if len(frame.Clicks()) != 1 {
				t.Fatalf("frame has %d clicks, expected 1", len(frame.Clicks()))
			}
			c := frame.Clicks()[0]
			if c.X != 5 || c.Y != 7 || c.Button != tc.button {
				t.Errorf("click = %+v, expected (5,7) button %v", c, tc.button)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{runeKey("w"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.action {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.action)
		}
	}
}
