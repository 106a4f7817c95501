package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// boardKeys binds key names, as reported by tea.KeyMsg.String, to board
// actions. Arrows, vim keys and WASD all move the cursor.
var boardKeys = map[string]core.Action{
	"up": core.ActionUp, "k": core.ActionUp, "w": core.ActionUp,
	"down": core.ActionDown, "j": core.ActionDown, "s": core.ActionDown,
	"left": core.ActionLeft, "h": core.ActionLeft, "a": core.ActionLeft,
	"right": core.ActionRight, "l": core.ActionRight, "d": core.ActionRight,
	" ": core.ActionReveal, "enter": core.ActionReveal,
	"f": core.ActionFlag, "m": core.ActionFlag,
	"p": core.ActionPause,
	"r": core.ActionRestart,
	"b": core.ActionBack, "esc": core.ActionBack,
	"q": core.ActionQuit, "ctrl+c": core.ActionQuit,
}

// MenuAction is a difficulty-picker command.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

var menuKeys = map[string]MenuAction{
	"up": MenuActionUp, "k": MenuActionUp, "w": MenuActionUp,
	"down": MenuActionDown, "j": MenuActionDown, "s": MenuActionDown,
	"enter": MenuActionSelect, " ": MenuActionSelect,
	"b": MenuActionBack, "esc": MenuActionBack,
	"tab": MenuActionScoreboard,
	"q":   MenuActionQuit, "ctrl+c": MenuActionQuit,
}

// KeyMapper translates Bubble Tea input into board and menu actions.
type KeyMapper struct {
	board map[string]core.Action
	menu  map[string]MenuAction
}

// NewKeyMapper returns a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{board: boardKeys, menu: menuKeys}
}

// MapKey returns the board action for msg, and whether it asks to quit.
// Unbound keys map to ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.board[msg.String()]
	return action, action == core.ActionQuit
}

// MapMouseToFrame records a left or right button press as a board click.
// Releases, motion and other buttons are ignored.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}

	var button core.PointerButton
	switch msg.Button {
	case tea.MouseButtonLeft:
		button = core.PointerPrimary
	case tea.MouseButtonRight:
		button = core.PointerSecondary
	default:
		return false
	}

	frame.Click(core.Pointer{X: msg.X, Y: msg.Y, Button: button})
	return true
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
