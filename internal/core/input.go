package core

// Action is a board command, decoupled from the key that produced it.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionReveal // open the cell under the cursor, or chord a number
	ActionFlag   // toggle the flag under the cursor
	ActionPause
	ActionRestart // deal a new board
	ActionBack    // leave for the menu
	ActionQuit

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right", "Reveal", "Flag", "Pause", "Restart", "Back", "Quit",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// PointerButton identifies which mouse button produced a click.
type PointerButton uint8

const (
	PointerPrimary   PointerButton = iota // reveal
	PointerSecondary                      // flag
)

// Pointer is a mouse press in screen coordinates.
type Pointer struct {
	X, Y   int
	Button PointerButton
}

// Input is one key action or one mouse press, as received.
type Input struct {
	Action Action  // ActionNone for a click
	Click  Pointer // valid when Action is ActionNone
}

// IsClick reports whether the input is a mouse press.
func (in Input) IsClick() bool {
	return in.Action == ActionNone
}

// InputFrame is the input collected between two ticks, in arrival order.
// Repeated presses are kept. The zero value is an empty frame.
type InputFrame struct {
	Inputs []Input
}

func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends a key action. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.Inputs = append(f.Inputs, Input{Action: a})
}

// Click appends a mouse press.
func (f *InputFrame) Click(p Pointer) {
	f.Inputs = append(f.Inputs, Input{Click: p})
}

// Has reports whether a was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	for _, in := range f.Inputs {
		if in.Action == a && !in.IsClick() {
			return true
		}
	}
	return false
}

// Actions returns the key actions in press order, repeats included.
func (f InputFrame) Actions() []Action {
	var out []Action
	for _, in := range f.Inputs {
		if !in.IsClick() {
			out = append(out, in.Action)
		}
	}
	return out
}

// Clicks returns the mouse presses in order.
func (f InputFrame) Clicks() []Pointer {
	var out []Pointer
	for _, in := range f.Inputs {
		if in.IsClick() {
			out = append(out, in.Click)
		}
	}
	return out
}

func (f InputFrame) Empty() bool {
	return len(f.Inputs) == 0
}

// Clear resets the frame, keeping the buffer for reuse.
func (f *InputFrame) Clear() {
	f.Inputs = f.Inputs[:0]
}
