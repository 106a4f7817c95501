package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionReveal)
	f.Set(ActionReveal)
	f.Set(ActionUp)
	f.Click(Pointer{X: 3, Y: 4, Button: PointerSecondary})

	if !f.Has(ActionReveal) || f.Has(ActionFlag) {
		t.Error("Has() should only report set actions")
	}
	got := f.Actions()
	want := []Action{ActionReveal, ActionReveal, ActionUp}
	if len(got) != len(want) {
		t.Fatalf("Actions() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
	clicks := f.Clicks()
	if len(clicks) != 1 || clicks[0].Button != PointerSecondary {
		t.Errorf("Clicks() = %+v, expected one secondary click", clicks)
	}
	if len(f.Inputs) != 4 || !f.Inputs[3].IsClick() {
		t.Errorf("Inputs = %+v, expected the click last", f.Inputs)
	}

	f.Clear()
	if !f.Empty() || f.Has(ActionUp) {
		t.Error("Clear() should empty the frame")
	}
}

func TestInputFrameIgnoresNone(t *testing.T) {
	var f InputFrame
	f.Set(ActionNone)
	f.Set(Action(200))
	if !f.Empty() {
		t.Error("ActionNone and unknown actions should not be recorded")
	}
	if f.Has(Action(200)) {
		t.Error("Has() on an unknown action should be false")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionLeft:    "Left",
		ActionReveal:  "Reveal",
		ActionFlag:    "Flag",
		ActionPause:   "Pause",
		ActionRestart: "Restart",
		ActionQuit:    "Quit",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if a.String() != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), a.String(), want)
		}
	}
}

func TestRuntimeConfigNormalize(t *testing.T) {
	got := RuntimeConfig{ScreenW: -1, TickRate: 0, Seed: 7}.Normalize()
	want := RuntimeConfig{ScreenW: DefaultScreenW, ScreenH: DefaultScreenH, TickRate: DefaultTickRate, Seed: 7}
	if got != want {
		t.Errorf("Normalize() = %+v, expected %+v", got, want)
	}

	kept := RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 60}
	if kept.Normalize() != kept {
		t.Error("Normalize() should keep valid values")
	}
}
