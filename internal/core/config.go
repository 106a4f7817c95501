package core

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // ticks per second
	Seed     int64 // 0 lets the platform pick a time-based seed
}

const (
	DefaultScreenW  = 80
	DefaultScreenH  = 24
	DefaultTickRate = 30
)

// DefaultConfig returns an 80x24 screen at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  DefaultScreenW,
		ScreenH:  DefaultScreenH,
		TickRate: DefaultTickRate,
	}
}

// Normalize replaces non-positive sizes and rates with the defaults.
// Seed is left alone.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = DefaultScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = DefaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// GameState is what Game.State reports to the platform.
type GameState struct {
	Started  bool // mines placed, clock running
	GameOver bool
	Won      bool
	Paused   bool // also set while the window is too small
	Elapsed  int  // whole seconds since the first reveal
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
