// Package registry provides a global registry for game factories.
// Each difficulty preset registers itself in init(), so the platform can list
// and start boards without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// Game is the interface every registered board variant implements.
// Games hold pure logic with no Bubble Tea imports; the platform owns input
// mapping, timing and rendering to the terminal.
type Game interface {
	// ID returns a unique identifier such as "beginner" or "expert".
	// Used for CLI arguments and as the result key in storage.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset starts a fresh board. Called once at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick: applies the frame's input and the clock.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
	Order int
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
	order   int
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory. order controls listing position; ties sort by ID.
// Panics if the ID is already registered.
func Register(id string, order int, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	entries[id] = entry{factory: f, title: f().Title(), order: order}
}

// List returns all registered games in menu order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title, Order: e.order})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
