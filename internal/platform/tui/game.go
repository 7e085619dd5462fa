package tui

import "github.com/vovakirdan/picman/internal/core"

// Game is the contract between the platform and a game.
// Games are pure simulation: they receive input frames, advance state,
// and render to a screen buffer. They never touch the terminal.
type Game interface {
	// ID returns the stable identifier of the game.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a new game with the given configuration.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(input core.InputFrame) core.StepResult

	// Render draws the current state to the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Resizer is implemented by games that can adapt to a new screen size
// without starting over. Games without it are Reset on resize.
type Resizer interface {
	Resize(w, h int)
}

// GameFactory builds a fresh game for a new session or run.
type GameFactory func() (Game, error)
