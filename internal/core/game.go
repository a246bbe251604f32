package core

// Game is the contract between the gameplay core and the platform layer.
// Implementations must be deterministic for a fixed seed and input sequence.
type Game interface {
	// ID returns a stable machine identifier.
	ID() string
	// Title returns a human-readable name.
	Title() string
	// Reset prepares a new run with the given runtime config.
	Reset(cfg RuntimeConfig)
	// Step advances the simulation one tick with the given input.
	Step(input InputFrame) StepResult
	// Render draws the current state into the screen buffer.
	Render(screen *Screen)
	// State returns the current game state without advancing.
	State() GameState
}
