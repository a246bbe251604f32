package core

// RuntimeConfig describes the environment a game runs in.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Ticks per second
	Seed     int64 // RNG seed, 0 means time-based
}

// GameState is the externally visible state of a running game.
type GameState struct {
	Score         int
	Level         int
	BubblesPopped int
	GameOver      bool
	Won           bool
	Paused        bool
}

// StepResult is returned by a game after each tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// EventKind classifies gameplay events emitted during a tick.
type EventKind int

const (
	EventLanded EventKind = iota
	EventPopped
	EventFloatingRemoved
	EventDescent
	EventDanger
)

// Event is a gameplay occurrence the platform layer may react to
// (sound cue, flash, log line). Value is event-specific: number of
// bubbles popped or removed, the new level on descent.
type Event struct {
	Kind  EventKind
	Value int
}
