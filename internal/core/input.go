package core

// Action represents a game input action, decoupled from physical keys.
// The TUI layer maps key events to actions; games only see actions.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionFire
	ActionPause
	ActionRestart
	ActionQuit
	ActionConfirm
	ActionChoice1
	ActionChoice2
	ActionChoice3
)

// InputFrame carries the set of actions active during one tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Pressed reports whether the given action is active this frame.
func (f InputFrame) Pressed(a Action) bool {
	return f.Actions[a]
}

// Set marks an action as active.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Clear removes all active actions, readying the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// With returns a copy of the frame with the action set. Convenient in tests.
func (f InputFrame) With(a Action) InputFrame {
	next := NewInputFrame()
	for k, v := range f.Actions {
		next.Actions[k] = v
	}
	next.Actions[a] = true
	return next
}
