package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ormakov/hexpop/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left", "h": // vim-style h for left
		return core.ActionLeft, false
	case "d", "right", "l": // vim-style l for right
		return core.ActionRight, false
	case " ", "up", "w":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "1":
		return core.ActionChoice1, false
	case "2":
		return core.ActionChoice2, false
	case "3":
		return core.ActionChoice3, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
