package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgarrido/tui-chase/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes the bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
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

// MapMouseToFrame updates an input frame based on a mouse message. Every
// report refreshes the pointer position; a left-button press additionally
// records a fire event aimed at that position.
//
// Mouse coordinates arrive as terminal cell indices; aiming at the cell
// center keeps the pointer target consistent with how circles are drawn.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	at := core.V(float64(msg.X)+0.5, float64(msg.Y)+0.5)
	frame.SetPointer(at)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.AddFire(at)
	}
}
