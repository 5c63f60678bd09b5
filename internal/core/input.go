package core

// Action represents a semantic game action, abstracted from physical key
// presses. Games work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P - pause/unpause the simulation
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything the environment produced for one simulation
// tick: triggered actions, the current pointer position, and any primary
// trigger (fire) events with the playfield position they aimed at.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is the last known pointer position. Unlike Actions it is
	// state, not an event: it persists across frames until the pointer
	// moves again.
	Pointer Vec2

	// PointerSet is false until the first pointer report arrives.
	PointerSet bool

	// Fires holds the target positions of primary-trigger events received
	// this frame, in arrival order.
	Fires []Vec2
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetPointer records the current pointer position.
func (f *InputFrame) SetPointer(p Vec2) {
	f.Pointer = p
	f.PointerSet = true
}

// AddFire records a primary-trigger event aimed at the given position.
func (f *InputFrame) AddFire(p Vec2) {
	f.Fires = append(f.Fires, p)
}

// Clear resets the per-frame events (actions and fires) for the next frame.
// The pointer position is retained: it is sampled state, not an event.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Fires = f.Fires[:0]
}
