package core

// Action represents a semantic flight-control action, abstracted from
// physical key presses. The simulation works with high-level intents
// rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionMainEngine        // Down arrow, S - fire the main engine
	ActionRotateCCW         // Left arrow, A - rotate counter-clockwise
	ActionRotateCW          // Right arrow, D - rotate clockwise
	ActionNewAttempt        // Space - start a new attempt after a verdict
	ActionRestart           // R - full restart (new terrain seed, counters cleared)
	ActionPause             // P, Escape - pause/unpause
	ActionQuit              // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMainEngine:
		return "MainEngine"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionRotateCW:
		return "RotateCW"
	case ActionNewAttempt:
		return "NewAttempt"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the control state for a single simulation tick.
// It contains all actions that were active during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were active this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
