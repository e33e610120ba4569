package core

// Action represents a semantic game action, abstracted from physical key presses.
// Key bindings live in the platform layer; games only see actions.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left, A - shift piece one column left
	ActionMoveRight        // Right, D - shift piece one column right
	ActionSoftDrop         // Down, S - drop piece one row
	ActionRotate           // Up, W, Space - rotate piece
	ActionPause            // P, Escape - pause/unpause game
	ActionRestart          // R - restart after game over
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
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

// InputFrame collects the actions triggered between two simulation ticks.
// Every key press is kept, in arrival order, so two presses of the same key
// within one tick produce two moves.
type InputFrame struct {
	queue []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records one occurrence of an action.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.queue = append(f.queue, a)
}

// Has returns true if the action was triggered at least once this frame.
func (f InputFrame) Has(a Action) bool {
	for _, q := range f.queue {
		if q == a {
			return true
		}
	}
	return false
}

// Actions returns the recorded actions in arrival order.
// The returned slice is a copy.
func (f InputFrame) Actions() []Action {
	out := make([]Action, len(f.queue))
	copy(out, f.queue)
	return out
}

// Len returns the number of recorded actions.
func (f InputFrame) Len() int {
	return len(f.queue)
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.queue = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{queue: f.Actions()}
}
