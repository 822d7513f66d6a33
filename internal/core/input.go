package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - steer left while held
	ActionRight          // Right arrow, D, L - steer right while held
	ActionConfirm        // Enter, Space - start a session
	ActionRestart        // R - start again after game over
	ActionPause          // P, Escape - pause/unpause
	ActionBack           // B - leave a paused or finished run for the start screen
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state sampled once at the start of a simulation tick.
// Held directions and one-shot actions share the Actions map; the pointer is
// optional and expressed as a fraction of the viewport width.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool

	pointer    float64
	hasPointer bool
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

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetPointer records an active pointer at the given fraction of the
// viewport width (0 = left edge, 1 = right edge).
func (f *InputFrame) SetPointer(fraction float64) {
	f.pointer = fraction
	f.hasPointer = true
}

// ClearPointer marks the pointer as released.
func (f *InputFrame) ClearPointer() {
	f.pointer = 0
	f.hasPointer = false
}

// Pointer returns the pointer position as a viewport fraction and whether a
// pointer is active.
func (f InputFrame) Pointer() (float64, bool) {
	return f.pointer, f.hasPointer
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.ClearPointer()
}
