package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionUp                   // W, Up arrow - move cursor up
	ActionDown                 // S, Down arrow - move cursor down
	ActionLeft                 // A, Left arrow - move cursor left
	ActionRight                // D, Right arrow - move cursor right
	ActionConfirm              // Enter, Space - pick or place at cursor
	ActionNextBoard            // Tab - jump cursor to the next board
	ActionPrevBoard            // Shift+Tab - jump cursor to the previous board
	ActionBack                 // Esc - return cursor to the main board
	ActionRestart              // R - start a new match
	ActionQuit                 // Q, Ctrl+C - exit game/session
	ActionReplayBack           // [ , - step the replay backwards
	ActionReplayForward        // ] . - step the replay forwards
)

var actionNames = map[Action]string{
	ActionNone:          "None",
	ActionUp:            "Up",
	ActionDown:          "Down",
	ActionLeft:          "Left",
	ActionRight:         "Right",
	ActionConfirm:       "Confirm",
	ActionNextBoard:     "NextBoard",
	ActionPrevBoard:     "PrevBoard",
	ActionBack:          "Back",
	ActionRestart:       "Restart",
	ActionQuit:          "Quit",
	ActionReplayBack:    "ReplayBack",
	ActionReplayForward: "ReplayForward",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame and
// the last mouse click, if any.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	clickX, clickY int
	clicked        bool
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

// SetClick records a left click at screen position (x, y).
// A later click in the same frame replaces an earlier one.
func (f *InputFrame) SetClick(x, y int) {
	f.clickX, f.clickY = x, y
	f.clicked = true
}

// ClickAt returns the click position for this frame.
func (f InputFrame) ClickAt() (x, y int, ok bool) {
	return f.clickX, f.clickY, f.clicked
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	if f.clicked {
		return false
	}
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.clicked = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.clickX, clone.clickY, clone.clicked = f.clickX, f.clickY, f.clicked
	return clone
}
