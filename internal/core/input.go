package core

// Action is a semantic input, independent of the key that produced it.
// The platformer reads a frame as a held-key snapshot: an action present in
// the frame means the key is down for that tick.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // walk left
	ActionRight          // walk right
	ActionJump           // jump; holding it keeps the jump rising
	ActionRun            // run, and shoot while holding fire power
	ActionBack           // leave to the menu
	ActionRestart        // restart after game over
	ActionQuit           // exit the program or session
	ActionPause          // toggle pause
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionJump:    "Jump",
	ActionRun:     "Run",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions active during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// InputOf builds a frame with the given actions set.
func InputOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as active.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether an action is active. A zero frame has none.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Merge sets every action active in other.
func (f *InputFrame) Merge(other InputFrame) {
	for a, on := range other.Actions {
		if on {
			f.Set(a)
		}
	}
}

// Clear drops all actions, keeping the map for reuse.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone returns an independent copy.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	c.Merge(f)
	return c
}
