package core

import (
	"fmt"
	"strings"
)

// Key is a physical gameplay key from the fixed key set the platform reports.
// Games match keys against lanes; the platform never interprets them.
type Key int

const (
	KeyNone Key = iota
	KeyUp       // Up arrow
	KeyDown     // Down arrow
	KeyLeft     // Left arrow
	KeyRight    // Right arrow
	KeyW
	KeyA
	KeyS
	KeyD
)

var keyNames = map[Key]string{
	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyW:     "w",
	KeyA:     "a",
	KeyS:     "s",
	KeyD:     "d",
}

// String returns the lowercase name used in config files.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "none"
}

// ParseKey resolves a config key name (case-insensitive).
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == name {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("core: unknown key %q", name)
}

// Action represents a semantic platform action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart chart after it finished
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for one simulation tick.
// Keys holds fresh presses only: a key held down across ticks is not repeated
// unless the terminal sends another press event.
type InputFrame struct {
	Keys    map[Key]bool
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Keys:    make(map[Key]bool),
		Actions: make(map[Action]bool),
	}
}

// Press records a fresh key press for this frame.
func (f *InputFrame) Press(k Key) {
	if f.Keys == nil {
		f.Keys = make(map[Key]bool)
	}
	f.Keys[k] = true
}

// JustPressed reports whether k was pressed during this frame.
func (f InputFrame) JustPressed(k Key) bool {
	if f.Keys == nil {
		return false
	}
	return f.Keys[k]
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

// Clear resets all keys and actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Keys {
		delete(f.Keys, k)
	}
	for a := range f.Actions {
		delete(f.Actions, a)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Keys {
		clone.Keys[k] = v
	}
	for a, v := range f.Actions {
		clone.Actions[a] = v
	}
	return clone
}
