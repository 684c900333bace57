package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rhythm/internal/core"
)

// KeyMapper translates Bubble Tea key messages to lane keys and actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

var laneKeys = map[string]core.Key{
	"up":    core.KeyUp,
	"down":  core.KeyDown,
	"left":  core.KeyLeft,
	"right": core.KeyRight,
	"w":     core.KeyW,
	"a":     core.KeyA,
	"s":     core.KeyS,
	"d":     core.KeyD,
}

// MapKey translates a key message. A message yields either a lane key or an
// action, never both.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (key core.Key, action core.Action) {
	s := msg.String()
	if k, ok := laneKeys[s]; ok {
		return k, core.ActionNone
	}

	switch s {
	case "ctrl+c", "q":
		return core.KeyNone, core.ActionQuit
	case "enter":
		return core.KeyNone, core.ActionConfirm
	case "b":
		return core.KeyNone, core.ActionBack
	case "p", "esc":
		return core.KeyNone, core.ActionPause
	case "r":
		return core.KeyNone, core.ActionRestart
	}

	return core.KeyNone, core.ActionNone
}

// MapKeyToFrame records a key message in frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	key, action := km.MapKey(msg)
	if key != core.KeyNone {
		frame.Press(key)
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	return action == core.ActionQuit
}
