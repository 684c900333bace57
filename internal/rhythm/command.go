package rhythm

import "fmt"

// CommandKind distinguishes visual creation from disposal.
type CommandKind uint8

const (
	CommandSpawn CommandKind = iota
	CommandDispose
)

func (k CommandKind) String() string {
	switch k {
	case CommandSpawn:
		return "spawn"
	case CommandDispose:
		return "dispose"
	default:
		return fmt.Sprintf("command(%d)", uint8(k))
	}
}

// Resolution records why an arrow was disposed.
type Resolution uint8

const (
	ResolutionNone Resolution = iota
	ResolutionHit
	ResolutionOvershoot
)

func (r Resolution) String() string {
	switch r {
	case ResolutionNone:
		return "none"
	case ResolutionHit:
		return "hit"
	case ResolutionOvershoot:
		return "overshoot"
	default:
		return fmt.Sprintf("resolution(%d)", uint8(r))
	}
}

// Command is a presentation request emitted by a pass. Spawn commands carry
// the initial transform and style; dispose commands carry the resolution.
type Command struct {
	Kind      CommandKind
	Object    ObjectID
	Target    bool // target slot rather than a travelling arrow
	Direction Direction

	Style    Style
	Position Vec2
	Rotation float64

	Resolution Resolution
	At         float64 // song clock when the command was issued
}

func spawnArrow(a Arrow, lane Lane, now float64) Command {
	return Command{
		Kind:      CommandSpawn,
		Object:    a.ID,
		Direction: a.Direction,
		Style:     a.Class.Style(),
		Position:  Vec2{X: a.Position, Y: lane.Offset},
		Rotation:  lane.Rotation,
		At:        now,
	}
}

func disposeArrow(a Arrow, res Resolution, now float64) Command {
	return Command{
		Kind:       CommandDispose,
		Object:     a.ID,
		Direction:  a.Direction,
		Resolution: res,
		At:         now,
	}
}
