package rhythm

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-rhythm/internal/core"
)

// Direction is one of the four arrow lanes.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight

	DirectionCount = 4
)

// Directions returns every lane in display order (top to bottom).
func Directions() [DirectionCount]Direction {
	return [DirectionCount]Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}
}

// Valid reports whether d is one of the four lanes.
func (d Direction) Valid() bool {
	return d < DirectionCount
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// ParseDirection resolves a chart or config name (case-insensitive).
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up", "u":
		return DirectionUp, nil
	case "down", "d":
		return DirectionDown, nil
	case "left", "l":
		return DirectionLeft, nil
	case "right", "r":
		return DirectionRight, nil
	}
	return 0, fmt.Errorf("rhythm: unknown direction %q", name)
}

// Lane holds the fixed per-direction geometry and key bindings.
type Lane struct {
	Offset   float64    // lateral offset of the lane
	Rotation float64    // display rotation in radians
	Keys     []core.Key // primary key first, then alternates
}

// Pressed reports whether any of the lane's keys was freshly pressed.
func (l Lane) Pressed(in Input) bool {
	if in == nil {
		return false
	}
	for _, k := range l.Keys {
		if in.JustPressed(k) {
			return true
		}
	}
	return false
}

// Lanes maps every Direction to its Lane.
type Lanes [DirectionCount]Lane

// DefaultLanes returns the stock lane layout: arrows pointing right at
// rotation zero, lanes stacked Up, Down, Left, Right from top to bottom.
func DefaultLanes() Lanes {
	var lanes Lanes
	for _, d := range Directions() {
		lanes[d] = defaultLane(d)
	}
	return lanes
}

func defaultLane(d Direction) Lane {
	switch d {
	case DirectionUp:
		return Lane{Offset: 150, Rotation: math.Pi * 0.5, Keys: []core.Key{core.KeyUp, core.KeyW}}
	case DirectionDown:
		return Lane{Offset: 50, Rotation: -math.Pi * 0.5, Keys: []core.Key{core.KeyDown, core.KeyS}}
	case DirectionLeft:
		return Lane{Offset: -50, Rotation: math.Pi, Keys: []core.Key{core.KeyLeft, core.KeyA}}
	case DirectionRight:
		return Lane{Offset: -150, Rotation: 0, Keys: []core.Key{core.KeyRight, core.KeyD}}
	}
	panic(fmt.Sprintf("rhythm: no lane for %v", d))
}
