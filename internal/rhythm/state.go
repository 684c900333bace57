package rhythm

import "github.com/vovakirdan/tui-rhythm/internal/core"

// Input is the per-frame key snapshot the hit detector consumes.
// core.InputFrame satisfies it.
type Input interface {
	JustPressed(k core.Key) bool
}

// ObjectID identifies a live arrow or target slot for the whole session.
type ObjectID uint64

// Vec2 is a point in playfield units: X along the travel axis, Y across lanes.
type Vec2 struct {
	X, Y float64
}

// Arrow is a note that has been promoted and is travelling toward its target.
type Arrow struct {
	ID        ObjectID
	Position  float64 // travel-axis coordinate
	Speed     float64 // travel units per second
	Class     SpeedClass
	Direction Direction
	HitTime   float64
}

// TargetSlot is the static marker at the end of a lane.
type TargetSlot struct {
	ID        ObjectID
	Direction Direction
	Position  Vec2
	Rotation  float64
}

// State is everything the passes read and write. Arrows are kept in spawn
// order.
type State struct {
	Chart   *Chart
	Arrows  []Arrow
	Targets []TargetSlot

	nextID ObjectID
}

func (st *State) allocID() ObjectID {
	st.nextID++
	return st.nextID
}
