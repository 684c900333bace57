package rhythm

import "math"

// Detect resolves live arrows against this frame's input. An arrow inside
// the hit window of a freshly pressed lane is disposed as a hit; any arrow
// still alive at or past p.OvershootAt is disposed as an overshoot. The hit
// check runs first, so an arrow can never be both.
//
// With p.OneHitPerPress a press consumes only the in-window arrow nearest
// End; on a tie the older arrow wins.
func Detect(st *State, p Params, in Input, now float64, out []Command) []Command {
	var pressed [DirectionCount]bool
	for _, d := range Directions() {
		pressed[d] = p.Lanes[d].Pressed(in)
	}

	chosen := [DirectionCount]int{-1, -1, -1, -1}
	if p.OneHitPerPress {
		var best [DirectionCount]float64
		for i, a := range st.Arrows {
			d := a.Direction
			if !pressed[d] || !p.InWindow(a.Position) {
				continue
			}
			dist := math.Abs(a.Position - p.End)
			if chosen[d] < 0 || dist < best[d] {
				chosen[d], best[d] = i, dist
			}
		}
	}

	overshoot := p.OvershootAt()
	n := len(st.Arrows)
	kept := st.Arrows[:0]
	for i, a := range st.Arrows {
		var hit bool
		if p.OneHitPerPress {
			hit = chosen[a.Direction] == i
		} else {
			hit = pressed[a.Direction] && p.InWindow(a.Position)
		}

		switch {
		case hit:
			out = append(out, disposeArrow(a, ResolutionHit, now))
		case a.Position >= overshoot:
			out = append(out, disposeArrow(a, ResolutionOvershoot, now))
		default:
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < n; i++ {
		st.Arrows[i] = Arrow{}
	}
	st.Arrows = kept
	return out
}
