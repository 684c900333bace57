package rhythm

// SetupTargets creates one static target slot per lane at p.End. It is a
// no-op once targets exist.
func SetupTargets(st *State, p Params, now float64, out []Command) []Command {
	if len(st.Targets) > 0 {
		return out
	}
	for _, d := range Directions() {
		lane := p.Lanes[d]
		t := TargetSlot{
			ID:        st.allocID(),
			Direction: d,
			Position:  Vec2{X: p.End, Y: lane.Offset},
			Rotation:  lane.Rotation,
		}
		st.Targets = append(st.Targets, t)
		out = append(out, Command{
			Kind:      CommandSpawn,
			Object:    t.ID,
			Target:    true,
			Direction: d,
			Style:     StyleTarget,
			Position:  t.Position,
			Rotation:  t.Rotation,
			At:        now,
		})
	}
	return out
}
