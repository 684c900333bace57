package rhythm

// Schedule promotes every pending note whose spawn time has been reached.
// Notes are popped from the front of the chart, so a note that was already
// due when the session started is promoted on the first tick. Each new
// arrow starts at p.Start and a spawn command is appended to out.
func Schedule(st *State, p Params, now float64, out []Command) []Command {
	for {
		n, ok := st.Chart.Peek()
		if !ok || n.SpawnTime > now {
			return out
		}
		st.Chart.Pop()

		a := Arrow{
			ID:        st.allocID(),
			Position:  p.Start,
			Speed:     n.Speed.Value(p.BaseSpeed),
			Class:     n.Speed,
			Direction: n.Direction,
			HitTime:   n.HitTime,
		}
		st.Arrows = append(st.Arrows, a)
		out = append(out, spawnArrow(a, p.Lanes[n.Direction], now))
	}
}

// Integrate moves every live arrow along the travel axis by speed*dt.
func Integrate(st *State, dt float64) {
	if dt <= 0 {
		return
	}
	for i := range st.Arrows {
		st.Arrows[i].Position += st.Arrows[i].Speed * dt
	}
}
