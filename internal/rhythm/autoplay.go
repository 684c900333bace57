package rhythm

import "github.com/vovakirdan/tui-rhythm/internal/core"

// Autoplay presses each lane's primary key on the frame where one of its
// arrows will land closest to the target.
type Autoplay struct{}

// Frame predicts where every live arrow will be after the next dt and
// returns the presses that hit them.
func (Autoplay) Frame(s *Session, dt float64) core.InputFrame {
	in := core.NewInputFrame()
	p := s.params
	for _, a := range s.state.Arrows {
		step := a.Speed * dt
		next := a.Position + step
		if !p.InWindow(next) || next < p.End-step/2 {
			continue
		}
		if keys := p.Lanes[a.Direction].Keys; len(keys) > 0 {
			in.Press(keys[0])
		}
	}
	return in
}
