// Package rhythm is the simulation core of the arrow game: a chart of notes
// is promoted into arrows that travel toward fixed targets, and key presses
// inside the hit window resolve them. The core emits presentation commands
// and never touches the terminal.
package rhythm

import (
	"io"

	"github.com/charmbracelet/log"
)

// Session owns one play-through of a chart. Each Advance runs the passes in
// a fixed order: clock, schedule, integrate, detect.
type Session struct {
	params Params
	clock  *FrameClock
	state  State
	logger *log.Logger

	started bool
	hits    int
	misses  int
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for per-arrow debug events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession validates p and takes ownership of chart. A nil chart plays
// an empty song.
func NewSession(chart *Chart, p Params, opts ...Option) (*Session, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if chart == nil {
		chart = &Chart{}
	}
	s := &Session{
		params: p,
		clock:  NewFrameClock(-p.LeadIn),
		state:  State{Chart: chart},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Advance steps the session by dt seconds with this frame's input and
// returns the presentation commands produced. Target slots are spawned on
// the first call.
func (s *Session) Advance(dt float64, in Input) []Command {
	var out []Command
	if !s.started {
		s.started = true
		out = SetupTargets(&s.state, s.params, s.clock.Elapsed(), out)
	}

	s.clock.Advance(dt)
	now := s.clock.Elapsed()

	spawned := len(out)
	out = Schedule(&s.state, s.params, now, out)
	Integrate(&s.state, s.clock.Delta())
	resolved := len(out)
	out = Detect(&s.state, s.params, in, now, out)

	for _, c := range out[spawned:resolved] {
		s.logger.Debug("arrow spawned", "id", c.Object, "dir", c.Direction, "style", c.Style, "t", now)
	}
	for _, c := range out[resolved:] {
		switch c.Resolution {
		case ResolutionHit:
			s.hits++
		case ResolutionOvershoot:
			s.misses++
		}
		s.logger.Debug("arrow resolved", "id", c.Object, "dir", c.Direction, "result", c.Resolution, "t", now)
	}
	return out
}

// Params returns the session's gameplay constants.
func (s *Session) Params() Params { return s.params }

// Clock exposes the song clock.
func (s *Session) Clock() Clock { return s.clock }

// Elapsed returns the song clock in seconds; negative during lead-in.
func (s *Session) Elapsed() float64 { return s.clock.Elapsed() }

// Pending returns how many notes have not been promoted yet.
func (s *Session) Pending() int { return s.state.Chart.Len() }

// Live returns how many arrows are travelling.
func (s *Session) Live() int { return len(s.state.Arrows) }

// Arrows returns a copy of the live arrows in spawn order.
func (s *Session) Arrows() []Arrow {
	out := make([]Arrow, len(s.state.Arrows))
	copy(out, s.state.Arrows)
	return out
}

// Targets returns a copy of the target slots.
func (s *Session) Targets() []TargetSlot {
	out := make([]TargetSlot, len(s.state.Targets))
	copy(out, s.state.Targets)
	return out
}

// Hits and Misses count resolved arrows by outcome.
func (s *Session) Hits() int   { return s.hits }
func (s *Session) Misses() int { return s.misses }

// Done reports whether the chart is drained and every arrow resolved.
func (s *Session) Done() bool {
	return s.started && s.Pending() == 0 && s.Live() == 0
}
