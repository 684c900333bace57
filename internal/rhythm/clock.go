package rhythm

import "math"

// Clock is the song clock read by the scheduler and integrator.
type Clock interface {
	Elapsed() float64 // seconds since song time zero, monotonic
	Delta() float64   // seconds covered by the last frame, never negative
}

// FrameClock is a Clock advanced explicitly, one frame at a time.
type FrameClock struct {
	elapsed float64
	delta   float64
}

// NewFrameClock returns a clock reading start. Sessions start at -LeadIn.
func NewFrameClock(start float64) *FrameClock {
	return &FrameClock{elapsed: start}
}

// Advance moves the clock forward by dt. Negative or non-finite steps are
// treated as zero so the clock never runs backwards.
func (c *FrameClock) Advance(dt float64) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	c.delta = dt
	c.elapsed += dt
}

func (c *FrameClock) Elapsed() float64 { return c.elapsed }
func (c *FrameClock) Delta() float64   { return c.delta }
