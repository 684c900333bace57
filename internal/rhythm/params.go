package rhythm

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is wrapped by every Params validation failure.
var ErrInvalidParams = errors.New("rhythm: invalid params")

// Params are the immutable gameplay constants for one session.
// Positions are measured along the travel axis: arrows spawn at Start,
// the hit line is End, and arrows are discarded at 2*End.
type Params struct {
	Start     float64 // spawn coordinate
	End       float64 // target coordinate
	BaseSpeed float64 // travel units per second for SpeedSlow
	Threshold float64 // half-width of the hit window around End
	LeadIn    float64 // seconds between session start and song time zero

	Lanes Lanes

	// OneHitPerPress resolves a single arrow per lane press (the one
	// nearest the target). When false every in-window arrow of the lane
	// is hit by the same press.
	OneHitPerPress bool
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		Start:          -400,
		End:            200,
		BaseSpeed:      200,
		Threshold:      20,
		LeadIn:         3,
		Lanes:          DefaultLanes(),
		OneHitPerPress: true,
	}
}

// Validate checks the relationships every pass relies on.
func (p Params) Validate() error {
	for name, v := range map[string]float64{
		"start": p.Start, "end": p.End, "base speed": p.BaseSpeed,
		"threshold": p.Threshold, "lead-in": p.LeadIn,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParams, name)
		}
	}
	if p.End <= 0 {
		return fmt.Errorf("%w: end must be positive, got %g", ErrInvalidParams, p.End)
	}
	if p.End <= p.Start {
		return fmt.Errorf("%w: end %g must be beyond start %g", ErrInvalidParams, p.End, p.Start)
	}
	if p.BaseSpeed <= 0 {
		return fmt.Errorf("%w: base speed must be positive, got %g", ErrInvalidParams, p.BaseSpeed)
	}
	if p.Threshold <= 0 {
		return fmt.Errorf("%w: threshold must be positive, got %g", ErrInvalidParams, p.Threshold)
	}
	if p.LeadIn < 0 {
		return fmt.Errorf("%w: lead-in must not be negative, got %g", ErrInvalidParams, p.LeadIn)
	}
	for _, d := range Directions() {
		if len(p.Lanes[d].Keys) == 0 {
			return fmt.Errorf("%w: lane %v has no keys", ErrInvalidParams, d)
		}
	}
	return nil
}

// TravelDistance is the distance from spawn to the hit line.
func (p Params) TravelDistance() float64 {
	return p.End - p.Start
}

// OvershootAt is the coordinate at which an unhit arrow is discarded.
func (p Params) OvershootAt() float64 {
	return 2 * p.End
}

// InWindow reports whether pos lies in the closed hit window.
func (p Params) InWindow(pos float64) bool {
	return pos >= p.End-p.Threshold && pos <= p.End+p.Threshold
}

// SpawnTime returns when a note must spawn to cross End at hitTime.
func (p Params) SpawnTime(hitTime float64, speed SpeedClass) float64 {
	return hitTime - p.TravelDistance()/speed.Value(p.BaseSpeed)
}
