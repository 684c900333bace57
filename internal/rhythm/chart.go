package rhythm

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidEntry is wrapped when a chart entry cannot be scheduled at all.
var ErrInvalidEntry = errors.New("rhythm: invalid chart entry")

// Entry is one authored note: when it should be hit, how fast it travels
// and which lane it belongs to.
type Entry struct {
	HitTime   float64
	Speed     SpeedClass
	Direction Direction
}

// Note is an Entry with its derived spawn time.
type Note struct {
	SpawnTime float64
	HitTime   float64
	Speed     SpeedClass
	Direction Direction
}

// ChartOrderingError reports a chart whose notes are out of order.
type ChartOrderingError struct {
	Field string // "hit_time" or "spawn_time"
	Index int
	Prev  float64
	Got   float64
}

func (e *ChartOrderingError) Error() string {
	return fmt.Sprintf("rhythm: chart %s out of order at note %d: %.3f after %.3f",
		e.Field, e.Index, e.Got, e.Prev)
}

// Chart is the queue of notes not yet promoted to arrows, front = earliest
// spawn time. A Chart is consumed by the session it is handed to.
type Chart struct {
	notes []Note
}

// NewChart wraps notes that are already in ascending spawn order.
func NewChart(notes []Note) (*Chart, error) {
	for i := 1; i < len(notes); i++ {
		if notes[i].SpawnTime < notes[i-1].SpawnTime {
			return nil, &ChartOrderingError{
				Field: "spawn_time",
				Index: i,
				Prev:  notes[i-1].SpawnTime,
				Got:   notes[i].SpawnTime,
			}
		}
	}
	c := &Chart{notes: make([]Note, len(notes))}
	copy(c.notes, notes)
	return c, nil
}

// BuildChart derives spawn times for authored entries and orders the result
// by spawn time. Entries must be listed by non-decreasing hit time; notes
// with different speeds may still swap places once spawn times are known.
// A note that would have to spawn before the clock starts at -LeadIn is
// rejected, since it could never reach its target on time.
func BuildChart(entries []Entry, p Params) (*Chart, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	notes := make([]Note, 0, len(entries))
	for i, e := range entries {
		if math.IsNaN(e.HitTime) || math.IsInf(e.HitTime, 0) || e.HitTime < 0 {
			return nil, fmt.Errorf("%w: note %d: hit time %g", ErrInvalidEntry, i, e.HitTime)
		}
		if !e.Speed.Valid() {
			return nil, fmt.Errorf("%w: note %d: %v", ErrInvalidEntry, i, e.Speed)
		}
		if !e.Direction.Valid() {
			return nil, fmt.Errorf("%w: note %d: %v", ErrInvalidEntry, i, e.Direction)
		}
		if i > 0 && e.HitTime < entries[i-1].HitTime {
			return nil, &ChartOrderingError{
				Field: "hit_time",
				Index: i,
				Prev:  entries[i-1].HitTime,
				Got:   e.HitTime,
			}
		}
		spawn := p.SpawnTime(e.HitTime, e.Speed)
		if spawn < -p.LeadIn {
			return nil, fmt.Errorf("%w: note %d: spawns at %gs, before the clock starts at %gs (needs lead-in >= %g)",
				ErrInvalidEntry, i, spawn, -p.LeadIn, -spawn)
		}
		notes = append(notes, Note{
			SpawnTime: spawn,
			HitTime:   e.HitTime,
			Speed:     e.Speed,
			Direction: e.Direction,
		})
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].SpawnTime < notes[j].SpawnTime
	})
	return &Chart{notes: notes}, nil
}

// Len returns the number of notes still pending.
func (c *Chart) Len() int {
	if c == nil {
		return 0
	}
	return len(c.notes)
}

// Peek returns the front note without removing it.
func (c *Chart) Peek() (Note, bool) {
	if c.Len() == 0 {
		return Note{}, false
	}
	return c.notes[0], true
}

// Pop removes and returns the front note.
func (c *Chart) Pop() (Note, bool) {
	n, ok := c.Peek()
	if ok {
		c.notes = c.notes[1:]
	}
	return n, ok
}

// Notes returns a copy of the pending notes in queue order.
func (c *Chart) Notes() []Note {
	if c.Len() == 0 {
		return nil
	}
	out := make([]Note, len(c.notes))
	copy(out, c.notes)
	return out
}

// Clone returns an independent queue with the same pending notes.
func (c *Chart) Clone() *Chart {
	return &Chart{notes: c.Notes()}
}
