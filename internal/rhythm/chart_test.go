package rhythm

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestBuildChartSpawnTimes(t *testing.T) {
	p := DefaultParams()

	c, err := BuildChart([]Entry{
		{HitTime: 1, Speed: SpeedSlow, Direction: DirectionUp},
		{HitTime: 4, Speed: SpeedMedium, Direction: DirectionUp},
		{HitTime: 5, Speed: SpeedFast, Direction: DirectionDown},
	}, p)
	if err != nil {
		t.Fatalf("BuildChart failed: %v", err)
	}

	expected := []float64{-2, 1.5, 3}
	notes := c.Notes()
	if len(notes) != len(expected) {
		t.Fatalf("Expected %d notes, got %d", len(expected), len(notes))
	}
	for i, n := range notes {
		if math.Abs(n.SpawnTime-expected[i]) > 1e-9 {
			t.Errorf("note %d: spawn time = %f, expected %f", i, n.SpawnTime, expected[i])
		}
	}
}

func TestBuildChartReordersBySpawnTime(t *testing.T) {
	p := DefaultParams()

	// The fast note is hit first but spawns after the slow one.
	c, err := BuildChart([]Entry{
		{HitTime: 1.0, Speed: SpeedFast, Direction: DirectionLeft},
		{HitTime: 1.2, Speed: SpeedSlow, Direction: DirectionRight},
	}, p)
	if err != nil {
		t.Fatalf("BuildChart failed: %v", err)
	}

	first, _ := c.Peek()
	if first.Direction != DirectionRight {
		t.Errorf("Expected slow right note first, got %v", first.Direction)
	}
	if _, err := NewChart(c.Notes()); err != nil {
		t.Errorf("BuildChart output should satisfy NewChart: %v", err)
	}
}

func TestBuildChartRejectsNotesBeforeLeadIn(t *testing.T) {
	p := DefaultParams()
	p.LeadIn = 0

	// A slow note needs 3s of travel; with no lead-in it would spawn at -2s.
	_, err := BuildChart([]Entry{{HitTime: 1, Speed: SpeedSlow, Direction: DirectionUp}}, p)
	if !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("Expected ErrInvalidEntry, got %v", err)
	}
	if !strings.Contains(err.Error(), "lead-in >= 2") {
		t.Errorf("Error should name the lead-in the note needs: %v", err)
	}

	// A longer journey pushes the spawn time earlier still.
	p = DefaultParams()
	p.Start = -1000
	if _, err := BuildChart([]Entry{{HitTime: 1, Speed: SpeedSlow, Direction: DirectionUp}}, p); !errors.Is(err, ErrInvalidEntry) {
		t.Errorf("Expected ErrInvalidEntry for a long journey, got %v", err)
	}

	// Spawning exactly at the clock start is fine.
	p = DefaultParams()
	p.LeadIn = 2
	c, err := BuildChart([]Entry{{HitTime: 1, Speed: SpeedSlow, Direction: DirectionUp}}, p)
	if err != nil {
		t.Fatalf("Note spawning at -LeadIn should be accepted: %v", err)
	}
	if n, _ := c.Peek(); n.SpawnTime != -2 {
		t.Errorf("SpawnTime = %f, expected -2", n.SpawnTime)
	}
}

func TestBuildChartLateNoteArrivesOnTime(t *testing.T) {
	p := DefaultParams()
	p.LeadIn = 2
	chart, err := BuildChart([]Entry{{HitTime: 1, Speed: SpeedSlow, Direction: DirectionUp}}, p)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSession(chart, p)
	if err != nil {
		t.Fatal(err)
	}

	// 180 frames of 1/60s take the clock from -2 to 1.
	for i := 0; i < 180; i++ {
		s.Advance(1.0/60, nil)
	}
	arrows := s.Arrows()
	if len(arrows) != 1 || !p.InWindow(arrows[0].Position) {
		t.Errorf("arrow should be at its target at its hit time, got %+v", arrows)
	}
}

func TestBuildChartRejectsUnorderedHitTimes(t *testing.T) {
	_, err := BuildChart([]Entry{
		{HitTime: 2, Speed: SpeedSlow, Direction: DirectionUp},
		{HitTime: 1, Speed: SpeedSlow, Direction: DirectionUp},
	}, DefaultParams())

	var oerr *ChartOrderingError
	if !errors.As(err, &oerr) {
		t.Fatalf("Expected ChartOrderingError, got %v", err)
	}
	if oerr.Index != 1 || oerr.Field != "hit_time" {
		t.Errorf("Unexpected error details: %+v", oerr)
	}
}

func TestBuildChartRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
	}{
		{"negative", Entry{HitTime: -1, Speed: SpeedSlow, Direction: DirectionUp}},
		{"nan", Entry{HitTime: math.NaN(), Speed: SpeedSlow, Direction: DirectionUp}},
		{"inf", Entry{HitTime: math.Inf(1), Speed: SpeedSlow, Direction: DirectionUp}},
		{"speed", Entry{HitTime: 1, Speed: SpeedClass(9), Direction: DirectionUp}},
		{"direction", Entry{HitTime: 1, Speed: SpeedSlow, Direction: Direction(7)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildChart([]Entry{tc.entry}, DefaultParams())
			if !errors.Is(err, ErrInvalidEntry) {
				t.Errorf("Expected ErrInvalidEntry, got %v", err)
			}
		})
	}
}

func TestBuildChartRejectsInvalidParams(t *testing.T) {
	p := DefaultParams()
	p.BaseSpeed = 0

	_, err := BuildChart(nil, p)
	if !errors.Is(err, ErrInvalidParams) {
		t.Errorf("Expected ErrInvalidParams, got %v", err)
	}
}

func TestNewChartRejectsUnorderedSpawnTimes(t *testing.T) {
	_, err := NewChart([]Note{
		{SpawnTime: 1},
		{SpawnTime: 3},
		{SpawnTime: 2},
	})

	var oerr *ChartOrderingError
	if !errors.As(err, &oerr) {
		t.Fatalf("Expected ChartOrderingError, got %v", err)
	}
	if oerr.Index != 2 || oerr.Field != "spawn_time" || oerr.Prev != 3 || oerr.Got != 2 {
		t.Errorf("Unexpected error details: %+v", oerr)
	}
}

func TestChartQueue(t *testing.T) {
	c, err := NewChart([]Note{{SpawnTime: 1}, {SpawnTime: 2}})
	if err != nil {
		t.Fatalf("NewChart failed: %v", err)
	}
	clone := c.Clone()

	n, ok := c.Pop()
	if !ok || n.SpawnTime != 1 {
		t.Errorf("Pop() = %v, %v", n, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d after one pop, expected 1", c.Len())
	}
	c.Pop()
	if _, ok := c.Pop(); ok {
		t.Error("Pop() on empty chart should report false")
	}
	if clone.Len() != 2 {
		t.Errorf("Clone should not be drained with the original, Len() = %d", clone.Len())
	}

	var nilChart *Chart
	if nilChart.Len() != 0 {
		t.Error("nil chart should be empty")
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"end not positive", func(p *Params) { p.End = 0 }},
		{"end before start", func(p *Params) { p.Start = 300 }},
		{"zero speed", func(p *Params) { p.BaseSpeed = 0 }},
		{"zero threshold", func(p *Params) { p.Threshold = 0 }},
		{"negative lead-in", func(p *Params) { p.LeadIn = -1 }},
		{"nan start", func(p *Params) { p.Start = math.NaN() }},
		{"lane without keys", func(p *Params) { p.Lanes[DirectionLeft].Keys = nil }},
	}

	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("DefaultParams should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Expected ErrInvalidParams, got %v", err)
			}
		})
	}
}

func TestParseNames(t *testing.T) {
	for _, d := range Directions() {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, err)
		}
	}
	for _, s := range []SpeedClass{SpeedSlow, SpeedMedium, SpeedFast} {
		got, err := ParseSpeedClass(s.String())
		if err != nil || got != s {
			t.Errorf("ParseSpeedClass(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseDirection("diagonal"); err == nil {
		t.Error("ParseDirection should reject unknown names")
	}
	if _, err := ParseSpeedClass("ludicrous"); err == nil {
		t.Error("ParseSpeedClass should reject unknown names")
	}
}

func TestFrameClock(t *testing.T) {
	c := NewFrameClock(-3)
	c.Advance(0.5)
	if c.Elapsed() != -2.5 || c.Delta() != 0.5 {
		t.Errorf("After Advance(0.5): elapsed=%f delta=%f", c.Elapsed(), c.Delta())
	}

	c.Advance(-1)
	if c.Elapsed() != -2.5 || c.Delta() != 0 {
		t.Errorf("Negative step should be ignored: elapsed=%f delta=%f", c.Elapsed(), c.Delta())
	}

	c.Advance(math.NaN())
	if c.Elapsed() != -2.5 {
		t.Errorf("NaN step should be ignored: elapsed=%f", c.Elapsed())
	}
}
