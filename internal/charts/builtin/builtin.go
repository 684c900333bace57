// Package builtin registers the charts shipped with the binary.
// Import it for side effects.
package builtin

import (
	"github.com/vovakirdan/tui-rhythm/internal/charts"
	"github.com/vovakirdan/tui-rhythm/internal/registry"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

func init() {
	registry.Register(Tutorial())
	registry.Register(Stairs())
}

// Tutorial is the five-note chart every new player starts with.
func Tutorial() charts.Def {
	return charts.Def{
		ID:    "tutorial",
		Title: "Tutorial",
		Notes: []rhythm.Entry{
			{HitTime: 1, Speed: rhythm.SpeedSlow, Direction: rhythm.DirectionUp},
			{HitTime: 2, Speed: rhythm.SpeedSlow, Direction: rhythm.DirectionDown},
			{HitTime: 3, Speed: rhythm.SpeedSlow, Direction: rhythm.DirectionLeft},
			{HitTime: 4, Speed: rhythm.SpeedMedium, Direction: rhythm.DirectionUp},
			{HitTime: 5, Speed: rhythm.SpeedFast, Direction: rhythm.DirectionDown},
		},
	}
}

// Stairs walks every lane four times, speeding up each pass.
func Stairs() charts.Def {
	order := rhythm.Directions()
	speeds := []rhythm.SpeedClass{rhythm.SpeedSlow, rhythm.SpeedMedium, rhythm.SpeedFast, rhythm.SpeedFast}

	var notes []rhythm.Entry
	at := 1.0
	for pass, speed := range speeds {
		gap := 0.75 - 0.15*float64(pass)
		for _, d := range order {
			notes = append(notes, rhythm.Entry{HitTime: at, Speed: speed, Direction: d})
			at += gap
		}
		at += 0.5
	}

	return charts.Def{
		ID:    "stairs",
		Title: "Stairs",
		Notes: notes,
	}
}
