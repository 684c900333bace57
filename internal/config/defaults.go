package config

import (
	_ "embed"
)

//go:embed defaults/rhythm.yaml
var defaultRhythmYAML []byte

// DefaultRhythmConfig returns the default configuration.
func DefaultRhythmConfig() RhythmConfig {
	return RhythmConfig{
		Geometry: GeometryConfig{
			JourneyStart: -400,
			JourneyEnd:   200,
			BaseSpeed:    200,
			Threshold:    20,
			LeadIn:       3,
		},
		Lanes: LanesConfig{
			Up:    LaneConfig{Offset: 150, Rotation: 90, Keys: []string{"up", "w"}},
			Down:  LaneConfig{Offset: 50, Rotation: -90, Keys: []string{"down", "s"}},
			Left:  LaneConfig{Offset: -50, Rotation: 180, Keys: []string{"left", "a"}},
			Right: LaneConfig{Offset: -150, Rotation: 0, Keys: []string{"right", "d"}},
		},
		Hit: HitConfig{
			OneHitPerPress: true,
		},
		Theme: ThemeConfig{
			ArrowGlyphs:  GlyphSet{Right: "▶", Up: "▲", Left: "◀", Down: "▼"},
			TargetGlyphs: GlyphSet{Right: "▷", Up: "△", Left: "◁", Down: "▽"},
			Colors: map[string]string{
				"slow":   "red",
				"medium": "blue",
				"fast":   "green",
				"target": "gray",
			},
		},
		Render: RenderConfig{
			UnitsPerRow: 50,
			Margin:      2,
		},
	}
}
