// Package config provides YAML-based configuration for the rhythm game:
// playfield geometry, lane bindings, hit rules, theme and render scaling.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-rhythm/internal/core"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid rhythm config")

// RhythmConfig contains all configuration for the arrow game.
type RhythmConfig struct {
	Geometry GeometryConfig `yaml:"geometry"`
	Lanes    LanesConfig    `yaml:"lanes"`
	Hit      HitConfig      `yaml:"hit"`
	Theme    ThemeConfig    `yaml:"theme"`
	Render   RenderConfig   `yaml:"render"`
}

// GeometryConfig defines the travel axis and timing, in playfield units.
type GeometryConfig struct {
	JourneyStart float64 `yaml:"journey_start"`
	JourneyEnd   float64 `yaml:"journey_end"`
	BaseSpeed    float64 `yaml:"base_speed"` // units per second at slow speed
	Threshold    float64 `yaml:"threshold"`  // hit window half-width
	LeadIn       float64 `yaml:"lead_in"`    // seconds before song time zero
}

// LaneConfig defines one lane.
type LaneConfig struct {
	Offset   float64  `yaml:"offset"`
	Rotation float64  `yaml:"rotation"` // degrees, 0 points along the travel axis
	Keys     []string `yaml:"keys"`
}

// LanesConfig holds the four lanes.
type LanesConfig struct {
	Up    LaneConfig `yaml:"up"`
	Down  LaneConfig `yaml:"down"`
	Left  LaneConfig `yaml:"left"`
	Right LaneConfig `yaml:"right"`
}

// Lane returns the config for d.
func (l LanesConfig) Lane(d rhythm.Direction) LaneConfig {
	switch d {
	case rhythm.DirectionUp:
		return l.Up
	case rhythm.DirectionDown:
		return l.Down
	case rhythm.DirectionLeft:
		return l.Left
	default:
		return l.Right
	}
}

// HitConfig defines hit resolution rules.
type HitConfig struct {
	OneHitPerPress bool `yaml:"one_hit_per_press"`
}

// ThemeConfig defines glyphs and colours per visual style.
type ThemeConfig struct {
	ArrowGlyphs  GlyphSet          `yaml:"arrow_glyphs"`
	TargetGlyphs GlyphSet          `yaml:"target_glyphs"`
	Colors       map[string]string `yaml:"colors"` // style name -> colour name
}

// GlyphSet holds one glyph per pointing direction.
type GlyphSet struct {
	Right string `yaml:"right"`
	Up    string `yaml:"up"`
	Left  string `yaml:"left"`
	Down  string `yaml:"down"`
}

// RenderConfig defines how playfield units map onto terminal cells.
type RenderConfig struct {
	UnitsPerRow float64 `yaml:"units_per_row"`
	Margin      int     `yaml:"margin"`
}

// Validate checks the config before it reaches the game.
func (c RhythmConfig) Validate() error {
	g := c.Geometry
	if g.JourneyEnd <= 0 {
		return fmt.Errorf("%w: journey_end must be positive", ErrInvalidConfig)
	}
	if g.JourneyEnd <= g.JourneyStart {
		return fmt.Errorf("%w: journey_end must be greater than journey_start", ErrInvalidConfig)
	}
	if g.BaseSpeed <= 0 {
		return fmt.Errorf("%w: base_speed must be positive", ErrInvalidConfig)
	}
	if g.Threshold <= 0 {
		return fmt.Errorf("%w: threshold must be positive", ErrInvalidConfig)
	}
	if g.LeadIn < 0 {
		return fmt.Errorf("%w: lead_in must not be negative", ErrInvalidConfig)
	}
	for _, d := range rhythm.Directions() {
		lane := c.Lanes.Lane(d)
		if len(lane.Keys) == 0 {
			return fmt.Errorf("%w: lane %v has no keys", ErrInvalidConfig, d)
		}
		for _, k := range lane.Keys {
			if _, err := core.ParseKey(k); err != nil {
				return fmt.Errorf("%w: lane %v: %v", ErrInvalidConfig, d, err)
			}
		}
	}
	if c.Render.UnitsPerRow <= 0 {
		return fmt.Errorf("%w: units_per_row must be positive", ErrInvalidConfig)
	}
	if c.Render.Margin < 0 {
		return fmt.Errorf("%w: margin must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Params converts the config into session parameters.
func (c RhythmConfig) Params() (rhythm.Params, error) {
	if err := c.Validate(); err != nil {
		return rhythm.Params{}, err
	}

	p := rhythm.Params{
		Start:          c.Geometry.JourneyStart,
		End:            c.Geometry.JourneyEnd,
		BaseSpeed:      c.Geometry.BaseSpeed,
		Threshold:      c.Geometry.Threshold,
		LeadIn:         c.Geometry.LeadIn,
		OneHitPerPress: c.Hit.OneHitPerPress,
	}
	for _, d := range rhythm.Directions() {
		lc := c.Lanes.Lane(d)
		keys := make([]core.Key, 0, len(lc.Keys))
		for _, name := range lc.Keys {
			k, _ := core.ParseKey(name)
			keys = append(keys, k)
		}
		p.Lanes[d] = rhythm.Lane{
			Offset:   lc.Offset,
			Rotation: lc.Rotation * math.Pi / 180,
			Keys:     keys,
		}
	}
	return p, nil
}
