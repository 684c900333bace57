package rhythm

import (
	"fmt"
	"strings"
)

// SpeedClass selects how fast a note travels relative to the base speed.
type SpeedClass uint8

const (
	SpeedSlow SpeedClass = iota
	SpeedMedium
	SpeedFast

	speedClassCount = 3
)

// Valid reports whether s is a known speed class.
func (s SpeedClass) Valid() bool {
	return s < speedClassCount
}

// Multiplier is applied to the base travel speed.
func (s SpeedClass) Multiplier() float64 {
	switch s {
	case SpeedSlow:
		return 1.0
	case SpeedMedium:
		return 1.2
	case SpeedFast:
		return 1.5
	}
	panic(fmt.Sprintf("rhythm: no multiplier for %v", s))
}

// Value returns the travel speed in units per second.
func (s SpeedClass) Value(base float64) float64 {
	return base * s.Multiplier()
}

// Style returns the cosmetic visual variant for arrows of this class.
func (s SpeedClass) Style() Style {
	switch s {
	case SpeedSlow:
		return StyleSlow
	case SpeedMedium:
		return StyleMedium
	case SpeedFast:
		return StyleFast
	}
	panic(fmt.Sprintf("rhythm: no style for %v", s))
}

func (s SpeedClass) String() string {
	switch s {
	case SpeedSlow:
		return "slow"
	case SpeedMedium:
		return "medium"
	case SpeedFast:
		return "fast"
	default:
		return fmt.Sprintf("speed(%d)", uint8(s))
	}
}

// ParseSpeedClass resolves a chart name (case-insensitive).
func ParseSpeedClass(name string) (SpeedClass, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "slow", "":
		return SpeedSlow, nil
	case "medium":
		return SpeedMedium, nil
	case "fast":
		return SpeedFast, nil
	}
	return 0, fmt.Errorf("rhythm: unknown speed %q", name)
}

// Style identifies a visual variant requested from the presenter.
type Style uint8

const (
	StyleSlow   Style = iota // red arrow
	StyleMedium              // blue arrow
	StyleFast                // green arrow
	StyleTarget              // hollow target marker

	StyleCount = 4
)

func (s Style) String() string {
	switch s {
	case StyleSlow:
		return "slow"
	case StyleMedium:
		return "medium"
	case StyleFast:
		return "fast"
	case StyleTarget:
		return "target"
	default:
		return fmt.Sprintf("style(%d)", uint8(s))
	}
}
