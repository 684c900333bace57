package charts

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

// YAMLChart is the on-disk layout of a chart file.
type YAMLChart struct {
	ID       string            `yaml:"id"`
	Title    string            `yaml:"title,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
	Notes    []YAMLNote        `yaml:"notes"`
}

// YAMLNote is a single authored note.
type YAMLNote struct {
	At    float64 `yaml:"at"`              // hit time in seconds
	Speed string  `yaml:"speed,omitempty"` // slow, medium or fast; default slow
	Dir   string  `yaml:"dir"`
}

// ParseYAML parses a chart file. Unknown speeds or directions fail the whole
// chart rather than silently dropping notes.
func ParseYAML(data []byte) (Def, error) {
	var yc YAMLChart
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Def{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	def := Def{
		ID:       yc.ID,
		Title:    yc.Title,
		Metadata: yc.Metadata,
		Notes:    make([]rhythm.Entry, 0, len(yc.Notes)),
	}
	for i, n := range yc.Notes {
		speed, err := rhythm.ParseSpeedClass(n.Speed)
		if err != nil {
			return Def{}, fmt.Errorf("note %d: %w", i, err)
		}
		dir, err := rhythm.ParseDirection(n.Dir)
		if err != nil {
			return Def{}, fmt.Errorf("note %d: %w", i, err)
		}
		def.Notes = append(def.Notes, rhythm.Entry{HitTime: n.At, Speed: speed, Direction: dir})
	}

	if err := def.Validate(); err != nil {
		return Def{}, err
	}
	return def, nil
}

// MarshalYAML renders d in the chart file layout.
func MarshalYAML(d Def) ([]byte, error) {
	yc := YAMLChart{
		ID:       d.ID,
		Title:    d.Title,
		Metadata: d.Metadata,
		Notes:    make([]YAMLNote, len(d.Notes)),
	}
	for i, n := range d.Notes {
		yc.Notes[i] = YAMLNote{At: n.HitTime, Speed: n.Speed.String(), Dir: n.Direction.String()}
	}
	return yaml.Marshal(yc)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
