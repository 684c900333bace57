// Package charts defines authored chart definitions and reads them from
// YAML files. The rhythm package never sees files; it receives entries.
package charts

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

// Sources a Def may come from.
const (
	SourceBuiltin = "builtin"
	SourceLibrary = "library"
)

// ErrInvalidDef is wrapped by Def validation failures.
var ErrInvalidDef = errors.New("charts: invalid chart")

var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Def is a complete chart definition.
type Def struct {
	ID       string
	Title    string
	Notes    []rhythm.Entry
	Metadata map[string]string
	Source   string // file path, SourceBuiltin or SourceLibrary
}

// Validate checks the fields the loader and library rely on. Note timing is
// checked by Build.
func (d Def) Validate() error {
	if !idPattern.MatchString(d.ID) {
		return fmt.Errorf("%w: bad id %q", ErrInvalidDef, d.ID)
	}
	return nil
}

// Build turns the definition into a playable queue for p.
func (d Def) Build(p rhythm.Params) (*rhythm.Chart, error) {
	c, err := rhythm.BuildChart(d.Notes, p)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", d.ID, err)
	}
	return c, nil
}

// Duration returns the hit time of the last note.
func (d Def) Duration() float64 {
	if len(d.Notes) == 0 {
		return 0
	}
	return d.Notes[len(d.Notes)-1].HitTime
}

// DisplayTitle falls back to the ID when no title is set.
func (d Def) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return d.ID
}

// Clone returns a copy that shares no slices or maps with d.
func (d Def) Clone() Def {
	out := d
	out.Notes = append([]rhythm.Entry(nil), d.Notes...)
	if d.Metadata != nil {
		out.Metadata = make(map[string]string, len(d.Metadata))
		for k, v := range d.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}
