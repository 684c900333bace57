package arrows

import (
	"math"

	"github.com/vovakirdan/tui-rhythm/internal/core"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

// Layout projects playfield coordinates onto screen cells. The travel axis
// from Start to the overshoot line spans the screen width inside the
// margin; lanes are stacked around the vertical centre, higher offsets on
// top.
type Layout struct {
	Left, Right int // first and last usable column
	CenterRow   int
	UnitsPerRow float64

	start, span float64
}

// hudRows is the number of rows the HUD takes at the top and bottom.
const hudRows = 2

// NewLayout computes the projection for a w x h screen.
func NewLayout(p rhythm.Params, w, h, margin int, unitsPerRow float64) Layout {
	l := Layout{
		Left:        margin,
		Right:       w - 1 - margin,
		CenterRow:   core.Clamp(h/2, hudRows, max(h-1-hudRows, hudRows)),
		UnitsPerRow: unitsPerRow,
		start:       p.Start,
		span:        p.OvershootAt() - p.Start,
	}
	if l.Right < l.Left {
		l.Right = l.Left
	}
	return l
}

// Column maps a travel coordinate to a screen column.
func (l Layout) Column(x float64) int {
	t := (x - l.start) / l.span
	return l.Left + int(math.Round(t*float64(l.Right-l.Left)))
}

// Row maps a lane offset to a screen row.
func (l Layout) Row(offset float64) int {
	return l.CenterRow - int(math.Round(offset/l.UnitsPerRow))
}
