package arrows

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-rhythm/internal/charts"
	"github.com/vovakirdan/tui-rhythm/internal/config"
	"github.com/vovakirdan/tui-rhythm/internal/core"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

const dt = 1.0 / 60

func tutorial() charts.Def {
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

func newGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g, err := New(tutorial(), config.DefaultRhythmConfig(), opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

func TestNewRejectsBadInput(t *testing.T) {
	cfg := config.DefaultRhythmConfig()
	delete(cfg.Theme.Colors, "fast")
	if _, err := New(tutorial(), cfg); !errors.Is(err, ErrMissingStyle) {
		t.Errorf("Expected ErrMissingStyle, got %v", err)
	}

	cfg = config.DefaultRhythmConfig()
	cfg.Geometry.BaseSpeed = 0
	if _, err := New(tutorial(), cfg); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}

	def := tutorial()
	def.Notes[2].HitTime = 0.5
	var oerr *rhythm.ChartOrderingError
	if _, err := New(def, config.DefaultRhythmConfig()); !errors.As(err, &oerr) {
		t.Errorf("Expected ChartOrderingError, got %v", err)
	}
}

func TestGameAutoplayFinishes(t *testing.T) {
	g := newGame(t, WithAutoplay(true))

	var result core.StepResult
	for i := 0; i < 20*60; i++ {
		result = g.Step(dt, core.NewInputFrame())
		if result.State.Finished {
			break
		}
	}

	if !result.State.Finished {
		t.Fatalf("Chart not finished: %+v", result.State)
	}
	if g.Session().Hits() != 5 || g.Session().Misses() != 0 {
		t.Errorf("Hits=%d Misses=%d", g.Session().Hits(), g.Session().Misses())
	}
	if g.presenter.Len() != rhythm.DirectionCount {
		t.Errorf("Only targets should remain on screen, got %d sprites", g.presenter.Len())
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same inputs, same frames: identical sessions
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%37 == 0 {
			inputs[i].Press(core.KeyUp)
		}
		if i%53 == 0 {
			inputs[i].Press(core.KeyS)
		}
	}

	run := func() ([]rhythm.Arrow, core.GameState) {
		g := newGame(t)
		for _, in := range inputs {
			g.Step(dt, in)
		}
		return g.Session().Arrows(), g.State()
	}

	a1, s1 := run()
	a2, s2 := run()

	if s1 != s2 {
		t.Errorf("States differ: %+v vs %+v", s1, s2)
	}
	if len(a1) != len(a2) {
		t.Fatalf("Arrow counts differ: %d vs %d", len(a1), len(a2))
	}
	for i := range a1 {
		if a1[i] != a2[i] {
			t.Errorf("arrow %d differs: %+v vs %+v", i, a1[i], a2[i])
		}
	}
}

func TestGamePause(t *testing.T) {
	g := newGame(t)
	g.Step(dt, core.NewInputFrame())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(dt, pause)

	before := g.State().Elapsed
	for i := 0; i < 30; i++ {
		g.Step(dt, core.NewInputFrame())
	}
	if g.State().Elapsed != before || !g.State().Paused {
		t.Errorf("Clock moved while paused: %f -> %f", before, g.State().Elapsed)
	}

	g.Step(dt, pause)
	g.Step(dt, core.NewInputFrame())
	if g.State().Paused || g.State().Elapsed <= before {
		t.Error("Game should resume after a second pause press")
	}
}

func TestGameReset(t *testing.T) {
	g := newGame(t, WithAutoplay(true))

	// Each round must replay the full chart, not the queue the last round drained.
	for round := 0; round < 3; round++ {
		st := g.State()
		if st.Elapsed != -3 || st.Pending != 5 || st.Live != 0 || st.Finished {
			t.Fatalf("round %d: start state = %+v", round, st)
		}
		for i := 0; i < 20*60 && !g.State().Finished; i++ {
			g.Step(dt, core.NewInputFrame())
		}
		if !g.State().Finished || g.Session().Hits() != 5 {
			t.Fatalf("round %d: Finished=%v Hits=%d", round, g.State().Finished, g.Session().Hits())
		}
		g.Reset(core.DefaultConfig())
	}

	if n := g.chart.Len(); n != 5 {
		t.Errorf("Chart prototype drained to %d notes", n)
	}
}

func TestGameRender(t *testing.T) {
	g := newGame(t)
	screen := core.NewScreen(80, 24)

	// Run until the first arrow is on screen
	for i := 0; i < 90; i++ {
		g.Step(dt, core.NewInputFrame())
	}
	screen.Clear()
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Tutorial") {
		t.Error("Title missing from HUD")
	}
	for _, r := range []string{"▷", "△", "◁", "▽"} {
		if !strings.Contains(out, r) {
			t.Errorf("Target glyph %s missing", r)
		}
	}
	if !strings.Contains(out, "▲") {
		t.Errorf("Up arrow should be visible:\n%s", out)
	}

	// Up lane is drawn above the down lane
	lay := NewLayout(g.params, 80, 24, 2, 50)
	upRow := lay.Row(g.params.Lanes[rhythm.DirectionUp].Offset)
	col := lay.Column(g.params.End)
	if cell := screen.GetCell(col, upRow); cell.Rune != '△' || cell.Color != core.ColorGray {
		t.Errorf("Up target cell = %+v", cell)
	}
}

func TestLayout(t *testing.T) {
	p := rhythm.DefaultParams()
	lay := NewLayout(p, 81, 24, 0, 50)

	if lay.Column(p.Start) != 0 {
		t.Errorf("Start column = %d, expected 0", lay.Column(p.Start))
	}
	if lay.Column(p.OvershootAt()) != 80 {
		t.Errorf("Overshoot column = %d, expected 80", lay.Column(p.OvershootAt()))
	}
	if lay.Row(150) != 9 || lay.Row(-150) != 15 {
		t.Errorf("Rows = %d, %d", lay.Row(150), lay.Row(-150))
	}
}

func TestStyleSheetGlyphs(t *testing.T) {
	sheet, err := NewStyleSheet(config.DefaultRhythmConfig().Theme)
	if err != nil {
		t.Fatalf("NewStyleSheet failed: %v", err)
	}

	tests := []struct {
		rotation float64
		expected rune
	}{
		{0, '▶'},
		{math.Pi / 2, '▲'},
		{math.Pi, '◀'},
		{-math.Pi / 2, '▼'},
		{2 * math.Pi, '▶'},
	}
	for _, tc := range tests {
		if got := sheet.Glyph(rhythm.StyleSlow, tc.rotation); got != tc.expected {
			t.Errorf("Glyph(%f) = %c, expected %c", tc.rotation, got, tc.expected)
		}
	}

	if sheet.Color(rhythm.StyleSlow) != core.ColorRed || sheet.Color(rhythm.StyleFast) != core.ColorGreen {
		t.Error("Style colours not taken from theme")
	}
}

func TestStyleSheetRejectsBadGlyph(t *testing.T) {
	theme := config.DefaultRhythmConfig().Theme
	theme.ArrowGlyphs.Up = "^^"
	if _, err := NewStyleSheet(theme); !errors.Is(err, ErrMissingStyle) {
		t.Errorf("Expected ErrMissingStyle, got %v", err)
	}
}

func TestPausePanel(t *testing.T) {
	g := newGame(t)
	screen := core.NewScreen(60, 20)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(dt, pause)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "PAUSED") {
		t.Fatalf("Pause panel missing:\n%s", out)
	}
	if !strings.Contains(out, "┌") || !strings.Contains(out, "┘") {
		t.Errorf("Pause panel should be boxed:\n%s", out)
	}
}

func TestLayoutKeepsLanesOffHUD(t *testing.T) {
	lay := NewLayout(rhythm.DefaultParams(), 40, 3, 0, 50)
	if lay.CenterRow != hudRows {
		t.Errorf("CenterRow = %d on a tiny screen, expected %d", lay.CenterRow, hudRows)
	}
}
