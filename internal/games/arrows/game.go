// Package arrows runs a rhythm session as a terminal game: chart notes
// become arrows sliding toward four targets, drawn onto a core.Screen.
package arrows

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rhythm/internal/charts"
	"github.com/vovakirdan/tui-rhythm/internal/config"
	"github.com/vovakirdan/tui-rhythm/internal/core"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

// Visual characters for rendering
const (
	LaneChar   = '·'
	BorderChar = '─'
)

// Game plays one chart.
type Game struct {
	def    charts.Def
	chart  *rhythm.Chart // unplayed prototype, cloned on every Reset
	cfg    config.RhythmConfig
	params rhythm.Params
	sheet  StyleSheet
	logger *log.Logger

	autoplay bool
	bot      rhythm.Autoplay

	runtime   core.RuntimeConfig
	session   *rhythm.Session
	presenter *SpritePresenter
	dispatch  *rhythm.Dispatcher
	paused    bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger handed to each session.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithAutoplay lets the game press the keys itself.
func WithAutoplay(on bool) Option {
	return func(g *Game) { g.autoplay = on }
}

// New validates the config, theme and chart up front so a bad chart or
// theme fails before the terminal is taken over.
func New(def charts.Def, cfg config.RhythmConfig, opts ...Option) (*Game, error) {
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	sheet, err := NewStyleSheet(cfg.Theme)
	if err != nil {
		return nil, err
	}
	chart, err := def.Build(params)
	if err != nil {
		return nil, err
	}

	g := &Game{
		def:     def,
		chart:   chart,
		cfg:     cfg,
		params:  params,
		sheet:   sheet,
		logger:  log.New(io.Discard),
		runtime: core.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.start(); err != nil {
		return nil, err
	}
	return g, nil
}

// ID returns the chart ID.
func (g *Game) ID() string { return g.def.ID }

// Title returns the chart title.
func (g *Game) Title() string { return g.def.DisplayTitle() }

// Reset starts the chart over. On failure the current session is kept.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	if err := g.start(); err != nil {
		g.logger.Error("cannot restart chart", "chart", g.def.ID, "err", err)
	}
}

// start replaces the session with a fresh one over a copy of the chart.
func (g *Game) start() error {
	session, err := rhythm.NewSession(g.chart.Clone(), g.params, rhythm.WithLogger(g.logger.With("chart", g.def.ID)))
	if err != nil {
		return fmt.Errorf("arrows: %w", err)
	}
	g.session = session
	g.presenter = NewSpritePresenter(g.sheet)
	g.dispatch = rhythm.NewDispatcher(g.presenter)
	g.paused = false
	return nil
}

// Step advances the session by dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.session.Done() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.autoplay {
		in = g.bot.Frame(g.session, dt)
	}
	cmds := g.session.Advance(dt, in)
	g.dispatch.Apply(cmds)

	return core.StepResult{State: g.State(), Commands: len(cmds)}
}

// State reports progress to the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Elapsed:  g.session.Elapsed(),
		Pending:  g.session.Pending(),
		Live:     g.session.Live(),
		Finished: g.session.Done(),
		Paused:   g.paused,
	}
}

// Session exposes the running session.
func (g *Game) Session() *rhythm.Session { return g.session }

// Render draws the playfield and HUD.
func (g *Game) Render(dst *core.Screen) {
	lay := NewLayout(g.params, dst.Width(), dst.Height(), g.cfg.Render.Margin, g.cfg.Render.UnitsPerRow)

	g.renderHUD(dst)

	for _, d := range rhythm.Directions() {
		row := lay.Row(g.params.Lanes[d].Offset)
		dst.DrawHLine(lay.Left, row, lay.Right-lay.Left+1, LaneChar, core.ColorGray)
	}

	for _, t := range g.session.Targets() {
		g.drawObject(dst, lay, t.ID, t.Position.X)
	}
	for _, a := range g.session.Arrows() {
		g.drawObject(dst, lay, a.ID, a.Position)
	}

	switch {
	case g.session.Done():
		drawPanel(dst, "CHART COMPLETE", "R restart  B back  Q quit")
	case g.paused:
		drawPanel(dst, "PAUSED", "P resume  B back  Q quit")
	}
}

// drawPanel boxes lines in the middle of the screen over the playfield.
func drawPanel(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	full := core.NewRect(0, 0, dst.Width(), dst.Height())
	panel := full.Centered(width+4, len(lines)+2)
	dst.Fill(panel, ' ')
	dst.DrawBox(panel, core.ColorGray)

	inner := panel.Inset(1)
	for i, l := range lines {
		x := inner.X + (inner.W-utf8.RuneCountInString(l))/2
		dst.DrawText(x, inner.Y+i, l)
	}
}

// drawObject draws the sprite attached to id at travel coordinate x.
func (g *Game) drawObject(dst *core.Screen, lay Layout, id rhythm.ObjectID, x float64) {
	h, ok := g.dispatch.Handle(id)
	if !ok {
		return
	}
	s, ok := g.presenter.Sprite(h)
	if !ok {
		return
	}
	dst.SetColor(lay.Column(x), lay.Row(s.Pos.Y), s.Glyph, s.Color)
}

func (g *Game) renderHUD(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()

	title := g.Title()
	if g.autoplay {
		title += " [autoplay]"
	}
	dst.DrawText(1, 0, title)

	status := fmt.Sprintf("t=%6.2fs  pending %d  live %d", g.session.Elapsed(), g.session.Pending(), g.session.Live())
	dst.DrawText(w-len(status)-1, 0, status)
	dst.DrawHLine(0, 1, w, BorderChar, core.ColorGray)

	dst.DrawHLine(0, h-2, w, BorderChar, core.ColorGray)
	dst.DrawTextColor(1, h-1, "arrows/WASD hit  P pause  Q quit", core.ColorGray)
}
