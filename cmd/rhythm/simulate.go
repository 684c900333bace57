package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rhythm/internal/charts"
	"github.com/vovakirdan/tui-rhythm/internal/config"
	"github.com/vovakirdan/tui-rhythm/internal/core"
	"github.com/vovakirdan/tui-rhythm/internal/games/arrows"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

var (
	flagSimFile     string
	flagSimAutoplay bool
	flagSimDT       float64
	flagSimMax      float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [chart]",
	Short: "Run a chart without a terminal UI",
	Long: `Runs a chart at a fixed frame step with no terminal, logging every
spawn and dispose command at info level. Without --autoplay no key is ever
pressed, so every arrow overshoots.

Examples:
  rhythm simulate tutorial --autoplay
  rhythm simulate --file ./song.yaml --dt 0.05
  rhythm simulate stairs --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimFile, "file", "", "Simulate a chart file instead of a chart ID")
	simulateCmd.Flags().BoolVar(&flagSimAutoplay, "autoplay", false, "Press keys automatically")
	simulateCmd.Flags().Float64Var(&flagSimDT, "dt", 0, "Seconds per frame (default 1/--fps)")
	simulateCmd.Flags().Float64Var(&flagSimMax, "max", 600, "Stop after this many simulated seconds")
}

// simResult summarises a headless run.
type simResult struct {
	Frames   int
	Commands int
	Hits     int
	Misses   int
	Elapsed  float64
	Sprites  int // visuals still held by the presenter at the end
	Finished bool
}

// simulate steps a session until it completes or maxTime passes.
func simulate(def charts.Def, cfg config.RhythmConfig, dt, maxTime float64, autoplay bool) (simResult, error) {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return simResult{}, fmt.Errorf("frame step must be positive, got %v", dt)
	}

	params, err := cfg.Params()
	if err != nil {
		return simResult{}, err
	}
	sheet, err := arrows.NewStyleSheet(cfg.Theme)
	if err != nil {
		return simResult{}, err
	}
	chart, err := def.Build(params)
	if err != nil {
		return simResult{}, err
	}

	session, err := rhythm.NewSession(chart, params, rhythm.WithLogger(logger.With("chart", def.ID)))
	if err != nil {
		return simResult{}, err
	}
	presenter := arrows.NewSpritePresenter(sheet)
	dispatch := rhythm.NewDispatcher(presenter)

	var (
		res  simResult
		bot  rhythm.Autoplay
		none = core.NewInputFrame()
	)
	for !session.Done() && session.Elapsed() < maxTime {
		in := none
		if autoplay {
			in = bot.Frame(session, dt)
		}

		cmds := session.Advance(dt, in)
		dispatch.Apply(cmds)
		for _, c := range cmds {
			logCommand(c)
		}

		res.Frames++
		res.Commands += len(cmds)
	}

	res.Hits = session.Hits()
	res.Misses = session.Misses()
	res.Elapsed = session.Elapsed()
	res.Sprites = presenter.Len()
	res.Finished = session.Done()
	return res, nil
}

func logCommand(c rhythm.Command) {
	kv := []any{"t", fmt.Sprintf("%.3f", c.At), "object", c.Object, "dir", c.Direction}
	switch c.Kind {
	case rhythm.CommandSpawn:
		kv = append(kv, "style", c.Style, "x", c.Position.X, "y", c.Position.Y)
	case rhythm.CommandDispose:
		kv = append(kv, "resolution", c.Resolution)
	}
	logger.Info(c.Kind.String(), kv...)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	def, err := chartFromArgs(flagSimFile, args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadRhythm(flagConfig)
	if err != nil {
		return err
	}

	dt := flagSimDT
	if dt == 0 {
		dt = 1 / float64(flagFPS)
	}

	res, err := simulate(def, cfg, dt, flagSimMax, flagSimAutoplay)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d frames, %d commands, %d hit, %d missed, ended at %.3fs\n",
		def.ID, res.Frames, res.Commands, res.Hits, res.Misses, res.Elapsed)
	if !res.Finished {
		return errors.New("chart did not complete before --max")
	}
	return nil
}
