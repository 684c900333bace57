package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rhythm/internal/charts"
	"github.com/vovakirdan/tui-rhythm/internal/config"
	"github.com/vovakirdan/tui-rhythm/internal/platform/tui"
)

var (
	flagPlayFile     string
	flagPlayAutoplay bool
)

var playCmd = &cobra.Command{
	Use:   "play [chart]",
	Short: "Play a chart",
	Long: `Start playing the specified chart.

Controls:
  Arrows/WASD  - Hit the arrow on that lane
  P/Esc        - Pause
  R            - Restart (after the chart completes)
  B            - Back (while paused or complete)
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a text screenshot to ~/.rhythm/screenshots

Examples:
  rhythm play tutorial
  rhythm play stairs --autoplay
  rhythm play --file ./song.yaml
  rhythm play tutorial --config ./my-rhythm.yaml`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{annotationTUI: "true"},
	RunE:        runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayFile, "file", "", "Play a chart file instead of a chart ID")
	playCmd.Flags().BoolVar(&flagPlayAutoplay, "autoplay", false, "Let the game press the keys")
}

func runPlay(_ *cobra.Command, args []string) error {
	def, err := chartFromArgs(flagPlayFile, args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadRhythm(flagConfig)
	if err != nil {
		return err
	}

	game, err := newGame(def, cfg, flagPlayAutoplay)
	if err != nil {
		return err
	}

	rt := runtimeConfig()
	game.Reset(rt)

	logger.Info("playing chart", "chart", def.ID, "source", def.Source)
	_, err = tui.Run(game, rt)
	return err
}

// chartFromArgs loads --file when given, otherwise resolves the single
// chart ID argument.
func chartFromArgs(file string, args []string) (charts.Def, error) {
	if file != "" {
		if len(args) > 0 {
			return charts.Def{}, errors.New("pass either a chart ID or --file, not both")
		}
		return charts.LoadFile(expandHome(file))
	}
	if len(args) == 0 {
		return charts.Def{}, errors.New("missing chart ID (run 'rhythm list')")
	}

	cat := openCatalog()
	defer cat.Close()
	return cat.Resolve(args[0])
}
