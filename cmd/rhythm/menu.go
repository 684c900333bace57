package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rhythm/internal/config"
	"github.com/vovakirdan/tui-rhythm/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick charts interactively",
	Long: `Opens a chart picker listing built-in, directory and library charts.
Finishing or leaving a chart with B returns to the picker.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationTUI: "true"},
	RunE:        runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadRhythm(flagConfig)
	if err != nil {
		return err
	}

	cat := openCatalog()
	defer cat.Close()

	for {
		rt := runtimeConfig()

		entry, ok, err := tui.RunPicker(cat.Entries(), rt.ScreenW, rt.ScreenH)
		if err != nil || !ok {
			return err
		}

		def, err := cat.Resolve(entry.ID)
		if err != nil {
			return err
		}
		game, err := newGame(def, cfg, false)
		if err != nil {
			return err
		}
		game.Reset(rt)

		logger.Info("playing chart", "chart", def.ID, "source", def.Source)
		back, err := tui.Run(game, rt)
		if err != nil || !back {
			return err
		}
	}
}
