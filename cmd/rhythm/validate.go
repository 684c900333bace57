package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rhythm/internal/charts"
	"github.com/vovakirdan/tui-rhythm/internal/config"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

var flagValidateDump bool

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a chart file",
	Long: `Parses a chart file and builds it against the configured geometry,
reporting the first ordering or entry error. With --dump the built note
queue is printed in full.

Examples:
  rhythm validate ./song.yaml
  rhythm validate ./song.yaml --dump`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&flagValidateDump, "dump", false, "Print the built note queue")
}

func runValidate(cmd *cobra.Command, args []string) error {
	def, err := charts.LoadFile(expandHome(args[0]))
	if err != nil {
		return err
	}

	cfg, err := config.LoadRhythm(flagConfig)
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}

	chart, err := def.Build(params)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	notes := chart.Notes()

	var perLane [rhythm.DirectionCount]int
	for _, n := range notes {
		perLane[n.Direction]++
	}

	fmt.Fprintf(out, "%s: ok\n", def.ID)
	fmt.Fprintf(out, "  title:    %s\n", def.DisplayTitle())
	fmt.Fprintf(out, "  notes:    %d\n", len(notes))
	if len(notes) > 0 {
		fmt.Fprintf(out, "  first spawn: %.3fs\n", notes[0].SpawnTime)
		fmt.Fprintf(out, "  last hit:    %.3fs\n", def.Duration())
	}
	for _, d := range rhythm.Directions() {
		fmt.Fprintf(out, "  %-6s %d\n", d.String()+":", perLane[d])
	}

	if flagValidateDump {
		cs := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		cs.Fdump(out, notes)
	}
	return nil
}
