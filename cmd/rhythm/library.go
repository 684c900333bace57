package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rhythm/internal/charts"
	"github.com/vovakirdan/tui-rhythm/internal/config"
	"github.com/vovakirdan/tui-rhythm/internal/storage"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add a chart file to the library",
	Long: `Validates a chart file against the configured geometry and stores it
in the library database. Importing an existing ID replaces it.

Examples:
  rhythm import ./song.yaml
  rhythm import ./song.yaml --db ./charts.db`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export <chart> <file>",
	Short: "Write a chart to a YAML file",
	Args:  cobra.ExactArgs(2),
	RunE:  runExport,
}

var rmCmd = &cobra.Command{
	Use:   "rm <chart>",
	Short: "Remove a chart from the library",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func runImport(cmd *cobra.Command, args []string) error {
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
	if _, err := def.Build(params); err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveChart(def); err != nil {
		return err
	}

	logger.Info("chart imported", "chart", def.ID, "notes", len(def.Notes))
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %q (%d notes)\n", def.ID, len(def.Notes))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cat := openCatalog()
	defer cat.Close()

	def, err := cat.Resolve(args[0])
	if err != nil {
		return err
	}

	path := expandHome(args[1])
	if err := charts.WriteFile(path, def); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %q to %s\n", def.ID, path)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteChart(args[0]); err != nil {
		if errors.Is(err, storage.ErrChartNotFound) {
			return fmt.Errorf("chart %q is not in the library", args[0])
		}
		return err
	}

	logger.Info("chart removed", "chart", args[0])
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", args[0])
	return nil
}
