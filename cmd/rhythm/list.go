package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rhythm/internal/charts"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available charts",
	Long: `Shows built-in charts, charts found in --charts-dir and charts stored
in the library. When an ID appears in more than one place, the charts
directory wins over the library, and the library over built-ins.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	cat := openCatalog()
	defer cat.Close()

	entries := cat.Entries()
	out := cmd.OutOrStdout()

	if len(entries) == 0 {
		fmt.Fprintln(out, "No charts available.")
		return nil
	}

	maxIDLen := 2 // "ID" header
	for _, e := range entries {
		maxIDLen = max(maxIDLen, len(e.ID))
	}

	fmt.Fprintln(out, "Available charts:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %-8s  %5s  %7s  %s\n", maxIDLen, "ID", "Source", "Notes", "Length", "Title")
	fmt.Fprintf(out, "  %-*s  %-8s  %5s  %7s  %s\n", maxIDLen, "--", "------", "-----", "------", "-----")
	for _, e := range entries {
		fmt.Fprintf(out, "  %-*s  %-8s  %5d  %6.1fs  %s\n", maxIDLen, e.ID, sourceName(e.Source), e.Notes, e.Duration, e.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'rhythm play <id>' to play a chart.")
	return nil
}

func sourceName(src string) string {
	switch src {
	case charts.SourceBuiltin, charts.SourceLibrary:
		return src
	}
	return "file"
}
