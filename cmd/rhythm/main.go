// rhythm is a terminal rhythm game: arrows slide toward four targets and
// the player presses the matching key as each one lands.
//
// Usage:
//
//	rhythm list                  - List available charts
//	rhythm play <chart>          - Play a chart
//	rhythm menu                  - Pick charts interactively
//	rhythm import <file>         - Add a chart file to the library
//	rhythm export <chart> <file> - Write a chart to a YAML file
//	rhythm rm <chart>            - Remove a chart from the library
//	rhythm validate <file>       - Check a chart file
//	rhythm simulate <chart>      - Run a chart headless and log every command
//	rhythm serve                 - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set library path (default: ~/.rhythm/charts.db)
//	--config <path>      - Use a custom rhythm.yaml
//	--charts-dir <path>  - Directory of chart files (default: ~/.rhythm/charts)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register built-in charts
	_ "github.com/vovakirdan/tui-rhythm/internal/charts/builtin"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagConfig    string
	flagChartsDir string
	flagLogLevel  string
	flagLogFile   string
)

// logger is configured from the global flags before any command runs.
var (
	logger    = log.New(io.Discard)
	logCloser io.Closer
)

// annotationTUI marks commands that take over the terminal; they only log
// when --log-file is set.
const annotationTUI = "tui"

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rhythm",
	Short: "Rhythm - hit the arrows in your terminal",
	Long: `Rhythm is a terminal rhythm game. Arrows travel toward four targets;
press the matching direction key while an arrow overlaps its target.

Available commands:
  list      - Show all available charts
  play      - Play a specific chart directly
  menu      - Interactive chart picker
  import    - Add a chart file to the library
  export    - Write a chart to a YAML file
  rm        - Remove a chart from the library
  validate  - Check a chart file
  simulate  - Run a chart without a terminal UI
  serve     - Start SSH server for remote play

Examples:
  rhythm list
  rhythm play tutorial
  rhythm play --file ./song.yaml
  rhythm simulate stairs --autoplay --log-level debug
  rhythm serve --ssh :2222`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rhythm/charts.db", "Path to chart library database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rhythm.yaml")
	rootCmd.PersistentFlags().StringVar(&flagChartsDir, "charts-dir", "~/.rhythm/charts", "Directory of chart files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
}

// setupLogger builds the shared logger from --log-level and --log-file.
func setupLogger(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(expandHome(flagLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		w, logCloser = f, f
	case cmd.Annotations[annotationTUI] != "":
		w = io.Discard
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return nil
}
