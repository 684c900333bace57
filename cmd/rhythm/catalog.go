package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-rhythm/internal/charts"
	"github.com/vovakirdan/tui-rhythm/internal/config"
	"github.com/vovakirdan/tui-rhythm/internal/core"
	"github.com/vovakirdan/tui-rhythm/internal/games/arrows"
	"github.com/vovakirdan/tui-rhythm/internal/platform/tui"
	"github.com/vovakirdan/tui-rhythm/internal/registry"
	"github.com/vovakirdan/tui-rhythm/internal/storage"
)

// catalog resolves chart IDs across the charts directory, the library and
// the built-in registry, in that order.
type catalog struct {
	loader *charts.Loader // nil when the charts directory does not exist
	store  *storage.Store // nil when the library could not be opened
}

// openCatalog opens whatever chart sources are available. A missing charts
// directory or library is not an error; built-in charts are always there.
func openCatalog() *catalog {
	c := &catalog{}

	dir := expandHome(flagChartsDir)
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		c.loader = charts.NewLoader(dir)
		c.loader.Logger = logger.With("charts_dir", dir)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open chart library", "path", flagDBPath, "error", err)
	} else {
		c.store = store
	}
	return c
}

func (c *catalog) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Resolve finds the chart with the given ID.
func (c *catalog) Resolve(id string) (charts.Def, error) {
	if c.loader != nil {
		def, err := c.loader.LoadByID(id)
		if err == nil {
			return def, nil
		}
		if !errors.Is(err, charts.ErrNotFound) {
			logger.Warn("charts directory unreadable", "error", err)
		}
	}

	if c.store != nil {
		def, err := c.store.LoadChart(id)
		if err == nil {
			return def, nil
		}
		if !errors.Is(err, storage.ErrChartNotFound) {
			return charts.Def{}, err
		}
	}

	def, err := registry.Get(id)
	if err != nil {
		return charts.Def{}, fmt.Errorf("unknown chart %q (run 'rhythm list')", id)
	}
	return def, nil
}

// Entries lists every chart once; an ID shadowed by an earlier source is
// skipped.
func (c *catalog) Entries() []tui.PickerEntry {
	var out []tui.PickerEntry
	seen := make(map[string]bool)
	add := func(e tui.PickerEntry) {
		if seen[e.ID] {
			return
		}
		seen[e.ID] = true
		out = append(out, e)
	}

	if c.loader != nil {
		defs, err := c.loader.LoadAll()
		if err != nil {
			logger.Warn("charts directory unreadable", "error", err)
		}
		for _, d := range defs {
			add(tui.PickerEntry{ID: d.ID, Title: d.DisplayTitle(), Source: d.Source, Notes: len(d.Notes), Duration: d.Duration()})
		}
	}

	if c.store != nil {
		summaries, err := c.store.ListCharts()
		if err != nil {
			logger.Warn("could not list chart library", "error", err)
		}
		for _, s := range summaries {
			add(tui.PickerEntry{ID: s.ID, Title: s.Title, Source: charts.SourceLibrary, Notes: s.Notes, Duration: s.Duration})
		}
	}

	for _, info := range registry.List() {
		add(tui.PickerEntry{ID: info.ID, Title: info.Title, Source: charts.SourceBuiltin, Notes: info.Notes, Duration: info.Duration})
	}
	return out
}

// newGame builds a playable game for def.
func newGame(def charts.Def, cfg config.RhythmConfig, autoplay bool) (*arrows.Game, error) {
	return arrows.New(def, cfg,
		arrows.WithLogger(logger),
		arrows.WithAutoplay(autoplay),
	)
}

// runtimeConfig sizes the screen to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	return cfg
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
