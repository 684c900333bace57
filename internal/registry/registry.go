// Package registry provides a global registry of built-in charts.
// Chart packages register themselves in init() functions, allowing the
// platform to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-rhythm/internal/charts"
)

// ChartInfo contains metadata about a registered chart.
type ChartInfo struct {
	ID       string
	Title    string
	Notes    int
	Duration float64
}

var (
	defs = make(map[string]charts.Def)
	mu   sync.RWMutex
)

// Register adds a built-in chart.
// Panics if the chart is invalid or the ID is already registered.
func Register(def charts.Def) {
	mu.Lock()
	defer mu.Unlock()

	if err := def.Validate(); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
	if _, exists := defs[def.ID]; exists {
		panic(fmt.Sprintf("registry: chart %q already registered", def.ID))
	}

	def.Source = charts.SourceBuiltin
	defs[def.ID] = def.Clone()
}

// List returns information about all registered charts, sorted by ID.
func List() []ChartInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ChartInfo, 0, len(defs))
	for _, d := range defs {
		result = append(result, ChartInfo{
			ID:       d.ID,
			Title:    d.DisplayTitle(),
			Notes:    len(d.Notes),
			Duration: d.Duration(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a copy of the chart registered under id.
func Get(id string) (charts.Def, error) {
	mu.RLock()
	defer mu.RUnlock()

	d, ok := defs[id]
	if !ok {
		return charts.Def{}, fmt.Errorf("registry: unknown chart %q: %w", id, charts.ErrNotFound)
	}

	return d.Clone(), nil
}

// Exists checks if a chart with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := defs[id]
	return ok
}
