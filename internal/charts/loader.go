package charts

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrNotFound is returned when no chart has the requested ID.
var ErrNotFound = errors.New("charts: chart not found")

// Loader reads chart files from a directory tree.
type Loader struct {
	Root   string
	Logger *log.Logger
}

// NewLoader creates a loader rooted at root.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, Logger: log.New(io.Discard)}
}

// LoadAll recursively loads every chart file under Root, sorted by ID.
// Files that fail to parse are skipped with a warning.
func (l *Loader) LoadAll() ([]Def, error) {
	var defs []Def

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		def, err := l.LoadFile(path)
		if err != nil {
			l.logger().Warn("skipping chart file", "path", path, "err", err)
			return nil
		}
		defs = append(defs, def)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs, nil
}

// LoadFile loads a single chart file.
func (l *Loader) LoadFile(path string) (Def, error) {
	return LoadFile(path)
}

// LoadByID returns the chart with the given ID.
func (l *Loader) LoadByID(id string) (Def, error) {
	defs, err := l.LoadAll()
	if err != nil {
		return Def{}, err
	}
	for _, d := range defs {
		if d.ID == id {
			return d, nil
		}
	}
	return Def{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (l *Loader) logger() *log.Logger {
	if l.Logger == nil {
		return log.New(io.Discard)
	}
	return l.Logger
}

// LoadFile reads and parses one chart file; the result's Source is path.
func LoadFile(path string) (Def, error) {
	if !isSupportedExtension(filepath.Ext(path)) {
		return Def{}, fmt.Errorf("unsupported extension: %s", filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Def{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	def, err := ParseYAML(data)
	if err != nil {
		return Def{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	def.Source = path
	return def, nil
}

// WriteFile writes d to path in YAML.
func WriteFile(path string, d Def) error {
	data, err := MarshalYAML(d)
	if err != nil {
		return fmt.Errorf("marshal chart %s: %w", d.ID, err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
