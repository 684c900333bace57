package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRhythm loads the game configuration.
// Search order: customPath -> ~/.rhythm/configs/rhythm.yaml -> ./configs/rhythm.yaml -> embedded default.
// Files are layered over the defaults, so they only need the keys they change.
// A custom path must load; the other candidates are skipped when missing or
// invalid.
func LoadRhythm(customPath string) (RhythmConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RhythmConfig{}, fmt.Errorf("config: reading %s: %w", customPath, err)
		}
		cfg, err := parseRhythm(data)
		if err != nil {
			return RhythmConfig{}, fmt.Errorf("config: parsing %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseRhythm(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parseRhythm(defaultRhythmYAML); err == nil {
		return cfg, nil
	}
	return DefaultRhythmConfig(), nil
}

// searchPaths lists the on-disk config candidates in priority order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath("rhythm.yaml"); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", "rhythm.yaml"))
}

// parseRhythm decodes data over the defaults and validates the result.
func parseRhythm(data []byte) (RhythmConfig, error) {
	cfg := DefaultRhythmConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RhythmConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RhythmConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rhythm", "configs", filename)
}
