package charts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

const tutorialYAML = `id: tutorial
title: Tutorial
metadata:
  author: test
notes:
  - {at: 1, speed: slow, dir: up}
  - {at: 2, dir: down}
  - {at: 4, speed: medium, dir: up}
  - {at: 5, speed: fast, dir: d}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseYAML(t *testing.T) {
	def, err := ParseYAML([]byte(tutorialYAML))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	if def.ID != "tutorial" || def.Title != "Tutorial" {
		t.Errorf("ID/Title = %q/%q", def.ID, def.Title)
	}
	if def.Metadata["author"] != "test" {
		t.Errorf("Metadata = %v", def.Metadata)
	}
	if len(def.Notes) != 4 {
		t.Fatalf("Expected 4 notes, got %d", len(def.Notes))
	}
	// speed defaults to slow
	if def.Notes[1].Speed != rhythm.SpeedSlow {
		t.Errorf("Default speed = %v, expected slow", def.Notes[1].Speed)
	}
	if def.Notes[3].Speed != rhythm.SpeedFast || def.Notes[3].Direction != rhythm.DirectionDown {
		t.Errorf("Last note = %+v", def.Notes[3])
	}
	if def.Duration() != 5 {
		t.Errorf("Duration() = %f, expected 5", def.Duration())
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":      "id: [",
		"bad direction": "id: x\nnotes:\n  - {at: 1, dir: sideways}\n",
		"bad speed":     "id: x\nnotes:\n  - {at: 1, speed: warp, dir: up}\n",
		"missing id":    "notes:\n  - {at: 1, dir: up}\n",
		"bad id":        "id: Has Spaces\nnotes: []\n",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(data)); err == nil {
				t.Error("Expected an error")
			}
		})
	}

	if _, err := ParseYAML([]byte("id: ''\n")); !errors.Is(err, ErrInvalidDef) {
		t.Errorf("Empty id should wrap ErrInvalidDef, got %v", err)
	}
}

func TestMarshalYAMLRoundTrip(t *testing.T) {
	def, err := ParseYAML([]byte(tutorialYAML))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	data, err := MarshalYAML(def)
	if err != nil {
		t.Fatalf("MarshalYAML failed: %v", err)
	}
	back, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML(MarshalYAML) failed: %v\n%s", err, data)
	}
	if len(back.Notes) != len(def.Notes) {
		t.Fatalf("Notes lost: %d vs %d", len(back.Notes), len(def.Notes))
	}
	for i := range def.Notes {
		if back.Notes[i] != def.Notes[i] {
			t.Errorf("note %d: %+v vs %+v", i, back.Notes[i], def.Notes[i])
		}
	}
}

func TestDefBuild(t *testing.T) {
	def, _ := ParseYAML([]byte(tutorialYAML))

	c, err := def.Build(rhythm.DefaultParams())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if c.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", c.Len())
	}

	def.Notes[0].HitTime = 10
	var oerr *rhythm.ChartOrderingError
	if _, err := def.Build(rhythm.DefaultParams()); !errors.As(err, &oerr) {
		t.Errorf("Expected ChartOrderingError, got %v", err)
	}
}

func TestDefClone(t *testing.T) {
	def, _ := ParseYAML([]byte(tutorialYAML))
	clone := def.Clone()

	clone.Notes[0].HitTime = 99
	clone.Metadata["author"] = "other"

	if def.Notes[0].HitTime == 99 || def.Metadata["author"] == "other" {
		t.Error("Clone should not share notes or metadata")
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", "id: beta\nnotes:\n  - {at: 1, dir: up}\n")
	writeFile(t, dir, "nested/a.yml", "id: alpha\nnotes:\n  - {at: 1, dir: left}\n")
	writeFile(t, dir, "broken.yaml", "id: [")
	writeFile(t, dir, "readme.txt", "not a chart")

	l := NewLoader(dir)
	defs, err := l.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(defs) != 2 {
		t.Fatalf("Expected 2 charts, got %d", len(defs))
	}
	if defs[0].ID != "alpha" || defs[1].ID != "beta" {
		t.Errorf("Charts not sorted by ID: %s, %s", defs[0].ID, defs[1].ID)
	}
	if filepath.Base(defs[0].Source) != "a.yml" {
		t.Errorf("Source = %q", defs[0].Source)
	}

	def, err := l.LoadByID("beta")
	if err != nil || def.ID != "beta" {
		t.Errorf("LoadByID(beta) = %v, %v", def.ID, err)
	}
	if _, err := l.LoadByID("gamma"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "nope"))
	if _, err := l.LoadAll(); err == nil {
		t.Error("LoadAll on a missing directory should fail")
	}
}

func TestWriteFile(t *testing.T) {
	def, _ := ParseYAML([]byte(tutorialYAML))
	path := filepath.Join(t.TempDir(), "out", "tutorial.yaml")

	if err := WriteFile(path, def); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	back, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if back.ID != def.ID || len(back.Notes) != len(def.Notes) || back.Source != path {
		t.Errorf("Round trip mismatch: %+v", back)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "chart.json")); err == nil {
		t.Error("LoadFile should reject unsupported extensions")
	}
}
