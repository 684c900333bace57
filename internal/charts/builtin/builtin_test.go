package builtin

import (
	"testing"

	"github.com/vovakirdan/tui-rhythm/internal/registry"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

func TestBuiltinChartsBuild(t *testing.T) {
	p := rhythm.DefaultParams()
	for _, info := range registry.List() {
		def, err := registry.Get(info.ID)
		if err != nil {
			t.Fatalf("Get(%s) failed: %v", info.ID, err)
		}
		c, err := def.Build(p)
		if err != nil {
			t.Errorf("%s: Build failed: %v", info.ID, err)
			continue
		}
		if c.Len() != info.Notes {
			t.Errorf("%s: %d notes queued, registry reports %d", info.ID, c.Len(), info.Notes)
		}
	}
}

func TestTutorialAutoplay(t *testing.T) {
	for _, id := range []string{"tutorial", "stairs"} {
		def, err := registry.Get(id)
		if err != nil {
			t.Fatalf("Get(%s) failed: %v", id, err)
		}
		chart, _ := def.Build(rhythm.DefaultParams())
		s, err := rhythm.NewSession(chart, rhythm.DefaultParams())
		if err != nil {
			t.Fatal(err)
		}

		var bot rhythm.Autoplay
		const dt = 1.0 / 60
		for i := 0; i < 60*60 && !s.Done(); i++ {
			s.Advance(dt, bot.Frame(s, dt))
		}
		if s.Misses() != 0 || s.Hits() != len(def.Notes) {
			t.Errorf("%s: hits=%d misses=%d of %d", id, s.Hits(), s.Misses(), len(def.Notes))
		}
	}
}
