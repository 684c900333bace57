package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rhythm/internal/core"
)

func TestKeyMapperLaneKeys(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Key
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.KeyW},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.KeyA},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, core.KeyS},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.KeyD},
	}

	for _, tc := range tests {
		key, action := km.MapKey(tc.msg)
		if key != tc.expected || action != core.ActionNone {
			t.Errorf("MapKey(%s) = %v, %v; expected %v", tc.msg, key, action, tc.expected)
		}
	}
}

func TestKeyMapperActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}, core.ActionBack},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
	}

	for _, tc := range tests {
		key, action := km.MapKey(tc.msg)
		if action != tc.expected || key != core.KeyNone {
			t.Errorf("MapKey(%s) = %v, %v; expected %v", tc.msg, key, action, tc.expected)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame) {
		t.Error("Up should not quit")
	}
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, &frame)

	if !frame.JustPressed(core.KeyUp) || !frame.Has(core.ActionPause) {
		t.Errorf("frame = %+v", frame)
	}
	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame) {
		t.Error("ctrl+c should quit")
	}
}

func TestFrameDelta(t *testing.T) {
	now := time.Now()

	if got := frameDelta(time.Time{}, now, 60); got != 1.0/60 {
		t.Errorf("first frame dt = %f, expected 1/60", got)
	}
	if got := frameDelta(now, now.Add(20*time.Millisecond), 60); got < 0.0199 || got > 0.0201 {
		t.Errorf("dt = %f, expected 0.02", got)
	}
	if got := frameDelta(now, now.Add(5*time.Second), 60); got != maxFrameDelta {
		t.Errorf("stalled dt = %f, expected clamp to %f", got, maxFrameDelta)
	}
	if got := frameDelta(now, now.Add(-time.Second), 60); got != 0 {
		t.Errorf("backwards dt = %f, expected 0", got)
	}
}
