package arrows

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-rhythm/internal/config"
	"github.com/vovakirdan/tui-rhythm/internal/core"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

// ErrMissingStyle is returned when the theme cannot draw one of the styles.
var ErrMissingStyle = errors.New("arrows: missing style")

// Glyph quarters, counter-clockwise from the travel axis.
const (
	quarterRight = iota
	quarterUp
	quarterLeft
	quarterDown
)

// StyleSheet resolves a style and rotation to a glyph and colour.
type StyleSheet struct {
	arrow  [4]rune
	target [4]rune
	colors [rhythm.StyleCount]core.Color
}

// NewStyleSheet builds a sheet from the theme. Every style needs a colour
// and every glyph slot needs exactly one rune.
func NewStyleSheet(theme config.ThemeConfig) (StyleSheet, error) {
	var s StyleSheet

	for st := rhythm.Style(0); st < rhythm.StyleCount; st++ {
		name, ok := theme.Colors[st.String()]
		if !ok {
			return StyleSheet{}, fmt.Errorf("%w: no colour for %v", ErrMissingStyle, st)
		}
		c, err := core.ParseColor(name)
		if err != nil {
			return StyleSheet{}, fmt.Errorf("%w: %v: %v", ErrMissingStyle, st, err)
		}
		s.colors[st] = c
	}

	var err error
	if s.arrow, err = glyphs("arrow_glyphs", theme.ArrowGlyphs); err != nil {
		return StyleSheet{}, err
	}
	if s.target, err = glyphs("target_glyphs", theme.TargetGlyphs); err != nil {
		return StyleSheet{}, err
	}
	return s, nil
}

func glyphs(field string, g config.GlyphSet) ([4]rune, error) {
	var out [4]rune
	for i, text := range [4]string{g.Right, g.Up, g.Left, g.Down} {
		if utf8.RuneCountInString(text) != 1 {
			return out, fmt.Errorf("%w: %s[%d] must be a single character, got %q", ErrMissingStyle, field, i, text)
		}
		out[i], _ = utf8.DecodeRuneInString(text)
	}
	return out, nil
}

// Glyph picks the glyph for style pointing at rotation radians.
func (s StyleSheet) Glyph(style rhythm.Style, rotation float64) rune {
	q := quarter(rotation)
	if style == rhythm.StyleTarget {
		return s.target[q]
	}
	return s.arrow[q]
}

// Color returns the colour for style.
func (s StyleSheet) Color(style rhythm.Style) core.Color {
	if style >= rhythm.StyleCount {
		return core.ColorDefault
	}
	return s.colors[style]
}

// quarter snaps a rotation to the nearest quarter turn in [0, 4).
func quarter(rotation float64) int {
	q := int(math.Round(rotation/(math.Pi/2))) % 4
	if q < 0 {
		q += 4
	}
	return q
}

// Sprite is one visual owned by the presenter.
type Sprite struct {
	Style rhythm.Style
	Glyph rune
	Color core.Color
	Pos   rhythm.Vec2 // position at spawn time
}

// SpritePresenter keeps visuals as sprites the game draws onto a screen.
type SpritePresenter struct {
	sheet   StyleSheet
	sprites map[rhythm.Handle]Sprite
	next    rhythm.Handle
}

// NewSpritePresenter creates an empty presenter.
func NewSpritePresenter(sheet StyleSheet) *SpritePresenter {
	return &SpritePresenter{
		sheet:   sheet,
		sprites: make(map[rhythm.Handle]Sprite),
	}
}

func (p *SpritePresenter) SpawnVisual(style rhythm.Style, pos rhythm.Vec2, rotation float64) rhythm.Handle {
	p.next++
	p.sprites[p.next] = Sprite{
		Style: style,
		Glyph: p.sheet.Glyph(style, rotation),
		Color: p.sheet.Color(style),
		Pos:   pos,
	}
	return p.next
}

func (p *SpritePresenter) DisposeVisual(h rhythm.Handle) {
	delete(p.sprites, h)
}

// Sprite returns the sprite behind h.
func (p *SpritePresenter) Sprite(h rhythm.Handle) (Sprite, bool) {
	s, ok := p.sprites[h]
	return s, ok
}

// Len returns the number of live sprites.
func (p *SpritePresenter) Len() int {
	return len(p.sprites)
}
