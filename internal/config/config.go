// Package config provides YAML-based presentation settings for the game:
// which surface backend to open and how each element is drawn.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config contains all user-tunable settings.
type Config struct {
	Backend string      `yaml:"backend"`
	Theme   ThemeConfig `yaml:"theme"`

	// Source names where the config was loaded from.
	Source string `yaml:"-"`
}

// ThemeConfig defines the glyph of every game element.
type ThemeConfig struct {
	Head    GlyphConfig `yaml:"head"`
	Body    GlyphConfig `yaml:"body"`
	Food    GlyphConfig `yaml:"food"`
	Barrier GlyphConfig `yaml:"barrier"`
}

// GlyphConfig is a single character and a color name.
type GlyphConfig struct {
	Rune  string `yaml:"rune"`
	Color string `yaml:"color"` // See core.ParseColor
}

// ToGlyph validates the config and converts it.
func (g GlyphConfig) ToGlyph() (core.Glyph, error) {
	if utf8.RuneCountInString(g.Rune) != 1 {
		return core.Glyph{}, fmt.Errorf("glyph %q must be exactly one character", g.Rune)
	}
	r, _ := utf8.DecodeRuneInString(g.Rune)
	glyph := core.Glyph{Rune: r}
	if glyph.IsEmpty() {
		return core.Glyph{}, errors.New("glyph must not be blank")
	}

	c, err := core.ParseColor(g.Color)
	if err != nil {
		return core.Glyph{}, err
	}
	glyph.Color = c
	return glyph, nil
}

// ToTheme converts the theme section. Every element must have a distinct
// character so that the board stays readable.
func (c Config) ToTheme() (core.Theme, error) {
	var theme core.Theme
	fields := []struct {
		name string
		cfg  GlyphConfig
		dst  *core.Glyph
	}{
		{"head", c.Theme.Head, &theme.Head},
		{"body", c.Theme.Body, &theme.Body},
		{"food", c.Theme.Food, &theme.Food},
		{"barrier", c.Theme.Barrier, &theme.Barrier},
	}

	seen := make(map[rune]string)
	for _, f := range fields {
		g, err := f.cfg.ToGlyph()
		if err != nil {
			return core.Theme{}, fmt.Errorf("theme.%s: %w", f.name, err)
		}
		if other, dup := seen[g.Rune]; dup {
			return core.Theme{}, fmt.Errorf("theme.%s uses %q like theme.%s", f.name, g.Rune, other)
		}
		seen[g.Rune] = f.name
		*f.dst = g
	}
	return theme, nil
}
