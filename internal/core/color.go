package core

import (
	"fmt"
	"strings"
)

// Color represents a foreground color for a screen cell.
// Values map onto the ANSI 256-color palette in the platform layer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright-red",
	ColorBrightGreen:   "bright-green",
	ColorBrightYellow:  "bright-yellow",
	ColorBrightBlue:    "bright-blue",
	ColorBrightMagenta: "bright-magenta",
	ColorBrightCyan:    "bright-cyan",
	ColorBrightWhite:   "bright-white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
}

// String returns the configuration name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor converts a configuration name (case-insensitive) to a Color.
// The empty string means ColorDefault.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ColorDefault, nil
	}
	if name == "grey" {
		return ColorGray, nil
	}
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", name)
}

// Glyph is a single displayable cell: a rune and its color.
type Glyph struct {
	Rune  rune
	Color Color
}

// Empty is the glyph of a cell with nothing drawn on it.
var Empty = Glyph{Rune: ' '}

// IsEmpty reports whether the glyph draws nothing visible.
func (g Glyph) IsEmpty() bool {
	return g.Rune == ' ' || g.Rune == 0
}

// Theme holds the glyphs used for every game element.
type Theme struct {
	Head    Glyph
	Body    Glyph
	Food    Glyph
	Barrier Glyph
}

// DefaultTheme returns the built-in glyph set.
func DefaultTheme() Theme {
	return Theme{
		Head:    Glyph{Rune: '@', Color: ColorBrightGreen},
		Body:    Glyph{Rune: 'O', Color: ColorGreen},
		Food:    Glyph{Rune: '$', Color: ColorBrightYellow},
		Barrier: Glyph{Rune: '#', Color: ColorGray},
	}
}
