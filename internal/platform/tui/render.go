package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// paletteIndex maps core.Color to the ANSI 256-color palette.
var paletteIndex = map[core.Color]int{
	core.ColorRed:           1,
	core.ColorGreen:         2,
	core.ColorYellow:        3,
	core.ColorBlue:          4,
	core.ColorMagenta:       5,
	core.ColorCyan:          6,
	core.ColorWhite:         7,
	core.ColorBrightRed:     9,
	core.ColorBrightGreen:   10,
	core.ColorBrightYellow:  11,
	core.ColorBrightBlue:    12,
	core.ColorBrightMagenta: 13,
	core.ColorBrightCyan:    14,
	core.ColorBrightWhite:   15,
	core.ColorOrange:        208,
	core.ColorGray:          245,
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, idx := range paletteIndex {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(idx)))
	}
	return styles
}()

// PaletteIndex returns the 256-color palette entry for c.
// ok is false for ColorDefault and unknown colors.
func PaletteIndex(c core.Color) (idx int, ok bool) {
	idx, ok = paletteIndex[c]
	return idx, ok
}

// Style returns the lipgloss style for c.
func Style(c core.Color) lipgloss.Style {
	style, ok := colorStyles[c]
	if !ok {
		return colorStyles[core.ColorDefault]
	}
	return style
}

// RenderRun styles a run of same-colored cells. Grouping adjacent cells
// keeps the number of escape sequences down.
func RenderRun(text string, c core.Color) string {
	if c == core.ColorDefault {
		return text
	}
	return Style(c).Render(text)
}
