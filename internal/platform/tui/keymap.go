// Package tui holds the player-facing presentation pieces shared by the
// surface backends: key bindings, glyph styling and the end-of-game screen.
package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}

// DefaultKeyMap returns arrows plus WASD and vim-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// MapKey translates a key press to a game action.
func (k KeyMap) MapKey(pressed core.Key) core.Action {
	switch {
	case key.Matches(pressed, k.Quit):
		return core.ActionQuit
	case key.Matches(pressed, k.Up):
		return core.ActionUp
	case key.Matches(pressed, k.Down):
		return core.ActionDown
	case key.Matches(pressed, k.Left):
		return core.ActionLeft
	case key.Matches(pressed, k.Right):
		return core.ActionRight
	}
	return core.ActionNone
}
