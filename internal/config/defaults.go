package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Backend: "tcell",
		Theme: ThemeConfig{
			Head:    GlyphConfig{Rune: "@", Color: "bright-green"},
			Body:    GlyphConfig{Rune: "O", Color: "green"},
			Food:    GlyphConfig{Rune: "$", Color: "bright-yellow"},
			Barrier: GlyphConfig{Rune: "#", Color: "gray"},
		},
		Source: "built-in",
	}
}
