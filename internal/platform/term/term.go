// Package term provides the terminal surfaces the game draws on.
// Each backend registers itself with the registry under its name.
package term

import (
	"os"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Backend names.
const (
	BackendTcell = "tcell"
	BackendANSI  = "ansi"
)

// DefaultBackend is used when no backend is configured.
const DefaultBackend = BackendTcell

func init() {
	registry.Register(BackendTcell, "tcell screen with terminfo support", func() (core.Surface, error) {
		s, err := NewTcell()
		if err != nil {
			return nil, err
		}
		return s, nil
	})
	registry.Register(BackendANSI, "raw mode with plain ANSI escape sequences", func() (core.Surface, error) {
		s, err := NewANSI(os.Stdin, os.Stdout)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
