package core

import (
	"context"
	"errors"
)

// ErrSurfaceClosed is returned by Surface operations after Close.
var ErrSurfaceClosed = errors.New("core: surface closed")

// Key is the name of a key press, using the same vocabulary as Bubble Tea
// key strings: "up", "down", "left", "right", "esc", "enter", "ctrl+c",
// or the typed character itself ("q", "w", ...).
type Key string

// String implements fmt.Stringer so keys can be matched by key bindings.
func (k Key) String() string {
	return string(k)
}

// Common key names produced by surfaces.
const (
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeyEsc   Key = "esc"
	KeyEnter Key = "enter"
	KeyCtrlC Key = "ctrl+c"
)

// Surface is the terminal the game writes to and reads keys from.
// Writes go through a cursor: SetCursor positions it, WriteChar draws one
// cell and advances it by one column. Nothing is guaranteed visible until
// Flush.
//
// ReadKey blocks until a key arrives, ctx is done, or the surface is closed.
// It is the only method that may be called concurrently with the others.
type Surface interface {
	Size() (width, height int)
	SetCursor(x, y int) error
	WriteChar(r rune, c Color) error
	Flush() error
	ReadKey(ctx context.Context) (Key, error)
	Close() error
}

// Put positions the cursor and writes a single glyph.
func Put(s Surface, x, y int, g Glyph) error {
	if err := s.SetCursor(x, y); err != nil {
		return err
	}
	return s.WriteChar(g.Rune, g.Color)
}

// PutText writes text horizontally starting at (x, y).
func PutText(s Surface, x, y int, text string, c Color) error {
	if err := s.SetCursor(x, y); err != nil {
		return err
	}
	for _, r := range text {
		if err := s.WriteChar(r, c); err != nil {
			return err
		}
	}
	return nil
}
