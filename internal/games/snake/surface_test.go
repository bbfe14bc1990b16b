package snake

import (
	"context"
	"errors"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// fakeSurface is an in-memory core.Surface that tracks what is on screen.
type fakeSurface struct {
	w, h     int
	x, y     int
	cells    map[core.Position]rune
	writes   int
	flushes  int
	flushErr error
	keys     chan core.Key
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{
		w:     w,
		h:     h,
		cells: make(map[core.Position]rune),
		keys:  make(chan core.Key, 16),
	}
}

func (s *fakeSurface) Size() (int, int) { return s.w, s.h }

func (s *fakeSurface) SetCursor(x, y int) error {
	s.x, s.y = x, y
	return nil
}

func (s *fakeSurface) WriteChar(r rune, _ core.Color) error {
	s.writes++
	p := core.Pos(s.x, s.y)
	if r == ' ' {
		delete(s.cells, p)
	} else {
		s.cells[p] = r
	}
	s.x++
	return nil
}

func (s *fakeSurface) Flush() error {
	s.flushes++
	return s.flushErr
}

func (s *fakeSurface) ReadKey(ctx context.Context) (core.Key, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case k, ok := <-s.keys:
		if !ok {
			return "", core.ErrSurfaceClosed
		}
		return k, nil
	}
}

func (s *fakeSurface) Close() error { return nil }

// at returns the rune visible at (x, y), or ' '.
func (s *fakeSurface) at(x, y int) rune {
	if r, ok := s.cells[core.Pos(x, y)]; ok {
		return r
	}
	return ' '
}

// count returns how many cells show r.
func (s *fakeSurface) count(r rune) int {
	n := 0
	for _, c := range s.cells {
		if c == r {
			n++
		}
	}
	return n
}

var errBrokenPipe = errors.New("broken pipe")

// testKeys maps arrows and q the way the real key map does.
var testKeys = ActionMapperFunc(func(k core.Key) core.Action {
	switch k {
	case core.KeyUp:
		return core.ActionUp
	case core.KeyDown:
		return core.ActionDown
	case core.KeyLeft:
		return core.ActionLeft
	case core.KeyRight:
		return core.ActionRight
	case "q", core.KeyEsc:
		return core.ActionQuit
	}
	return core.ActionNone
})

// newTestGame creates a game on a fake surface using rules and seed.
func newTestGame(rules Rules, seed int64) (*Game, *fakeSurface, error) {
	s := newFakeSurface(rules.Width, rules.Height)
	g, err := NewGame(s, Options{Rules: rules, Seed: seed, Theme: core.DefaultTheme()})
	return g, s, err
}
