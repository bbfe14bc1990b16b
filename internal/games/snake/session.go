package snake

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Session runs one game: the loop and the input listener side by side.
type Session struct {
	game    *Game
	surface core.Surface
	mapper  ActionMapper
	dir     *SharedDirection
}

// NewSession prepares g for play on surface with keys mapped by mapper.
func NewSession(g *Game, surface core.Surface, mapper ActionMapper) *Session {
	return &Session{
		game:    g,
		surface: surface,
		mapper:  mapper,
		dir:     NewSharedDirection(g.rules.StartDir),
	}
}

// Direction returns the direction shared by the listener and the loop.
func (s *Session) Direction() *SharedDirection {
	return s.dir
}

// Run blocks until the game ends, the player quits or ctx is cancelled.
// When the loop finishes it stops the listener; when the listener stops
// with an error or a quit request the loop stops at its next tick.
func (s *Session) Run(ctx context.Context) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	loop := NewLoop(s.game, s.dir)

	var res Result
	eg.Go(func() error {
		defer cancel()
		var err error
		res, err = loop.Run(ctx)
		return err
	})
	eg.Go(func() error {
		return Listen(ctx, s.surface, s.mapper, s.dir)
	})

	err := eg.Wait()
	if errors.Is(err, ErrQuit) {
		err = nil
	}
	return res, err
}
