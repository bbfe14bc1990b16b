package snake

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrQuit is returned by Listen when the player asks to leave.
var ErrQuit = errors.New("snake: quit requested")

// ActionMapper translates key presses into game actions.
type ActionMapper interface {
	MapKey(k core.Key) core.Action
}

// ActionMapperFunc adapts a function to ActionMapper.
type ActionMapperFunc func(k core.Key) core.Action

// MapKey calls f(k).
func (f ActionMapperFunc) MapKey(k core.Key) core.Action {
	return f(k)
}

// Listen reads keys from surface until ctx is done and publishes every
// steering key to dir. Directions are stored as pressed; the loop decides
// whether a reversal is allowed.
//
// Cancellation and a closed surface return nil. A quit key returns ErrQuit.
func Listen(ctx context.Context, surface core.Surface, mapper ActionMapper, dir *SharedDirection) error {
	for {
		k, err := surface.ReadKey(ctx)
		if err != nil {
			if ctx.Err() != nil ||
				errors.Is(err, context.Canceled) ||
				errors.Is(err, core.ErrSurfaceClosed) {
				return nil
			}
			return fmt.Errorf("snake: cannot read key: %w", err)
		}

		action := mapper.MapKey(k)
		if action == core.ActionQuit {
			return ErrQuit
		}
		if d, ok := DirectionFromAction(action); ok {
			dir.Store(d)
		}
	}
}
