package snake

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// EndReason tells why a game stopped.
type EndReason int

const (
	EndCollision EndReason = iota
	EndQuit
	EndError
)

func (r EndReason) String() string {
	switch r {
	case EndCollision:
		return "collision"
	case EndQuit:
		return "quit"
	case EndError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of a finished game.
type Result struct {
	Reason       EndReason
	Score        int
	Length       int
	Ticks        uint64
	RenderFaults int
}

// Loop drives a Game at a fixed tick rate using the shared direction.
type Loop struct {
	game *Game
	dir  *SharedDirection
	log  *log.Logger
}

// NewLoop creates a loop for g reading its direction from dir.
func NewLoop(g *Game, dir *SharedDirection) *Loop {
	return &Loop{
		game: g,
		dir:  dir,
		log:  g.log,
	}
}

// Run plays until the snake collides or ctx is cancelled.
// A cancelled context is a normal end (EndQuit). Surface failures end the
// game with EndError and are returned.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	g := l.game
	speed := g.rules.GameSpeed

	l.log.Info("game started",
		"width", g.rules.Width, "height", g.rules.Height,
		"barriers", g.rules.NumBarriers, "speed", speed)

	if err := g.PreRender(); err != nil {
		return g.result(EndError), err
	}

	for {
		if ctx.Err() != nil {
			return l.finish(EndQuit), nil
		}

		start := time.Now()
		state, err := g.Step(l.dir.Load())
		if err != nil {
			l.log.Error("render failed", "tick", g.tick, "error", err)
			return g.result(EndError), err
		}
		if state == StateEnded {
			return l.finish(EndCollision), nil
		}

		remaining := speed - time.Since(start)
		if remaining <= 0 {
			l.log.Debug("tick overrun", "tick", g.tick, "over", -remaining)
			continue
		}

		timer := time.NewTimer(remaining)
		select {
		case <-ctx.Done():
			timer.Stop()
			return l.finish(EndQuit), nil
		case <-timer.C:
		}
	}
}

func (l *Loop) finish(reason EndReason) Result {
	res := l.game.result(reason)
	l.log.Info("game over",
		"reason", reason, "score", res.Score, "length", res.Length,
		"ticks", res.Ticks, "faults", res.RenderFaults)
	return res
}
