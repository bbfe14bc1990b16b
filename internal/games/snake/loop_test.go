package snake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestLoopRunsUntilCollision(t *testing.T) {
	r := openRules()
	r.GameSpeed = time.Millisecond
	g, s, err := newTestGame(r, 11)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}

	res, err := NewLoop(g, NewSharedDirection(DirRight)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Reason != EndCollision {
		t.Errorf("Reason = %v, expected collision", res.Reason)
	}
	// From x=10 the right wall at x=79 is reached on tick 69.
	if res.Ticks != 69 {
		t.Errorf("Ticks = %d, expected 69", res.Ticks)
	}
	if res.Score != g.Score() || res.Length != g.Snake().Len() {
		t.Errorf("Result = %+v does not match game state", res)
	}
	if s.at(0, 0) != '#' {
		t.Error("barriers were not drawn before the first tick")
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	r := openRules()
	r.GameSpeed = time.Hour
	g, _, err := newTestGame(r, 1)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan Result, 1)
	go func() {
		res, _ := NewLoop(g, NewSharedDirection(DirRight)).Run(ctx)
		done <- res
	}()

	cancel()
	select {
	case res := <-done:
		if res.Reason != EndQuit {
			t.Errorf("Reason = %v, expected quit", res.Reason)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestLoopReturnsSurfaceError(t *testing.T) {
	r := openRules()
	r.GameSpeed = time.Millisecond
	g, s, err := newTestGame(r, 1)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	s.flushErr = errBrokenPipe

	res, err := NewLoop(g, NewSharedDirection(DirRight)).Run(context.Background())
	if !errors.Is(err, errBrokenPipe) {
		t.Errorf("Run() error = %v, expected broken pipe", err)
	}
	if res.Reason != EndError {
		t.Errorf("Reason = %v, expected error", res.Reason)
	}
}

func TestLoopReadsSharedDirection(t *testing.T) {
	r := openRules()
	r.GameSpeed = time.Millisecond
	g, _, err := newTestGame(r, 2)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	g.food = Food{Pos: core.Pos(70, 20)}

	dir := NewSharedDirection(DirUp)
	res, err := NewLoop(g, dir).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	// From y=10 the top wall is reached on tick 10.
	if res.Ticks != 10 {
		t.Errorf("Ticks = %d, expected 10", res.Ticks)
	}
	if g.Snake().Head() != core.Pos(10, 0) {
		t.Errorf("Head() = %v, expected (10, 0)", g.Snake().Head())
	}
}
