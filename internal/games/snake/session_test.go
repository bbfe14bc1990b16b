package snake

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestSessionEndsOnCollision(t *testing.T) {
	r := openRules()
	r.GameSpeed = time.Millisecond
	g, _, err := newTestGame(r, 21)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}

	// The listener has no keys and must be stopped by the loop.
	res, err := NewSession(g, g.surface, testKeys).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Reason != EndCollision {
		t.Errorf("Reason = %v, expected collision", res.Reason)
	}
}

func TestSessionQuitKey(t *testing.T) {
	r := openRules()
	r.GameSpeed = 10 * time.Millisecond
	g, s, err := newTestGame(r, 21)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	s.keys <- "q"

	res, err := NewSession(g, s, testKeys).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() = %v, expected nil for a quit", err)
	}
	if res.Reason != EndQuit {
		t.Errorf("Reason = %v, expected quit", res.Reason)
	}
}

func TestSessionSteering(t *testing.T) {
	r := openRules()
	r.GameSpeed = 20 * time.Millisecond
	g, s, err := newTestGame(r, 4)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	g.food = Food{Pos: core.Pos(70, 20)}
	s.keys <- core.KeyUp

	sess := NewSession(g, s, testKeys)
	res, err := sess.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Reason != EndCollision {
		t.Fatalf("Reason = %v, expected collision", res.Reason)
	}
	if sess.Direction().Load() != DirUp {
		t.Errorf("direction = %v, expected up", sess.Direction().Load())
	}
	if g.Snake().Head().Y != 0 {
		t.Errorf("Head() = %v, expected the top wall", g.Snake().Head())
	}
}

func TestSessionParentCancel(t *testing.T) {
	r := openRules()
	r.GameSpeed = time.Hour
	g, s, err := newTestGame(r, 4)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	res, err := NewSession(g, s, testKeys).Run(ctx)
	if err != nil {
		t.Fatalf("Run() = %v, expected nil", err)
	}
	if res.Reason != EndQuit {
		t.Errorf("Reason = %v, expected quit", res.Reason)
	}
}
