package snake

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestListenStoresDirections(t *testing.T) {
	s := newFakeSurface(80, 24)
	dir := NewSharedDirection(DirRight)

	s.keys <- core.KeyUp
	s.keys <- "x" // unmapped
	s.keys <- core.KeyLeft
	close(s.keys)

	if err := Listen(context.Background(), s, testKeys, dir); err != nil {
		t.Fatalf("Listen() = %v, expected nil on closed surface", err)
	}
	if dir.Load() != DirLeft {
		t.Errorf("direction = %v, expected left", dir.Load())
	}
}

func TestListenStoresReversalUnchecked(t *testing.T) {
	s := newFakeSurface(80, 24)
	dir := NewSharedDirection(DirRight)
	s.keys <- core.KeyLeft
	close(s.keys)

	Listen(context.Background(), s, testKeys, dir)
	if dir.Load() != DirLeft {
		t.Errorf("direction = %v, expected left", dir.Load())
	}
}

func TestListenQuit(t *testing.T) {
	s := newFakeSurface(80, 24)
	s.keys <- core.KeyDown
	s.keys <- "q"
	dir := NewSharedDirection(DirRight)

	err := Listen(context.Background(), s, testKeys, dir)
	if !errors.Is(err, ErrQuit) {
		t.Errorf("Listen() = %v, expected ErrQuit", err)
	}
	if dir.Load() != DirDown {
		t.Errorf("direction = %v, expected down", dir.Load())
	}
}

func TestListenStopsOnCancel(t *testing.T) {
	s := newFakeSurface(80, 24)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Listen(ctx, s, testKeys, NewSharedDirection(DirRight))
	}()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Listen() = %v, expected nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Listen() did not return after cancel")
	}
}

// eofSurface fails every read.
type eofSurface struct{ *fakeSurface }

func (eofSurface) ReadKey(context.Context) (core.Key, error) { return "", io.EOF }

func TestListenReportsReadErrors(t *testing.T) {
	s := eofSurface{newFakeSurface(80, 24)}
	err := Listen(context.Background(), s, testKeys, NewSharedDirection(DirRight))
	if !errors.Is(err, io.EOF) {
		t.Errorf("Listen() = %v, expected wrapped io.EOF", err)
	}
}
