package snake

import (
	"sync/atomic"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int32

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Offset returns the unit step for the direction.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFromAction converts a movement action to a direction.
// ok is false for actions that do not steer.
func DirectionFromAction(a core.Action) (d Direction, ok bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// SharedDirection is the direction written by the input listener and read
// by the game loop once per tick. Last write wins.
type SharedDirection struct {
	v atomic.Int32
}

// NewSharedDirection returns a SharedDirection holding d.
func NewSharedDirection(d Direction) *SharedDirection {
	s := &SharedDirection{}
	s.Store(d)
	return s
}

// Load returns the most recently stored direction.
func (s *SharedDirection) Load() Direction {
	return Direction(s.v.Load())
}

// Store replaces the direction.
func (s *SharedDirection) Store(d Direction) {
	s.v.Store(int32(d))
}
