package snake

import (
	"errors"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is the player-controlled body. Head is at index 0.
type Snake struct {
	body    []core.Position
	heading Direction
	growing bool // If true, don't remove tail on next move
}

// NewSnake creates a one-segment snake at start facing dir.
func NewSnake(start core.Position, dir Direction) *Snake {
	return &Snake{
		body:    []core.Position{start},
		heading: dir,
	}
}

// Move advances the head one cell in dir. The tail is dropped unless a
// segment was added since the previous move.
func (s *Snake) Move(dir Direction) {
	dx, dy := dir.Offset()
	head := s.body[0].Add(dx, dy)
	s.body = append([]core.Position{head}, s.body...)
	s.heading = dir

	if s.growing {
		s.growing = false
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// AddSegment makes the next Move keep the tail.
func (s *Snake) AddSegment() {
	s.growing = true
}

// DetectFood reports whether the head is on the food.
func (s *Snake) DetectFood(f Food) bool {
	return s.body[0] == f.Pos
}

// DetectCollision reports whether the head hits a barrier or the body.
func (s *Snake) DetectCollision(barriers *BarrierSet) bool {
	head := s.body[0]
	if barriers != nil && barriers.CollisionAtPoint(head.X, head.Y) {
		return true
	}
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Draw places the snake into buf. Every out-of-bounds segment is reported;
// in-bounds segments are drawn regardless.
func (s *Snake) Draw(buf *core.FrameBuffer, head, body core.Glyph) error {
	var errs []error
	for i, seg := range s.body {
		g := body
		if i == 0 {
			g = head
		}
		if err := buf.AddIcon(seg.X, seg.Y, g); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Head returns the head position.
func (s *Snake) Head() core.Position {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Segments returns the body, head first.
func (s *Snake) Segments() []core.Position {
	return s.body
}

// Heading returns the direction of the last move.
func (s *Snake) Heading() Direction {
	return s.heading
}

// Occupies reports whether any segment is at p.
func (s *Snake) Occupies(p core.Position) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}
