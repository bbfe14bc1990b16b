package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBarrierGeneration is returned when random obstacles cannot be placed.
var ErrBarrierGeneration = errors.New("snake: cannot generate barriers")

const (
	minBarrierLen = 3
	maxBarrierLen = 9

	// maxGrowAttempts bounds the random tries for one new segment.
	maxGrowAttempts = 64
	// maxBarrierRestarts bounds how often a stuck barrier is rebuilt.
	maxBarrierRestarts = 32
)

// Barrier is an ordered set of cells the snake must not enter.
type Barrier struct {
	segments []core.Position
}

// AddSegment appends a segment. Duplicates are not filtered.
func (b *Barrier) AddSegment(x, y int) {
	b.segments = append(b.segments, core.Pos(x, y))
}

// Segments returns the barrier cells in insertion order.
func (b *Barrier) Segments() []core.Position {
	return b.segments
}

// Len returns the number of segments.
func (b *Barrier) Len() int {
	return len(b.segments)
}

// Contains reports whether p is one of the segments.
func (b *Barrier) Contains(p core.Position) bool {
	for _, s := range b.segments {
		if s == p {
			return true
		}
	}
	return false
}

// RandomSegment returns a uniformly chosen segment. The barrier must not be empty.
func (b *Barrier) RandomSegment(rng *rand.Rand) core.Position {
	return b.segments[rng.Intn(len(b.segments))]
}

// BarrierSet holds the walls and the random obstacles.
type BarrierSet struct {
	barriers []*Barrier
}

// Add appends a barrier to the set.
func (s *BarrierSet) Add(b *Barrier) {
	s.barriers = append(s.barriers, b)
}

// Barriers returns the barriers in generation order.
func (s *BarrierSet) Barriers() []*Barrier {
	return s.barriers
}

// Len returns the total number of segments across all barriers.
func (s *BarrierSet) Len() int {
	n := 0
	for _, b := range s.barriers {
		n += b.Len()
	}
	return n
}

// CollisionAtPoint reports whether any barrier occupies (x, y).
func (s *BarrierSet) CollisionAtPoint(x, y int) bool {
	p := core.Pos(x, y)
	for _, b := range s.barriers {
		if b.Contains(p) {
			return true
		}
	}
	return false
}

// Render draws every segment with glyph and flushes the surface.
func (s *BarrierSet) Render(surface core.Surface, glyph core.Glyph) error {
	for _, b := range s.barriers {
		for _, p := range b.segments {
			if err := core.Put(surface, p.X, p.Y, glyph); err != nil {
				return err
			}
		}
	}
	return surface.Flush()
}

// NewWalls returns the four border walls of a width x height field:
// top, bottom, left and right. Top and bottom span the full width; the side
// walls stop short of the corners so that no cell belongs to two walls.
func NewWalls(width, height int) []*Barrier {
	top, bottom := &Barrier{}, &Barrier{}
	for x := 0; x < width; x++ {
		top.AddSegment(x, 0)
		bottom.AddSegment(x, height-1)
	}
	left, right := &Barrier{}, &Barrier{}
	for y := 1; y < height-1; y++ {
		left.AddSegment(0, y)
		right.AddSegment(width-1, y)
	}
	return []*Barrier{top, bottom, left, right}
}

// GenerateBarriers builds the walls plus n random obstacles. Obstacles never
// overlap each other, the walls or any reserved cell.
func GenerateBarriers(rng *rand.Rand, width, height, n int, reserved []core.Position) (*BarrierSet, error) {
	set := &BarrierSet{}
	occupied := make(map[core.Position]bool)
	for _, p := range reserved {
		occupied[p] = true
	}
	for _, w := range NewWalls(width, height) {
		set.Add(w)
		for _, p := range w.segments {
			occupied[p] = true
		}
	}

	field := core.Interior(width, height)
	if n > 0 && field.Area() <= 0 {
		return nil, ErrBarrierGeneration
	}

	for i := 0; i < n; i++ {
		b, ok := growBarrier(rng, field, occupied)
		for restart := 0; !ok && restart < maxBarrierRestarts; restart++ {
			b, ok = growBarrier(rng, field, occupied)
		}
		if !ok {
			return nil, ErrBarrierGeneration
		}
		for _, p := range b.segments {
			occupied[p] = true
		}
		set.Add(b)
	}
	return set, nil
}

// growBarrier tries to build one obstacle of random length inside field.
// Cells in occupied are avoided; occupied is not modified.
func growBarrier(rng *rand.Rand, field core.Rect, occupied map[core.Position]bool) (*Barrier, bool) {
	target := minBarrierLen + rng.Intn(maxBarrierLen-minBarrierLen+1)

	start := core.Pos(field.X+rng.Intn(field.W), field.Y+rng.Intn(field.H))
	if occupied[start] {
		return nil, false
	}

	b := &Barrier{}
	b.AddSegment(start.X, start.Y)
	for b.Len() < target {
		placed := false
		for attempt := 0; attempt < maxGrowAttempts; attempt++ {
			dx, dy := rng.Intn(3)-1, rng.Intn(3)-1
			if dx == 0 && dy == 0 {
				continue
			}
			p := b.RandomSegment(rng).Add(dx, dy)
			if !field.ContainsPos(p) || occupied[p] || b.Contains(p) {
				continue
			}
			b.AddSegment(p.X, p.Y)
			placed = true
			break
		}
		if !placed {
			return nil, false
		}
	}
	return b, true
}
