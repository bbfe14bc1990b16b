package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// NoFood is the food position used when the field has no free cell.
var NoFood = core.Pos(-1, -1)

// Food is the single item the snake eats.
type Food struct {
	Pos core.Position
}

// Valid reports whether the food has a place on the field.
func (f Food) Valid() bool {
	return f.Pos != NoFood
}

// Draw places the food into buf. Food without a place draws nothing.
func (f Food) Draw(buf *core.FrameBuffer, g core.Glyph) error {
	if !f.Valid() {
		return nil
	}
	return buf.AddIcon(f.Pos.X, f.Pos.Y, g)
}

// PlaceFood picks a uniformly random interior cell not covered by a barrier
// or the snake.
func PlaceFood(rng *rand.Rand, width, height int, barriers *BarrierSet, s *Snake) Food {
	// Collect all empty cells
	var free []core.Position
	field := core.Interior(width, height)
	for y := field.Y; y < field.Bottom(); y++ {
		for x := field.X; x < field.Right(); x++ {
			p := core.Pos(x, y)
			if barriers != nil && barriers.CollisionAtPoint(x, y) {
				continue
			}
			if s != nil && s.Occupies(p) {
				continue
			}
			free = append(free, p)
		}
	}

	if len(free) == 0 {
		return Food{Pos: NoFood}
	}
	return Food{Pos: free[rng.Intn(len(free))]}
}
