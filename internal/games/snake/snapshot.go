package snake

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick         uint64
	Score        int
	SnakeLen     int
	HeadX        int
	HeadY        int
	Dir          Direction
	FoodX        int
	FoodY        int
	Barriers     int // Total barrier segments, walls included
	RenderFaults int
	State        State
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	return Snapshot{
		Tick:         g.tick,
		Score:        g.score,
		SnakeLen:     g.snake.Len(),
		HeadX:        head.X,
		HeadY:        head.Y,
		Dir:          g.snake.Heading(),
		FoodX:        g.food.Pos.X,
		FoodY:        g.food.Pos.Y,
		Barriers:     g.barriers.Len(),
		RenderFaults: g.renderFaults,
		State:        g.state,
	}
}
