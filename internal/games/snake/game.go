// Package snake implements the game rules: barriers, the snake, food and
// the fixed-rate loop that drives them against a core.Surface.
package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// spawnClearance is the number of cells ahead of the spawn kept free of obstacles.
const spawnClearance = 3

// Rules holds the field geometry and timing of a game.
type Rules struct {
	Width       int
	Height      int
	NumBarriers int
	GameSpeed   time.Duration
	Start       core.Position
	StartDir    Direction
}

// DefaultRules returns the standard 80x24 game.
func DefaultRules() Rules {
	return Rules{
		Width:       80,
		Height:      24,
		NumBarriers: 3,
		GameSpeed:   100 * time.Millisecond,
		Start:       core.Pos(10, 10),
		StartDir:    DirRight,
	}
}

// State is the game state machine.
type State int

const (
	StateRunning State = iota
	StateEnded
)

func (s State) String() string {
	if s == StateEnded {
		return "ended"
	}
	return "running"
}

// Options configures NewGame.
type Options struct {
	Rules  Rules
	Seed   int64
	Theme  core.Theme
	Logger *log.Logger
}

// Game owns every piece of game state. It is not safe for concurrent use;
// only the shared direction crosses goroutines.
type Game struct {
	rules   Rules
	rng     *rand.Rand
	surface core.Surface
	theme   core.Theme
	log     *log.Logger

	barriers *BarrierSet
	snake    *Snake
	food     Food

	// Two buffers swap roles every rendered tick.
	buffers [2]*core.FrameBuffer
	active  int

	state        State
	tick         uint64
	score        int
	renderFaults int
}

// NewGame builds the barriers, snake and first food for a new game.
func NewGame(surface core.Surface, opts Options) (*Game, error) {
	r := opts.Rules
	if r.Width < 3 || r.Height < 3 {
		return nil, fmt.Errorf("snake: field %dx%d is too small", r.Width, r.Height)
	}
	if !core.Interior(r.Width, r.Height).ContainsPos(r.Start) {
		return nil, fmt.Errorf("snake: start %v is outside the play field", r.Start)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		rules:   r,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		surface: surface,
		theme:   opts.Theme,
		log:     logger,
	}

	barriers, err := GenerateBarriers(g.rng, r.Width, r.Height, r.NumBarriers, g.reservedCells())
	if err != nil {
		return nil, fmt.Errorf("snake: cannot create game: %w", err)
	}
	g.barriers = barriers
	g.snake = NewSnake(r.Start, r.StartDir)
	g.food = PlaceFood(g.rng, r.Width, r.Height, g.barriers, g.snake)

	for i := range g.buffers {
		g.buffers[i] = core.NewFrameBuffer(r.Width, r.Height, surface)
	}
	return g, nil
}

// reservedCells returns the spawn cell and the cells straight ahead of it.
func (g *Game) reservedCells() []core.Position {
	cells := []core.Position{g.rules.Start}
	dx, dy := g.rules.StartDir.Offset()
	p := g.rules.Start
	for range spawnClearance {
		p = p.Add(dx, dy)
		cells = append(cells, p)
	}
	return cells
}

// PreRender draws the barriers once. Barriers never change, so ticks do
// not redraw them.
func (g *Game) PreRender() error {
	if err := g.barriers.Render(g.surface, g.theme.Barrier); err != nil {
		return fmt.Errorf("snake: cannot draw barriers: %w", err)
	}
	return nil
}

// Step advances the game by one tick using dir.
// A tick that ends the game draws nothing. The returned error is a surface
// failure; buffer faults are logged and counted instead.
func (g *Game) Step(dir Direction) (State, error) {
	if g.state == StateEnded {
		return g.state, nil
	}
	g.tick++

	// Prevent instant reversal
	if g.snake.Len() > 1 && dir == g.snake.Heading().Opposite() {
		dir = g.snake.Heading()
	}
	g.snake.Move(dir)

	if g.snake.DetectFood(g.food) {
		g.snake.AddSegment()
		g.score++
		g.food = PlaceFood(g.rng, g.rules.Width, g.rules.Height, g.barriers, g.snake)
		g.log.Debug("food eaten", "tick", g.tick, "score", g.score, "food", g.food.Pos)
	}

	if g.snake.DetectCollision(g.barriers) {
		g.state = StateEnded
		g.log.Info("collision", "tick", g.tick, "head", g.snake.Head())
		return g.state, nil
	}

	if err := g.render(); err != nil {
		return g.state, err
	}
	return g.state, nil
}

// render draws food and snake into the active buffer, erases the previous
// frame, shows the new one and swaps the buffers.
func (g *Game) render() error {
	buf := g.buffers[g.active]
	prev := g.buffers[1-g.active]

	fault := errors.Join(
		g.food.Draw(buf, g.theme.Food),
		g.snake.Draw(buf, g.theme.Head, g.theme.Body),
	)
	if fault != nil {
		g.renderFaults += countErrors(fault)
		g.log.Warn("draw outside frame", "tick", g.tick, "error", fault)
	}

	if err := prev.Clear(); err != nil {
		return fmt.Errorf("snake: cannot render frame: %w", err)
	}
	if err := buf.Render(); err != nil {
		return fmt.Errorf("snake: cannot render frame: %w", err)
	}
	if err := g.surface.Flush(); err != nil {
		return fmt.Errorf("snake: cannot render frame: %w", err)
	}
	g.active = 1 - g.active
	return nil
}

// countErrors counts the leaves of a joined error.
func countErrors(err error) int {
	if err == nil {
		return 0
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		n := 0
		for _, e := range j.Unwrap() {
			n += countErrors(e)
		}
		return n
	}
	return 1
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// Score returns the number of food items eaten.
func (g *Game) Score() int {
	return g.score
}

// Tick returns the number of ticks played.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Rules returns the rules the game was created with.
func (g *Game) Rules() Rules {
	return g.rules
}

// Snake returns the player's snake.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the current food.
func (g *Game) Food() Food {
	return g.food
}

// Barriers returns the walls and obstacles.
func (g *Game) Barriers() *BarrierSet {
	return g.barriers
}

// RenderFaults returns the number of out-of-bounds draws so far.
func (g *Game) RenderFaults() int {
	return g.renderFaults
}

// result summarizes the game for reason.
func (g *Game) result(reason EndReason) Result {
	return Result{
		Reason:       reason,
		Score:        g.score,
		Length:       g.snake.Len(),
		Ticks:        g.tick,
		RenderFaults: g.renderFaults,
	}
}
