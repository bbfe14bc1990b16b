package core

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is matched by every *OutOfBoundsError.
var ErrOutOfBounds = errors.New("core: position out of bounds")

// OutOfBoundsError reports a write outside the frame buffer grid.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("core: cannot draw at (%d, %d): outside %dx%d buffer", e.X, e.Y, e.Width, e.Height)
}

// Is makes errors.Is(err, ErrOutOfBounds) true.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// FrameBuffer is a 2D glyph grid holding one rendered frame.
// It remembers what it put on its Surface so that Clear can erase exactly
// those cells, which lets two buffers alternate without full-screen clears.
type FrameBuffer struct {
	width   int
	height  int
	cells   [][]Glyph
	surface Surface
}

// NewFrameBuffer creates an empty buffer that renders to surface.
func NewFrameBuffer(width, height int, surface Surface) *FrameBuffer {
	b := &FrameBuffer{
		width:   width,
		height:  height,
		surface: surface,
	}
	b.allocate()
	b.reset()
	return b
}

// allocate creates the underlying cell storage.
func (b *FrameBuffer) allocate() {
	b.cells = make([][]Glyph, b.height)
	for y := range b.cells {
		b.cells[y] = make([]Glyph, b.width)
	}
}

// reset marks every cell empty without touching the surface.
func (b *FrameBuffer) reset() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = Empty
		}
	}
}

// Width returns the buffer width in cells.
func (b *FrameBuffer) Width() int {
	return b.width
}

// Height returns the buffer height in cells.
func (b *FrameBuffer) Height() int {
	return b.height
}

// AddIcon places a glyph at (x, y).
// Out-of-range coordinates leave the buffer untouched and return an
// *OutOfBoundsError.
func (b *FrameBuffer) AddIcon(x, y int, g Glyph) error {
	if !Pos(x, y).In(b.width, b.height) {
		return &OutOfBoundsError{X: x, Y: y, Width: b.width, Height: b.height}
	}
	b.cells[y][x] = g
	return nil
}

// Get returns the glyph at (x, y), or Empty for out-of-bounds coordinates.
func (b *FrameBuffer) Get(x, y int) Glyph {
	if !Pos(x, y).In(b.width, b.height) {
		return Empty
	}
	return b.cells[y][x]
}

// Count returns the number of non-empty cells.
func (b *FrameBuffer) Count() int {
	n := 0
	for y := range b.cells {
		for x := range b.cells[y] {
			if !b.cells[y][x].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// Clear erases this buffer's glyphs from the surface and empties every cell.
// Cells are reset even when the surface fails, so the buffer is always
// reusable afterwards.
func (b *FrameBuffer) Clear() error {
	var err error
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x].IsEmpty() {
				continue
			}
			if err == nil {
				err = Put(b.surface, x, y, Empty)
			}
			b.cells[y][x] = Empty
		}
	}
	if err != nil {
		return fmt.Errorf("core: cannot clear frame: %w", err)
	}
	return nil
}

// Render writes every non-empty cell to the surface at its coordinates.
// Empty cells are skipped. Render does not flush the surface.
func (b *FrameBuffer) Render() error {
	for y := range b.cells {
		for x := range b.cells[y] {
			g := b.cells[y][x]
			if g.IsEmpty() {
				continue
			}
			if err := Put(b.surface, x, y, g); err != nil {
				return fmt.Errorf("core: cannot render frame: %w", err)
			}
		}
	}
	return nil
}
