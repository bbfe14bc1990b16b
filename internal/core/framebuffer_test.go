package core

import (
	"context"
	"errors"
	"testing"
)

// write is one WriteChar call observed by recordSurface.
type write struct {
	X, Y int
	G    Glyph
}

// recordSurface is a Surface that records every cell written.
type recordSurface struct {
	x, y    int
	writes  []write
	failAt  int // fail the n-th write (1-based), 0 = never
	flushes int
}

func (s *recordSurface) Size() (int, int) { return 80, 24 }

func (s *recordSurface) SetCursor(x, y int) error {
	s.x, s.y = x, y
	return nil
}

func (s *recordSurface) WriteChar(r rune, c Color) error {
	if s.failAt > 0 && len(s.writes)+1 == s.failAt {
		return errors.New("broken pipe")
	}
	s.writes = append(s.writes, write{X: s.x, Y: s.y, G: Glyph{Rune: r, Color: c}})
	s.x++
	return nil
}

func (s *recordSurface) Flush() error {
	s.flushes++
	return nil
}

func (s *recordSurface) ReadKey(ctx context.Context) (Key, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func (s *recordSurface) Close() error { return nil }

func TestNewFrameBufferIsEmpty(t *testing.T) {
	b := NewFrameBuffer(80, 24, &recordSurface{})

	if b.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", b.Width())
	}
	if b.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", b.Height())
	}
	if b.Count() != 0 {
		t.Errorf("Count() = %d, expected 0", b.Count())
	}
}

func TestAddIconSetGet(t *testing.T) {
	b := NewFrameBuffer(10, 10, &recordSurface{})
	g := Glyph{Rune: 'X', Color: ColorRed}

	if err := b.AddIcon(5, 5, g); err != nil {
		t.Fatalf("AddIcon(5, 5) failed: %v", err)
	}
	if b.Get(5, 5) != g {
		t.Errorf("Get(5, 5) = %v, expected %v", b.Get(5, 5), g)
	}
	if b.Get(-1, 0) != Empty {
		t.Error("Out of bounds Get should return Empty")
	}
}

func TestAddIconOutOfBounds(t *testing.T) {
	b := NewFrameBuffer(10, 10, &recordSurface{})

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 0},
		{"right", 10, 0},
		{"top", 0, -1},
		{"bottom", 0, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := b.AddIcon(tc.x, tc.y, Glyph{Rune: 'A'})
			if err == nil {
				t.Fatal("AddIcon should fail out of bounds")
			}
			if !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("errors.Is(err, ErrOutOfBounds) = false for %v", err)
			}
			var oob *OutOfBoundsError
			if !errors.As(err, &oob) {
				t.Fatalf("expected *OutOfBoundsError, got %T", err)
			}
			if oob.X != tc.x || oob.Y != tc.y {
				t.Errorf("OutOfBoundsError at (%d, %d), expected (%d, %d)", oob.X, oob.Y, tc.x, tc.y)
			}
		})
	}

	if b.Count() != 0 {
		t.Errorf("Count() = %d after failed writes, expected 0", b.Count())
	}
}

func TestRenderWritesOnlyNonEmptyCells(t *testing.T) {
	s := &recordSurface{}
	b := NewFrameBuffer(80, 24, s)

	icons := map[Position]Glyph{
		Pos(10, 10): {Rune: '@'},
		Pos(11, 10): {Rune: 'O'},
		Pos(40, 5):  {Rune: '$', Color: ColorYellow},
	}
	for p, g := range icons {
		if err := b.AddIcon(p.X, p.Y, g); err != nil {
			t.Fatalf("AddIcon(%v) failed: %v", p, err)
		}
	}

	if err := b.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	if len(s.writes) != len(icons) {
		t.Fatalf("Render wrote %d cells, expected %d", len(s.writes), len(icons))
	}
	for _, w := range s.writes {
		expected, ok := icons[Pos(w.X, w.Y)]
		if !ok {
			t.Errorf("unexpected write at (%d, %d)", w.X, w.Y)
			continue
		}
		if w.G != expected {
			t.Errorf("write at (%d, %d) = %v, expected %v", w.X, w.Y, w.G, expected)
		}
	}
}

func TestClearErasesRenderedCells(t *testing.T) {
	s := &recordSurface{}
	b := NewFrameBuffer(20, 10, s)

	b.AddIcon(3, 4, Glyph{Rune: 'O'})
	b.AddIcon(4, 4, Glyph{Rune: 'O'})
	if err := b.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	s.writes = nil

	if err := b.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	// Every cell reports empty
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if !b.Get(x, y).IsEmpty() {
				t.Errorf("After Clear, expected empty at (%d, %d), got %q", x, y, b.Get(x, y).Rune)
			}
		}
	}

	// Only the two drawn cells are blanked on the surface
	if len(s.writes) != 2 {
		t.Fatalf("Clear wrote %d cells, expected 2", len(s.writes))
	}
	for _, w := range s.writes {
		if w.G.Rune != ' ' {
			t.Errorf("Clear wrote %q at (%d, %d), expected blank", w.G.Rune, w.X, w.Y)
		}
	}

	// A second clear has nothing left to erase
	s.writes = nil
	b.Clear()
	if len(s.writes) != 0 {
		t.Errorf("second Clear wrote %d cells, expected 0", len(s.writes))
	}
}

func TestClearResetsCellsOnSurfaceFailure(t *testing.T) {
	s := &recordSurface{failAt: 1}
	b := NewFrameBuffer(5, 5, s)
	b.AddIcon(1, 1, Glyph{Rune: 'O'})
	b.AddIcon(2, 2, Glyph{Rune: 'O'})

	if err := b.Clear(); err == nil {
		t.Fatal("Clear() should report the surface failure")
	}
	if b.Count() != 0 {
		t.Errorf("Count() = %d after failed Clear, expected 0", b.Count())
	}
}

func TestRenderReportsSurfaceFailure(t *testing.T) {
	s := &recordSurface{failAt: 2}
	b := NewFrameBuffer(5, 5, s)
	b.AddIcon(1, 1, Glyph{Rune: 'A'})
	b.AddIcon(2, 1, Glyph{Rune: 'B'})

	if err := b.Render(); err == nil {
		t.Fatal("Render() should report the surface failure")
	}
}

func TestPutText(t *testing.T) {
	s := &recordSurface{}
	if err := PutText(s, 2, 3, "Hi", ColorRed); err != nil {
		t.Fatalf("PutText failed: %v", err)
	}
	if len(s.writes) != 2 {
		t.Fatalf("PutText wrote %d cells, expected 2", len(s.writes))
	}
	if s.writes[0].X != 2 || s.writes[1].X != 3 || s.writes[1].Y != 3 {
		t.Errorf("PutText positions = %+v", s.writes)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		wantErr  bool
	}{
		{"", ColorDefault, false},
		{"red", ColorRed, false},
		{"Bright-Green", ColorBrightGreen, false},
		{"grey", ColorGray, false},
		{"chartreuse", ColorDefault, true},
	}

	for _, tc := range tests {
		c, err := ParseColor(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			continue
		}
		if c != tc.expected {
			t.Errorf("ParseColor(%q) = %v, expected %v", tc.name, c, tc.expected)
		}
	}
}
