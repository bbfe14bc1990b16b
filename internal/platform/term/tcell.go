package term

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

// TcellSurface draws through a tcell screen.
type TcellSurface struct {
	screen tcell.Screen
	x, y   int

	events    chan tcell.Event
	stop      chan struct{}
	pollDone  chan struct{}
	closeOnce sync.Once
}

// NewTcell opens the controlling terminal with tcell.
func NewTcell() (*TcellSurface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: cannot create screen: %w", err)
	}
	return newTcellWithScreen(screen)
}

func newTcellWithScreen(screen tcell.Screen) (*TcellSurface, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: cannot initialize screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	s := &TcellSurface{
		screen:   screen,
		events:   make(chan tcell.Event, 32),
		stop:     make(chan struct{}),
		pollDone: make(chan struct{}),
	}
	go s.pollEvents()
	return s, nil
}

// pollEvents forwards screen events until the screen is finalized.
func (s *TcellSurface) pollEvents() {
	defer close(s.pollDone)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.stop:
			return
		}
	}
}

// Size returns the terminal size in cells.
func (s *TcellSurface) Size() (int, int) {
	return s.screen.Size()
}

// SetCursor moves the write position.
func (s *TcellSurface) SetCursor(x, y int) error {
	if s.isClosed() {
		return core.ErrSurfaceClosed
	}
	s.x, s.y = x, y
	return nil
}

// WriteChar puts r at the write position and advances it.
func (s *TcellSurface) WriteChar(r rune, c core.Color) error {
	if s.isClosed() {
		return core.ErrSurfaceClosed
	}
	s.screen.SetContent(s.x, s.y, r, nil, tcellStyle(c))
	s.x++
	return nil
}

// Flush shows pending changes.
func (s *TcellSurface) Flush() error {
	if s.isClosed() {
		return core.ErrSurfaceClosed
	}
	s.screen.Show()
	return nil
}

// ReadKey waits for the next key press. Resize events repaint the screen
// and are otherwise ignored.
func (s *TcellSurface) ReadKey(ctx context.Context) (core.Key, error) {
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-s.stop:
			return "", core.ErrSurfaceClosed
		case <-s.pollDone:
			return "", core.ErrSurfaceClosed
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.screen.Sync()
			case *tcell.EventKey:
				if k, ok := keyFromEvent(ev); ok {
					return k, nil
				}
			}
		}
	}
}

// Close restores the terminal. It is safe to call more than once.
func (s *TcellSurface) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		s.screen.Fini()
	})
	return nil
}

func (s *TcellSurface) isClosed() bool {
	select {
	case <-s.stop:
		return true
	default:
		return false
	}
}

// keyFromEvent names a tcell key event.
func keyFromEvent(ev *tcell.EventKey) (core.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.KeyUp, true
	case tcell.KeyDown:
		return core.KeyDown, true
	case tcell.KeyLeft:
		return core.KeyLeft, true
	case tcell.KeyRight:
		return core.KeyRight, true
	case tcell.KeyEscape:
		return core.KeyEsc, true
	case tcell.KeyEnter:
		return core.KeyEnter, true
	case tcell.KeyCtrlC:
		return core.KeyCtrlC, true
	case tcell.KeyRune:
		return core.Key(string(ev.Rune())), true
	}
	return "", false
}

// tcellStyle maps a core color onto the terminal palette.
func tcellStyle(c core.Color) tcell.Style {
	idx, ok := tui.PaletteIndex(c)
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(idx))
}
