package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/cancelreader"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

// ANSISurface writes escape sequences straight to the terminal and reads
// raw key bytes from it.
type ANSISurface struct {
	in      cancelreader.CancelReader
	out     *bufio.Writer
	restore func() error
	width   int
	height  int

	// Cursor as the terminal sees it after pending output.
	x, y int

	// Pending run of same-colored cells.
	run      strings.Builder
	runColor core.Color

	keys     chan core.Key
	readDone chan struct{}
	readErr  error

	stop      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// NewANSI switches in to raw mode and takes over out.
func NewANSI(in, out *os.File) (*ANSISurface, error) {
	fd := int(in.Fd())
	if !xterm.IsTerminal(fd) {
		return nil, errors.New("term: input is not a terminal")
	}
	width, height, err := xterm.GetSize(int(out.Fd()))
	if err != nil {
		return nil, fmt.Errorf("term: cannot get terminal size: %w", err)
	}

	state, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("term: cannot enter raw mode: %w", err)
	}

	s, err := newANSI(in, out, width, height)
	if err != nil {
		_ = xterm.Restore(fd, state)
		return nil, err
	}
	s.restore = func() error {
		return xterm.Restore(fd, state)
	}
	return s, nil
}

func newANSI(in io.Reader, out io.Writer, width, height int) (*ANSISurface, error) {
	cr, err := cancelreader.NewReader(in)
	if err != nil {
		return nil, fmt.Errorf("term: cannot open input: %w", err)
	}

	s := &ANSISurface{
		in:       cr,
		out:      bufio.NewWriter(out),
		width:    width,
		height:   height,
		x:        -1,
		y:        -1,
		keys:     make(chan core.Key, 32),
		readDone: make(chan struct{}),
		stop:     make(chan struct{}),
	}

	s.out.WriteString(ansi.SetAltScreenSaveCursorMode)
	s.out.WriteString(ansi.HideCursor)
	s.out.WriteString(ansi.EraseEntireScreen)
	if err := s.out.Flush(); err != nil {
		cr.Close()
		return nil, fmt.Errorf("term: cannot prepare screen: %w", err)
	}

	go s.readLoop()
	return s, nil
}

// readChunk is one read from the terminal.
type readChunk struct {
	data []byte
	err  error
}

// readChunks feeds raw reads to out until the reader fails or is cancelled.
func (s *ANSISurface) readChunks(out chan<- readChunk) {
	buf := make([]byte, 256)
	for {
		n, err := s.in.Read(buf)
		c := readChunk{err: err}
		if n > 0 {
			c.data = append([]byte(nil), buf[:n]...)
		}
		select {
		case out <- c:
		case <-s.stop:
			return
		}
		if err != nil {
			return
		}
	}
}

// readLoop decodes key presses until the reader fails or is cancelled.
// A trailing ESC is held back until escapeTimeout passes without more
// input, so sequences split across reads still decode.
func (s *ANSISurface) readLoop() {
	defer close(s.readDone)

	chunks := make(chan readChunk)
	go s.readChunks(chunks)

	var pending []byte
	var escTimer *time.Timer
	var escFired <-chan time.Time
	stopTimer := func() {
		if escTimer != nil {
			escTimer.Stop()
			escTimer, escFired = nil, nil
		}
	}
	defer stopTimer()

	for {
		select {
		case <-s.stop:
			s.readErr = core.ErrSurfaceClosed
			return

		case <-escFired:
			escTimer, escFired = nil, nil
			if isLoneEsc(pending) {
				pending = pending[:0]
				if !s.sendKeys([]core.Key{core.KeyEsc}) {
					s.readErr = core.ErrSurfaceClosed
					return
				}
			}

		case c := <-chunks:
			stopTimer()
			if len(c.data) > 0 {
				pending = append(pending, c.data...)
				keys, used := decodeKeys(pending)
				pending = append(pending[:0], pending[used:]...)
				if !s.sendKeys(keys) {
					s.readErr = core.ErrSurfaceClosed
					return
				}
			}
			if c.err != nil {
				err := c.err
				if errors.Is(err, cancelreader.ErrCanceled) {
					err = core.ErrSurfaceClosed
				} else if isLoneEsc(pending) && !s.sendKeys([]core.Key{core.KeyEsc}) {
					err = core.ErrSurfaceClosed
				}
				s.readErr = err
				return
			}
			if isLoneEsc(pending) {
				escTimer = time.NewTimer(escapeTimeout)
				escFired = escTimer.C
			}
		}
	}
}

// sendKeys queues keys for ReadKey. It returns false once the surface is
// closed.
func (s *ANSISurface) sendKeys(keys []core.Key) bool {
	for _, k := range keys {
		select {
		case s.keys <- k:
		case <-s.stop:
			return false
		}
	}
	return true
}

// Size returns the terminal size captured when the surface was opened.
func (s *ANSISurface) Size() (int, int) {
	return s.width, s.height
}

// SetCursor moves the write position.
func (s *ANSISurface) SetCursor(x, y int) error {
	if s.isClosed() {
		return core.ErrSurfaceClosed
	}
	if x == s.x && y == s.y {
		return nil
	}
	if err := s.flushRun(); err != nil {
		return err
	}
	if _, err := s.out.WriteString(ansi.CursorPosition(x+1, y+1)); err != nil {
		return err
	}
	s.x, s.y = x, y
	return nil
}

// WriteChar queues r at the write position and advances it.
func (s *ANSISurface) WriteChar(r rune, c core.Color) error {
	if s.isClosed() {
		return core.ErrSurfaceClosed
	}
	if s.run.Len() > 0 && c != s.runColor {
		if err := s.flushRun(); err != nil {
			return err
		}
	}
	s.runColor = c
	s.run.WriteRune(r)
	s.x++
	return nil
}

// flushRun styles the pending run and hands it to the writer.
func (s *ANSISurface) flushRun() error {
	if s.run.Len() == 0 {
		return nil
	}
	text := tui.RenderRun(s.run.String(), s.runColor)
	s.run.Reset()
	_, err := s.out.WriteString(text)
	return err
}

// Flush writes all pending output to the terminal.
func (s *ANSISurface) Flush() error {
	if s.isClosed() {
		return core.ErrSurfaceClosed
	}
	if err := s.flushRun(); err != nil {
		return err
	}
	return s.out.Flush()
}

// ReadKey waits for the next decoded key.
func (s *ANSISurface) ReadKey(ctx context.Context) (core.Key, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-s.stop:
		return "", core.ErrSurfaceClosed
	case k := <-s.keys:
		return k, nil
	case <-s.readDone:
		// Keys decoded before the reader stopped are still delivered.
		select {
		case k := <-s.keys:
			return k, nil
		default:
			return "", s.readErr
		}
	}
}

// Close leaves the alternate screen and restores the terminal mode.
// It is safe to call more than once.
func (s *ANSISurface) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		s.in.Cancel()

		_ = s.flushRun()
		s.out.WriteString(ansi.ShowCursor)
		s.out.WriteString(ansi.ResetAltScreenSaveCursorMode)
		errs := []error{s.out.Flush(), s.in.Close()}
		if s.restore != nil {
			errs = append(errs, s.restore())
		}
		if err := errors.Join(errs...); err != nil {
			s.closeErr = fmt.Errorf("term: cannot close surface: %w", err)
		}
	})
	return s.closeErr
}

func (s *ANSISurface) isClosed() bool {
	select {
	case <-s.stop:
		return true
	default:
		return false
	}
}
