package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
)

// TerminalSurface maps a fixed logical viewport onto the terminal cell grid.
// Logical coordinates are scaled per axis so the whole viewport fills the screen.
type TerminalSurface struct {
	screen        tcell.Screen
	logicalWidth  float64
	logicalHeight float64
	closed        bool
}

// NewTerminalSurface wraps an initialized screen with the given logical size
func NewTerminalSurface(screen tcell.Screen, logicalWidth, logicalHeight float64) *TerminalSurface {
	return &TerminalSurface{
		screen:        screen,
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
}

// Clear fills every cell with the background color
func (s *TerminalSurface) Clear(c Color) error {
	if s.closed {
		return ErrClosed
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%w: clear: %v", ErrRejected, err)
	}
	s.screen.Fill(' ', tcell.StyleDefault.Background(c.Tcell()))
	return nil
}

// FillRect paints every cell the rect touches; a non-empty rect covers at least one cell
func (s *TerminalSurface) FillRect(r Rect, c Color) error {
	if s.closed {
		return ErrClosed
	}
	if !r.Valid() {
		return fmt.Errorf("%w: invalid rect %+v", ErrRejected, r)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%w: fill: %v", ErrRejected, err)
	}
	if c.Transparent() || r.W == 0 || r.H == 0 {
		return nil
	}

	cols, rows := s.screen.Size()
	x0, x1 := s.span(r.X, r.W, s.logicalWidth, cols)
	y0, y1 := s.span(r.Y, r.H, s.logicalHeight, rows)

	style := tcell.StyleDefault.Background(c.Tcell())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	return nil
}

// span converts a logical [pos, pos+size) interval into a clipped cell range
func (s *TerminalSurface) span(pos, size, logical float64, cells int) (int, int) {
	n := float64(cells)
	lo := int(math.Floor(pos * n / logical))
	hi := int(math.Ceil((pos + size) * n / logical))
	if hi <= lo {
		hi = lo + 1
	}
	return max(lo, 0), min(hi, cells)
}

// Present flushes pending cells to the terminal
func (s *TerminalSurface) Present() error {
	if s.closed {
		return ErrClosed
	}
	s.screen.Show()
	return nil
}

// CellSize returns the logical size of one terminal cell
func (s *TerminalSurface) CellSize() (float64, float64) {
	cols, rows := s.screen.Size()
	return s.logicalWidth / float64(cols), s.logicalHeight / float64(rows)
}

// Close makes every subsequent command fail with ErrClosed; the screen is not finalized
func (s *TerminalSurface) Close() {
	s.closed = true
}
