package render

import (
	"errors"
	"math"
)

var (
	// ErrRejected is returned when a surface refuses a drawing command
	ErrRejected = errors.New("render: draw command rejected")
	// ErrClosed is returned for any command issued after the surface is closed
	ErrClosed = errors.New("render: surface closed")
)

// Rect is an axis-aligned rectangle in logical viewport units, anchored top-left
type Rect struct {
	X, Y, W, H float64
}

// Valid reports whether the rect has finite coordinates and non-negative extent
func (r Rect) Valid() bool {
	for _, v := range [...]float64{r.X, r.Y, r.W, r.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.W >= 0 && r.H >= 0
}

// Surface is the per-frame drawing target entities submit to
// Commands are recorded in order and become visible on Present
type Surface interface {
	// Clear fills the whole surface with c
	Clear(c Color) error
	// FillRect draws a filled rectangle; off-surface parts are clipped, not rejected
	FillRect(r Rect, c Color) error
	// Present flushes the completed frame to the display
	Present() error
}
