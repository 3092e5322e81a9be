package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Color is a normalized RGBA color, each channel in [0, 1]
type Color struct {
	R, G, B, A float64
}

var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
	Green = Color{0, 1, 0, 1}
)

// ColorFromArray builds a Color from an {r, g, b, a} array as stored in config
func ColorFromArray(c [4]float64) Color {
	return Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Validate returns an error if any channel is outside [0, 1] or not a number
func (c Color) Validate() error {
	for i, v := range [...]float64{c.R, c.G, c.B, c.A} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("color channel %d out of range [0,1]: %v", i, v)
		}
	}
	return nil
}

// Transparent reports whether drawing c has no visible effect
func (c Color) Transparent() bool {
	return c.A <= 0
}

// Tcell converts to a 24-bit tcell color, ignoring alpha
func (c Color) Tcell() tcell.Color {
	return tcell.NewRGBColor(channel8(c.R), channel8(c.G), channel8(c.B))
}

func channel8(v float64) int32 {
	v = math.Max(0, math.Min(1, v))
	return int32(math.Round(v * 255))
}
