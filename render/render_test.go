package render

import (
	"errors"
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func cellBackground(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestColor(t *testing.T) {
	if err := Green.Validate(); err != nil {
		t.Errorf("Green should be valid: %v", err)
	}
	if err := (Color{1.5, 0, 0, 1}).Validate(); err == nil {
		t.Error("Expected out-of-range channel to fail validation")
	}
	if err := (Color{math.NaN(), 0, 0, 1}).Validate(); err == nil {
		t.Error("Expected NaN channel to fail validation")
	}
	if Green.Tcell() != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("Green.Tcell() = %v", Green.Tcell())
	}
	if got := ColorFromArray([4]float64{0, 1, 0, 1}); got != Green {
		t.Errorf("ColorFromArray = %+v, want %+v", got, Green)
	}
	if !(Color{1, 1, 1, 0}).Transparent() {
		t.Error("zero alpha should be transparent")
	}
}

func TestRectValid(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"Player sized", Rect{400, 300, 20, 10}, true},
		{"Off-screen negative", Rect{-100, -100, 20, 10}, true},
		{"Empty", Rect{0, 0, 0, 0}, true},
		{"Negative width", Rect{0, 0, -1, 10}, false},
		{"NaN position", Rect{math.NaN(), 0, 1, 1}, false},
		{"Infinite height", Rect{0, 0, 1, math.Inf(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTerminalSurfaceClear(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	s := NewTerminalSurface(screen, 800, 600)

	if err := s.Clear(Green); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	want := Green.Tcell()
	for _, p := range [][2]int{{0, 0}, {79, 0}, {0, 23}, {79, 23}, {40, 12}} {
		if got := cellBackground(screen, p[0], p[1]); got != want {
			t.Errorf("cell %v background = %v, want %v", p, got, want)
		}
	}
}

func TestTerminalSurfaceFillRectScaling(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	s := NewTerminalSurface(screen, 800, 600)

	if err := s.Clear(Green); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	// 20x10 at the viewport center: x 400..420 -> cols 40..41, y 300..310 -> row 12
	if err := s.FillRect(Rect{400, 300, 20, 10}, White); err != nil {
		t.Fatalf("FillRect failed: %v", err)
	}

	white := White.Tcell()
	green := Green.Tcell()
	for _, p := range [][2]int{{40, 12}, {41, 12}} {
		if got := cellBackground(screen, p[0], p[1]); got != white {
			t.Errorf("cell %v should be filled, got %v", p, got)
		}
	}
	for _, p := range [][2]int{{39, 12}, {42, 12}, {40, 11}, {40, 13}} {
		if got := cellBackground(screen, p[0], p[1]); got != green {
			t.Errorf("cell %v should be background, got %v", p, got)
		}
	}

	cw, ch := s.CellSize()
	if cw != 10 || ch != 25 {
		t.Errorf("CellSize() = (%v, %v), want (10, 25)", cw, ch)
	}
}

func TestTerminalSurfaceClipping(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	s := NewTerminalSurface(screen, 800, 600)
	if err := s.Clear(Green); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	// Partially visible at the top-left corner
	if err := s.FillRect(Rect{-15, -5, 20, 10}, White); err != nil {
		t.Fatalf("FillRect partially off-screen should clip, got %v", err)
	}
	if got := cellBackground(screen, 0, 0); got != White.Tcell() {
		t.Errorf("visible part not drawn, got %v", got)
	}

	// Fully off-screen is a silent no-op
	if err := s.FillRect(Rect{5000, 5000, 20, 10}, White); err != nil {
		t.Errorf("FillRect off-screen should succeed, got %v", err)
	}
}

func TestTerminalSurfaceRejects(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	s := NewTerminalSurface(screen, 800, 600)

	if err := s.FillRect(Rect{0, 0, -5, 5}, White); !errors.Is(err, ErrRejected) {
		t.Errorf("negative width: expected ErrRejected, got %v", err)
	}
	if err := s.FillRect(Rect{0, 0, 5, 5}, Color{2, 0, 0, 1}); !errors.Is(err, ErrRejected) {
		t.Errorf("bad color: expected ErrRejected, got %v", err)
	}
	if err := s.Clear(Color{0, 0, -1, 1}); !errors.Is(err, ErrRejected) {
		t.Errorf("bad clear color: expected ErrRejected, got %v", err)
	}

	s.Close()
	if err := s.Clear(Green); !errors.Is(err, ErrClosed) {
		t.Errorf("Clear after Close: expected ErrClosed, got %v", err)
	}
	if err := s.FillRect(Rect{0, 0, 1, 1}, White); !errors.Is(err, ErrClosed) {
		t.Errorf("FillRect after Close: expected ErrClosed, got %v", err)
	}
	if err := s.Present(); !errors.Is(err, ErrClosed) {
		t.Errorf("Present after Close: expected ErrClosed, got %v", err)
	}
}

func TestRecordingSurface(t *testing.T) {
	var s RecordingSurface

	_ = s.Clear(Green)
	_ = s.FillRect(Rect{1, 2, 3, 4}, White)
	_ = s.FillRect(Rect{5, 6, 7, 8}, White)
	_ = s.Present()

	if s.Count(OpClear) != 1 || s.Count(OpFillRect) != 2 || s.Count(OpPresent) != 1 {
		t.Errorf("unexpected op counts: %+v", s.Ops)
	}
	rects := s.Rects()
	if len(rects) != 2 || rects[0] != (Rect{1, 2, 3, 4}) || rects[1] != (Rect{5, 6, 7, 8}) {
		t.Errorf("Rects() = %v", rects)
	}

	s.Reset()
	if len(s.Ops) != 0 {
		t.Errorf("Reset left %d ops", len(s.Ops))
	}

	boom := errors.New("boom")
	s.FailFill = boom
	if err := s.FillRect(Rect{}, White); !errors.Is(err, boom) {
		t.Errorf("expected injected failure, got %v", err)
	}
}
