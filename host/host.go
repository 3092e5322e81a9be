// Package host drives a Handler from a tcell terminal.
//
// The host owns the screen, a frame ticker and an event poller goroutine.
// Callbacks run on the goroutine that called Run, one at a time:
// pending input is dispatched as it arrives, and on each frame tick the
// handler gets synthesized key releases, then Update, then Draw.
package host

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/fixedstep/input"
	"github.com/lixenwraith/fixedstep/render"
)

// ErrInit wraps every failure to bring up the terminal
var ErrInit = errors.New("host: initialization failed")

// Config describes the window and loop pacing
type Config struct {
	Title         string
	Author        string
	LogicalWidth  float64
	LogicalHeight float64
	FrameRate     float64 // Frame callbacks per second

	RepeatWindow time.Duration
	ReleaseAfter time.Duration
}

// Host runs the frame loop on a tcell screen
type Host struct {
	screen  tcell.Screen
	surface *render.TerminalSurface
	cfg     Config
	logger  *zap.Logger
	tracker *input.Tracker
	now     func() time.Time

	done      chan struct{}
	closeOnce sync.Once
}

// NewTerminal opens the controlling terminal and wraps it in a Host
func NewTerminal(cfg Config, logger *zap.Logger) (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}
	return New(screen, cfg, logger)
}

// New initializes screen and prepares the render surface
func New(screen tcell.Screen, cfg Config, logger *zap.Logger) (*Host, error) {
	if math.IsNaN(cfg.FrameRate) || cfg.FrameRate <= 0 {
		return nil, fmt.Errorf("%w: frame rate must be positive, got %v", ErrInit, cfg.FrameRate)
	}
	if cfg.LogicalWidth <= 0 || cfg.LogicalHeight <= 0 {
		return nil, fmt.Errorf("%w: logical size must be positive, got %vx%v", ErrInit, cfg.LogicalWidth, cfg.LogicalHeight)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}
	screen.SetTitle(cfg.Title)
	screen.HideCursor()

	surface := render.NewTerminalSurface(screen, cfg.LogicalWidth, cfg.LogicalHeight)
	cols, rows := screen.Size()
	cellW, cellH := surface.CellSize()
	logger.Info("terminal ready",
		zap.String("title", cfg.Title),
		zap.String("author", cfg.Author),
		zap.Int("cols", cols),
		zap.Int("rows", rows),
		zap.Float64("cell_width", cellW),
		zap.Float64("cell_height", cellH),
	)

	return &Host{
		screen:  screen,
		surface: surface,
		cfg:     cfg,
		logger:  logger,
		tracker: input.NewTracker(cfg.RepeatWindow, cfg.ReleaseAfter),
		now:     time.Now,
		done:    make(chan struct{}),
	}, nil
}

// Surface returns the render surface handed to callbacks
func (h *Host) Surface() render.Surface {
	return h.surface
}

// Run blocks until the handler fails, the user quits, or a callback calls ctx.Quit.
// A callback error is returned as is; a quit returns nil.
func (h *Host) Run(handler Handler) error {
	ctx := NewContext(h.surface, h.logger)

	events := make(chan tcell.Event, 256)
	Go(h.crash, func() { h.poll(events) })

	frameInterval := time.Duration(float64(time.Second) / h.cfg.FrameRate)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	h.logger.Info("run loop started", zap.Duration("frame_interval", frameInterval))

	for {
		select {
		case ev := <-events:
			h.dispatch(ctx, handler, ev)

		case <-ticker.C:
			if err := h.tick(ctx, handler); err != nil {
				return err
			}
		}

		if ctx.QuitRequested() {
			h.logger.Info("run loop stopped", zap.Uint64("frames", ctx.Frame))
			return nil
		}
	}
}

// tick delivers expired releases, then one update and one draw.
// A quit requested by any callback skips the rest of the tick.
func (h *Host) tick(ctx *Context, handler Handler) error {
	for _, up := range h.tracker.Expire(h.now()) {
		handler.KeyUp(ctx, up)
		if ctx.QuitRequested() {
			return nil
		}
	}
	if err := handler.Update(ctx); err != nil {
		return err
	}
	if ctx.QuitRequested() {
		return nil
	}
	if err := handler.Draw(ctx); err != nil {
		return err
	}
	ctx.Frame++
	return nil
}

func (h *Host) dispatch(ctx *Context, handler Handler, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key := input.FromTcell(ev)
		if key.IsQuit() {
			ctx.Quit()
			return
		}
		key = h.tracker.Press(key, h.now())
		handler.KeyDown(ctx, key)

	case *tcell.EventResize:
		h.screen.Sync()
		cols, rows := ev.Size()
		cellW, cellH := h.surface.CellSize()
		h.logger.Debug("terminal resized",
			zap.Int("cols", cols),
			zap.Int("rows", rows),
			zap.Float64("cell_width", cellW),
			zap.Float64("cell_height", cellH),
		)
	}
}

// poll forwards terminal events until the screen is finalized
func (h *Host) poll(events chan<- tcell.Event) {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-h.done:
			return
		}
	}
}

// Close releases the terminal; safe to call more than once
func (h *Host) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
		h.surface.Close()
		h.screen.Fini()
	})
}
