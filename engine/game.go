package engine

import (
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/fixedstep/entity"
	"github.com/lixenwraith/fixedstep/host"
	"github.com/lixenwraith/fixedstep/input"
	"github.com/lixenwraith/fixedstep/render"
	"github.com/lixenwraith/fixedstep/vmath"
)

// GameConfig holds the loop parameters fixed at startup
type GameConfig struct {
	Interval   time.Duration // Minimum time between simulation steps
	Viewport   vmath.Vec2    // Logical viewport size passed to Update
	Background render.Color  // Clear color for every frame
}

// Game is the loop controller. It exclusively owns the entity registry and
// the step clock and implements host.Handler, so every mutation happens on
// the host's callback goroutine.
type Game struct {
	cfg      GameConfig
	registry *entity.Registry
	clock    *Clock
	time     TimeProvider
	logger   *zap.Logger

	frames uint64
}

var _ host.Handler = (*Game)(nil)

// NewGame creates a controller whose clock starts at the provider's current time
func NewGame(cfg GameConfig, tp TimeProvider, logger *zap.Logger) *Game {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		cfg:      cfg,
		registry: entity.NewRegistry(),
		clock:    NewClock(tp.Now(), cfg.Interval),
		time:     tp,
		logger:   logger,
	}
}

// Spawn transfers ownership of e to the game and returns its id
func (g *Game) Spawn(e entity.Entity) uuid.UUID {
	id := g.registry.Add(e)
	g.logger.Debug("entity spawned", zap.Stringer("id", id), zap.String("kind", fmt.Sprintf("%T", e)))
	return id
}

// Entity looks up a spawned entity for inspection
func (g *Game) Entity(id uuid.UUID) (entity.Entity, bool) {
	return g.registry.Get(id)
}

func (g *Game) EntityCount() int {
	return g.registry.Len()
}

// Steps returns the number of simulation steps run so far
func (g *Game) Steps() uint64 {
	return g.clock.Steps()
}

// Frames returns the number of completed render passes
func (g *Game) Frames() uint64 {
	return g.frames
}

// Update runs at most one simulation step, only if the step interval has elapsed.
// A late frame never triggers catch-up steps.
func (g *Game) Update(ctx *host.Context) error {
	now := g.time.Now()
	if !g.clock.Ready(now) {
		return nil
	}

	step := entity.StepContext{
		Tick:     g.clock.Steps() + 1,
		Interval: g.clock.Interval(),
		Viewport: g.cfg.Viewport,
	}
	elapsed := now.Sub(g.clock.LastStep())
	g.registry.Update(step)
	g.clock.Mark(now)

	g.logger.Debug("step", zap.Uint64("tick", step.Tick), zap.Duration("elapsed", elapsed))
	return nil
}

// Draw clears, draws every entity in registry order and presents, regardless of the step gate
func (g *Game) Draw(ctx *host.Context) error {
	s := ctx.Surface
	if err := s.Clear(g.cfg.Background); err != nil {
		return g.frameError("clear", err)
	}
	if err := g.registry.Draw(s); err != nil {
		return g.frameError("draw", err)
	}
	if err := s.Present(); err != nil {
		return g.frameError("present", err)
	}
	g.frames++

	runtime.Gosched()
	return nil
}

func (g *Game) frameError(stage string, err error) error {
	g.logger.Error("frame failed", zap.String("stage", stage), zap.Uint64("frame", g.frames), zap.Error(err))
	return fmt.Errorf("frame %d %s: %w", g.frames, stage, err)
}

// KeyDown routes the event to every entity immediately
func (g *Game) KeyDown(ctx *host.Context, ev input.KeyEvent) {
	g.logger.Debug("key down", zap.Stringer("key", ev.Key), zap.Bool("repeat", ev.Repeat))
	g.registry.KeyDown(ev)
}

// KeyUp routes the event to every entity immediately
func (g *Game) KeyUp(ctx *host.Context, ev input.KeyEvent) {
	g.logger.Debug("key up", zap.Stringer("key", ev.Key))
	g.registry.KeyUp(ev)
}
