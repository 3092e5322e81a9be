package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/fixedstep/entity"
	"github.com/lixenwraith/fixedstep/host"
	"github.com/lixenwraith/fixedstep/input"
	"github.com/lixenwraith/fixedstep/render"
	"github.com/lixenwraith/fixedstep/vmath"
)

// counter counts behaviour calls and can log into a shared journal
type counter struct {
	name           string
	updates, draws int
	ticks          []uint64
	journal        *[]string
}

func (c *counter) Position() vmath.Vec2 { return vmath.Vec2{} }

func (c *counter) Update(ctx entity.StepContext) {
	c.updates++
	c.ticks = append(c.ticks, ctx.Tick)
	if c.journal != nil {
		*c.journal = append(*c.journal, "update:"+c.name)
	}
}

func (c *counter) Draw(s render.Surface) error {
	c.draws++
	if c.journal != nil {
		*c.journal = append(*c.journal, "draw:"+c.name)
	}
	return nil
}

type testRig struct {
	game    *Game
	clock   *ManualTimeProvider
	surface *render.RecordingSurface
	ctx     *host.Context
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	interval, err := StepInterval(8.0, IntervalMillis)
	if err != nil {
		t.Fatalf("StepInterval failed: %v", err)
	}

	tp := NewManualTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	g := NewGame(GameConfig{
		Interval:   interval,
		Viewport:   vmath.Vec2{X: 800, Y: 600},
		Background: render.Green,
	}, tp, nil)

	s := &render.RecordingSurface{}
	return &testRig{game: g, clock: tp, surface: s, ctx: host.NewContext(s, nil)}
}

// frame runs one host frame: update then draw
func (r *testRig) frame(t *testing.T) {
	t.Helper()
	if err := r.game.Update(r.ctx); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := r.game.Draw(r.ctx); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
}

func TestStepGating(t *testing.T) {
	rig := newTestRig(t)
	c := &counter{}
	rig.game.Spawn(c)

	rig.clock.Advance(124 * time.Millisecond)
	rig.frame(t)
	if c.updates != 0 {
		t.Fatalf("update ran before interval: %d", c.updates)
	}

	now := rig.clock.Advance(1 * time.Millisecond)
	rig.frame(t)
	if c.updates != 1 {
		t.Fatalf("expected exactly one update at 125ms, got %d", c.updates)
	}
	if !rig.game.clock.LastStep().Equal(now) {
		t.Errorf("last step = %v, want %v", rig.game.clock.LastStep(), now)
	}

	// Same instant: gate is closed again
	rig.frame(t)
	if c.updates != 1 {
		t.Errorf("second frame at same time ran update, count=%d", c.updates)
	}
}

func TestNoSubStepping(t *testing.T) {
	rig := newTestRig(t)
	c := &counter{}
	rig.game.Spawn(c)

	rig.clock.Advance(500 * time.Millisecond)
	rig.frame(t)
	if c.updates != 1 {
		t.Fatalf("expected one update for a 4x late frame, got %d", c.updates)
	}

	// The next step is measured from the late frame, not from the missed deadlines
	rig.clock.Advance(100 * time.Millisecond)
	rig.frame(t)
	if c.updates != 1 {
		t.Errorf("catch-up step ran, count=%d", c.updates)
	}

	rig.clock.Advance(25 * time.Millisecond)
	rig.frame(t)
	if c.updates != 2 {
		t.Errorf("expected second step at +125ms, count=%d", c.updates)
	}
	if rig.game.Steps() != 2 {
		t.Errorf("Steps() = %d, want 2", rig.game.Steps())
	}
	if len(c.ticks) != 2 || c.ticks[0] != 1 || c.ticks[1] != 2 {
		t.Errorf("ticks = %v, want [1 2]", c.ticks)
	}
}

func TestRenderIndependence(t *testing.T) {
	rig := newTestRig(t)
	c := &counter{}
	rig.game.Spawn(c)

	for i := 0; i < 10; i++ {
		rig.clock.Advance(10 * time.Millisecond)
		rig.frame(t)
	}

	if c.draws != 10 {
		t.Errorf("draws = %d, want 10", c.draws)
	}
	if c.updates != 0 {
		t.Errorf("updates = %d, want 0 after 100ms", c.updates)
	}
	if rig.game.Frames() != 10 {
		t.Errorf("Frames() = %d, want 10", rig.game.Frames())
	}
	if rig.surface.Count(render.OpClear) != 10 || rig.surface.Count(render.OpPresent) != 10 {
		t.Errorf("expected a clear and a present per frame, ops=%d", len(rig.surface.Ops))
	}
}

func TestFrameOrder(t *testing.T) {
	rig := newTestRig(t)

	var journal []string
	names := []string{"first", "second", "third"}
	for _, n := range names {
		rig.game.Spawn(&counter{name: n, journal: &journal})
	}

	rig.clock.Advance(125 * time.Millisecond)
	rig.frame(t)

	want := []string{
		"update:first", "update:second", "update:third",
		"draw:first", "draw:second", "draw:third",
	}
	if len(journal) != len(want) {
		t.Fatalf("journal = %v, want %v", journal, want)
	}
	for i := range want {
		if journal[i] != want[i] {
			t.Errorf("journal[%d] = %q, want %q", i, journal[i], want[i])
		}
	}

	ops := rig.surface.Ops
	if ops[0].Kind != render.OpClear || ops[0].Color != render.Green {
		t.Errorf("first op = %+v, want clear green", ops[0])
	}
	if ops[len(ops)-1].Kind != render.OpPresent {
		t.Errorf("last op = %+v, want present", ops[len(ops)-1])
	}
}

func TestPlayerThroughLoop(t *testing.T) {
	rig := newTestRig(t)
	p := entity.NewPlayer(render.White)
	o := entity.NewOther(vmath.Vec2{X: 10, Y: 20})
	pid := rig.game.Spawn(p)
	rig.game.Spawn(o)

	if got, ok := rig.game.Entity(pid); !ok || got != entity.Entity(p) {
		t.Fatalf("Entity(%s) = %v, %v", pid, got, ok)
	}
	if rig.game.EntityCount() != 2 {
		t.Errorf("EntityCount() = %d, want 2", rig.game.EntityCount())
	}

	// Before the first step the player is not spawned
	rig.frame(t)
	if p.Spawned() {
		t.Fatal("player spawned before the first step")
	}

	rig.clock.Advance(125 * time.Millisecond)
	rig.frame(t)
	if !p.Spawned() || p.Position() != (vmath.Vec2{X: 400, Y: 300}) {
		t.Fatalf("after first step: spawned=%v pos=%v", p.Spawned(), p.Position())
	}

	// Input applies immediately, without waiting for a step
	rig.game.KeyDown(rig.ctx, input.KeyEvent{Key: input.KeyUp})
	rig.game.KeyDown(rig.ctx, input.KeyEvent{Key: input.KeyRight})
	rig.game.KeyUp(rig.ctx, input.KeyEvent{Key: input.KeyRight})
	if got := p.Position(); got != (vmath.Vec2{X: 404, Y: 296}) {
		t.Errorf("after Up+Right: %v, want {404 296}", got)
	}

	rig.surface.Reset()
	rig.frame(t)
	rects := rig.surface.Rects()
	want := render.Rect{X: 404, Y: 296, W: entity.PlayerWidth, H: entity.PlayerHeight}
	if len(rects) != 1 || rects[0] != want {
		t.Errorf("drawn rects = %v, want [%v]", rects, want)
	}

	if o.Position() != (vmath.Vec2{X: 10, Y: 20}) {
		t.Errorf("Other moved to %v", o.Position())
	}
}

func TestDrawErrorPropagates(t *testing.T) {
	rig := newTestRig(t)
	rig.game.Spawn(entity.NewPlayer(render.White))
	rig.surface.FailFill = render.ErrRejected

	err := rig.game.Draw(rig.ctx)
	if !errors.Is(err, render.ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
	if rig.game.Frames() != 0 {
		t.Errorf("failed frame counted: %d", rig.game.Frames())
	}
	if rig.surface.Count(render.OpPresent) != 0 {
		t.Error("failed frame must not be presented")
	}
}
