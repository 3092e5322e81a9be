package entity

import (
	"github.com/lixenwraith/fixedstep/input"
	"github.com/lixenwraith/fixedstep/render"
	"github.com/lixenwraith/fixedstep/vmath"
)

const (
	PlayerWidth  = 20.0
	PlayerHeight = 10.0
	PlayerStep   = 4.0
)

// Unit vectors per arrow key, y grows downward
var directions = map[input.Key]vmath.Vec2{
	input.KeyUp:    {X: 0, Y: -1},
	input.KeyDown:  {X: 0, Y: 1},
	input.KeyLeft:  {X: -1, Y: 0},
	input.KeyRight: {X: 1, Y: 0},
}

// Player is the keyboard-controlled entity.
// Position is meaningless until the first Update places it at the viewport center.
type Player struct {
	pos     vmath.Vec2
	spawned bool

	Color render.Color

	// OnMove, if set, receives the position after every key-driven move
	OnMove func(pos vmath.Vec2)
}

// NewPlayer creates an unspawned player drawn in color
func NewPlayer(color render.Color) *Player {
	return &Player{Color: color}
}

func (p *Player) Position() vmath.Vec2 {
	return p.pos
}

func (p *Player) Spawned() bool {
	return p.spawned
}

// Update spawns the player on its first call; later calls are no-ops
func (p *Player) Update(ctx StepContext) {
	if p.spawned {
		return
	}
	p.pos = vmath.V2Center(ctx.Viewport.X, ctx.Viewport.Y)
	p.spawned = true
}

// Draw emits a filled rect with its top-left corner at the player position
func (p *Player) Draw(s render.Surface) error {
	return s.FillRect(render.Rect{X: p.pos.X, Y: p.pos.Y, W: PlayerWidth, H: PlayerHeight}, p.Color)
}

// KeyDown moves the player one step per arrow key press, without bounds clamping
func (p *Player) KeyDown(ev input.KeyEvent) {
	if !ev.Key.IsDirection() {
		return
	}

	p.pos = vmath.V2Add(p.pos, vmath.V2Scale(directions[ev.Key], PlayerStep))
	if p.OnMove != nil {
		p.OnMove(p.pos)
	}
}

// KeyUp is a no-op, movement is edge-triggered on key down
func (p *Player) KeyUp(ev input.KeyEvent) {}
