// Package entity defines the simulated units driven by the game loop.
//
// Every entity exposes its position; the four behaviours (update, draw,
// key down, key up) are optional interfaces discovered by type assertion.
// An entity without a behaviour is skipped for it, never an error.
package entity

import (
	"time"

	"github.com/lixenwraith/fixedstep/input"
	"github.com/lixenwraith/fixedstep/render"
	"github.com/lixenwraith/fixedstep/vmath"
)

// StepContext carries simulation time into Update; entities never read the wall clock
type StepContext struct {
	Tick     uint64        // 1-based number of the step being run
	Interval time.Duration // Fixed step length
	Viewport vmath.Vec2    // Logical viewport size
}

// Entity is anything the registry can hold
type Entity interface {
	Position() vmath.Vec2
}

// Updater advances internal state by one fixed step
type Updater interface {
	Update(ctx StepContext)
}

// Drawer submits the entity's visual for the current frame without mutating state
type Drawer interface {
	Draw(s render.Surface) error
}

// KeyDownHandler reacts to key presses immediately, outside the step gate
type KeyDownHandler interface {
	KeyDown(ev input.KeyEvent)
}

// KeyUpHandler reacts to key releases immediately, outside the step gate
type KeyUpHandler interface {
	KeyUp(ev input.KeyEvent)
}
