package host

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/fixedstep/input"
	"github.com/lixenwraith/fixedstep/render"
)

// Context is handed to every callback; it lives for the whole run
type Context struct {
	Surface render.Surface
	Logger  *zap.Logger

	// Frame counts completed draw callbacks
	Frame uint64

	quit bool
}

// NewContext creates a context around a surface, a nil logger is replaced by a no-op one
func NewContext(surface render.Surface, logger *zap.Logger) *Context {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Context{Surface: surface, Logger: logger}
}

// Quit asks the host to stop once the current callback returns; the rest of the frame is skipped
func (c *Context) Quit() {
	c.quit = true
}

func (c *Context) QuitRequested() bool {
	return c.quit
}

// Handler receives the host's callbacks, always sequentially from one goroutine
type Handler interface {
	Update(ctx *Context) error
	Draw(ctx *Context) error
	KeyDown(ctx *Context, ev input.KeyEvent)
	KeyUp(ctx *Context, ev input.KeyEvent)
}
