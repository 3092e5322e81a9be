package entity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lixenwraith/fixedstep/input"
	"github.com/lixenwraith/fixedstep/render"
)

// Registry owns entities in insertion order; that order drives update, draw and input routing.
// Not safe for concurrent use, the loop controller is its only caller.
type Registry struct {
	ids      []uuid.UUID
	entities []Entity
	index    map[uuid.UUID]int
}

func NewRegistry() *Registry {
	return &Registry{
		index: make(map[uuid.UUID]int),
	}
}

// Add appends e and returns its generated id
func (r *Registry) Add(e Entity) uuid.UUID {
	id := uuid.New()
	r.index[id] = len(r.entities)
	r.ids = append(r.ids, id)
	r.entities = append(r.entities, e)
	return id
}

// Get looks up an entity by id
func (r *Registry) Get(id uuid.UUID) (Entity, bool) {
	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return r.entities[i], true
}

func (r *Registry) Len() int {
	return len(r.entities)
}

// Each visits entities in insertion order, stopping at the first error
func (r *Registry) Each(fn func(id uuid.UUID, e Entity) error) error {
	for i, e := range r.entities {
		if err := fn(r.ids[i], e); err != nil {
			return err
		}
	}
	return nil
}

// Update runs one step on every Updater
func (r *Registry) Update(ctx StepContext) {
	for _, e := range r.entities {
		if u, ok := e.(Updater); ok {
			u.Update(ctx)
		}
	}
}

// Draw asks every Drawer to draw; the first failure aborts the pass
func (r *Registry) Draw(s render.Surface) error {
	for i, e := range r.entities {
		d, ok := e.(Drawer)
		if !ok {
			continue
		}
		if err := d.Draw(s); err != nil {
			return fmt.Errorf("draw entity %s: %w", r.ids[i], err)
		}
	}
	return nil
}

// KeyDown forwards ev to every KeyDownHandler; no handler consumes it
func (r *Registry) KeyDown(ev input.KeyEvent) {
	for _, e := range r.entities {
		if h, ok := e.(KeyDownHandler); ok {
			h.KeyDown(ev)
		}
	}
}

// KeyUp forwards ev to every KeyUpHandler
func (r *Registry) KeyUp(ev input.KeyEvent) {
	for _, e := range r.entities {
		if h, ok := e.(KeyUpHandler); ok {
			h.KeyUp(ev)
		}
	}
}
