package entity

import "github.com/lixenwraith/fixedstep/vmath"

// Other is a non-player placeholder with no behaviour
type Other struct {
	pos vmath.Vec2
}

func NewOther(pos vmath.Vec2) *Other {
	return &Other{pos: pos}
}

func (o *Other) Position() vmath.Vec2 {
	return o.pos
}
