package render

// OpKind identifies a recorded surface command
type OpKind uint8

const (
	OpClear OpKind = iota
	OpFillRect
	OpPresent
)

// Op is one command captured by RecordingSurface
type Op struct {
	Kind  OpKind
	Rect  Rect
	Color Color
}

// RecordingSurface captures commands in order for tests and headless runs
type RecordingSurface struct {
	Ops []Op

	// FailFill, when set, is returned by every FillRect
	FailFill error
}

func (s *RecordingSurface) Clear(c Color) error {
	s.Ops = append(s.Ops, Op{Kind: OpClear, Color: c})
	return nil
}

func (s *RecordingSurface) FillRect(r Rect, c Color) error {
	if s.FailFill != nil {
		return s.FailFill
	}
	if !r.Valid() {
		return ErrRejected
	}
	s.Ops = append(s.Ops, Op{Kind: OpFillRect, Rect: r, Color: c})
	return nil
}

func (s *RecordingSurface) Present() error {
	s.Ops = append(s.Ops, Op{Kind: OpPresent})
	return nil
}

// Rects returns the filled rects in submission order
func (s *RecordingSurface) Rects() []Rect {
	var out []Rect
	for _, op := range s.Ops {
		if op.Kind == OpFillRect {
			out = append(out, op.Rect)
		}
	}
	return out
}

// Count returns how many commands of kind k were recorded
func (s *RecordingSurface) Count(k OpKind) int {
	n := 0
	for _, op := range s.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Reset drops all recorded commands
func (s *RecordingSurface) Reset() {
	s.Ops = s.Ops[:0]
}
