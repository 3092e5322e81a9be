package input

import "time"

// Tracker keeps pressed-key state for backends that only report key presses.
// A press of an already held key inside the repeat window is flagged as a repeat;
// a held key silent for longer than the release delay produces a synthesized release.
type Tracker struct {
	repeatWindow time.Duration
	releaseAfter time.Duration

	// Press order is kept so synthesized releases are emitted deterministically
	held []heldKey
}

type heldKey struct {
	ev   KeyEvent
	last time.Time
}

// NewTracker creates a tracker; releaseAfter <= 0 disables release synthesis
func NewTracker(repeatWindow, releaseAfter time.Duration) *Tracker {
	return &Tracker{
		repeatWindow: repeatWindow,
		releaseAfter: releaseAfter,
	}
}

// Press records a key press at now and returns the event with Repeat resolved
func (t *Tracker) Press(ev KeyEvent, now time.Time) KeyEvent {
	id := ev.id()
	ev.Repeat = false

	for i := range t.held {
		if t.held[i].ev.id() != id {
			continue
		}
		if now.Sub(t.held[i].last) <= t.repeatWindow {
			ev.Repeat = true
		}
		t.held[i].ev = ev
		t.held[i].last = now
		return ev
	}

	t.held = append(t.held, heldKey{ev: ev, last: now})
	return ev
}

// Expire returns a release event for every held key silent longer than the release delay.
// With release synthesis disabled, keys silent past the repeat window are dropped without an event.
func (t *Tracker) Expire(now time.Time) []KeyEvent {
	if len(t.held) == 0 {
		return nil
	}

	synthesize := t.releaseAfter > 0
	limit := t.releaseAfter
	if !synthesize {
		limit = t.repeatWindow
	}

	var released []KeyEvent
	kept := t.held[:0]
	for _, h := range t.held {
		if now.Sub(h.last) > limit {
			if synthesize {
				up := h.ev
				up.Repeat = false
				released = append(released, up)
			}
			continue
		}
		kept = append(kept, h)
	}
	t.held = kept
	return released
}

// Held returns the number of keys currently considered pressed
func (t *Tracker) Held() int {
	return len(t.held)
}
