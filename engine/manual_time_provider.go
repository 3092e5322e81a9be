package engine

import (
	"sync"
	"time"
)

// ManualTimeProvider is a TimeProvider that only moves when told to.
// Used by tests and deterministic replays of the step gate.
type ManualTimeProvider struct {
	mu    sync.RWMutex
	start time.Time
	now   time.Time
}

func NewManualTimeProvider(start time.Time) *ManualTimeProvider {
	return &ManualTimeProvider{start: start, now: start}
}

func (m *ManualTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves time forward by d and returns the new reading
func (m *ManualTimeProvider) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}

// Set jumps to t; moving backwards is allowed to exercise clock skew
func (m *ManualTimeProvider) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Elapsed returns time advanced since construction
func (m *ManualTimeProvider) Elapsed() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now.Sub(m.start)
}
