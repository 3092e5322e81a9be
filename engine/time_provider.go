package engine

import "time"

// TimeProvider abstracts the wall clock so the step gate can be driven by tests
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
