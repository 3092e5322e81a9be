package engine

import (
	"fmt"
	"math"
	"time"
)

// IntervalMode selects how the step interval is derived from the update rate
type IntervalMode string

const (
	// IntervalMillis truncates to whole milliseconds: 8/s -> 125ms, 3/s -> 333ms
	IntervalMillis IntervalMode = "millis"
	// IntervalExact keeps nanosecond precision: 3/s -> 333.333333ms
	IntervalExact IntervalMode = "exact"
)

// StepInterval converts updates per second into the minimum time between steps.
// Rates whose interval does not fit a time.Duration, or truncates to zero, are rejected.
func StepInterval(updatesPerSecond float64, mode IntervalMode) (time.Duration, error) {
	if math.IsNaN(updatesPerSecond) || math.IsInf(updatesPerSecond, 0) || updatesPerSecond <= 0 {
		return 0, fmt.Errorf("invalid update rate %v: must be a positive finite number", updatesPerSecond)
	}

	nanos := float64(time.Second) / updatesPerSecond
	if nanos >= math.MaxInt64 {
		return 0, fmt.Errorf("invalid update rate %v: interval overflows", updatesPerSecond)
	}

	var d time.Duration
	switch mode {
	case IntervalMillis, "":
		ms := int64(1.0 / updatesPerSecond * 1000.0)
		d = time.Duration(ms) * time.Millisecond
	case IntervalExact:
		d = time.Duration(nanos)
	default:
		return 0, fmt.Errorf("unknown interval mode %q", mode)
	}

	if d <= 0 {
		return 0, fmt.Errorf("invalid update rate %v: interval truncates to zero in %s mode", updatesPerSecond, mode)
	}
	return d, nil
}
