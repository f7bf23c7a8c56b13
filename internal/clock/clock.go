// Package clock provides an abstraction for time operations to improve testability.
// Instead of calling time.Now() or time.AfterFunc() directly, code uses the Clock
// and Scheduler interfaces, which tests replace to control time-dependent behavior.
package clock

import "time"

// Clock is an interface for reading wall-clock time.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the actual system time.
type RealClock struct{}

// Now returns the current time from the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Ensure RealClock implements Clock.
var _ Clock = RealClock{}

// zoned reports another clock's time in a fixed location.
type zoned struct {
	base Clock
	loc  *time.Location
}

func (z zoned) Now() time.Time {
	return z.base.Now().In(z.loc)
}

// InLocation returns a Clock that reports base's time in loc.
// A nil loc returns base unchanged.
func InLocation(base Clock, loc *time.Location) Clock {
	if loc == nil {
		return base
	}
	return zoned{base: base, loc: loc}
}

// LoadLocation resolves a timezone name. The empty string means the local zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
