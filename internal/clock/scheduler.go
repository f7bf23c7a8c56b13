package clock

import "time"

// Timer represents a pending AfterFunc callback.
type Timer interface {
	// Stop prevents the Timer from firing. Returns true if the call was stopped,
	// false if the timer has already expired or been stopped.
	Stop() bool
}

// Scheduler defers work on the host's behalf.
type Scheduler interface {
	// AfterFunc waits for the duration to elapse and then calls f in its own goroutine.
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler implements Scheduler with time.AfterFunc.
type RealScheduler struct{}

// AfterFunc implements Scheduler.AfterFunc using time.AfterFunc.
func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

var _ Scheduler = RealScheduler{}
