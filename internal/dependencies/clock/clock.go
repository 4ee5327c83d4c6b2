package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time

	// AfterFunc schedules fn to run after d. The returned Timer can
	// cancel the callback if it has not fired yet.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a cancelable scheduled callback
type Timer interface {
	// Stop cancels the timer. It reports whether the call prevented
	// the callback from firing.
	Stop() bool
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules fn on a real time.Timer
func (c *RealClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
