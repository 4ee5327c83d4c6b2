package mocks

import (
	"time"

	"github.com/wordparty/wordparty/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing. Timers
// never fire on their own; tests trigger them with FireNext or
// FireAll.
type MockClock struct {
	CurrentTime time.Time

	pending []*mockTimer
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

type mockTimer struct {
	fn      func()
	stopped bool
	fired   bool
}

// Stop cancels the timer
func (t *mockTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// AfterFunc records the callback without scheduling anything
func (c *MockClock) AfterFunc(d time.Duration, fn func()) clock.Timer {
	t := &mockTimer{fn: fn}
	c.pending = append(c.pending, t)
	return t
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

// Set sets the clock to the given time
func (c *MockClock) Set(t time.Time) {
	c.CurrentTime = t
}

// PendingTimers returns the number of scheduled, unfired, unstopped timers
func (c *MockClock) PendingTimers() int {
	n := 0
	for _, t := range c.pending {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

// FireNext runs the oldest pending timer callback. It reports whether
// a timer fired.
func (c *MockClock) FireNext() bool {
	for _, t := range c.pending {
		if !t.fired && !t.stopped {
			t.fired = true
			t.fn()
			return true
		}
	}
	return false
}

// FireAll runs every pending timer callback, including ones scheduled
// by earlier callbacks in the same call.
func (c *MockClock) FireAll() {
	for c.FireNext() {
	}
}
