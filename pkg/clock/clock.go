package clock

import (
	"time"

	"github.com/julien-sobczak/the-dreamwriter/pkg/resync"
)

var (
	// Lazy-load
	clockOnce      resync.Once
	clockSingleton Clock
)

// Clock abstracts the passing of time so that dated journal entries
// and the thinking delay can be controlled from unit tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type DefaultClock struct{}

func (c DefaultClock) Now() time.Time {
	return time.Now()
}

func (c DefaultClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// TestClock never blocks. Sleeping only moves the frozen time forward.
type TestClock struct {
	now   time.Time
	slept time.Duration
}

func NewTestClock() *TestClock {
	return NewTestClockAt(time.Now())
}

func NewTestClockAt(date time.Time) *TestClock {
	return &TestClock{
		now: date,
	}
}

func (c *TestClock) FastForward(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func (c *TestClock) Now() time.Time {
	return c.now
}

func (c *TestClock) Sleep(d time.Duration) {
	c.slept += d
	c.FastForward(d)
}

// Slept returns the total duration passed to Sleep.
func (c *TestClock) Slept() time.Duration {
	return c.slept
}

func CurrentClock() Clock {
	if clockSingleton != nil {
		return clockSingleton
	}
	clockOnce.Do(func() {
		clockSingleton = DefaultClock{}
	})
	return clockSingleton
}

// Same as time.Now() but makes possible to control time from unit tests.
func Now() time.Time {
	return CurrentClock().Now()
}

// Same as time.Sleep() but returns immediately when the clock is frozen.
func Sleep(d time.Duration) {
	CurrentClock().Sleep(d)
}

func FreezeAt(now time.Time) *TestClock {
	testClock := NewTestClockAt(now)
	clockSingleton = testClock
	return testClock
}

func Freeze() *TestClock {
	testClock := NewTestClock()
	clockSingleton = testClock
	return testClock
}

func Unfreeze() {
	clockSingleton = nil
	clockOnce.Reset()
}
