package clock_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/julien-sobczak/the-dreamwriter/pkg/clock"
	"github.com/stretchr/testify/assert"
)

func TestDefaultClock(t *testing.T) {
	t1 := time.Now()
	assert.WithinDuration(t, t1, clock.Now(), 1*time.Second)
	clock.Sleep(50 * time.Millisecond)
	// time is not frozen by default
	assert.NotEqual(t, t1, clock.Now())
}

func TestTestClock(t *testing.T) {
	clock.Freeze()
	defer clock.Unfreeze()
	t1 := clock.Now()
	time.Sleep(50 * time.Millisecond)
	// time is always the same
	t2 := clock.Now()
	assert.Equal(t, t1, t2)
}

func TestTestClockSleep(t *testing.T) {
	point := time.Date(2023, 01, 01, 14, 00, 00, 00, time.UTC)
	c := clock.FreezeAt(point)
	defer clock.Unfreeze()

	start := time.Now()
	clock.Sleep(2 * time.Second)
	clock.Sleep(500 * time.Millisecond)

	// Sleeping on a frozen clock returns immediately
	assert.Less(t, time.Since(start), 1*time.Second)
	assert.Equal(t, 2500*time.Millisecond, c.Slept())
	assert.Equal(t, point.Add(2500*time.Millisecond), clock.Now())
}

func TestSwitchClock(t *testing.T) {
	// Time passes
	assert.WithinDuration(t, time.Now(), clock.Now(), 1*time.Second)

	// Time is frozen
	point := time.Date(2023, 01, 01, 14, 00, 00, 00, time.UTC)
	clock.FreezeAt(point)
	defer clock.Unfreeze()
	assert.Equal(t, point, clock.Now())

	// Time is unfreezed
	clock.Unfreeze()
	assert.WithinDuration(t, time.Now(), clock.Now(), 1*time.Second)
}

func ExampleClock() {
	point := time.Date(2023, 01, 01, 14, 00, 00, 00, time.UTC)
	clock.FreezeAt(point)
	defer clock.Unfreeze()

	clock.Sleep(90 * time.Minute)
	fmt.Println(clock.Now())
	// Output: 2023-01-01 15:30:00 +0000 UTC
}
